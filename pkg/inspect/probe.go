// Package inspect identifies and describes encoded COSE_Key records.
// It drives the strict per-type decoders in pkg/cose against unknown
// input, which is the supported way to handle records whose key type is
// not known in advance.
package inspect

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/mash-protocol/cosekey-go/pkg/cose"
)

// Probe errors.
var (
	ErrNoMatch = errors.New("inspect: record matches no known key type")
)

// Result is the outcome of decoding a record as one key type.
type Result struct {
	Variant string
	Key     cose.PublicKey
	Err     error
}

// Ok reports whether the record decoded as this result's key type.
func (r Result) Ok() bool {
	return r.Err == nil
}

type variant struct {
	name   string
	decode func(data []byte) (cose.PublicKey, error)
}

// variants lists every decodable key type in registry order. A record
// without an alg field can match more than one entry; order decides
// which one Identify reports.
var variants = []variant{
	{"p256", func(data []byte) (cose.PublicKey, error) {
		var k cose.P256PublicKey
		if err := cose.Unmarshal(data, &k); err != nil {
			return nil, err
		}
		return k, nil
	}},
	{"ecdh-es-hkdf-256", func(data []byte) (cose.PublicKey, error) {
		var k cose.EcdhEsHkdf256PublicKey
		if err := cose.Unmarshal(data, &k); err != nil {
			return nil, err
		}
		return k, nil
	}},
	{"ed25519", func(data []byte) (cose.PublicKey, error) {
		var k cose.Ed25519PublicKey
		if err := cose.Unmarshal(data, &k); err != nil {
			return nil, err
		}
		return k, nil
	}},
	{"totp", func(data []byte) (cose.PublicKey, error) {
		var k cose.TotpPublicKey
		if err := cose.Unmarshal(data, &k); err != nil {
			return nil, err
		}
		return k, nil
	}},
	{"dilithium2", func(data []byte) (cose.PublicKey, error) {
		var k cose.Dilithium2PublicKey
		if err := cose.Unmarshal(data, &k); err != nil {
			return nil, err
		}
		return k, nil
	}},
	{"dilithium3", func(data []byte) (cose.PublicKey, error) {
		var k cose.Dilithium3PublicKey
		if err := cose.Unmarshal(data, &k); err != nil {
			return nil, err
		}
		return k, nil
	}},
	{"dilithium5", func(data []byte) (cose.PublicKey, error) {
		var k cose.Dilithium5PublicKey
		if err := cose.Unmarshal(data, &k); err != nil {
			return nil, err
		}
		return k, nil
	}},
}

// VariantNames returns the key type names in registry order.
func VariantNames() []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.name
	}
	return names
}

// Probe tries the record against every key type and returns one result
// per type, in registry order.
func Probe(data []byte) []Result {
	results := make([]Result, len(variants))
	for i, v := range variants {
		key, err := v.decode(data)
		results[i] = Result{Variant: v.name, Key: key, Err: err}
	}
	return results
}

// Identify returns the first key type that accepts the record. Records
// lacking the optional alg field can satisfy both P-256 shapes; the
// signature form wins.
func Identify(data []byte) (cose.PublicKey, string, error) {
	for _, v := range variants {
		if key, err := v.decode(data); err == nil {
			return key, v.name, nil
		}
	}
	return nil, "", ErrNoMatch
}

// DecodeAs decodes the record as one named key type.
func DecodeAs(name string, data []byte) (cose.PublicKey, error) {
	for _, v := range variants {
		if v.name == name {
			return v.decode(data)
		}
	}
	return nil, fmt.Errorf("inspect: unknown key type %q", name)
}

// KeyInfo is the decoded summary of one key record for display.
type KeyInfo struct {
	Variant    string
	Kty        string
	KtyValue   int
	Alg        string
	AlgValue   int
	Crv        string
	CrvValue   int
	X          string
	Y          string
	Pub        string
	Size       int
	Thumbprint string
}

// Describe summarizes a decoded key. Payload fields are hex encoded;
// key types with a thumbprint get one.
func Describe(key cose.PublicKey) *KeyInfo {
	info := &KeyInfo{
		Kty:      key.Kty().String(),
		KtyValue: int(key.Kty()),
		Alg:      key.Alg().String(),
		AlgValue: int(key.Alg()),
		Crv:      key.Crv().String(),
		CrvValue: int(key.Crv()),
	}

	switch k := key.(type) {
	case cose.P256PublicKey:
		info.Variant = "p256"
		info.X = hex.EncodeToString(k.X[:])
		info.Y = hex.EncodeToString(k.Y[:])
		info.Size = len(k.X) + len(k.Y)
	case cose.EcdhEsHkdf256PublicKey:
		info.Variant = "ecdh-es-hkdf-256"
		info.X = hex.EncodeToString(k.X[:])
		info.Y = hex.EncodeToString(k.Y[:])
		info.Size = len(k.X) + len(k.Y)
	case cose.Ed25519PublicKey:
		info.Variant = "ed25519"
		info.X = hex.EncodeToString(k.X[:])
		info.Size = len(k.X)
	case cose.TotpPublicKey:
		info.Variant = "totp"
	case cose.Dilithium2PublicKey:
		info.Variant = "dilithium2"
		info.Pub = hex.EncodeToString(k.Pub[:])
		info.Size = len(k.Pub)
	case cose.Dilithium3PublicKey:
		info.Variant = "dilithium3"
		info.Pub = hex.EncodeToString(k.Pub[:])
		info.Size = len(k.Pub)
	case cose.Dilithium5PublicKey:
		info.Variant = "dilithium5"
		info.Pub = hex.EncodeToString(k.Pub[:])
		info.Size = len(k.Pub)
	default:
		info.Variant = fmt.Sprintf("%T", key)
	}

	if tp, err := cose.Thumbprint(key); err == nil {
		info.Thumbprint = hex.EncodeToString(tp)
	}
	return info
}
