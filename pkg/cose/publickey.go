package cose

import "github.com/fxamacker/cbor/v2"

// PublicKey is the closed set of key types this package can encode.
// Every implementation is a concrete struct in this package.
//
// The interface is encode-only. Decoding needs to know the expected
// concrete type: the structural shapes overlap (a record without alg
// satisfies both P-256 types), and the registry defines no precedence
// between them, so there is no DecodePublicKey. Callers unmarshal into
// the type their context calls for, or use pkg/inspect to probe.
type PublicKey interface {
	cbor.Marshaler

	// Kty returns the key type constant the wire form must carry.
	Kty() Kty

	// Alg returns the algorithm constant. Decoders accept records
	// without alg; encoders always write it.
	Alg() Alg

	// Crv returns the curve constant, or CrvNone for key types
	// without a curve field.
	Crv() Crv

	isPublicKey()
}

func (P256PublicKey) isPublicKey()          {}
func (EcdhEsHkdf256PublicKey) isPublicKey() {}
func (Ed25519PublicKey) isPublicKey()       {}
func (TotpPublicKey) isPublicKey()          {}
func (Dilithium2PublicKey) isPublicKey()    {}
func (Dilithium3PublicKey) isPublicKey()    {}
func (Dilithium5PublicKey) isPublicKey()    {}

var (
	_ PublicKey = P256PublicKey{}
	_ PublicKey = EcdhEsHkdf256PublicKey{}
	_ PublicKey = Ed25519PublicKey{}
	_ PublicKey = TotpPublicKey{}
	_ PublicKey = Dilithium2PublicKey{}
	_ PublicKey = Dilithium3PublicKey{}
	_ PublicKey = Dilithium5PublicKey{}

	_ cbor.Unmarshaler = (*P256PublicKey)(nil)
	_ cbor.Unmarshaler = (*EcdhEsHkdf256PublicKey)(nil)
	_ cbor.Unmarshaler = (*Ed25519PublicKey)(nil)
	_ cbor.Unmarshaler = (*TotpPublicKey)(nil)
	_ cbor.Unmarshaler = (*Dilithium2PublicKey)(nil)
	_ cbor.Unmarshaler = (*Dilithium3PublicKey)(nil)
	_ cbor.Unmarshaler = (*Dilithium5PublicKey)(nil)
)
