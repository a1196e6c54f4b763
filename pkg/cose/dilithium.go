package cose

import (
	"github.com/cloudflare/circl/sign/dilithium/mode2"
	"github.com/cloudflare/circl/sign/dilithium/mode3"
	"github.com/cloudflare/circl/sign/dilithium/mode5"
)

// Dilithium2PublicKey is a Dilithium signature verification key at
// NIST security level 2. AKP keys carry the packed public key as an
// opaque byte string under label -1 and have no curve.
//
// CBOR layout: {1: 7, 3: -87, -1: pub}
type Dilithium2PublicKey struct {
	Pub [mode2.PublicKeySize]byte
}

// Kty returns KtyAkp.
func (Dilithium2PublicKey) Kty() Kty { return KtyAkp }

// Alg returns AlgDilithium2.
func (Dilithium2PublicKey) Alg() Alg { return AlgDilithium2 }

// Crv returns CrvNone: AKP keys have no curve.
func (Dilithium2PublicKey) Crv() Crv { return CrvNone }

// MarshalCBOR encodes the key as a canonical COSE_Key map.
func (k Dilithium2PublicKey) MarshalCBOR() ([]byte, error) {
	r := newRawKey(KtyAkp, AlgDilithium2, CrvNone)
	r.pub = k.Pub[:]
	return r.encode()
}

// UnmarshalCBOR decodes a COSE_Key map carrying the AKP key type, the
// Dilithium2 algorithm (when present), and the packed public key.
func (k *Dilithium2PublicKey) UnmarshalCBOR(data []byte) error {
	var r rawPublicKey
	if err := r.decode(data, len(k.Pub)); err != nil {
		return err
	}
	if err := r.checkConstants(KtyAkp, AlgDilithium2, CrvNone); err != nil {
		return err
	}
	return copyPayload(k.Pub[:], r.pub, "pub")
}

// Dilithium3PublicKey is a Dilithium signature verification key at
// NIST security level 3.
//
// CBOR layout: {1: 7, 3: -88, -1: pub}
type Dilithium3PublicKey struct {
	Pub [mode3.PublicKeySize]byte
}

// Kty returns KtyAkp.
func (Dilithium3PublicKey) Kty() Kty { return KtyAkp }

// Alg returns AlgDilithium3.
func (Dilithium3PublicKey) Alg() Alg { return AlgDilithium3 }

// Crv returns CrvNone: AKP keys have no curve.
func (Dilithium3PublicKey) Crv() Crv { return CrvNone }

// MarshalCBOR encodes the key as a canonical COSE_Key map.
func (k Dilithium3PublicKey) MarshalCBOR() ([]byte, error) {
	r := newRawKey(KtyAkp, AlgDilithium3, CrvNone)
	r.pub = k.Pub[:]
	return r.encode()
}

// UnmarshalCBOR decodes a COSE_Key map carrying the AKP key type, the
// Dilithium3 algorithm (when present), and the packed public key.
func (k *Dilithium3PublicKey) UnmarshalCBOR(data []byte) error {
	var r rawPublicKey
	if err := r.decode(data, len(k.Pub)); err != nil {
		return err
	}
	if err := r.checkConstants(KtyAkp, AlgDilithium3, CrvNone); err != nil {
		return err
	}
	return copyPayload(k.Pub[:], r.pub, "pub")
}

// Dilithium5PublicKey is a Dilithium signature verification key at
// NIST security level 5.
//
// CBOR layout: {1: 7, 3: -89, -1: pub}
type Dilithium5PublicKey struct {
	Pub [mode5.PublicKeySize]byte
}

// Kty returns KtyAkp.
func (Dilithium5PublicKey) Kty() Kty { return KtyAkp }

// Alg returns AlgDilithium5.
func (Dilithium5PublicKey) Alg() Alg { return AlgDilithium5 }

// Crv returns CrvNone: AKP keys have no curve.
func (Dilithium5PublicKey) Crv() Crv { return CrvNone }

// MarshalCBOR encodes the key as a canonical COSE_Key map.
func (k Dilithium5PublicKey) MarshalCBOR() ([]byte, error) {
	r := newRawKey(KtyAkp, AlgDilithium5, CrvNone)
	r.pub = k.Pub[:]
	return r.encode()
}

// UnmarshalCBOR decodes a COSE_Key map carrying the AKP key type, the
// Dilithium5 algorithm (when present), and the packed public key.
func (k *Dilithium5PublicKey) UnmarshalCBOR(data []byte) error {
	var r rawPublicKey
	if err := r.decode(data, len(k.Pub)); err != nil {
		return err
	}
	if err := r.checkConstants(KtyAkp, AlgDilithium5, CrvNone); err != nil {
		return err
	}
	return copyPayload(k.Pub[:], r.pub, "pub")
}
