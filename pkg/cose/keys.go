package cose

import (
	"crypto/ed25519"

	"golang.org/x/crypto/curve25519"
)

// P256PublicKey is an ECDSA P-256 signature verification key with
// uncompressed 32-byte coordinates.
//
// CBOR layout: {1: 2, 3: -7, -1: 1, -2: x, -3: y}
type P256PublicKey struct {
	X [32]byte
	Y [32]byte
}

// Kty returns KtyEc2.
func (P256PublicKey) Kty() Kty { return KtyEc2 }

// Alg returns AlgEs256.
func (P256PublicKey) Alg() Alg { return AlgEs256 }

// Crv returns CrvP256.
func (P256PublicKey) Crv() Crv { return CrvP256 }

// MarshalCBOR encodes the key as a canonical COSE_Key map.
func (k P256PublicKey) MarshalCBOR() ([]byte, error) {
	r := newRawKey(KtyEc2, AlgEs256, CrvP256)
	r.x = k.X[:]
	r.y = k.Y[:]
	return r.encode()
}

// UnmarshalCBOR decodes a COSE_Key map carrying the EC2 key type, the
// ES256 algorithm (when present), the P-256 curve, and both
// coordinates.
func (k *P256PublicKey) UnmarshalCBOR(data []byte) error {
	var r rawPublicKey
	if err := r.decode(data, len(k.X)); err != nil {
		return err
	}
	if err := r.checkConstants(KtyEc2, AlgEs256, CrvP256); err != nil {
		return err
	}
	if err := copyPayload(k.X[:], r.x, "x"); err != nil {
		return err
	}
	return copyPayload(k.Y[:], r.y, "y")
}

// EcdhEsHkdf256PublicKey is a P-256 key-agreement key for
// ECDH-ES+HKDF-256. Identical in shape to P256PublicKey; only the
// algorithm differs.
//
// CBOR layout: {1: 2, 3: -25, -1: 1, -2: x, -3: y}
type EcdhEsHkdf256PublicKey struct {
	X [32]byte
	Y [32]byte
}

// Kty returns KtyEc2.
func (EcdhEsHkdf256PublicKey) Kty() Kty { return KtyEc2 }

// Alg returns AlgEcdhEsHkdf256.
func (EcdhEsHkdf256PublicKey) Alg() Alg { return AlgEcdhEsHkdf256 }

// Crv returns CrvP256.
func (EcdhEsHkdf256PublicKey) Crv() Crv { return CrvP256 }

// MarshalCBOR encodes the key as a canonical COSE_Key map.
func (k EcdhEsHkdf256PublicKey) MarshalCBOR() ([]byte, error) {
	r := newRawKey(KtyEc2, AlgEcdhEsHkdf256, CrvP256)
	r.x = k.X[:]
	r.y = k.Y[:]
	return r.encode()
}

// UnmarshalCBOR decodes a COSE_Key map carrying the EC2 key type, the
// ECDH-ES+HKDF-256 algorithm (when present), the P-256 curve, and both
// coordinates.
func (k *EcdhEsHkdf256PublicKey) UnmarshalCBOR(data []byte) error {
	var r rawPublicKey
	if err := r.decode(data, len(k.X)); err != nil {
		return err
	}
	if err := r.checkConstants(KtyEc2, AlgEcdhEsHkdf256, CrvP256); err != nil {
		return err
	}
	if err := copyPayload(k.X[:], r.x, "x"); err != nil {
		return err
	}
	return copyPayload(k.Y[:], r.y, "y")
}

// Ed25519PublicKey is an Ed25519 signature verification key. OKP keys
// carry the public key in the x slot and have no y.
//
// CBOR layout: {1: 1, 3: -8, -1: 6, -2: x}
type Ed25519PublicKey struct {
	X [ed25519.PublicKeySize]byte
}

// Kty returns KtyOkp.
func (Ed25519PublicKey) Kty() Kty { return KtyOkp }

// Alg returns AlgEdDsa.
func (Ed25519PublicKey) Alg() Alg { return AlgEdDsa }

// Crv returns CrvEd25519.
func (Ed25519PublicKey) Crv() Crv { return CrvEd25519 }

// MarshalCBOR encodes the key as a canonical COSE_Key map.
func (k Ed25519PublicKey) MarshalCBOR() ([]byte, error) {
	r := newRawKey(KtyOkp, AlgEdDsa, CrvEd25519)
	r.x = k.X[:]
	return r.encode()
}

// UnmarshalCBOR decodes a COSE_Key map carrying the OKP key type, the
// EdDSA algorithm (when present), the Ed25519 curve, and the public
// key bytes. A y field, if present, is ignored.
func (k *Ed25519PublicKey) UnmarshalCBOR(data []byte) error {
	var r rawPublicKey
	if err := r.decode(data, len(k.X)); err != nil {
		return err
	}
	if err := r.checkConstants(KtyOkp, AlgEdDsa, CrvEd25519); err != nil {
		return err
	}
	return copyPayload(k.X[:], r.x, "x")
}

// TotpPublicKey marks a TOTP shared-secret slot. The record carries
// only the key type and algorithm; the secret itself never leaves the
// authenticator.
//
// CBOR layout: {1: 4, 3: -9}
type TotpPublicKey struct{}

// Kty returns KtySymmetric.
func (TotpPublicKey) Kty() Kty { return KtySymmetric }

// Alg returns AlgTotp.
func (TotpPublicKey) Alg() Alg { return AlgTotp }

// Crv returns CrvNone: symmetric keys have no curve.
func (TotpPublicKey) Crv() Crv { return CrvNone }

// MarshalCBOR encodes the key as a canonical COSE_Key map.
func (TotpPublicKey) MarshalCBOR() ([]byte, error) {
	r := newRawKey(KtySymmetric, AlgTotp, CrvNone)
	return r.encode()
}

// totpMaxPayload bounds stray byte payloads on a TOTP record, which
// carries none of its own. The cap admits a stray 32-byte curve
// coordinate, which is read and dropped.
const totpMaxPayload = 32

// UnmarshalCBOR decodes a COSE_Key map carrying the Symmetric key type
// and the TOTP algorithm (when present). Other known fields are
// tolerated and dropped.
func (k *TotpPublicKey) UnmarshalCBOR(data []byte) error {
	var r rawPublicKey
	if err := r.decode(data, totpMaxPayload); err != nil {
		return err
	}
	return r.checkConstants(KtySymmetric, AlgTotp, CrvNone)
}

// X25519PublicKey holds a raw Curve25519 point for ECDH. The registry
// assigns it curve 4, but no algorithm in this package binds it into
// the codec, so it has no CBOR form and is not part of PublicKey.
type X25519PublicKey struct {
	Pub [curve25519.PointSize]byte
}
