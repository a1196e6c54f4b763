package cose

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"fmt"
	"math/big"

	"github.com/cloudflare/circl/sign/dilithium/mode2"
	"github.com/cloudflare/circl/sign/dilithium/mode3"
	"github.com/cloudflare/circl/sign/dilithium/mode5"
)

// p256Point builds a crypto/ecdh key from raw coordinates.
// NewPublicKey rejects coordinates that do not name a point on P-256.
func p256Point(x, y [32]byte) (*ecdh.PublicKey, error) {
	raw := make([]byte, 1, 65)
	raw[0] = 4 // uncompressed point form
	raw = append(raw, x[:]...)
	raw = append(raw, y[:]...)
	pub, err := ecdh.P256().NewPublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("cose: not a P-256 point: %w", err)
	}
	return pub, nil
}

// NewP256PublicKey builds a P256PublicKey from an ECDSA public key on
// the P-256 curve.
func NewP256PublicKey(pub *ecdsa.PublicKey) (*P256PublicKey, error) {
	if pub == nil || pub.X == nil || pub.Y == nil {
		return nil, fmt.Errorf("cose: nil ECDSA public key")
	}
	if pub.Curve != elliptic.P256() {
		return nil, fmt.Errorf("cose: curve %s, want P-256", pub.Curve.Params().Name)
	}
	var k P256PublicKey
	pub.X.FillBytes(k.X[:])
	pub.Y.FillBytes(k.Y[:])
	return &k, nil
}

// ECDSA returns the key as a crypto/ecdsa public key, verifying first
// that the coordinates name a point on the curve.
func (k P256PublicKey) ECDSA() (*ecdsa.PublicKey, error) {
	if _, err := p256Point(k.X, k.Y); err != nil {
		return nil, err
	}
	return &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(k.X[:]),
		Y:     new(big.Int).SetBytes(k.Y[:]),
	}, nil
}

// NewEcdhEsHkdf256PublicKey builds an EcdhEsHkdf256PublicKey from a
// crypto/ecdh public key on the P-256 curve.
func NewEcdhEsHkdf256PublicKey(pub *ecdh.PublicKey) (*EcdhEsHkdf256PublicKey, error) {
	if pub == nil {
		return nil, fmt.Errorf("cose: nil ECDH public key")
	}
	if pub.Curve() != ecdh.P256() {
		return nil, fmt.Errorf("cose: ECDH key is not on P-256")
	}
	raw := pub.Bytes()
	if len(raw) != 65 || raw[0] != 4 {
		return nil, fmt.Errorf("cose: unexpected point encoding (%d bytes)", len(raw))
	}
	var k EcdhEsHkdf256PublicKey
	copy(k.X[:], raw[1:33])
	copy(k.Y[:], raw[33:65])
	return &k, nil
}

// ECDH returns the key as a crypto/ecdh public key, verifying that the
// coordinates name a point on the curve.
func (k EcdhEsHkdf256PublicKey) ECDH() (*ecdh.PublicKey, error) {
	return p256Point(k.X, k.Y)
}

// NewEd25519PublicKey builds an Ed25519PublicKey from a crypto/ed25519
// public key.
func NewEd25519PublicKey(pub ed25519.PublicKey) (*Ed25519PublicKey, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("cose: ed25519 key is %d bytes, want %d", len(pub), ed25519.PublicKeySize)
	}
	var k Ed25519PublicKey
	copy(k.X[:], pub)
	return &k, nil
}

// Ed25519 returns a copy of the key as a crypto/ed25519 public key.
func (k Ed25519PublicKey) Ed25519() ed25519.PublicKey {
	out := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(out, k.X[:])
	return out
}

// NewDilithium2PublicKey packs a circl mode 2 verifier key into its
// COSE form.
func NewDilithium2PublicKey(pub *mode2.PublicKey) *Dilithium2PublicKey {
	var k Dilithium2PublicKey
	pub.Pack(&k.Pub)
	return &k
}

// Mode2 returns the key as a circl Dilithium mode 2 verifier key.
func (k Dilithium2PublicKey) Mode2() *mode2.PublicKey {
	var pub mode2.PublicKey
	pub.Unpack(&k.Pub)
	return &pub
}

// NewDilithium3PublicKey packs a circl mode 3 verifier key into its
// COSE form.
func NewDilithium3PublicKey(pub *mode3.PublicKey) *Dilithium3PublicKey {
	var k Dilithium3PublicKey
	pub.Pack(&k.Pub)
	return &k
}

// Mode3 returns the key as a circl Dilithium mode 3 verifier key.
func (k Dilithium3PublicKey) Mode3() *mode3.PublicKey {
	var pub mode3.PublicKey
	pub.Unpack(&k.Pub)
	return &pub
}

// NewDilithium5PublicKey packs a circl mode 5 verifier key into its
// COSE form.
func NewDilithium5PublicKey(pub *mode5.PublicKey) *Dilithium5PublicKey {
	var k Dilithium5PublicKey
	pub.Pack(&k.Pub)
	return &k
}

// Mode5 returns the key as a circl Dilithium mode 5 verifier key.
func (k Dilithium5PublicKey) Mode5() *mode5.PublicKey {
	var pub mode5.PublicKey
	pub.Unpack(&k.Pub)
	return &pub
}
