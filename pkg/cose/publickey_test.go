package cose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mash-protocol/cosekey-go/pkg/cose"
)

// TestPublicKeyConstants walks every key type in the union and checks
// its identifying triple.
func TestPublicKeyConstants(t *testing.T) {
	tests := []struct {
		key cose.PublicKey
		kty string
		alg string
		crv string
	}{
		{cose.P256PublicKey{}, "EC2", "ES256", "P-256"},
		{cose.EcdhEsHkdf256PublicKey{}, "EC2", "ECDH-ES+HKDF-256", "P-256"},
		{cose.Ed25519PublicKey{}, "OKP", "EdDSA", "Ed25519"},
		{cose.TotpPublicKey{}, "Symmetric", "TOTP", "None"},
		{cose.Dilithium2PublicKey{}, "AKP", "Dilithium2", "None"},
		{cose.Dilithium3PublicKey{}, "AKP", "Dilithium3", "None"},
		{cose.Dilithium5PublicKey{}, "AKP", "Dilithium5", "None"},
	}
	for _, tt := range tests {
		t.Run(tt.alg, func(t *testing.T) {
			assert.Equal(t, tt.kty, tt.key.Kty().String())
			assert.Equal(t, tt.alg, tt.key.Alg().String())
			assert.Equal(t, tt.crv, tt.key.Crv().String())

			encoded, err := tt.key.MarshalCBOR()
			assert.NoError(t, err)
			assert.NotEmpty(t, encoded)
		})
	}
}

// TestX25519OutsideUnion checks that the curve-only X25519 type carries
// no CBOR form.
func TestX25519OutsideUnion(t *testing.T) {
	_, ok := any(cose.X25519PublicKey{}).(cose.PublicKey)
	assert.False(t, ok)
}
