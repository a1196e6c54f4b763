package cose

import (
	"crypto/sha256"
	"fmt"
)

// Thumbprint computes the RFC 9679 COSE Key Thumbprint: the SHA-256
// digest of the canonical encoding of the key's required parameters.
// Thumbprints are stable identifiers suitable for key lookup and
// pinning.
//
// Thumbprints are defined for EC2 and OKP keys. Symmetric thumbprints
// would need the secret, which these records never carry, and no
// required-parameter subset is published for AKP keys; both return
// ErrUnsupportedKey.
func Thumbprint(k PublicKey) ([]byte, error) {
	switch k.Kty() {
	case KtyEc2, KtyOkp:
	default:
		return nil, fmt.Errorf("%w: no thumbprint for %s keys", ErrUnsupportedKey, k.Kty())
	}

	wire, err := k.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	var r rawPublicKey
	if err := r.decode(wire, 32); err != nil {
		return nil, err
	}

	// The thumbprint input is the required-parameter subset: alg is
	// optional per the registry and excluded from the digest.
	r.alg = nil
	subset, err := r.encode()
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(subset)
	return sum[:], nil
}
