package cose

// Label identifies a COSE_Key map field. Labels are the small integer
// map keys defined by RFC 8152 for the key parameter registry.
type Label int8

const (
	// LabelKty is the key type (label 1, required).
	LabelKty Label = 1

	// LabelAlg is the algorithm identifier (label 3, optional).
	LabelAlg Label = 3

	// LabelCrvOrPub is the curve for EC2/OKP keys, or the raw public
	// key bytes for AKP keys (label -1).
	LabelCrvOrPub Label = -1

	// LabelX is the x coordinate or the OKP public key (label -2).
	LabelX Label = -2

	// LabelY is the y coordinate for EC2 keys (label -3).
	LabelY Label = -3
)

// String returns the label's registry name.
func (l Label) String() string {
	switch l {
	case LabelKty:
		return "kty"
	case LabelAlg:
		return "alg"
	case LabelCrvOrPub:
		return "crv/pub"
	case LabelX:
		return "x"
	case LabelY:
		return "y"
	default:
		return "unknown"
	}
}

// IsValid returns true if the label is part of the key parameter set
// this codec understands.
func (l Label) IsValid() bool {
	switch l {
	case LabelKty, LabelAlg, LabelCrvOrPub, LabelX, LabelY:
		return true
	default:
		return false
	}
}

// canonicalOrder returns the label's position in the required field
// sequence kty, alg, crv/pub, x, y. For these five labels the sequence
// matches the canonical CBOR ordering of their encoded forms.
func (l Label) canonicalOrder() int {
	switch l {
	case LabelKty:
		return 0
	case LabelAlg:
		return 1
	case LabelCrvOrPub:
		return 2
	case LabelX:
		return 3
	case LabelY:
		return 4
	default:
		return -1
	}
}

// labelFromInt converts a decoded map key to a Label. The second return
// is false for integers outside the known label set, including values
// that do not fit the label's range.
func labelFromInt(v int64) (Label, bool) {
	l := Label(v)
	if int64(l) != v || !l.IsValid() {
		return 0, false
	}
	return l, true
}

// Kty is the COSE key type (label 1).
type Kty int8

const (
	// KtyOkp is an octet key pair (Ed25519 and friends).
	KtyOkp Kty = 1

	// KtyEc2 is a double-coordinate elliptic curve key.
	KtyEc2 Kty = 2

	// KtySymmetric is a symmetric key. The secret itself is never
	// carried in these records.
	KtySymmetric Kty = 4

	// KtyAkp is an algorithm key pair: the key is an opaque byte
	// string whose structure is fixed by the algorithm.
	KtyAkp Kty = 7
)

// String returns the key type's registry name.
func (k Kty) String() string {
	switch k {
	case KtyOkp:
		return "OKP"
	case KtyEc2:
		return "EC2"
	case KtySymmetric:
		return "Symmetric"
	case KtyAkp:
		return "AKP"
	default:
		return "Unknown"
	}
}

// IsValid returns true for registered key types.
func (k Kty) IsValid() bool {
	switch k {
	case KtyOkp, KtyEc2, KtySymmetric, KtyAkp:
		return true
	default:
		return false
	}
}

func ktyFromInt(v int64) (Kty, bool) {
	k := Kty(v)
	if int64(k) != v || !k.IsValid() {
		return 0, false
	}
	return k, true
}

// Alg is the COSE algorithm identifier (label 3).
type Alg int8

const (
	// AlgEs256 is ECDSA with SHA-256 on P-256.
	AlgEs256 Alg = -7

	// AlgEdDsa is EdDSA (Ed25519 in this package).
	AlgEdDsa Alg = -8

	// AlgTotp marks a TOTP shared-secret slot.
	AlgTotp Alg = -9

	// AlgEcdhEsHkdf256 is ephemeral-static ECDH with HKDF SHA-256.
	AlgEcdhEsHkdf256 Alg = -25

	// AlgDilithium2 is Dilithium at NIST level 2.
	AlgDilithium2 Alg = -87

	// AlgDilithium3 is Dilithium at NIST level 3.
	AlgDilithium3 Alg = -88

	// AlgDilithium5 is Dilithium at NIST level 5.
	AlgDilithium5 Alg = -89
)

// String returns the algorithm's registry name.
func (a Alg) String() string {
	switch a {
	case AlgEs256:
		return "ES256"
	case AlgEdDsa:
		return "EdDSA"
	case AlgTotp:
		return "TOTP"
	case AlgEcdhEsHkdf256:
		return "ECDH-ES+HKDF-256"
	case AlgDilithium2:
		return "Dilithium2"
	case AlgDilithium3:
		return "Dilithium3"
	case AlgDilithium5:
		return "Dilithium5"
	default:
		return "Unknown"
	}
}

// IsValid returns true for registered algorithms.
func (a Alg) IsValid() bool {
	switch a {
	case AlgEs256, AlgEdDsa, AlgTotp, AlgEcdhEsHkdf256,
		AlgDilithium2, AlgDilithium3, AlgDilithium5:
		return true
	default:
		return false
	}
}

func algFromInt(v int64) (Alg, bool) {
	a := Alg(v)
	if int64(a) != v || !a.IsValid() {
		return 0, false
	}
	return a, true
}

// Crv is the COSE elliptic curve identifier (label -1).
type Crv int8

const (
	// CrvNone marks key types without a curve field. It never appears
	// on the wire.
	CrvNone Crv = 0

	// CrvP256 is NIST P-256 (secp256r1).
	CrvP256 Crv = 1

	// CrvX25519 is Curve25519 for ECDH.
	CrvX25519 Crv = 4

	// CrvEd25519 is Ed25519 for signatures.
	CrvEd25519 Crv = 6
)

// String returns the curve's registry name.
func (c Crv) String() string {
	switch c {
	case CrvNone:
		return "None"
	case CrvP256:
		return "P-256"
	case CrvX25519:
		return "X25519"
	case CrvEd25519:
		return "Ed25519"
	default:
		return "Unknown"
	}
}

// IsValid returns true for registered curves. CrvNone is a sentinel,
// not a registered curve.
func (c Crv) IsValid() bool {
	switch c {
	case CrvP256, CrvX25519, CrvEd25519:
		return true
	default:
		return false
	}
}

func crvFromInt(v int64) (Crv, bool) {
	c := Crv(v)
	if int64(c) != v || !c.IsValid() {
		return 0, false
	}
	return c, true
}
