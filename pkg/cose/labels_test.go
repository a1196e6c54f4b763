package cose

import "testing"

func TestLabelRegistry(t *testing.T) {
	tests := []struct {
		label Label
		str   string
		order int
	}{
		{LabelKty, "kty", 0},
		{LabelAlg, "alg", 1},
		{LabelCrvOrPub, "crv/pub", 2},
		{LabelX, "x", 3},
		{LabelY, "y", 4},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if !tt.label.IsValid() {
				t.Error("IsValid returned false")
			}
			if got := tt.label.String(); got != tt.str {
				t.Errorf("String mismatch: got %q, want %q", got, tt.str)
			}
			if got := tt.label.canonicalOrder(); got != tt.order {
				t.Errorf("canonicalOrder mismatch: got %d, want %d", got, tt.order)
			}
			got, ok := labelFromInt(int64(tt.label))
			if !ok || got != tt.label {
				t.Errorf("labelFromInt(%d) = %v, %v", int64(tt.label), got, ok)
			}
		})
	}

	for _, v := range []int64{0, 2, 4, -4, 42, 24, 128, -129, 1000, -1000} {
		if l, ok := labelFromInt(v); ok {
			t.Errorf("labelFromInt(%d) accepted as %v", v, l)
		}
	}
	if Label(0).IsValid() {
		t.Error("Label(0) reported valid")
	}
}

func TestKtyRegistry(t *testing.T) {
	tests := []struct {
		kty Kty
		val int64
		str string
	}{
		{KtyOkp, 1, "OKP"},
		{KtyEc2, 2, "EC2"},
		{KtySymmetric, 4, "Symmetric"},
		{KtyAkp, 7, "AKP"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if int64(tt.kty) != tt.val {
				t.Errorf("value mismatch: got %d, want %d", int64(tt.kty), tt.val)
			}
			if !tt.kty.IsValid() {
				t.Error("IsValid returned false")
			}
			if got := tt.kty.String(); got != tt.str {
				t.Errorf("String mismatch: got %q, want %q", got, tt.str)
			}
			got, ok := ktyFromInt(tt.val)
			if !ok || got != tt.kty {
				t.Errorf("ktyFromInt(%d) = %v, %v", tt.val, got, ok)
			}
		})
	}

	// 258 truncates to 2 in eight bits; the round trip check must catch it.
	for _, v := range []int64{0, 3, 5, 6, 8, -1, 258, -254} {
		if k, ok := ktyFromInt(v); ok {
			t.Errorf("ktyFromInt(%d) accepted as %v", v, k)
		}
	}
	if got := Kty(3).String(); got != "Unknown" {
		t.Errorf("Kty(3).String() = %q, want Unknown", got)
	}
}

func TestAlgRegistry(t *testing.T) {
	tests := []struct {
		alg Alg
		val int64
		str string
	}{
		{AlgEs256, -7, "ES256"},
		{AlgEdDsa, -8, "EdDSA"},
		{AlgTotp, -9, "TOTP"},
		{AlgEcdhEsHkdf256, -25, "ECDH-ES+HKDF-256"},
		{AlgDilithium2, -87, "Dilithium2"},
		{AlgDilithium3, -88, "Dilithium3"},
		{AlgDilithium5, -89, "Dilithium5"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if int64(tt.alg) != tt.val {
				t.Errorf("value mismatch: got %d, want %d", int64(tt.alg), tt.val)
			}
			if !tt.alg.IsValid() {
				t.Error("IsValid returned false")
			}
			if got := tt.alg.String(); got != tt.str {
				t.Errorf("String mismatch: got %q, want %q", got, tt.str)
			}
			got, ok := algFromInt(tt.val)
			if !ok || got != tt.alg {
				t.Errorf("algFromInt(%d) = %v, %v", tt.val, got, ok)
			}
		})
	}

	for _, v := range []int64{0, 7, -6, -35, -257, 249} {
		if a, ok := algFromInt(v); ok {
			t.Errorf("algFromInt(%d) accepted as %v", v, a)
		}
	}
}

func TestCrvRegistry(t *testing.T) {
	tests := []struct {
		crv Crv
		val int64
		str string
	}{
		{CrvP256, 1, "P-256"},
		{CrvX25519, 4, "X25519"},
		{CrvEd25519, 6, "Ed25519"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if int64(tt.crv) != tt.val {
				t.Errorf("value mismatch: got %d, want %d", int64(tt.crv), tt.val)
			}
			if !tt.crv.IsValid() {
				t.Error("IsValid returned false")
			}
			if got := tt.crv.String(); got != tt.str {
				t.Errorf("String mismatch: got %q, want %q", got, tt.str)
			}
			got, ok := crvFromInt(tt.val)
			if !ok || got != tt.crv {
				t.Errorf("crvFromInt(%d) = %v, %v", tt.val, got, ok)
			}
		})
	}

	// CrvNone is a sentinel for key types without a curve, not a wire value.
	if CrvNone.IsValid() {
		t.Error("CrvNone reported valid")
	}
	if got := CrvNone.String(); got != "None" {
		t.Errorf("CrvNone.String() = %q, want None", got)
	}
	for _, v := range []int64{0, 2, 3, 5, 7, -1, 262} {
		if c, ok := crvFromInt(v); ok {
			t.Errorf("crvFromInt(%d) accepted as %v", v, c)
		}
	}
}
