package cose

import (
	"errors"
	"testing"
)

func TestReadMapHead(t *testing.T) {
	tests := []struct {
		name        string
		hex         string
		wantEntries int
		wantErr     error
	}{
		{"empty map", "a0", 0, nil},
		{"two entries", "a201040328", 2, nil},
		{"long form header", "b80201020326", 2, nil},
		{"empty input", "", 0, ErrInvalidMap},
		{"array", "8101", 0, ErrInvalidMap},
		{"byte string", "4101", 0, ErrInvalidMap},
		{"unsigned int", "01", 0, ErrInvalidMap},
		{"indefinite map", "bf01040328ff", 0, ErrInvalidMap},
		{"reserved info", "bc", 0, ErrInvalidMap},
		{"short header", "b8", 0, ErrTruncated},
		{"count over data", "a50102", 0, ErrTruncated},
		{"absurd count", "bbffffffffffffffff", 0, ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, entries, err := readMapHead(fromHex(t, tt.hex))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("readMapHead failed: %v", err)
			}
			if entries != tt.wantEntries {
				t.Errorf("entries mismatch: got %d, want %d", entries, tt.wantEntries)
			}
		})
	}

	t.Run("header consumed", func(t *testing.T) {
		rest, entries, err := readMapHead(fromHex(t, "a201040328"))
		if err != nil {
			t.Fatalf("readMapHead failed: %v", err)
		}
		if entries != 2 {
			t.Errorf("entries mismatch: got %d, want 2", entries)
		}
		if string(rest) != string(fromHex(t, "01040328")) {
			t.Errorf("rest mismatch: got %x", rest)
		}
	})
}

func TestRawDecode(t *testing.T) {
	t.Run("empty map leaves every slot unset", func(t *testing.T) {
		var r rawPublicKey
		if err := r.decode(fromHex(t, "a0"), 32); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if r.kty != nil || r.alg != nil || r.crv != nil || r.pub != nil || r.x != nil || r.y != nil {
			t.Errorf("slots set on empty map: %+v", r)
		}
	})

	t.Run("unknown label keeps earlier fields", func(t *testing.T) {
		// {1: 4, 3: -9, 42: 1}; decoding stops at 42.
		var r rawPublicKey
		if err := r.decode(fromHex(t, "a301040328182a01"), 32); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if r.kty == nil || *r.kty != KtySymmetric {
			t.Errorf("kty not kept: %+v", r.kty)
		}
		if r.alg == nil || *r.alg != AlgTotp {
			t.Errorf("alg not kept: %+v", r.alg)
		}
	})

	t.Run("non minimal header accepted", func(t *testing.T) {
		var r rawPublicKey
		if err := r.decode(fromHex(t, "b80201020326"), 32); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if r.kty == nil || *r.kty != KtyEc2 {
			t.Errorf("kty mismatch: %+v", r.kty)
		}
		if r.alg == nil || *r.alg != AlgEs256 {
			t.Errorf("alg mismatch: %+v", r.alg)
		}
	})

	t.Run("payload cap applies before constants", func(t *testing.T) {
		// {1: 7, 3: -87, -1: 33 bytes} against a 32 byte cap.
		record := "a30107033856205821" + ff32 + "ff"
		var r rawPublicKey
		if err := r.decode(fromHex(t, record), 32); !errors.Is(err, ErrPayloadSize) {
			t.Errorf("got %v, want ErrPayloadSize", err)
		}
	})
}

func TestRawEncode(t *testing.T) {
	tests := []struct {
		name string
		raw  rawPublicKey
		hex  string
	}{
		{"empty", rawPublicKey{}, "a0"},
		{"constants only", newRawKey(KtySymmetric, AlgTotp, CrvNone), "a201040328"},
		{"curve without payload", newRawKey(KtyEc2, AlgEs256, CrvP256), "a3010203262001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := tt.raw.encode()
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			if want := fromHex(t, tt.hex); string(encoded) != string(want) {
				t.Errorf("encoding mismatch:\ngot  %x\nwant %x", encoded, want)
			}
		})
	}
}

func TestCheckConstants(t *testing.T) {
	ec2 := KtyEc2
	okp := KtyOkp
	es256 := AlgEs256
	eddsa := AlgEdDsa
	p256 := CrvP256
	ed := CrvEd25519

	tests := []struct {
		name    string
		raw     rawPublicKey
		wantErr error
	}{
		{"all match", rawPublicKey{kty: &ec2, alg: &es256, crv: &p256}, nil},
		{"alg absent", rawPublicKey{kty: &ec2, crv: &p256}, nil},
		{"kty absent", rawPublicKey{alg: &es256, crv: &p256}, ErrMissingField},
		{"kty mismatch", rawPublicKey{kty: &okp, alg: &es256, crv: &p256}, ErrInvalidValue},
		{"alg mismatch", rawPublicKey{kty: &ec2, alg: &eddsa, crv: &p256}, ErrInvalidValue},
		{"crv absent", rawPublicKey{kty: &ec2, alg: &es256}, ErrMissingField},
		{"crv mismatch", rawPublicKey{kty: &ec2, alg: &es256, crv: &ed}, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.raw.checkConstants(KtyEc2, AlgEs256, CrvP256)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("checkConstants failed: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("curveless type ignores crv", func(t *testing.T) {
		sym := KtySymmetric
		totp := AlgTotp
		raw := rawPublicKey{kty: &sym, alg: &totp, crv: &p256}
		if err := raw.checkConstants(KtySymmetric, AlgTotp, CrvNone); err != nil {
			t.Errorf("checkConstants failed: %v", err)
		}
	})
}

func TestCopyPayload(t *testing.T) {
	var dst [4]byte

	if err := copyPayload(dst[:], []byte{1, 2, 3, 4}, "x"); err != nil {
		t.Fatalf("copyPayload failed: %v", err)
	}
	if dst != [4]byte{1, 2, 3, 4} {
		t.Errorf("payload mismatch: got %v", dst)
	}

	if err := copyPayload(dst[:], nil, "x"); !errors.Is(err, ErrMissingField) {
		t.Errorf("got %v, want ErrMissingField", err)
	}
	if err := copyPayload(dst[:], []byte{1, 2, 3}, "x"); !errors.Is(err, ErrPayloadSize) {
		t.Errorf("got %v, want ErrPayloadSize", err)
	}
	if err := copyPayload(dst[:], []byte{1, 2, 3, 4, 5}, "x"); !errors.Is(err, ErrPayloadSize) {
		t.Errorf("got %v, want ErrPayloadSize", err)
	}
}
