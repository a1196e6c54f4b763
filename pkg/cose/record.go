package cose

import (
	"bytes"
	"fmt"
	"math"
)

// rawPublicKey is the untyped form of a key record: the five COSE_Key
// slots before any key type's constants are checked. Every slot is
// optional at this level. Label -1 is bimodal, carrying either a curve
// (EC2/OKP keys) or the raw public key bytes (AKP keys); at most one of
// crv and pub is set.
type rawPublicKey struct {
	kty *Kty
	alg *Alg
	crv *Crv
	pub []byte
	x   []byte
	y   []byte
}

// newRawKey seeds a record with a key type's constants for encoding.
// CrvNone means the type has no curve field and none is written.
func newRawKey(kty Kty, alg Alg, crv Crv) rawPublicKey {
	r := rawPublicKey{kty: &kty, alg: &alg}
	if crv != CrvNone {
		r.crv = &crv
	}
	return r
}

// decode parses a key record from data. Known labels must appear in
// canonical order, each at most once; the first unrecognized integer
// label ends structured decoding and the rest of the map is discarded.
// Byte payloads longer than maxPayload are rejected before the key
// type's exact length check.
func (r *rawPublicKey) decode(data []byte, maxPayload int) error {
	rest, entries, err := readMapHead(data)
	if err != nil {
		return err
	}

	next := 0
	for i := 0; i < entries; i++ {
		var key int64
		rest2, err := decMode.UnmarshalFirst(rest, &key)
		if err != nil {
			return fmt.Errorf("cose: map key: %w", err)
		}
		rest = rest2

		label, known := labelFromInt(key)
		if !known {
			// Extension data. Everything from here on is ignored.
			return nil
		}

		pos := label.canonicalOrder()
		if pos < next {
			return fmt.Errorf("%w: %s", ErrFieldOrder, label)
		}
		next = pos + 1

		rest, err = r.decodeSlot(label, rest, maxPayload)
		if err != nil {
			return err
		}
	}
	return nil
}

// decodeSlot consumes the value item for label and stores it in the
// matching slot, returning the remaining bytes.
func (r *rawPublicKey) decodeSlot(label Label, data []byte, maxPayload int) ([]byte, error) {
	switch label {
	case LabelKty:
		var v int64
		rest, err := decMode.UnmarshalFirst(data, &v)
		if err != nil {
			return nil, fmt.Errorf("cose: field kty: %w", err)
		}
		kty, ok := ktyFromInt(v)
		if !ok {
			return nil, fmt.Errorf("%w: kty %d", ErrInvalidValue, v)
		}
		r.kty = &kty
		return rest, nil

	case LabelAlg:
		var v int64
		rest, err := decMode.UnmarshalFirst(data, &v)
		if err != nil {
			return nil, fmt.Errorf("cose: field alg: %w", err)
		}
		alg, ok := algFromInt(v)
		if !ok {
			return nil, fmt.Errorf("%w: alg %d", ErrInvalidValue, v)
		}
		r.alg = &alg
		return rest, nil

	case LabelCrvOrPub:
		var v any
		rest, err := decMode.UnmarshalFirst(data, &v)
		if err != nil {
			return nil, fmt.Errorf("cose: field crv/pub: %w", err)
		}
		switch val := v.(type) {
		case uint64:
			if val > math.MaxInt64 {
				return nil, fmt.Errorf("%w: crv %d", ErrInvalidValue, val)
			}
			crv, ok := crvFromInt(int64(val))
			if !ok {
				return nil, fmt.Errorf("%w: crv %d", ErrInvalidValue, val)
			}
			r.crv = &crv
		case int64:
			crv, ok := crvFromInt(val)
			if !ok {
				return nil, fmt.Errorf("%w: crv %d", ErrInvalidValue, val)
			}
			r.crv = &crv
		case []byte:
			if len(val) > maxPayload {
				return nil, fmt.Errorf("%w: pub is %d bytes, limit %d", ErrPayloadSize, len(val), maxPayload)
			}
			r.pub = val
		default:
			return nil, fmt.Errorf("%w: crv/pub holds %T", ErrInvalidValue, v)
		}
		return rest, nil

	case LabelX, LabelY:
		var b []byte
		rest, err := decMode.UnmarshalFirst(data, &b)
		if err != nil {
			return nil, fmt.Errorf("cose: field %s: %w", label, err)
		}
		if b == nil {
			return nil, fmt.Errorf("%w: %s is null", ErrInvalidValue, label)
		}
		if len(b) > maxPayload {
			return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrPayloadSize, label, len(b), maxPayload)
		}
		if label == LabelX {
			r.x = b
		} else {
			r.y = b
		}
		return rest, nil

	default:
		return nil, fmt.Errorf("cose: unhandled label %d", label)
	}
}

// encode produces the canonical CBOR form: present fields only, always
// in label order kty, alg, crv/pub, x, y. The encoded map keys 01, 03,
// 20, 21, 22 sort bytewise in exactly this order, so the output is
// canonical CBOR as well.
func (r *rawPublicKey) encode() ([]byte, error) {
	fields := 0
	for _, present := range []bool{
		r.kty != nil,
		r.alg != nil,
		r.crv != nil || r.pub != nil,
		r.x != nil,
		r.y != nil,
	} {
		if present {
			fields++
		}
	}

	var buf bytes.Buffer
	buf.WriteByte(0xa0 | byte(fields))

	if r.kty != nil {
		if err := writeField(&buf, LabelKty, *r.kty); err != nil {
			return nil, err
		}
	}
	if r.alg != nil {
		if err := writeField(&buf, LabelAlg, *r.alg); err != nil {
			return nil, err
		}
	}
	switch {
	case r.crv != nil:
		if err := writeField(&buf, LabelCrvOrPub, *r.crv); err != nil {
			return nil, err
		}
	case r.pub != nil:
		if err := writeField(&buf, LabelCrvOrPub, r.pub); err != nil {
			return nil, err
		}
	}
	if r.x != nil {
		if err := writeField(&buf, LabelX, r.x); err != nil {
			return nil, err
		}
	}
	if r.y != nil {
		if err := writeField(&buf, LabelY, r.y); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// writeField appends one encoded label/value pair.
func writeField(buf *bytes.Buffer, label Label, v any) error {
	enc, err := encMode.Marshal(label)
	if err != nil {
		return err
	}
	buf.Write(enc)
	enc, err = encMode.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(enc)
	return nil
}

// checkConstants validates the record's identifying fields against a
// key type's fixed (kty, alg, crv) triple: kty must be present and
// match, alg must match when present, crv must be present and match
// unless the type has no curve (CrvNone), in which case a curve field
// is ignored.
func (r *rawPublicKey) checkConstants(kty Kty, alg Alg, crv Crv) error {
	if r.kty == nil {
		return fmt.Errorf("%w: kty", ErrMissingField)
	}
	if *r.kty != kty {
		return fmt.Errorf("%w: kty %s, want %s", ErrInvalidValue, *r.kty, kty)
	}
	if r.alg != nil && *r.alg != alg {
		return fmt.Errorf("%w: alg %s, want %s", ErrInvalidValue, *r.alg, alg)
	}
	if crv != CrvNone {
		if r.crv == nil {
			return fmt.Errorf("%w: crv", ErrMissingField)
		}
		if *r.crv != crv {
			return fmt.Errorf("%w: crv %s, want %s", ErrInvalidValue, *r.crv, crv)
		}
	}
	return nil
}

// copyPayload moves a required byte field into its fixed-size buffer,
// requiring an exact length match.
func copyPayload(dst, src []byte, name string) error {
	if src == nil {
		return fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	if len(src) != len(dst) {
		return fmt.Errorf("%w: %s is %d bytes, want %d", ErrPayloadSize, name, len(src), len(dst))
	}
	copy(dst, src)
	return nil
}

// readMapHead parses the header of a definite-length CBOR map and
// returns the bytes after it together with the entry count.
func readMapHead(data []byte) ([]byte, int, error) {
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: empty input", ErrInvalidMap)
	}
	if typ := data[0] >> 5; typ != 5 {
		return nil, 0, fmt.Errorf("%w: major type %d", ErrInvalidMap, typ)
	}

	info := int(data[0] & 0x1f)
	var n uint64
	var head int
	switch {
	case info < 24:
		n, head = uint64(info), 1
	case info <= 27:
		head = 1 + 1<<(info-24)
		if len(data) < head {
			return nil, 0, fmt.Errorf("%w: map header", ErrTruncated)
		}
		for _, b := range data[1:head] {
			n = n<<8 | uint64(b)
		}
	case info == 31:
		return nil, 0, fmt.Errorf("%w: indefinite length", ErrInvalidMap)
	default:
		return nil, 0, fmt.Errorf("%w: reserved length encoding", ErrInvalidMap)
	}

	rest := data[head:]
	// A map entry is at least one byte of key plus one of value.
	if n > uint64(len(rest))/2 {
		return nil, 0, fmt.Errorf("%w: %d entries in %d bytes", ErrTruncated, n, len(rest))
	}
	return rest, int(n), nil
}
