package inspect

import (
	"fmt"
	"strings"

	"github.com/mash-protocol/cosekey-go/pkg/cose"
)

// Aliases accepted in addition to the canonical variant names.
var variantAliases = map[string]string{
	"es256":   "p256",
	"ecdh":    "ecdh-es-hkdf-256",
	"ecdh-es": "ecdh-es-hkdf-256",
	"eddsa":   "ed25519",
}

// ResolveVariantName resolves a key type name or alias to its canonical
// variant name (case-insensitive).
func ResolveVariantName(name string) (string, bool) {
	lname := strings.ToLower(name)
	for _, v := range variants {
		if v.name == lname {
			return v.name, true
		}
	}
	if canonical, ok := variantAliases[lname]; ok {
		return canonical, true
	}
	return "", false
}

// GetLabelName returns the display name for a COSE_Key map label.
func GetLabelName(v int64) string {
	if l := cose.Label(v); int64(l) == v && l.IsValid() {
		return l.String()
	}
	return fmt.Sprintf("label(%d)", v)
}

// GetKtyName returns the display name for a key type value.
func GetKtyName(v int64) string {
	if k := cose.Kty(v); int64(k) == v && k.IsValid() {
		return k.String()
	}
	return fmt.Sprintf("kty(%d)", v)
}

// GetAlgName returns the display name for an algorithm value.
func GetAlgName(v int64) string {
	if a := cose.Alg(v); int64(a) == v && a.IsValid() {
		return a.String()
	}
	return fmt.Sprintf("alg(%d)", v)
}

// GetCrvName returns the display name for a curve value.
func GetCrvName(v int64) string {
	if c := cose.Crv(v); int64(c) == v && c.IsValid() {
		return c.String()
	}
	return fmt.Sprintf("crv(%d)", v)
}
