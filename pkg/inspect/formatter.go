package inspect

import (
	"fmt"
	"strings"
)

// Formatter formats probe output.
type Formatter struct {
	// ShowNumeric includes registry values alongside names
	ShowNumeric bool

	// PayloadLimit is the number of payload bytes shown before the hex
	// is truncated; 0 shows everything
	PayloadLimit int

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowNumeric:  true,
		PayloadLimit: 16,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatPayload renders a hex payload, truncated to the configured
// limit.
func (f *Formatter) FormatPayload(hexPayload string) string {
	if hexPayload == "" {
		return "(none)"
	}
	size := len(hexPayload) / 2
	if f.PayloadLimit > 0 && size > f.PayloadLimit {
		return fmt.Sprintf("%s... (%d bytes)", hexPayload[:f.PayloadLimit*2], size)
	}
	return fmt.Sprintf("%s (%d bytes)", hexPayload, size)
}

// formatRegistryValue renders a registry name, optionally with its
// numeric value.
func (f *Formatter) formatRegistryValue(name string, value int) string {
	if f.ShowNumeric {
		return fmt.Sprintf("%s (%d)", name, value)
	}
	return name
}

// FormatKey renders a decoded key summary as indented text.
func (f *Formatter) FormatKey(info *KeyInfo) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Variant:    %s\n", info.Variant))
	sb.WriteString(f.Indent(1, fmt.Sprintf("kty: %s\n", f.formatRegistryValue(info.Kty, info.KtyValue))))
	sb.WriteString(f.Indent(1, fmt.Sprintf("alg: %s\n", f.formatRegistryValue(info.Alg, info.AlgValue))))
	if info.Crv != "None" {
		sb.WriteString(f.Indent(1, fmt.Sprintf("crv: %s\n", f.formatRegistryValue(info.Crv, info.CrvValue))))
	}
	if info.X != "" {
		sb.WriteString(f.Indent(1, fmt.Sprintf("x:   %s\n", f.FormatPayload(info.X))))
	}
	if info.Y != "" {
		sb.WriteString(f.Indent(1, fmt.Sprintf("y:   %s\n", f.FormatPayload(info.Y))))
	}
	if info.Pub != "" {
		sb.WriteString(f.Indent(1, fmt.Sprintf("pub: %s\n", f.FormatPayload(info.Pub))))
	}
	if info.Thumbprint != "" {
		sb.WriteString(f.Indent(1, fmt.Sprintf("thumbprint: %s\n", info.Thumbprint)))
	}

	return sb.String()
}

// FormatResults renders a probe sweep as one line per key type.
func (f *Formatter) FormatResults(results []Result) string {
	width := 0
	for _, r := range results {
		if len(r.Variant) > width {
			width = len(r.Variant)
		}
	}

	var sb strings.Builder
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		sb.WriteString(fmt.Sprintf("%-*s  %s\n", width, r.Variant, status))
	}
	return sb.String()
}
