package repr

import (
	"strings"
)

const hexDigits = "0123456789abcdef"

// renderText quotes and escapes s byte by byte: only printable ASCII is kept
// as is, so multi-byte UTF-8 sequences show as \xNN escapes. Strings longer
// than the maximum length are cut at that many bytes and closed with "..."
// instead of a quote.
func (g *Generator) renderText(s string) string {
	closing := `"`
	if len(s) > g.maximumLength {
		s = s[:max(g.maximumLength, 0)]
		closing = "..."
	}

	var b strings.Builder
	b.Grow(len(s) + 1 + len(closing))
	b.WriteByte('"')

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\v':
			b.WriteString(`\v`)
		case 0x1b:
			b.WriteString(`\e`)
		case '\f':
			b.WriteString(`\f`)
		case '\\':
			b.WriteString(`\\`)
		case '$':
			b.WriteString(`\$`)
		case '"':
			b.WriteString(`\"`)
		default:
			if c >= 0x20 && c < 0x7f {
				b.WriteByte(c)
			} else {
				writeHexByte(&b, c)
			}
		}
	}

	b.WriteString(closing)
	return b.String()
}

func writeHexByte(b *strings.Builder, c byte) {
	b.WriteString(`\x`)
	b.WriteByte(hexDigits[c>>4])
	b.WriteByte(hexDigits[c&0x0f])
}
