package sodauri

import "strings"

const upperhex = "0123456789ABCDEF"

// EscapeURI percent-escapes every byte outside the unreserved and reserved
// URI sets. Reserved delimiters survive, so an already assembled URI keeps
// its structure. A literal '%' is escaped too, so pre-escaped input is double escaped
func EscapeURI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if keep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func keep(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.~!*'();/?:@&=+$,", c) >= 0
}
