package store

import "strings"

const (
	keySep    = '_'
	keyEscape = '\\'
)

// CompositeKey joins parts with '_' as separator. Separator and escape
// characters inside a part are escaped, so SplitCompositeKey recovers
// the exact parts even when ids contain '_'.
func CompositeKey(parts ...string) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(keySep)
		}
		for j := 0; j < len(p); j++ {
			c := p[j]
			if c == keySep || c == keyEscape {
				b.WriteByte(keyEscape)
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

// SplitCompositeKey is the inverse of CompositeKey. A trailing lone
// escape character is kept literally.
func SplitCompositeKey(key string) []string {
	var (
		parts []string
		cur   strings.Builder
	)
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c == keyEscape && i+1 < len(key):
			i++
			cur.WriteByte(key[i])
		case c == keySep:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	return append(parts, cur.String())
}
