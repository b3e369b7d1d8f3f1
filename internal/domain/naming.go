package domain

import (
	"fmt"
	"strings"
)

// SanitizeIdent maps a file or directory name to a lowercase identifier made of
// [a-z0-9_]. Every other rune becomes '_'. Names that are empty or start with a
// digit get a leading '_'.
func SanitizeIdent(name string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	ident := b.String()
	if ident == "" || (ident[0] >= '0' && ident[0] <= '9') {
		ident = "_" + ident
	}

	return ident
}

// nameSet hands out sibling-unique names. The first claim of a name keeps it,
// later ones get _2, _3, ... in claim order.
type nameSet map[string]bool

func (n nameSet) claim(base string) string {
	name := base
	for i := 2; n[name]; i++ {
		name = fmt.Sprintf("%s_%d", base, i)
	}

	n[name] = true

	return name
}
