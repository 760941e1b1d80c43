package sprite

import (
	"strings"

	"github.com/go-faster/jx"
)

const (
	manifestHeader    = "export type IconName = "
	manifestSeparator = "\n\t| "
	manifestEnd       = ";"
)

// Manifest renders the union type of all icon names:
//
//	export type IconName =
//		| "a"
//		| "b";
//
// Names are written as JSON string literals, which are valid TypeScript
// string literals. The output has no trailing newline.
func Manifest(names []string) []byte {
	var b strings.Builder
	b.WriteString(manifestHeader)

	var e jx.Encoder
	for _, name := range names {
		e.Reset()
		e.Str(name)

		b.WriteString(manifestSeparator)
		b.Write(e.Bytes())
	}
	b.WriteString(manifestEnd)

	return []byte(b.String())
}

// ParseManifest returns the icon names listed in a manifest produced by
// Manifest, in order. Content in any other shape yields nil.
func ParseManifest(content []byte) []string {
	body, ok := strings.CutPrefix(string(content), manifestHeader)
	if !ok {
		return nil
	}
	body, ok = strings.CutSuffix(body, manifestEnd)
	if !ok {
		return nil
	}

	literals := strings.Split(body, manifestSeparator)
	// the header is followed by a separator, so the first element is empty
	if len(literals) < 2 || literals[0] != "" {
		return nil
	}

	names := make([]string, 0, len(literals)-1)
	for _, lit := range literals[1:] {
		d := jx.DecodeStr(lit)
		name, err := d.Str()
		if err != nil {
			return nil
		}
		if d.Next() != jx.Invalid {
			// trailing garbage after the literal
			return nil
		}
		names = append(names, name)
	}

	return names
}
