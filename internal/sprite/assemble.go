package sprite

import "strings"

const (
	spriteHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="0" height="0">` + "\n" +
		"<defs>\n"
	spriteFooter = "</defs>\n</svg>\n"
)

// Assemble wraps symbols, in the given order, into a sprite document that
// renders nothing on its own. The output depends only on its input.
func Assemble(symbols []string) []byte {
	var b strings.Builder

	size := len(spriteHeader) + len(spriteFooter)
	for _, s := range symbols {
		size += len(s) + 1
	}
	b.Grow(size)

	b.WriteString(spriteHeader)
	for _, s := range symbols {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	b.WriteString(spriteFooter)

	return []byte(b.String())
}
