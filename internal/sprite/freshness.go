package sprite

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/antchfx/xmlquery"
	"github.com/cespare/xxhash/v2"
)

// SymbolIDs returns the ids of the symbols declared in the <defs> of a sprite
// produced by Assemble, in document order. Content that does not parse, or is
// not a sprite, yields nil.
func SymbolIDs(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	doc, err := xmlquery.Parse(bytes.NewReader(content))
	if err != nil {
		return nil
	}
	root := rootElement(doc)
	if root == nil || root.Data != "svg" {
		return nil
	}

	var ids []string
	for _, defs := range childElements(root, "defs") {
		for _, symbol := range childElements(defs, "symbol") {
			id, ok := attrValue(symbol, "id")
			if !ok {
				return nil
			}
			ids = append(ids, id)
		}
	}

	return ids
}

// Fingerprint digests the icon names together with their source content. Any
// added, removed, renamed or edited icon changes the result.
func Fingerprint(names []string, contents [][]byte) []byte {
	d := xxhash.New()

	var buf [binary.MaxVarintLen64]byte
	write := func(b []byte) {
		n := binary.PutUvarint(buf[:], uint64(len(b)))
		_, _ = d.Write(buf[:n])
		_, _ = d.Write(b)
	}

	for i, name := range names {
		write([]byte(name))
		write(contents[i])
	}

	return fmt.Appendf(nil, "xxh64:%016x\n", d.Sum64())
}

// outputs holds the previously generated files, empty when missing.
type outputs struct {
	sprite      []byte
	manifest    []byte
	fingerprint []byte
}

// upToDate reports whether the existing outputs list exactly names, in order,
// and, when fingerprint is not nil, were produced from the same content.
func (o outputs) upToDate(names []string, fingerprint []byte) bool {
	if !slices.Equal(SymbolIDs(o.sprite), names) {
		return false
	}
	if !slices.Equal(ParseManifest(o.manifest), names) {
		return false
	}
	if fingerprint != nil && !bytes.Equal(o.fingerprint, fingerprint) {
		return false
	}

	return true
}
