package sprite

import (
	"bytes"
	"encoding/xml"
	"spritegen/pkg/serrors"
	"strings"

	"github.com/antchfx/xmlquery"
)

// standaloneAttrs only make sense on a standalone svg document. Namespaces are
// declared once on the sprite and sizing is decided by each <use>.
var standaloneAttrs = map[string]bool{ //nolint: gochecknoglobals
	"xmlns":       true,
	"xmlns:xlink": true,
	"version":     true,
	"width":       true,
	"height":      true,
}

// Symbol turns the svg document in content into a <symbol> fragment whose id
// is name. Everything except the root tag name, its id and the standalone
// attributes is kept as is.
func Symbol(content []byte, name string) (string, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(content))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrMalformedInput, err, "could not parse icon %s", name)
	}

	svg := rootElement(doc)
	if svg == nil || svg.Data != "svg" {
		return "", serrors.With(serrors.ErrMalformedInput, "no svg element found in icon %s", name)
	}

	svg.Data = "symbol"
	svg.Attr = symbolAttrs(svg.Attr, name)

	out := svg.OutputXMLWithOptions(
		xmlquery.WithOutputSelf(),
		xmlquery.WithEmptyTagSupport(),
		xmlquery.WithPreserveSpace(),
	)

	return strings.TrimSpace(out), nil
}

// symbolAttrs drops standalone attributes and sets id, keeping the position of
// an existing id.
func symbolAttrs(attrs []xmlquery.Attr, id string) []xmlquery.Attr {
	out := make([]xmlquery.Attr, 0, len(attrs)+1)
	hasID := false
	for _, attr := range attrs {
		qname := qualifiedName(attr)
		if standaloneAttrs[qname] {
			continue
		}
		if qname == "id" {
			attr.Value = id
			hasID = true
		}
		out = append(out, attr)
	}
	if !hasID {
		out = append(out, xmlquery.Attr{Name: xml.Name{Local: "id"}, Value: id})
	}

	return out
}

// rootElement returns the first element in document order, skipping
// declarations, comments and processing instructions.
func rootElement(doc *xmlquery.Node) *xmlquery.Node {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case xmlquery.ElementNode:
			return n
		case xmlquery.DeclarationNode:
			if el := rootElement(n); el != nil {
				return el
			}
		}
	}

	return nil
}

// childElements returns the element children of n named local.
func childElements(n *xmlquery.Node, local string) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == local {
			out = append(out, c)
		}
	}

	return out
}

func qualifiedName(attr xmlquery.Attr) string {
	if attr.Name.Space == "" {
		return attr.Name.Local
	}

	return attr.Name.Space + ":" + attr.Name.Local
}

func attrValue(n *xmlquery.Node, qname string) (string, bool) {
	for _, attr := range n.Attr {
		if qualifiedName(attr) == qname {
			return attr.Value, true
		}
	}

	return "", false
}
