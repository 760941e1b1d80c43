package sprite_test

import (
	"spritegen/internal/sprite"
	"spritegen/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbol(t *testing.T) {
	cases := []struct {
		name    string
		content string
		icon    string
		out     string
	}{
		{
			name:    "drops namespace and sizing, renames tag, sets id",
			content: `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24"><path d="M0 0"/></svg>`,
			icon:    "foo",
			out:     `<symbol id="foo"><path d="M0 0"/></symbol>`,
		},
		{
			name: "keeps presentation attributes and xlink references",
			content: `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" ` +
				`version="1.1" viewBox="0 0 24 24" fill="none"><use xlink:href="#a"/></svg>`,
			icon: "nav/arrow",
			out:  `<symbol viewBox="0 0 24 24" fill="none" id="nav/arrow"><use xlink:href="#a"/></symbol>`,
		},
		{
			name:    "replaces an existing id in place",
			content: `<svg id="old" viewBox="0 0 1 1"/>`,
			icon:    "dot",
			out:     `<symbol id="dot" viewBox="0 0 1 1"/>`,
		},
		{
			name:    "skips declaration and comments before the root",
			content: "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<!-- exported -->\n<svg width=\"1\"><g><circle r=\"1\"/></g></svg>\n",
			icon:    "circle",
			out:     `<symbol id="circle"><g><circle r="1"/></g></symbol>`,
		},
		{
			name:    "keeps text content",
			content: `<svg><title>Home icon</title><path d="M1 1"/></svg>`,
			icon:    "home",
			out:     `<symbol id="home"><title>Home icon</title><path d="M1 1"/></symbol>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sprite.Symbol([]byte(tc.content), tc.icon)
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}

func TestSymbol_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "only whitespace", content: "  \n"},
		{name: "root is not svg", content: `<html><body/></html>`},
		{name: "unbalanced tags", content: `<svg><path></svg>`},
		{name: "plain text", content: `not an icon`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sprite.Symbol([]byte(tc.content), "broken")
			require.ErrorIs(t, err, serrors.ErrMalformedInput)
		})
	}
}
