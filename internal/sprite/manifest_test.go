package sprite_test

import (
	"spritegen/internal/sprite"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManifest(t *testing.T) {
	got := sprite.Manifest([]string{"a", "b/c"})
	require.Equal(t, "export type IconName = \n\t| \"a\"\n\t| \"b/c\";", string(got))
}

func TestManifest_EscapesNames(t *testing.T) {
	got := sprite.Manifest([]string{`odd"name\x`})
	require.Equal(t, "export type IconName = \n\t| \"odd\\\"name\\\\x\";", string(got))
	require.Equal(t, []string{`odd"name\x`}, sprite.ParseManifest(got))
}

func TestParseManifest(t *testing.T) {
	names := []string{"arrows/left", "arrows/right", "home"}
	require.Equal(t, names, sprite.ParseManifest(sprite.Manifest(names)))

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "no names", content: "export type IconName = ;"},
		{name: "missing terminator", content: "export type IconName = \n\t| \"a\""},
		{name: "trailing newline", content: "export type IconName = \n\t| \"a\";\n"},
		{name: "unquoted literal", content: "export type IconName = \n\t| a;"},
		{name: "garbage after literal", content: "export type IconName = \n\t| \"a\" x;"},
		{name: "other declaration", content: "export type Other = \n\t| \"a\";"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Nil(t, sprite.ParseManifest([]byte(tt.content)))
		})
	}
}
