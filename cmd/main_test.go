package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "before subcommand", args: []string{"-c", "a.yml", "generate"}, want: []string{"-c", "a.yml"}},
		{name: "after subcommand", args: []string{"generate", "--config", "b.yml", "-v"}, want: []string{"-c", "b.yml"}},
		{name: "equals form", args: []string{"check", "--config=c.yml"}, want: []string{"-c", "c.yml"}},
		{name: "missing value", args: []string{"generate", "-c"}, want: nil},
		{name: "absent", args: []string{"generate", "--input", "icons"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, configArgs(tt.args))
		})
	}
}
