package highlight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLine_NoLanguagePassesThrough(t *testing.T) {
	require.Equal(t, "plain text", Line("plain text", "", "dracula"))
}

func TestLine_PreservesNewlineShape(t *testing.T) {
	out := Line("x := 1", "go", "dracula")
	require.NotEmpty(t, out)
	require.NotContains(t, out, "\n")

	out = Line("x := 1\n", "go", "dracula")
	require.Contains(t, out, "\n")
}

func TestLine_UnknownLanguageStillTotal(t *testing.T) {
	// chroma falls back to a plaintext lexer; either way Line must not fail
	// and must keep the content visible.
	out := Line("some text", "no-such-language", "dracula")
	require.NotEmpty(t, out)
}

func TestLanguageFor(t *testing.T) {
	tests := []struct {
		name  string
		fence string
		block string
		want  string
	}{
		{name: "fence language wins", fence: "js", block: "app.py", want: "js"},
		{name: "extension fallback", fence: "", block: "app.js", want: "javascript"},
		{name: "go extension", fence: "", block: "main.go", want: "go"},
		{name: "uppercase extension", fence: "", block: "STYLES.CSS", want: "css"},
		{name: "unknown extension", fence: "", block: "notes.xyz", want: ""},
		{name: "no extension", fence: "", block: "Makefile", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, LanguageFor(tt.fence, tt.block))
		})
	}
}
