package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadSkipsCommentsAndBlankLines(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "A=1\n# comment\n\nB=\"two words\"\n")

	values, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "1", "B": "two words"}, values)
}

func TestReadMissingFileIsEmpty(t *testing.T) {
	values, err := Read(filepath.Join(t.TempDir(), ".env.nope"))
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestReadSplitsOnFirstSeparator(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "URL=\"a=b=c\"\n")

	values, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "a=b=c", values["URL"])
}

func TestReadRejectsLineWithoutSeparator(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "A=1\nBROKEN\n")

	_, err := Read(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSeparator)
	assert.Contains(t, err.Error(), ".env:2")
}

func TestParseKeepsValuesLiteral(t *testing.T) {
	for _, tc := range []struct {
		name  string
		line  string
		key   string
		value string
	}{
		{name: "plain", line: "MODEL=gemini-2.0-flash", key: "MODEL", value: "gemini-2.0-flash"},
		{name: "inline hash", line: "API_KEY=abc #tail", key: "API_KEY", value: "abc #tail"},
		{name: "dollar", line: "MODEL=gemini-$X", key: "MODEL", value: "gemini-$X"},
		{name: "dash in key", line: "MY-KEY=1", key: "MY-KEY", value: "1"},
		{name: "unterminated quote", line: `C="unterminated`, key: "C", value: `"unterminated`},
		{name: "one quote layer", line: `Q=""x""`, key: "Q", value: `"x"`},
		{name: "single quotes", line: "S='x'", key: "S", value: "'x'"},
		{name: "backslash", line: `P="a\nb"`, key: "P", value: `a\nb`},
		{name: "export prefix", line: "export A=1", key: "export A", value: "1"},
		{name: "spaces around separator", line: "A = b", key: "A", value: "b"},
		{name: "empty value", line: "E=", key: "E", value: ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			values, err := Parse(".env", []byte(tc.line+"\n"))
			require.NoError(t, err)
			assert.Equal(t, map[string]string{tc.key: tc.value}, values)
		})
	}
}

func TestParseLaterLineWins(t *testing.T) {
	values, err := Parse(".env", []byte("A=1\r\nA=\"two $x\"\r\nB=3\r\nB=4\r\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "two $x", "B": "4"}, values)
}

func TestMergeLaterLayerWins(t *testing.T) {
	base := map[string]string{"API_KEY": "x", "MODEL": "m"}
	override := map[string]string{"API_KEY": "y"}

	merged := Merge(base, override)
	assert.Equal(t, "y", merged["API_KEY"])
	assert.Equal(t, "m", merged["MODEL"])
	assert.Equal(t, "x", base["API_KEY"], "inputs must not be mutated")
}
