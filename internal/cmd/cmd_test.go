package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dendrascience/dendra-textkit/textutil"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const poem = `Quoth the Raven, "Nevermore."
Once upon a midnight dreary, while I pondered, weak and weary,
Over many a quaint and curious volume of forgotten lore-
Quoth the Raven, "Nevermore."
`

func TestParseCmd(t *testing.T) {
	out, err := execute(t, "", "parse", "John Doe john.doe@example.com", "Ada Lovelace ada@example.org")
	require.NoError(t, err)
	assert.Equal(t, "John\tDoe\tjohn.doe\texample.com\nAda\tLovelace\tada\texample.org\n", out)
}

func TestParseCmdStdinJSON(t *testing.T) {
	out, err := execute(t, "John Doe john.doe@example.com\n", "parse", "--json")
	require.NoError(t, err)

	var got textutil.UserData
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, textutil.UserData{FirstName: "John", LastName: "Doe", User: "john.doe", Host: "example.com"}, got)
}

func TestParseCmdMalformed(t *testing.T) {
	_, err := execute(t, "John Doe john.doe@example.com\nbroken line\n", "parse")
	require.ErrorIs(t, err, textutil.ErrMalformedUserData)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDiffCmdDirectories(t *testing.T) {
	before, after := t.TempDir(), t.TempDir()
	writeFile(t, before, "hello.py", "")
	writeFile(t, before, "readme.txt", "")
	writeFile(t, after, "readme.txt", "")
	writeFile(t, after, "install.txt", "")
	writeFile(t, after, "hello2.py", "")

	out, err := execute(t, "", "diff", before, after)
	require.NoError(t, err)
	assert.Equal(t, "- hello.py\n+ hello2.py\n+ install.txt\n", out)
}

func TestDiffCmdFilesJSON(t *testing.T) {
	dir := t.TempDir()
	before := writeFile(t, dir, "a.txt", "hello.py\nreadme.txt\n")
	after := writeFile(t, dir, "b.txt", "readme.txt\n\ninstall.txt\nhello2.py\n")

	out, err := execute(t, "", "diff", "--files", "--json", before, after)
	require.NoError(t, err)

	var got textutil.ListDiff
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, textutil.ListDiff{Removed: []string{"hello.py"}, Added: []string{"hello2.py", "install.txt"}}, got)
}

func TestDiffCmdMissing(t *testing.T) {
	_, err := execute(t, "", "diff", filepath.Join(t.TempDir(), "nope"), t.TempDir())
	require.ErrorIs(t, err, textutil.ErrFileNotFound)

	_, err = execute(t, "", "diff", "--files", filepath.Join(t.TempDir(), "nope.txt"), "x")
	require.ErrorIs(t, err, textutil.ErrFileNotFound)
}

func TestLogCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "defaults to INFO",
			args: []string{"log", "--pid", "1532", "--timestamp", "2019-01-02 10:30:55", "System", "started!"},
			want: "2019-01-02 10:30:55 [1532] [INFO] System started!\n",
		},
		{
			name: "named level",
			args: []string{"log", "-p", "7", "-t", "ts", "-l", "warn", "careful"},
			want: "ts [7] [WARN] careful\n",
		},
		{
			name: "index out of range",
			args: []string{"log", "-p", "7", "-t", "ts", "-l", "5", "odd"},
			want: "ts [7] [None] odd\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestLogCmdConfigDefaults(t *testing.T) {
	t.Setenv("TEXTKIT_LOG_LEVEL", "error")
	t.Setenv("TEXTKIT_PID", "99")

	out, err := execute(t, "", "log", "-t", "ts", "boom")
	require.NoError(t, err)
	assert.Equal(t, "ts [99] [ERROR] boom\n", out)
}

func TestLogCmdUnknownLevel(t *testing.T) {
	_, err := execute(t, "", "log", "-l", "loud", "hi")
	require.ErrorIs(t, err, textutil.ErrUnknownLevel)
}

func TestRectCmd(t *testing.T) {
	out, err := execute(t, "", "rect", "2x4", "3x3", "4x2")
	require.NoError(t, err)
	assert.Equal(t, "3x3\n", out)

	out, err = execute(t, "", "rect", "2x3", "3x2")
	require.NoError(t, err)
	assert.Equal(t, "2x3\n", out)

	_, err = execute(t, "", "rect")
	require.ErrorIs(t, err, textutil.ErrEmptyInput)

	_, err = execute(t, "", "rect", "2by3")
	require.ErrorIs(t, err, textutil.ErrMalformedRectangle)
}

func TestFindCmd(t *testing.T) {
	path := writeFile(t, t.TempDir(), "raven.txt", poem)

	out, err := execute(t, "", "find", "nevermore", path)
	require.NoError(t, err)
	assert.Equal(t, " 0 Quoth the Raven, \"Nevermore.\"\n 3 Quoth the Raven, \"Nevermore.\"\n", out)

	_, err = execute(t, "", "find", "x", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, textutil.ErrFileNotFound)
}

func TestWordsCmd(t *testing.T) {
	path := writeFile(t, t.TempDir(), "raven.txt", poem)

	out, err := execute(t, "", "words", "--min", "5", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"nevermore", "midnight", "dreary", "pondered", "quaint", "curious"}, lines[:6])

	out, err = execute(t, "", "words", "--count", path)
	require.NoError(t, err)
	assert.Equal(t, "Total words: 29\n", out)
}

func TestWordsCmdConfigMin(t *testing.T) {
	path := writeFile(t, t.TempDir(), "raven.txt", poem)
	t.Setenv("TEXTKIT_MIN_LENGTH", "8")

	out, err := execute(t, "", "words", path)
	require.NoError(t, err)
	assert.Equal(t, "nevermore\nforgotten\nnevermore\n", out)
}

func TestTopCmd(t *testing.T) {
	path := writeFile(t, t.TempDir(), "raven.txt", poem)

	out, err := execute(t, "", "top", "-m", "4", "-n", "3", path)
	require.NoError(t, err)
	assert.Equal(t, "quoth\t2\nraven\t2\nnevermore\t2\n", out)
}

func TestSeedCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "users.txt")

	_, err := execute(t, "", "seed", "-o", path, "-n", "25")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	require.Len(t, lines, 25)

	seen := make(map[string]bool)
	for _, line := range lines {
		u, err := textutil.ParseUserData(line)
		require.NoError(t, err)
		assert.Contains(t, seedHosts, u.Host)
		assert.Len(t, u.User, 36)
		assert.False(t, seen[u.User], "duplicate local-part %s", u.User)
		seen[u.User] = true
	}

	out, err := execute(t, "", "parse", lines[0])
	require.NoError(t, err)
	assert.Equal(t, 4, len(strings.Split(strings.TrimSuffix(out, "\n"), "\t")))
}

func TestSeedCmdRequiresOutput(t *testing.T) {
	_, err := execute(t, "", "seed")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "textkit version "))
}
