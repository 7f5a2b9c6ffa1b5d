package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCLI runs the CLI with an isolated config dir and returns the exit
// code, stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	return runCLIEnv(t, nil, stdin, args...)
}

// runCLIEnv is runCLI with extra environment entries.
func runCLIEnv(t *testing.T, environ []string, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, Options{
		Stdin:   strings.NewReader(stdin),
		Stdout:  &out,
		Stderr:  &errOut,
		Environ: append([]string{"XDG_CONFIG_HOME=" + t.TempDir()}, environ...),
	})
	return code, out.String(), errOut.String()
}

func TestReplay_CreateToggleRemove(t *testing.T) {
	script := `
# two todos, first done, a blank one rejected
add   Buy milk  
add Walk dog
add    
toggle 1
add Call mum
remove 3
`
	code, out, errOut := runCLI(t, script, "--theme", "mono", "replay")
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, " 1. [x] Buy milk")
	require.Contains(t, out, " 2. [ ] Walk dog")
	require.NotContains(t, out, "Call mum")
	require.Contains(t, out, "Total 2")
	require.Contains(t, out, "x replayed 6 actions")
}

func TestReplay_EditCommitAndCancel(t *testing.T) {
	script := strings.Join([]string{
		"add A",
		"add B",
		"select 1",
		"edit changed",
		"deselect",
		"select 2",
		"edit B2",
		"commit",
	}, "\n")
	code, out, _ := runCLI(t, script, "--theme=mono", "replay")
	require.Equal(t, 0, code)
	require.Contains(t, out, " 1. [ ] A ")
	require.Contains(t, out, " 2. [ ] B2")
	require.NotContains(t, out, "changed")
}

func TestReplay_ShowsOpenSessionAndPendingTitle(t *testing.T) {
	code, out, _ := runCLI(t, "add A\nselect 1\nedit Z\nnew draft", "--theme=mono", "replay")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Z (editing)")
	require.Contains(t, out, "new: draft")
}

func TestReplay_TrimCommitPolicy(t *testing.T) {
	script := "add A\nadd B\nselect 1\nedit   \ncommit\n"

	code, out, _ := runCLI(t, script, "--theme=mono", "--commit=trim", "replay")
	require.Equal(t, 0, code)
	require.Contains(t, out, " 1. [ ] B")
	require.Contains(t, out, "Total 1")

	code, out, _ = runCLI(t, script, "--theme=mono", "replay")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Total 2")
}

func TestReplay_OutOfRangeRowsAreNoops(t *testing.T) {
	code, out, _ := runCLI(t, "add A\ntoggle 9\nremove 9\nselect 9\ncommit\n", "--theme=mono", "replay")
	require.Equal(t, 0, code)
	require.Contains(t, out, " 1. [ ] A")
}

func TestReplay_ClearAll(t *testing.T) {
	code, out, _ := runCLI(t, "add A\nselect 1\nclear\nedit x\ncommit\n", "--theme=mono", "replay")
	require.Equal(t, 0, code)
	require.Contains(t, out, "no items")
}

func TestReplay_FromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "s.txt")
	require.NoError(t, os.WriteFile(p, []byte("add From file\n"), 0o644))
	code, out, _ := runCLI(t, "", "--theme=mono", "replay", p)
	require.Equal(t, 0, code)
	require.Contains(t, out, "From file")
}

func TestReplay_MissingFile(t *testing.T) {
	code, _, errOut := runCLI(t, "", "replay", filepath.Join(t.TempDir(), "nope"))
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "open script")
}

func TestReplay_BadScriptIsUsageError(t *testing.T) {
	cases := map[string]string{
		"add A\nfrobnicate\n": `line 2: unknown command "frobnicate"`,
		"toggle one\n":        "line 1: toggle: not a row number",
		"toggle 0\n":          "not a row number",
		"commit now\n":        "commit takes no arguments",
	}
	for script, want := range cases {
		code, _, errOut := runCLI(t, script, "replay")
		require.Equal(t, 2, code, script)
		require.Contains(t, errOut, want, script)
	}
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{"--theme", "pink", "version"},
		{"--commit", "auto", "version"},
		{"--no-such-flag"},
		{"frobnicate"},
		{"replay", "a", "b"},
		{"replay", "--color", "sometimes"},
		{"version", "x"},
	}
	for _, args := range cases {
		code, _, _ := runCLI(t, "", args...)
		require.Equal(t, 2, code, "%v", args)
	}
}

func TestConfigFileFlag(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte("theme = \"mono\"\ncommit = \"trim\"\n"), 0o644))

	code, out, _ := runCLI(t, "add A\nselect 1\nedit  \ncommit\n", "--config", p, "replay")
	require.Equal(t, 0, code)
	require.Contains(t, out, "no items")

	code, _, errOut := runCLI(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "version")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "read config")
}

func TestReplay_DebugLogsToStderr(t *testing.T) {
	code, _, errOut := runCLI(t, "add A\nselect 1\n", "--log-level=debug", "replay")
	require.Equal(t, 0, code)
	require.Contains(t, errOut, "dispatch")
	require.Contains(t, errOut, "focus")
	require.Contains(t, errOut, "commit=raw")
}

func TestReplay_ActionsWithoutTargetAreLogged(t *testing.T) {
	code, out, errOut := runCLI(t, "add A\nselect 1\nselect 1\ncommit\ncommit\n", "--theme=mono", "--log-level=debug", "replay")
	require.Equal(t, 0, code)
	require.Contains(t, out, " 1. [ ] A")
	// The second select targets a row whose label is replaced by the edit
	// input; the second commit has no edit input left.
	require.Equal(t, 2, strings.Count(errOut, "no target"))
}

func TestThemeFromEnvIsNormalized(t *testing.T) {
	code, out, errOut := runCLIEnv(t, []string{"TODO_THEME= Mono "}, "add A\n", "replay")
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, " 1. [ ] A")
	require.Contains(t, out, "+---")
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "", "version")
	require.Equal(t, 0, code)
	require.Equal(t, "todo dev\n", out)
}
