package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	testutils "github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/stretchr/testify/require"
)

// resolveJail rewrites the sandbox jail through any symlinks so paths handed
// to a real editor subprocess match what fsnotify reports.
func resolveJail(t *testing.T, sb *testutils.Sandbox) string {
	t.Helper()
	jail := sb.Runtime().GetJail()
	require.NotEmpty(t, jail)
	resolved, err := filepath.EvalSymlinks(jail)
	require.NoError(t, err)
	require.NoError(t, sb.Runtime().SetJail(resolved))
	return resolved
}

func writeEditorScript(t *testing.T, jail, name, content string) string {
	t.Helper()
	scriptPath := filepath.Join(jail, name)
	script := "#!/bin/sh\ncat > \"$1\" <<'EOF'\n" + content + "EOF\n"
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o755))
	return scriptPath
}

func TestConfigEditCommand_AppliesEditedFile(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t, testutils.WithFixture("configured", "~"))
	jail := resolveJail(t, sb)

	scriptPath := writeEditorScript(t, jail, "edit-config.sh",
		"language: French\nself_update_channel: Stable\n")
	require.NoError(t, sb.Runtime().Set("EDITOR", "/bin/sh "+scriptPath))
	sb.Runtime().Unset("VISUAL")

	res := NewProcess(t, false, "config", "edit").
		RunWithIO(sb.Context(), sb.Runtime(), strings.NewReader(""))
	require.NoError(t, res.Err)

	written := string(sb.MustReadFile(".config/hearth/hearth.yml"))
	require.Contains(t, written, "language: French")
	require.NotContains(t, written, "language: German")
}

func TestConfigEditCommand_SeedsMissingFile(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t)
	resolveJail(t, sb)

	require.NoError(t, sb.Runtime().Set("EDITOR", "/bin/true"))
	sb.Runtime().Unset("VISUAL")

	res := NewProcess(t, false, "config", "edit").
		RunWithIO(sb.Context(), sb.Runtime(), strings.NewReader(""))
	require.NoError(t, res.Err)

	written := string(sb.MustReadFile(".config/hearth/hearth.yml"))
	require.Contains(t, written, "language: English",
		"editing with no config file should seed the default first")
}

func TestConfigEditCommand_RejectsInvalidSave(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t, testutils.WithFixture("configured", "~"))
	jail := resolveJail(t, sb)

	scriptPath := writeEditorScript(t, jail, "break-config.sh",
		"language: Klingon\n")
	require.NoError(t, sb.Runtime().Set("EDITOR", "/bin/sh "+scriptPath))
	sb.Runtime().Unset("VISUAL")

	res := NewProcess(t, false, "config", "edit").
		RunWithIO(sb.Context(), sb.Runtime(), strings.NewReader(""))
	require.Error(t, res.Err, "exiting the editor on an unparsable save should fail")
	require.Contains(t, string(res.Stderr), "config not applied")

	// The raw file keeps the user's text; the next load falls back.
	written := string(sb.MustReadFile(".config/hearth/hearth.yml"))
	require.Contains(t, written, "Klingon")
}

func TestConfigEditCommand_VisualWinsOverEditor(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t, testutils.WithFixture("configured", "~"))
	jail := resolveJail(t, sb)

	scriptPath := writeEditorScript(t, jail, "visual-config.sh",
		"language: Danish\n")
	require.NoError(t, sb.Runtime().Set("VISUAL", "/bin/sh "+scriptPath))
	require.NoError(t, sb.Runtime().Set("EDITOR", "/bin/false"))

	res := NewProcess(t, false, "config", "edit").
		RunWithIO(sb.Context(), sb.Runtime(), strings.NewReader(""))
	require.NoError(t, res.Err, "VISUAL should take precedence over EDITOR")

	written := string(sb.MustReadFile(".config/hearth/hearth.yml"))
	require.Contains(t, written, "language: Danish")
}
