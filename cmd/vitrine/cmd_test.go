package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vitrine/internal/tui/demos"
	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := newRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetIn(strings.NewReader(""))
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-19"

	output, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "vitrine 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-19")
}

func TestListCommandTable(t *testing.T) {
	output, _, err := executeCommand(t, "list")
	require.NoError(t, err)
	require.Contains(t, output, "PAGE")
	require.Contains(t, output, "COMPONENT")
	for _, id := range demos.IDs() {
		require.Contains(t, output, id)
	}
	for _, name := range showcaseNames() {
		require.Contains(t, output, name)
	}
}

func TestListCommandJSON(t *testing.T) {
	output, _, err := executeCommand(t, "list", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(output), &payload))
	require.Len(t, payload.Pages, len(demos.IDs()))
	require.Len(t, payload.Components, len(catalog))
	require.Equal(t, "modal", payload.Pages[0].ID)
	require.Equal(t, "Modal", payload.Pages[0].Title)
}

func TestShowCommandRendersEveryComponent(t *testing.T) {
	for _, name := range showcaseNames() {
		t.Run(name, func(t *testing.T) {
			output, _, err := executeCommand(t, "show", name, "--width", "60")
			require.NoError(t, err)
			require.NotEmpty(t, strings.TrimSpace(ansi.Strip(output)))
			for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
				require.LessOrEqual(t, ansi.StringWidth(line), 60, line)
			}
		})
	}
}

func TestShowCommandOutput(t *testing.T) {
	output, _, err := executeCommand(t, "show", "divider", "--width", "30")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(ansi.Strip(output), "\n"), "\n")
	require.Len(t, lines, 3, "margin rows above, the rule, trimmed trailing margin")
	require.Equal(t, strings.Repeat("─", 30), lines[2])

	output, _, err = executeCommand(t, "show", "topbar", "--width", "40", "--theme", "dark")
	require.NoError(t, err)
	plain := ansi.Strip(output)
	require.Contains(t, plain, "«")
	require.Contains(t, plain, "vitrine")
	require.Contains(t, plain, "dark")
}

func TestShowCommandUnknownComponent(t *testing.T) {
	_, _, err := executeCommand(t, "show", "grid")
	var lookupErr *vitrineerrors.LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "component", lookupErr.Kind)
	require.Equal(t, showcaseNames(), lookupErr.Known)
}

func TestDocsCommand(t *testing.T) {
	cfg := writeConfig(t, "docs:\n  style: notty\n  wrap: 60\n")

	output, _, err := executeCommand(t, "docs", "tabs", "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, ansi.Strip(output), "Tabs")

	output, _, err = executeCommand(t, "docs", "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, ansi.Strip(output), "vitrine")

	_, _, err = executeCommand(t, "docs", "grid", "--config", cfg)
	require.ErrorIs(t, err, vitrineerrors.ErrNotFound)
}

func TestThemeFlagValidation(t *testing.T) {
	_, _, err := executeCommand(t, "show", "badge", "--theme", "sepia")
	var lookupErr *vitrineerrors.LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "theme", lookupErr.Kind)
}

func TestInvalidConfigFails(t *testing.T) {
	cfg := writeConfig(t, "docs:\n  wrap: 500\n")

	_, _, err := executeCommand(t, "list", "--config", cfg)
	var validationErr *vitrineerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "docs.wrap", validationErr.Field)
}

func TestGalleryRefusesWithoutTerminal(t *testing.T) {
	_, _, err := executeCommand(t, "gallery")
	require.ErrorIs(t, err, errNotTerminal)

	_, _, err = executeCommand(t)
	require.ErrorIs(t, err, errNotTerminal)
}

func TestGalleryRejectsUnknownPage(t *testing.T) {
	_, _, err := executeCommand(t, "gallery", "--page", "grid")
	var lookupErr *vitrineerrors.LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "page", lookupErr.Kind)

	cfg := writeConfig(t, "start_page: charts\n")
	_, _, err = executeCommand(t, "gallery", "--config", cfg)
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "charts", lookupErr.Name)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := executeCommand(t, "show", "badge", "--width", "40", "-v")
	require.NoError(t, err)
	require.Contains(t, stderr, "rendering component")
	require.Contains(t, stderr, "badge")
}
