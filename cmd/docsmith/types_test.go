package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypesListsBuiltins(t *testing.T) {
	setupTestEnv(t, &stubClient{response: "ok"})

	out, err := execute(t, "", "types")
	require.NoError(t, err)

	text := stripColors(out)
	for _, name := range []string{"sop", "runbook", "architecture", "meeting_summary", "technical_doc"} {
		assert.Contains(t, text, name)
	}
}

func TestTypesShowPrintsTemplate(t *testing.T) {
	setupTestEnv(t, &stubClient{response: "ok"})

	out, err := execute(t, "", "types", "show", "runbook")
	require.NoError(t, err)
	assert.Contains(t, out, "{content}")
}

func TestTypesShowUnknown(t *testing.T) {
	setupTestEnv(t, &stubClient{response: "ok"})

	_, err := execute(t, "", "types", "show", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown document type")
}

func TestTypesAddInline(t *testing.T) {
	setupTestEnv(t, &stubClient{response: "ok"})

	out, err := execute(t, "", "types", "add", "postmortem",
		"--description", "Incident postmortems",
		"--template", "Write a postmortem from {content}.")
	require.NoError(t, err)
	assert.Contains(t, stripColors(out), "postmortem")

	out, err = execute(t, "", "types")
	require.NoError(t, err)
	assert.Contains(t, stripColors(out), "Incident postmortems")
}

func TestTypesAddFromFile(t *testing.T) {
	setupTestEnv(t, &stubClient{response: "ok"})

	tpl := filepath.Join(t.TempDir(), "tpl.txt")
	require.NoError(t, os.WriteFile(tpl, []byte("Summarize {content} as {title}."), 0o600))

	_, err := execute(t, "", "types", "add", "digest", "--template-file", tpl)
	require.NoError(t, err)

	out, err := execute(t, "", "types", "show", "digest")
	require.NoError(t, err)
	assert.Contains(t, out, "Summarize {content}")
}

func TestTypesAddRequiresTemplate(t *testing.T) {
	setupTestEnv(t, &stubClient{response: "ok"})

	_, err := execute(t, "", "types", "add", "empty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template is required")
}

func TestTypesAddRequiresContentPlaceholder(t *testing.T) {
	setupTestEnv(t, &stubClient{response: "ok"})

	_, err := execute(t, "", "types", "add", "broken", "--template", "no placeholder")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{content}")
}
