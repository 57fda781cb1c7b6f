package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GillzV/jobassist/internal/store"
	"github.com/GillzV/jobassist/internal/types"
)

func resetApplyFlags() {
	applyJobTitle = ""
	applyCompany = ""
	applyLocation = ""
	applyJobType = ""
	applySalary = ""
	applyJobURL = ""
	applyResumeFile = ""
	applyFailureRate = 0
	applyConfigFile = ""
	applyDataDir = ""
	applyDBURL = ""
}

func TestRunApplyWithResumeFile(t *testing.T) {
	resetApplyFlags()
	t.Setenv("DATABASE_URL", "")
	applyResumeFile = writeTestResume(t)
	applyDataDir = t.TempDir()
	applyJobTitle = "Software Engineer"
	applyCompany = "Globex"

	require.NoError(t, runApply(nil, nil))

	st, err := store.NewFileStore(applyDataDir)
	require.NoError(t, err)
	apps, err := st.Applications(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Globex", apps[0].Company)
	assert.Equal(t, types.StatusSubmitted, apps[0].Status)
	assert.True(t, apps[0].Success)
}

func TestRunApplyNoSavedResume(t *testing.T) {
	resetApplyFlags()
	t.Setenv("DATABASE_URL", "")
	applyDataDir = t.TempDir()
	applyJobTitle = "Engineer"
	applyCompany = "Acme"

	assert.Error(t, runApply(nil, nil))
}

func TestRunApplyUsesSavedResume(t *testing.T) {
	resetApplyFlags()
	t.Setenv("DATABASE_URL", "")
	applyDataDir = t.TempDir()
	applyJobTitle = "Engineer"
	applyCompany = "Acme"

	record := types.NewResumeRecord()
	record.Name = "John Smith"
	record.Email = "john.smith@example.com"
	record.Phone = "(555) 123-4567"

	st, err := store.NewFileStore(applyDataDir)
	require.NoError(t, err)
	require.NoError(t, st.SaveResume(context.Background(), record))

	require.NoError(t, runApply(nil, nil))
}

func TestRunExport(t *testing.T) {
	exportConfigFile = ""
	exportDataDir = t.TempDir()
	exportBackup = false

	require.NoError(t, runExport(nil, nil))

	entries, err := os.ReadDir(exportDataDir)
	require.NoError(t, err)

	found := false
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".json" {
			found = true
		}
	}
	assert.True(t, found)
}
