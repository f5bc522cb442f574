package execute

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Empty(t *testing.T) {
	pid, err := Command("")
	require.NoError(t, err)
	assert.Zero(t, pid)
}

func TestCommand_Runs(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "ran")

	pid, err := Command("touch " + marker)
	require.NoError(t, err)
	assert.Positive(t, pid)

	assert.Eventually(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
}

func TestCommand_MissingShell(t *testing.T) {
	old := Shell
	Shell = filepath.Join(t.TempDir(), "no-such-shell")
	t.Cleanup(func() { Shell = old })

	_, err := Command("true")
	assert.Error(t, err)
}
