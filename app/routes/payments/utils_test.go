package payments

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTransactionReference(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^TRN-20250315-\d{5}$`)

	for i := 0; i < 50; i++ {
		ref := GenerateTransactionReference(now)
		assert.Regexp(t, pattern, ref)
	}
}

func TestValidModeOfPayment(t *testing.T) {
	assert.True(t, ValidModeOfPayment("gcash"))
	assert.True(t, ValidModeOfPayment("bank_transfer"))
	assert.True(t, ValidModeOfPayment("cash"))
	assert.True(t, ValidModeOfPayment("check"))

	assert.False(t, ValidModeOfPayment(""))
	assert.False(t, ValidModeOfPayment("GCash"))
	assert.False(t, ValidModeOfPayment("crypto"))
}

func TestRemoveProofFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	require.NoError(t, os.MkdirAll(proofUploadDir, 0o755))
	diskPath := filepath.Join(proofUploadDir, "abc.png")
	require.NoError(t, os.WriteFile(diskPath, []byte("img"), 0o644))

	removeProofFile("uploads/proofs/abc.png")

	_, err = os.Stat(diskPath)
	assert.True(t, os.IsNotExist(err))

	// a second removal of the same path is a quiet no-op
	removeProofFile("uploads/proofs/abc.png")
}
