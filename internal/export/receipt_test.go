package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReceipt(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	path, err := WriteReceipt(dir, sampleTransaction(), now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Receipt_TXN1001_2026-03-10.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "receipt must be a PDF document")
	assert.NotEmpty(t, data)
}

func TestWritePrintable(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	path, err := WritePrintable(dir, sampleTransaction(), now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Receipt_TXN1001_2026-03-10.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "window.print()")
	assert.Contains(t, html, "TXN1001")
	assert.Contains(t, html, "Rs. 199.00")
	assert.Contains(t, html, "Airtel")
}

func TestReceiptFilename(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "Receipt_TXN42_2026-03-10.pdf", ReceiptFilename("TXN42", now))
}
