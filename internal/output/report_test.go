package output

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestGenerateReport(t *testing.T) {
	dash := buildTestDashboard(t)

	var buf bytes.Buffer
	require.NoError(t, GenerateReport(&buf, dash, "csv", language.AmericanEnglish))
	assert.Contains(t, buf.String(), "5,291,5820.00,5000.00,820.00,121")

	buf.Reset()
	require.NoError(t, GenerateReport(&buf, dash, "json", language.AmericanEnglish))
	assert.Contains(t, buf.String(), `"invoiceTotal": 16598.07`)

	err := GenerateReport(&buf, dash, "xlsx", language.AmericanEnglish)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestWriteReportAll(t *testing.T) {
	SetNowFunc(func() time.Time { return time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC) })
	defer SetNowFunc(time.Now)

	dir := filepath.Join(t.TempDir(), "reports")
	paths, err := WriteReport(dir, buildTestDashboard(t), FormatAll, language.AmericanEnglish)
	require.NoError(t, err)
	require.Len(t, paths, len(AvailableFormatterNames()))
	for _, p := range paths {
		assert.FileExists(t, p)
	}
	assert.Contains(t, paths, filepath.Join(dir, "ecomet_yaml_20250901_000000.yaml"))
}

func TestWriteReportUnknownFormat(t *testing.T) {
	paths, err := WriteReport(t.TempDir(), buildTestDashboard(t), "pdf", language.AmericanEnglish)
	assert.Empty(t, paths)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
