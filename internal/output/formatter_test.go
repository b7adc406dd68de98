package output

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ecomet/investor-dashboard/internal/calculation"
	"github.com/ecomet/investor-dashboard/internal/dataset"
	"github.com/ecomet/investor-dashboard/internal/domain"
	"github.com/ecomet/investor-dashboard/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

func buildTestDashboard(t *testing.T) *domain.Dashboard {
	t.Helper()
	ds, err := dataset.Default()
	require.NoError(t, err)
	dash, err := calculation.NewProjectionEngine().BuildDashboard(ds, domain.DefaultProjectionConfig())
	require.NoError(t, err)
	return dash
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestDashboard(t))
	require.NoError(t, err)
	content := string(out)

	for _, want := range []string{
		"Ecomet Investor Dashboard",
		"Apr 1 – Aug 31, 2025",
		"Reconciliation Funnel",
		"Purchases (Cost)",
		"$16,598.07",
		"-$30.75",
		"-$5,221.19",
		"Capital Growth Projection",
		"Reinvest cap reached in month 5",
	} {
		assert.Contains(t, content, want)
	}
	assert.NotContains(t, content, "Data Issues")
}

func TestConsoleFormatterProjectionColumns(t *testing.T) {
	dash := buildTestDashboard(t)
	table := NewViews(language.AmericanEnglish).ProjectionTable(dash)

	require.Len(t, table.Rows, len(dash.Projection)+2)
	assert.Equal(t, []string{"5", "291", "$5,820.00", "$5,000.00", "$820.00", "121"}, table.Rows[4])
	assert.Equal(t, []string{"Total", "775", "$47,340.00", "$29,540.00", "$17,800.00", "715"}, table.Rows[len(table.Rows)-1])
}

func TestConsoleFormatterShowsPlaceholderAndIssues(t *testing.T) {
	dash := buildTestDashboard(t)
	dash.Dataset.Storage.Total = money.Parse("n/a")
	dash.Issues = calculation.Inspect(dash.Dataset)
	require.NotEmpty(t, dash.Issues)

	out, err := ConsoleFormatter{}.Format(dash)
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, money.Placeholder)
	assert.Contains(t, content, "Data Issues")
	assert.Contains(t, content, "storage.total")
	assert.NotContains(t, content, "NaN")
}

func TestShipmentsSparklineShowsSalesRange(t *testing.T) {
	out := NewViews(language.AmericanEnglish).Shipments(buildTestDashboard(t))
	assert.Contains(t, out, "$4k … $7k")
}

func TestReturnsShowsShareStrip(t *testing.T) {
	out := NewViews(language.AmericanEnglish).Returns(buildTestDashboard(t))
	assert.Contains(t, out, "Not as Described")
	assert.Equal(t, 38, strings.Count(out, "█"))
}

func TestConsoleFormatterRejectsEmptyDashboard(t *testing.T) {
	_, err := ConsoleFormatter{}.Format(&domain.Dashboard{})
	assert.Error(t, err)
}

func TestConsoleFormatterLocale(t *testing.T) {
	f, err := NewFormatter("console", language.German)
	require.NoError(t, err)
	out, err := f.Format(buildTestDashboard(t))
	require.NoError(t, err)
	assert.Contains(t, string(out), "$16.598,07")
}

func TestProjectionCSV(t *testing.T) {
	out, err := ProjectionCSV{}.Format(buildTestDashboard(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 9)
	assert.Equal(t, []string{"Month", "Capacity", "Profit", "Reinvest", "Withdrawal", "AddedUnits"}, records[0])
	assert.Equal(t, []string{"1", "60", "1200.00", "1200.00", "0.00", "29"}, records[1])
	assert.Equal(t, []string{"8", "654", "13080.00", "5000.00", "8080.00", "121"}, records[8])
}

func TestDatasetCSV(t *testing.T) {
	dash := buildTestDashboard(t)
	dash.Dataset.Orders.BuyBox = money.Parse("unknown")

	out, err := DatasetCSV{}.Format(dash)
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Path", "Value", "Available"}, records[0])
	assert.Contains(t, records, []string{"purchases.invoiceTotal", "16598.07", "true"})
	assert.Contains(t, records, []string{"orders.buyBox", "", "false"})
	assert.Contains(t, records, []string{"shipments.monthly[4].sales", "6703.61", "true"})
}

func TestJSONFormatterPreservesDatasetKeys(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestDashboard(t))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	ds, ok := doc["dataset"].(map[string]any)
	require.True(t, ok)
	payments := ds["payments"].(map[string]any)
	assert.Contains(t, payments, "fbaFees")
	assert.Contains(t, payments, "netPayout")
	assert.Len(t, doc["projection"], 8)
	assert.Len(t, doc["funnel"], 6)
}

func TestYAMLFormatterRoundTripsDataset(t *testing.T) {
	dash := buildTestDashboard(t)
	out, err := YAMLFormatter{}.Format(dash)
	require.NoError(t, err)

	var doc struct {
		Dataset domain.Dataset `yaml:"dataset"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.True(t, doc.Dataset.Payments.NetPayout.Equal(dash.Dataset.Payments.NetPayout))
	assert.Equal(t, dash.Dataset.Meta.Period, doc.Dataset.Meta.Period)
}

func TestHTMLFormatter(t *testing.T) {
	dash := buildTestDashboard(t)
	dash.Issues = []domain.Issue{{Path: "storage.total", Message: "<check>", Severity: domain.SeverityWarning}}

	out, err := HTMLFormatter{}.Format(dash)
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "<title>Ecomet Investor Dashboard</title>")
	assert.Contains(t, content, "Storage Fees (−)")
	assert.Contains(t, content, `class="neg"`)
	assert.Contains(t, content, "projectionChart")
	assert.Contains(t, content, `<div class="label">Units Purchased</div><div class="value">403</div><div class="sub">$16,598.07</div>`)
	assert.Contains(t, content, "&lt;check&gt;")
	assert.NotContains(t, content, "<td>---</td>")
}

func TestFormatterAliasesAndNames(t *testing.T) {
	cases := map[string]string{
		"console":      "console",
		" Table ":      "console",
		"yml":          "yaml",
		"detailed-csv": "dataset-csv",
		"htm":          "html",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		require.NotNil(t, f, in)
		assert.Equal(t, want, f.Name(), in)
	}
	assert.Nil(t, GetFormatterByName("pdf"))
	assert.Equal(t, []string{"console", "csv", "dataset-csv", "html", "json", "yaml"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "yml")
}

func TestNewFormatterUnknown(t *testing.T) {
	_, err := NewFormatter("pdf", language.AmericanEnglish)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "console")
}

func TestWriteFormattedUsesTimestamp(t *testing.T) {
	SetNowFunc(func() time.Time { return time.Date(2025, 9, 1, 8, 30, 0, 0, time.UTC) })
	defer SetNowFunc(time.Now)

	dir := t.TempDir()
	path, err := WriteFormatted(dir, ProjectionCSV{}, buildTestDashboard(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ecomet_csv_20250901_083000.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Month,Capacity"))
}
