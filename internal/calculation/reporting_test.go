package calculation

import (
	"testing"

	"github.com/ecomet/investor-dashboard/internal/dataset"
	"github.com/ecomet/investor-dashboard/internal/domain"
	"github.com/ecomet/investor-dashboard/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func loadSnapshot(t *testing.T) *domain.Dataset {
	t.Helper()
	ds, err := dataset.Default()
	require.NoError(t, err)
	return ds
}

func TestFunnelOrderAndSigns(t *testing.T) {
	steps := Funnel(loadSnapshot(t))
	require.Len(t, steps, 6)

	labels := make([]string, len(steps))
	for i, s := range steps {
		labels[i] = s.Label
	}
	assert.Equal(t, []string{
		"Purchases (Cost)",
		"Orders (Gross)",
		"Shipments (Gross)",
		"Payments (Net)",
		"Reimbursements (+)",
		"Storage Fees (−)",
	}, labels)

	assert.Equal(t, "16598.07", steps[0].Amount.String())
	assert.Equal(t, "18526.09", steps[1].Amount.String())
	assert.Equal(t, "20118.22", steps[2].Amount.String())
	assert.Equal(t, "10803.81", steps[3].Amount.String())
	assert.Equal(t, "603.82", steps[4].Amount.String())
	assert.Equal(t, "-30.75", steps[5].Amount.String())
}

func TestFunnelKeepsUnavailable(t *testing.T) {
	ds := loadSnapshot(t)
	ds.Storage.Total = money.Parse("n/a")
	steps := Funnel(ds)
	assert.False(t, steps[5].Amount.IsAvailable())
}

func TestAverageSalePrice(t *testing.T) {
	ds := loadSnapshot(t)
	assert.Equal(t, "60.74", AverageSalePrice(ds.Orders).Round().String())

	ds.Orders.Units = money.FromInt(0)
	assert.False(t, AverageSalePrice(ds.Orders).IsAvailable())

	ds.Orders.Units = money.Parse("lots")
	assert.False(t, AverageSalePrice(ds.Orders).IsAvailable())
}

func TestKPIs(t *testing.T) {
	kpis := KPIs(loadSnapshot(t))
	require.Len(t, kpis, 4)
	assert.Equal(t, "Units Purchased", kpis[0].Label)
	assert.Equal(t, "403", kpis[0].Value.String())
	assert.Equal(t, "Net Payout", kpis[3].Label)
	assert.True(t, kpis[3].Currency)
	assert.Equal(t, "5314.12", kpis[3].Sub.String())
}

func TestReturnReasonsDropsEmpty(t *testing.T) {
	r := domain.Returns{Reasons: []domain.NamedQuantity{
		{Name: "Defective", Qty: money.FromInt(4)},
		{Name: "Gone", Qty: money.FromInt(0)},
		{Name: "Broken", Qty: money.Parse("?")},
		{Name: "Other", Qty: money.FromInt(5)},
	}}
	got := ReturnReasons(r)
	require.Len(t, got, 2)
	assert.Equal(t, "Defective", got[0].Name)
	assert.Equal(t, "Other", got[1].Name)
}

func TestFeeBreakdown(t *testing.T) {
	fees := FeeBreakdown(loadSnapshot(t).Payments)
	require.Len(t, fees, 3)
	assert.Equal(t, "Selling Fees", fees[0].Name)
	assert.Equal(t, "1178.82", fees[1].Amount.String())
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "04", MonthLabel("2025-04"))
	assert.Equal(t, "April", MonthLabel("April"))
}

func TestDiagnoseSnapshotIsConsistent(t *testing.T) {
	assert.Empty(t, Diagnose(loadSnapshot(t)))
	assert.Empty(t, CheckFields(loadSnapshot(t)))
}

func TestDiagnoseShipmentsMismatch(t *testing.T) {
	ds := loadSnapshot(t)
	ds.Shipments.TotalUnits = money.FromInt(310)

	issues := Diagnose(ds)
	require.Len(t, issues, 1)
	assert.Equal(t, "shipments.totalUnits", issues[0].Path)
	assert.Equal(t, domain.SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "300")
	assert.Contains(t, issues[0].Message, "310")
}

func TestDiagnoseUnavailableStorageTotal(t *testing.T) {
	ds := loadSnapshot(t)
	ds.Storage.Total = money.Parse("thirty")

	issues := Inspect(ds)
	paths := map[string]domain.Severity{}
	for _, is := range issues {
		if _, seen := paths[is.Path]; !seen {
			paths[is.Path] = is.Severity
		}
	}
	assert.Equal(t, domain.SeverityWarning, paths["storage.total"])
}

func TestLogIssuesReportsWarnings(t *testing.T) {
	ds := loadSnapshot(t)
	ds.Shipments.Monthly[1].Units = money.FromInt(31)

	core, logs := observer.New(zapcore.InfoLevel)
	LogIssues(zap.New(core).Sugar(), Diagnose(ds))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Contains(t, entry.Message, "shipments mismatch")
}

func TestCheckFieldsPaths(t *testing.T) {
	ds := loadSnapshot(t)
	ds.Shipments.Monthly[2].Sales = money.Parse("")
	ds.Returns.Reasons[0].Qty = money.Unavailable()

	issues := CheckFields(ds)
	require.Len(t, issues, 2)
	assert.Equal(t, "shipments.monthly[2].sales", issues[0].Path)
	assert.Equal(t, "returns.reasons[0].qty", issues[1].Path)
}

func TestBuildDashboard(t *testing.T) {
	ds := loadSnapshot(t)
	dash, err := NewProjectionEngine().BuildDashboard(ds, domain.DefaultProjectionConfig())
	require.NoError(t, err)

	assert.Len(t, dash.Projection, 8)
	assert.Len(t, dash.Chart, 8)
	assert.Len(t, dash.Funnel, 6)
	assert.Len(t, dash.KPIs, 4)
	assert.Len(t, dash.ReturnReasons, 6)
	assert.Empty(t, dash.Issues)
	assert.Equal(t, 775, dash.Summary.FinalCapacity)

	cfg := domain.DefaultProjectionConfig()
	cfg.Months = 0
	_, err = NewProjectionEngine().BuildDashboard(ds, cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewProjectionEngine().BuildDashboard(nil, domain.DefaultProjectionConfig())
	assert.Error(t, err)
}
