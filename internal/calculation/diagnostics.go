package calculation

import (
	"fmt"

	"github.com/ecomet/investor-dashboard/internal/domain"
	"github.com/ecomet/investor-dashboard/pkg/money"
)

// Diagnose runs the dataset consistency checks. Findings are returned as
// warnings; none of them stop the dashboard from rendering.
func Diagnose(ds *domain.Dataset) []domain.Issue {
	var issues []domain.Issue

	if !ds.Storage.Total.IsAvailable() {
		issues = append(issues, warn("storage.total", "storage total invalid"))
	}

	units := make([]money.Amount, len(ds.Shipments.Monthly))
	for i, m := range ds.Shipments.Monthly {
		units[i] = m.Units
	}
	issues = appendMismatch(issues, "shipments.totalUnits", "shipments mismatch: monthly units sum to %s, total is %s",
		money.Sum(units...), ds.Shipments.TotalUnits)

	storage := make([]money.Amount, len(ds.Storage.ByMonth))
	for i, m := range ds.Storage.ByMonth {
		storage[i] = m.Amount
	}
	issues = appendMismatch(issues, "storage.total", "storage mismatch: monthly fees sum to %s, total is %s",
		money.Sum(storage...).Round(), ds.Storage.Total.Round())

	issues = appendMismatch(issues, "payments.totalFees", "fees mismatch: components sum to %s, total is %s",
		money.Sum(ds.Payments.SellingFees, ds.Payments.FBAFees, ds.Payments.OtherFees).Round(), ds.Payments.TotalFees.Round())

	issues = appendMismatch(issues, "returns.reasons", "returns mismatch: reasons sum to %s, total is %s",
		sumQty(ds.Returns.Reasons), ds.Returns.TotalUnits)
	issues = appendMismatch(issues, "returns.disposition", "returns mismatch: dispositions sum to %s, total is %s",
		sumQty(ds.Returns.Disposition), ds.Returns.TotalUnits)

	reimbursed := make([]money.Amount, len(ds.Reimbursements.ReasonsAmount))
	for i, r := range ds.Reimbursements.ReasonsAmount {
		reimbursed[i] = r.Amount
	}
	issues = appendMismatch(issues, "reimbursements.reasonsAmount", "reimbursements mismatch: reasons sum to %s, amount is %s",
		money.Sum(reimbursed...).Round(), ds.Reimbursements.Amount.Round())

	return issues
}

func sumQty(items []domain.NamedQuantity) money.Amount {
	qty := make([]money.Amount, len(items))
	for i, it := range items {
		qty[i] = it.Qty
	}
	return money.Sum(qty...)
}

// appendMismatch adds a warning when got and want differ. If either side is
// unavailable the check is skipped and recorded as info.
func appendMismatch(issues []domain.Issue, path, format string, got, want money.Amount) []domain.Issue {
	if !got.IsAvailable() || !want.IsAvailable() {
		return append(issues, domain.Issue{
			Path:     path,
			Message:  "consistency check skipped: unavailable values",
			Severity: domain.SeverityInfo,
		})
	}
	if got.Equal(want) {
		return issues
	}
	return append(issues, warn(path, fmt.Sprintf(format, got, want)))
}

func warn(path, msg string) domain.Issue {
	return domain.Issue{Path: path, Message: msg, Severity: domain.SeverityWarning}
}
