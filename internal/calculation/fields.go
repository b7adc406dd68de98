package calculation

import (
	"fmt"

	"github.com/ecomet/investor-dashboard/internal/domain"
	"github.com/ecomet/investor-dashboard/pkg/money"
)

// Field is one numeric leaf of the dataset addressed by its exchange path,
// e.g. "shipments.monthly[2].sales".
type Field struct {
	Path   string
	Amount money.Amount
}

// CheckFields lists every numeric dataset field that could not be read as a
// finite number. Those fields render as unavailable.
func CheckFields(ds *domain.Dataset) []domain.Issue {
	var issues []domain.Issue
	for _, f := range Fields(ds) {
		if !f.Amount.IsAvailable() {
			issues = append(issues, warn(f.Path, "value is not a number; shown as unavailable"))
		}
	}
	return issues
}

// Inspect runs the field check followed by the consistency checks.
func Inspect(ds *domain.Dataset) []domain.Issue {
	return append(CheckFields(ds), Diagnose(ds)...)
}

// Fields lists every numeric field of ds in document order.
func Fields(ds *domain.Dataset) []Field {
	fs := []Field{
		{"purchases.units", ds.Purchases.Units},
		{"purchases.merch", ds.Purchases.Merch},
		{"purchases.shipping", ds.Purchases.Shipping},
		{"purchases.invoiceTotal", ds.Purchases.InvoiceTotal},
		{"purchases.avgCost", ds.Purchases.AvgCost},
		{"orders.units", ds.Orders.Units},
		{"orders.grossSales", ds.Orders.GrossSales},
		{"orders.conversion", ds.Orders.Conversion},
		{"orders.buyBox", ds.Orders.BuyBox},
		{"shipments.totalUnits", ds.Shipments.TotalUnits},
		{"shipments.totalGross", ds.Shipments.TotalGross},
		{"shipments.uniqueOrders", ds.Shipments.UniqueOrders},
		{"payments.productSales", ds.Payments.ProductSales},
		{"payments.sellingFees", ds.Payments.SellingFees},
		{"payments.fbaFees", ds.Payments.FBAFees},
		{"payments.otherFees", ds.Payments.OtherFees},
		{"payments.totalFees", ds.Payments.TotalFees},
		{"payments.netPayout", ds.Payments.NetPayout},
		{"storage.total", ds.Storage.Total},
		{"returns.totalUnits", ds.Returns.TotalUnits},
		{"reimbursements.amount", ds.Reimbursements.Amount},
		{"reimbursements.units", ds.Reimbursements.Units},
		{"profitability.orderedGross", ds.Profitability.OrderedGross},
		{"profitability.netPayout", ds.Profitability.NetPayout},
		{"profitability.purchases", ds.Profitability.Purchases},
		{"profitability.reimbursements", ds.Profitability.Reimbursements},
		{"profitability.storageFees", ds.Profitability.StorageFees},
		{"profitability.netPosition", ds.Profitability.NetPosition},
	}
	for i, m := range ds.Shipments.Monthly {
		p := fmt.Sprintf("shipments.monthly[%d]", i)
		fs = append(fs,
			Field{p + ".units", m.Units},
			Field{p + ".sales", m.Sales},
			Field{p + ".orders", m.Orders},
		)
	}
	for i, m := range ds.Storage.ByMonth {
		fs = append(fs, Field{fmt.Sprintf("storage.byMonth[%d].amount", i), m.Amount})
	}
	for i, r := range ds.Returns.Reasons {
		fs = append(fs, Field{fmt.Sprintf("returns.reasons[%d].qty", i), r.Qty})
	}
	for i, r := range ds.Returns.Disposition {
		fs = append(fs, Field{fmt.Sprintf("returns.disposition[%d].qty", i), r.Qty})
	}
	for i, r := range ds.Reimbursements.ReasonsAmount {
		fs = append(fs, Field{fmt.Sprintf("reimbursements.reasonsAmount[%d].amount", i), r.Amount})
	}
	return fs
}
