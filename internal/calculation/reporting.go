package calculation

import (
	"github.com/ecomet/investor-dashboard/internal/domain"
	"github.com/ecomet/investor-dashboard/pkg/money"
)

// Funnel step labels, in cash-flow order from spend to net payout.
const (
	StepPurchases      = "Purchases (Cost)"
	StepOrders         = "Orders (Gross)"
	StepShipments      = "Shipments (Gross)"
	StepPayments       = "Payments (Net)"
	StepReimbursements = "Reimbursements (+)"
	StepStorageFees    = "Storage Fees (−)"
)

// Funnel derives the reconciliation funnel. The order is fixed and storage
// fees are negated.
func Funnel(ds *domain.Dataset) []domain.FunnelStep {
	return []domain.FunnelStep{
		{Label: StepPurchases, Amount: ds.Purchases.InvoiceTotal},
		{Label: StepOrders, Amount: ds.Orders.GrossSales},
		{Label: StepShipments, Amount: ds.Shipments.TotalGross},
		{Label: StepPayments, Amount: ds.Payments.NetPayout},
		{Label: StepReimbursements, Amount: ds.Reimbursements.Amount},
		{Label: StepStorageFees, Amount: ds.Storage.Total.Neg()},
	}
}

// KPIs returns the four headline cards.
func KPIs(ds *domain.Dataset) []domain.KPI {
	return []domain.KPI{
		{Label: "Units Purchased", Value: ds.Purchases.Units, Sub: ds.Purchases.InvoiceTotal},
		{Label: "Units Ordered", Value: ds.Orders.Units, Sub: ds.Orders.GrossSales},
		{Label: "Units Shipped", Value: ds.Shipments.TotalUnits, Sub: ds.Shipments.TotalGross},
		{Label: "Net Payout", Value: ds.Payments.NetPayout, Sub: ds.Payments.TotalFees, SubLabel: "Fees", Currency: true},
	}
}

// AverageSalePrice approximates the sale price as ordered gross over
// ordered units. Zero or unavailable units give an unavailable price.
func AverageSalePrice(o domain.Orders) money.Amount {
	return o.GrossSales.Div(o.Units)
}

// SalesQualityOf collects the sales ratios.
func SalesQualityOf(ds *domain.Dataset) domain.SalesQuality {
	return domain.SalesQuality{
		ConversionPercent: ds.Orders.Conversion,
		BuyBoxPercent:     ds.Orders.BuyBox,
		AvgCostPerUnit:    ds.Purchases.AvgCost,
		AvgSalePrice:      AverageSalePrice(ds.Orders),
	}
}

// FeeBreakdown lists the fee components.
func FeeBreakdown(p domain.Payments) []domain.NamedAmount {
	return []domain.NamedAmount{
		{Name: "Selling Fees", Amount: p.SellingFees},
		{Name: "FBA Fees", Amount: p.FBAFees},
		{Name: "Other Fees", Amount: p.OtherFees},
	}
}

// ReturnReasons keeps reasons with a positive quantity, in dataset order.
func ReturnReasons(r domain.Returns) []domain.NamedQuantity {
	out := make([]domain.NamedQuantity, 0, len(r.Reasons))
	for _, reason := range r.Reasons {
		if q, ok := reason.Qty.Float64(); ok && q > 0 {
			out = append(out, reason)
		}
	}
	return out
}

// MonthLabel shortens a YYYY-MM month to its MM part for chart axes.
func MonthLabel(month string) string {
	if len(month) == 7 && month[4] == '-' {
		return month[5:]
	}
	return month
}
