package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ecomet/investor-dashboard/internal/calculation"
	"github.com/ecomet/investor-dashboard/internal/domain"
	"github.com/ecomet/investor-dashboard/pkg/money"
	"golang.org/x/text/language"
)

// ConsoleFormatter renders the full dashboard as lipgloss tables.
type ConsoleFormatter struct {
	Views Views
}

func (ConsoleFormatter) Name() string { return "console" }
func (ConsoleFormatter) Ext() string  { return "txt" }

// WithLocale implements Localizer.
func (c ConsoleFormatter) WithLocale(tag language.Tag) Formatter {
	c.Views = NewViews(tag)
	return c
}

func (c ConsoleFormatter) Format(d *domain.Dashboard) ([]byte, error) {
	if d == nil || d.Dataset == nil {
		return nil, fmt.Errorf("console: empty dashboard")
	}
	v := c.Views
	var buf bytes.Buffer
	buf.WriteString(RenderTitle("Ecomet Investor Dashboard", d.Dataset.Meta.Period))
	buf.WriteString("\n\n")
	for _, block := range []string{
		v.KPIs(d),
		v.Funnel(d, 30),
		v.SalesQuality(d),
		v.Storage(d),
		v.Shipments(d),
		v.Fees(d),
		v.Returns(d),
		v.Reimbursements(d),
		v.Profitability(d),
		v.Projection(d),
		v.Issues(d),
	} {
		if block == "" {
			continue
		}
		buf.WriteString(block)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// Views renders individual dashboard panels. The console formatter stacks
// them and the TUI shows them per tab.
type Views struct {
	Currency CurrencyFormatter
}

// NewViews creates panel renderers for the given locale.
func NewViews(tag language.Tag) Views {
	return Views{Currency: NewCurrencyFormatter(tag)}
}

// KPIs renders the headline metric cards.
func (v Views) KPIs(d *domain.Dashboard) string {
	t := Table{Title: "Key Metrics", Headers: []string{"Metric", "Value", "Detail"}}
	for _, k := range d.KPIs {
		value := FormatCount(k.Value)
		if k.Currency {
			value = v.Currency.Format(k.Value)
		}
		t.Rows = append(t.Rows, []string{k.Label, value, v.kpiDetail(k)})
	}
	return RenderTable(t)
}

// kpiDetail renders the secondary line of a KPI card.
func (v Views) kpiDetail(k domain.KPI) string {
	if k.SubLabel != "" {
		return k.SubLabel + ": " + v.Currency.Format(k.Sub)
	}
	if k.Sub.IsAvailable() {
		return v.Currency.Format(k.Sub)
	}
	return ""
}

// Funnel renders the reconciliation funnel with proportional bars.
func (v Views) Funnel(d *domain.Dashboard, barWidth int) string {
	maxAbs := 0.0
	for _, s := range d.Funnel {
		if f, ok := s.Amount.Float64(); ok {
			if f < 0 {
				f = -f
			}
			if f > maxAbs {
				maxAbs = f
			}
		}
	}
	t := Table{Title: "Reconciliation Funnel", Headers: []string{"Step", "Amount", ""}}
	for _, s := range d.Funnel {
		bar := ""
		if f, ok := s.Amount.Float64(); ok {
			bar = RenderBar(f, maxAbs, barWidth)
		}
		t.Rows = append(t.Rows, []string{s.Label, v.Currency.Format(s.Amount), bar})
	}
	return RenderTable(t)
}

// SalesQuality renders conversion, buy box and unit economics.
func (v Views) SalesQuality(d *domain.Dashboard) string {
	q := d.SalesQuality
	return RenderTable(Table{
		Title:   "Sales Quality",
		Headers: []string{"Measure", "Value"},
		Rows: [][]string{
			{"Conversion", FormatPercent(q.ConversionPercent)},
			{"Buy Box", FormatPercent(q.BuyBoxPercent)},
			{"Avg Cost / Unit", v.Currency.Format(q.AvgCostPerUnit)},
			{"Avg Sale Price", v.Currency.Format(q.AvgSalePrice)},
		},
	})
}

// Storage renders monthly storage fees and their total.
func (v Views) Storage(d *domain.Dashboard) string { return RenderTable(v.StorageTable(d)) }

// StorageTable builds the storage fee table.
func (v Views) StorageTable(d *domain.Dashboard) Table {
	s := d.Dataset.Storage
	t := Table{Title: "Storage Fees", Headers: []string{"Month", "Amount"}}
	for _, m := range s.ByMonth {
		t.Rows = append(t.Rows, []string{calculation.MonthLabel(m.Month), v.Currency.Format(m.Amount)})
	}
	t.Rows = append(t.Rows, []string{"---"}, []string{"Total", v.Currency.Format(s.Total)})
	return t
}

// Shipments renders the monthly shipment breakdown with a sales sparkline.
func (v Views) Shipments(d *domain.Dashboard) string {
	var sales []float64
	for _, m := range d.Dataset.Shipments.Monthly {
		f, _ := m.Sales.Float64()
		sales = append(sales, f)
	}
	out := RenderTable(v.ShipmentsTable(d))
	if spark := RenderSparkline(sales); spark != "" {
		monthly := d.Dataset.Shipments.Monthly
		span := v.Currency.FormatThousands(monthly[0].Sales) + " … " + v.Currency.FormatThousands(monthly[len(monthly)-1].Sales)
		out += "  " + mutedStyle.Render("Sales ") + barStyle.Render(spark) + " " + mutedStyle.Render(span) + "\n"
	}
	return out
}

// ShipmentsTable builds the monthly shipments table.
func (v Views) ShipmentsTable(d *domain.Dashboard) Table {
	s := d.Dataset.Shipments
	t := Table{Title: "Shipments", Headers: []string{"Month", "Units", "Sales", "Orders"}}
	for _, m := range s.Monthly {
		t.Rows = append(t.Rows, []string{
			calculation.MonthLabel(m.Month),
			FormatCount(m.Units),
			v.Currency.Format(m.Sales),
			FormatCount(m.Orders),
		})
	}
	t.Rows = append(t.Rows, []string{"---"}, []string{
		"Total",
		FormatCount(s.TotalUnits),
		v.Currency.Format(s.TotalGross),
		FormatCount(s.UniqueOrders),
	})
	return t
}

// Fees renders the marketplace fee breakdown and net payout.
func (v Views) Fees(d *domain.Dashboard) string { return RenderTable(v.FeesTable(d)) }

// FeesTable builds the fee breakdown table.
func (v Views) FeesTable(d *domain.Dashboard) Table {
	p := d.Dataset.Payments
	t := Table{Title: "Fees", Headers: []string{"Fee", "Amount"}}
	for _, f := range d.Fees {
		t.Rows = append(t.Rows, []string{f.Name, v.Currency.Format(f.Amount)})
	}
	t.Rows = append(t.Rows,
		[]string{"---"},
		[]string{"Total Fees", v.Currency.Format(p.TotalFees)},
		[]string{"Product Sales", v.Currency.Format(p.ProductSales)},
		[]string{"Net Payout", v.Currency.Format(p.NetPayout)},
	)
	return t
}

// Returns renders return reasons and dispositions.
func (v Views) Returns(d *domain.Dashboard) string {
	reasons, disp := v.ReturnsTables(d)
	out := RenderTable(reasons)
	var qty []float64
	for _, q := range d.ReturnReasons {
		f, _ := q.Qty.Float64()
		qty = append(qty, f)
	}
	if strip := RenderShareStrip(qty, 40); strip != "" {
		out += "  " + strip + "\n"
	}
	return out + "\n" + RenderTable(disp)
}

// ReturnsTables builds the return reason and disposition tables.
func (v Views) ReturnsTables(d *domain.Dashboard) (reasons, disp Table) {
	r := d.Dataset.Returns
	reasons = Table{Title: fmt.Sprintf("Returns (%s units)", FormatCount(r.TotalUnits)), Headers: []string{"Reason", "Qty", "Share"}}
	for _, q := range d.ReturnReasons {
		reasons.Rows = append(reasons.Rows, []string{q.Name, FormatCount(q.Qty), share(q.Qty, r.TotalUnits)})
	}
	disp = Table{Title: "Disposition", Headers: []string{"Outcome", "Qty"}}
	for _, q := range r.Disposition {
		disp.Rows = append(disp.Rows, []string{q.Name, FormatCount(q.Qty)})
	}
	return reasons, disp
}

// share renders part/whole as a percentage.
func share(part, whole money.Amount) string {
	return FormatPercent(part.Div(whole).Mul(money.FromInt(100)))
}

// Reimbursements renders reimbursement amounts by reason.
func (v Views) Reimbursements(d *domain.Dashboard) string {
	return RenderTable(v.ReimbursementsTable(d))
}

// ReimbursementsTable builds the reimbursement table.
func (v Views) ReimbursementsTable(d *domain.Dashboard) Table {
	r := d.Dataset.Reimbursements
	t := Table{Title: "Reimbursements", Headers: []string{"Reason", "Amount"}}
	for _, a := range r.ReasonsAmount {
		t.Rows = append(t.Rows, []string{a.Name, v.Currency.Format(a.Amount)})
	}
	t.Rows = append(t.Rows,
		[]string{"---"},
		[]string{fmt.Sprintf("Total (%s units)", FormatCount(r.Units)), v.Currency.Format(r.Amount)},
	)
	return t
}

// Profitability renders the six summary figures.
func (v Views) Profitability(d *domain.Dashboard) string {
	return RenderTable(v.ProfitabilityTable(d))
}

// ProfitabilityTable builds the profitability table.
func (v Views) ProfitabilityTable(d *domain.Dashboard) Table {
	p := d.Dataset.Profitability
	return Table{
		Title:   "Profitability",
		Headers: []string{"Figure", "Amount"},
		Rows: [][]string{
			{"Ordered Gross", v.Currency.Format(p.OrderedGross)},
			{"Net Payout", v.Currency.Format(p.NetPayout)},
			{"Purchases", v.Currency.Format(p.Purchases)},
			{"Reimbursements", v.Currency.Format(p.Reimbursements)},
			{"Storage Fees", v.Currency.Format(p.StorageFees)},
			{"---"},
			{"Net Position", v.Currency.Format(p.NetPosition)},
		},
	}
}

// Projection renders the reinvestment table, a capacity sparkline and the
// projection parameters.
func (v Views) Projection(d *domain.Dashboard) string {
	cfg := d.Config
	s := d.Summary
	capacity := make([]float64, 0, len(d.Projection))
	for _, r := range d.Projection {
		capacity = append(capacity, float64(r.Capacity))
	}

	var b strings.Builder
	b.WriteString(RenderTable(v.ProjectionTable(d)))
	if spark := RenderSparkline(capacity); spark != "" {
		b.WriteString("  " + mutedStyle.Render("Capacity ") + barStyle.Render(spark) + "\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d units/mo start, %s profit/unit, %s unit cost, %s reinvest cap",
		cfg.StartingUnitsPerMonth,
		v.Currency.FormatDecimal(cfg.ProfitPerUnit),
		v.Currency.FormatDecimal(cfg.UnitCost),
		v.Currency.FormatDecimal(cfg.ReinvestCap))))
	b.WriteString("\n")
	if s.CapReachedMonth > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  Reinvest cap reached in month %d; withdrawals begin month %d",
			s.CapReachedMonth, s.FirstWithdrawalMonth)))
		b.WriteString("\n")
	}
	return b.String()
}

// ProjectionTable builds the month-by-month projection table with a totals row.
func (v Views) ProjectionTable(d *domain.Dashboard) Table {
	t := Table{
		Title:   "Capital Growth Projection",
		Headers: []string{"Month", "Capacity", "Profit ($)", "Reinvest ($)", "Withdrawal ($)", "Added Units"},
	}
	for _, r := range d.Projection {
		t.Rows = append(t.Rows, []string{
			intToString(r.Month),
			intToString(r.Capacity),
			v.Currency.FormatDecimal(r.Profit),
			v.Currency.FormatDecimal(r.Reinvest),
			v.Currency.FormatDecimal(r.Withdrawal),
			intToString(r.AddedUnits),
		})
	}
	s := d.Summary
	t.Rows = append(t.Rows, []string{"---"}, []string{
		"Total",
		intToString(s.FinalCapacity),
		v.Currency.FormatDecimal(s.TotalProfit),
		v.Currency.FormatDecimal(s.TotalReinvested),
		v.Currency.FormatDecimal(s.TotalWithdrawn),
		intToString(s.TotalAddedUnits),
	})
	return t
}

// Issues renders dataset diagnostics; empty when the dataset is consistent.
func (v Views) Issues(d *domain.Dashboard) string {
	if len(d.Issues) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("  " + RenderSection("Data Issues") + "\n")
	for _, is := range d.Issues {
		b.WriteString(RenderWarning(is.Path, is.Message) + "\n")
	}
	return b.String()
}
