package domain

import "github.com/ecomet/investor-dashboard/pkg/money"

// FunnelStep is one bar of the reconciliation funnel. Amount is signed.
type FunnelStep struct {
	Label  string       `json:"step" yaml:"step"`
	Amount money.Amount `json:"value" yaml:"value"`
}

// KPI is a headline metric with an optional secondary amount.
type KPI struct {
	Label string       `json:"label" yaml:"label"`
	Value money.Amount `json:"value" yaml:"value"`
	Sub   money.Amount `json:"sub" yaml:"sub"`
	// SubLabel prefixes Sub when rendered, e.g. "Fees".
	SubLabel string `json:"sub_label,omitempty" yaml:"sub_label,omitempty"`
	// Currency marks Value as a currency amount rather than a count.
	Currency bool `json:"currency" yaml:"currency"`
}

// SalesQuality groups the sales ratios shown next to the funnel.
type SalesQuality struct {
	ConversionPercent money.Amount `json:"conversion_percent" yaml:"conversion_percent"`
	BuyBoxPercent     money.Amount `json:"buy_box_percent" yaml:"buy_box_percent"`
	AvgCostPerUnit    money.Amount `json:"avg_cost_per_unit" yaml:"avg_cost_per_unit"`
	AvgSalePrice      money.Amount `json:"avg_sale_price" yaml:"avg_sale_price"`
}

// Severity ranks a dataset issue.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is a non-fatal finding about the dataset.
type Issue struct {
	Path     string   `json:"path" yaml:"path"`
	Message  string   `json:"message" yaml:"message"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// Dashboard is everything the renderers consume for one refresh.
type Dashboard struct {
	Dataset       *Dataset          `json:"dataset" yaml:"dataset"`
	KPIs          []KPI             `json:"kpis" yaml:"kpis"`
	Funnel        []FunnelStep      `json:"funnel" yaml:"funnel"`
	SalesQuality  SalesQuality      `json:"sales_quality" yaml:"sales_quality"`
	Fees          []NamedAmount     `json:"fees" yaml:"fees"`
	ReturnReasons []NamedQuantity   `json:"return_reasons" yaml:"return_reasons"`
	Config        ProjectionConfig  `json:"projection_config" yaml:"projection_config"`
	Projection    []ProjectionRow   `json:"projection" yaml:"projection"`
	Summary       ProjectionSummary `json:"projection_summary" yaml:"projection_summary"`
	Chart         []ChartPoint      `json:"projection_chart" yaml:"projection_chart"`
	Issues        []Issue           `json:"issues" yaml:"issues"`
}
