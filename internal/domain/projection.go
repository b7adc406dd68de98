package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionConfig holds the inputs of the self-funded growth projection.
type ProjectionConfig struct {
	StartingUnitsPerMonth int             `json:"starting_units_per_month" yaml:"starting_units_per_month"`
	ProfitPerUnit         decimal.Decimal `json:"profit_per_unit" yaml:"profit_per_unit"`
	UnitCost              decimal.Decimal `json:"unit_cost" yaml:"unit_cost"`
	Months                int             `json:"months" yaml:"months"`
	ReinvestCap           decimal.Decimal `json:"reinvest_cap" yaml:"reinvest_cap"`
}

// DefaultProjectionConfig returns the fixed dashboard assumptions: start at
// 60 units/month, $20 profit per unit, $41 unit cost, reinvest up to $5k a
// month over an 8 month horizon.
func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{
		StartingUnitsPerMonth: 60,
		ProfitPerUnit:         decimal.NewFromInt(20),
		UnitCost:              decimal.NewFromInt(41),
		Months:                8,
		ReinvestCap:           decimal.NewFromInt(5000),
	}
}

// ProjectionRow is the financial state of one simulated month.
type ProjectionRow struct {
	Month      int             `json:"month" yaml:"month"`
	Capacity   int             `json:"capacity" yaml:"capacity"` // before this month's growth
	Profit     decimal.Decimal `json:"profit" yaml:"profit"`
	Reinvest   decimal.Decimal `json:"reinvest" yaml:"reinvest"`
	Withdrawal decimal.Decimal `json:"withdrawal" yaml:"withdrawal"`
	AddedUnits int             `json:"added_units" yaml:"added_units"`
}

// ProjectionSummary aggregates a projection run.
type ProjectionSummary struct {
	Months               int             `json:"months" yaml:"months"`
	StartingCapacity     int             `json:"starting_capacity" yaml:"starting_capacity"`
	FinalCapacity        int             `json:"final_capacity" yaml:"final_capacity"`
	TotalProfit          decimal.Decimal `json:"total_profit" yaml:"total_profit"`
	TotalReinvested      decimal.Decimal `json:"total_reinvested" yaml:"total_reinvested"`
	TotalWithdrawn       decimal.Decimal `json:"total_withdrawn" yaml:"total_withdrawn"`
	TotalAddedUnits      int             `json:"total_added_units" yaml:"total_added_units"`
	CapReachedMonth      int             `json:"cap_reached_month" yaml:"cap_reached_month"`           // 0 if profit never exceeds the cap
	FirstWithdrawalMonth int             `json:"first_withdrawal_month" yaml:"first_withdrawal_month"` // 0 if nothing is withdrawn
}

// ChartPoint is one x-axis entry of the projection chart.
type ChartPoint struct {
	Month      int             `json:"month" yaml:"month"`
	Capacity   int             `json:"capacity" yaml:"capacity"`
	Reinvest   decimal.Decimal `json:"reinvest" yaml:"reinvest"`
	Withdrawal decimal.Decimal `json:"withdrawal" yaml:"withdrawal"`
}
