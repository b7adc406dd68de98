package calculation

import (
	"github.com/ecomet/investor-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// Summarize totals a projection. cfg supplies the cap used to find the
// first month whose profit exceeds it.
func Summarize(cfg domain.ProjectionConfig, rows []domain.ProjectionRow) domain.ProjectionSummary {
	s := domain.ProjectionSummary{
		Months:          len(rows),
		TotalProfit:     decimal.Zero,
		TotalReinvested: decimal.Zero,
		TotalWithdrawn:  decimal.Zero,
	}
	if len(rows) == 0 {
		s.StartingCapacity = cfg.StartingUnitsPerMonth
		s.FinalCapacity = cfg.StartingUnitsPerMonth
		return s
	}
	s.StartingCapacity = rows[0].Capacity
	for _, r := range rows {
		s.TotalProfit = s.TotalProfit.Add(r.Profit)
		s.TotalReinvested = s.TotalReinvested.Add(r.Reinvest)
		s.TotalWithdrawn = s.TotalWithdrawn.Add(r.Withdrawal)
		s.TotalAddedUnits += r.AddedUnits
		if s.CapReachedMonth == 0 && r.Profit.GreaterThan(cfg.ReinvestCap) {
			s.CapReachedMonth = r.Month
		}
		if s.FirstWithdrawalMonth == 0 && r.Withdrawal.IsPositive() {
			s.FirstWithdrawalMonth = r.Month
		}
	}
	last := rows[len(rows)-1]
	s.FinalCapacity = last.Capacity + last.AddedUnits
	return s
}

// ChartSeries extracts the (month, capacity, reinvest, withdrawal) series.
func ChartSeries(rows []domain.ProjectionRow) []domain.ChartPoint {
	points := make([]domain.ChartPoint, len(rows))
	for i, r := range rows {
		points[i] = domain.ChartPoint{
			Month:      r.Month,
			Capacity:   r.Capacity,
			Reinvest:   r.Reinvest,
			Withdrawal: r.Withdrawal,
		}
	}
	return points
}
