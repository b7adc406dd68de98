package calculation

import (
	"errors"
	"fmt"

	"github.com/ecomet/investor-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidConfig is returned when a projection config violates its constraints.
var ErrInvalidConfig = errors.New("invalid projection config")

// ProjectionEngine runs the month-over-month reinvestment simulation.
// It holds no state between runs; a single engine may be shared by goroutines.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates an engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	pe.Logger = orNop(l)
}

// ValidateConfig checks the projection inputs.
func ValidateConfig(cfg domain.ProjectionConfig) error {
	if cfg.Months < 1 {
		return fmt.Errorf("%w: months must be at least 1, got %d", ErrInvalidConfig, cfg.Months)
	}
	if !cfg.UnitCost.IsPositive() {
		return fmt.Errorf("%w: unit cost must be positive, got %s", ErrInvalidConfig, cfg.UnitCost)
	}
	if cfg.StartingUnitsPerMonth < 0 {
		return fmt.Errorf("%w: starting units per month cannot be negative, got %d", ErrInvalidConfig, cfg.StartingUnitsPerMonth)
	}
	if cfg.ReinvestCap.IsNegative() {
		return fmt.Errorf("%w: reinvest cap cannot be negative, got %s", ErrInvalidConfig, cfg.ReinvestCap)
	}
	return nil
}

// Project simulates cfg.Months months. Each month's profit is reinvested up
// to the cap, the remainder is withdrawn, and the reinvested amount buys
// whole units of capacity that become available the following month.
// Reinvestment is clamped to [0, cap], so a negative profit neither
// reinvests nor withdraws and capacity never shrinks.
func (pe *ProjectionEngine) Project(cfg domain.ProjectionConfig) ([]domain.ProjectionRow, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	log := orNop(pe.Logger)

	capacity := cfg.StartingUnitsPerMonth
	rows := make([]domain.ProjectionRow, 0, cfg.Months)
	for m := 1; m <= cfg.Months; m++ {
		profit := decimal.NewFromInt(int64(capacity)).Mul(cfg.ProfitPerUnit)
		reinvest := decimal.Max(decimal.Zero, decimal.Min(profit, cfg.ReinvestCap))
		withdrawal := decimal.Max(decimal.Zero, profit.Sub(reinvest))
		// Exact truncated quotient; reinvest is never negative so this is the floor.
		q, _ := reinvest.QuoRem(cfg.UnitCost, 0)
		added := int(q.IntPart())

		rows = append(rows, domain.ProjectionRow{
			Month:      m,
			Capacity:   capacity,
			Profit:     profit,
			Reinvest:   reinvest,
			Withdrawal: withdrawal,
			AddedUnits: added,
		})
		log.Debugf("projection month %d: capacity=%d profit=%s reinvest=%s withdrawal=%s added=%d",
			m, capacity, profit.StringFixed(2), reinvest.StringFixed(2), withdrawal.StringFixed(2), added)
		capacity += added
	}
	return rows, nil
}

// Project runs cfg through a default engine.
func Project(cfg domain.ProjectionConfig) ([]domain.ProjectionRow, error) {
	return NewProjectionEngine().Project(cfg)
}
