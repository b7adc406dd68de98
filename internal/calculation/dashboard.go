package calculation

import (
	"fmt"

	"github.com/ecomet/investor-dashboard/internal/domain"
)

// BuildDashboard assembles the view model for one refresh: dataset
// derivations, the projection and the dataset issues.
func (pe *ProjectionEngine) BuildDashboard(ds *domain.Dataset, cfg domain.ProjectionConfig) (*domain.Dashboard, error) {
	if ds == nil {
		return nil, fmt.Errorf("build dashboard: nil dataset")
	}
	rows, err := pe.Project(cfg)
	if err != nil {
		return nil, fmt.Errorf("build dashboard: %w", err)
	}
	return &domain.Dashboard{
		Dataset:       ds,
		KPIs:          KPIs(ds),
		Funnel:        Funnel(ds),
		SalesQuality:  SalesQualityOf(ds),
		Fees:          FeeBreakdown(ds.Payments),
		ReturnReasons: ReturnReasons(ds.Returns),
		Config:        cfg,
		Projection:    rows,
		Summary:       Summarize(cfg, rows),
		Chart:         ChartSeries(rows),
		Issues:        Inspect(ds),
	}, nil
}
