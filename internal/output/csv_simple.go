package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ecomet/investor-dashboard/internal/domain"
)

// ProjectionCSV exports the projection table, one row per month.
type ProjectionCSV struct{}

func (ProjectionCSV) Name() string { return "csv" }
func (ProjectionCSV) Ext() string  { return "csv" }

func (ProjectionCSV) Format(d *domain.Dashboard) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "Capacity", "Profit", "Reinvest", "Withdrawal", "AddedUnits"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range d.Projection {
		row := []string{
			intToString(r.Month),
			intToString(r.Capacity),
			r.Profit.StringFixed(2),
			r.Reinvest.StringFixed(2),
			r.Withdrawal.StringFixed(2),
			intToString(r.AddedUnits),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
