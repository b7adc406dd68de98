package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/ecomet/investor-dashboard/internal/calculation"
	"github.com/ecomet/investor-dashboard/internal/domain"
)

// DatasetCSV flattens every numeric dataset field into Path,Value,Available
// rows. Unavailable values are written with an empty Value.
type DatasetCSV struct{}

func (DatasetCSV) Name() string { return "dataset-csv" }
func (DatasetCSV) Ext() string  { return "csv" }

func (DatasetCSV) Format(d *domain.Dashboard) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Path", "Value", "Available"}); err != nil {
		return nil, err
	}
	if d.Dataset != nil {
		for _, f := range calculation.Fields(d.Dataset) {
			value := ""
			if f.Amount.IsAvailable() {
				value = f.Amount.String()
			}
			if err := w.Write([]string{f.Path, value, strconv.FormatBool(f.Amount.IsAvailable())}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
