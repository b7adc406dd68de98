package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ecomet/investor-dashboard/internal/domain"
	"golang.org/x/text/language"
)

// FormatAll writes every registered format when used with WriteReport.
const FormatAll = "all"

// nowFunc stamps report file names.
var nowFunc = time.Now

// SetNowFunc replaces the report clock; tests use it for stable file names.
func SetNowFunc(f func() time.Time) { nowFunc = f }

// GenerateReport renders the dashboard in the named format to w.
func GenerateReport(w io.Writer, d *domain.Dashboard, format string, tag language.Tag) error {
	f, err := NewFormatter(format, tag)
	if err != nil {
		return err
	}
	return Render(w, f, d)
}

// WriteReport writes the dashboard to a timestamped file under dir and
// returns the written paths. FormatAll writes one file per format.
func WriteReport(dir string, d *domain.Dashboard, format string, tag language.Tag) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	names := []string{format}
	if NormalizeFormatName(format) == FormatAll {
		names = AvailableFormatterNames()
	}
	var paths []string
	for _, name := range names {
		f, err := NewFormatter(name, tag)
		if err != nil {
			return paths, err
		}
		p, err := WriteFormatted(dir, f, d)
		if err != nil {
			return paths, fmt.Errorf("write %s report: %w", f.Name(), err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
