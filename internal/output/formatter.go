package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ecomet/investor-dashboard/internal/domain"
	"golang.org/x/text/language"
)

// ErrUnsupportedFormat is returned for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formatter renders a dashboard into bytes.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(d *domain.Dashboard) ([]byte, error)
	// Name returns the canonical format name.
	Name() string
	// Ext returns the file extension used when writing to disk.
	Ext() string
}

// Localizer is implemented by formatters whose output depends on locale.
type Localizer interface {
	WithLocale(tag language.Tag) Formatter
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	ProjectionCSV{},
	DatasetCSV{},
	JSONFormatter{},
	YAMLFormatter{},
	HTMLFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":           "console",
	"table":          "console",
	"projection-csv": "csv",
	"detailed-csv":   "dataset-csv",
	"fields":         "dataset-csv",
	"json-pretty":    "json",
	"yml":            "yaml",
	"htm":            "html",
	"web":            "html",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// NewFormatter resolves a format name and applies the locale.
func NewFormatter(name string, tag language.Tag) (Formatter, error) {
	f := GetFormatterByName(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	if l, ok := f.(Localizer); ok {
		return l.WithLocale(tag), nil
	}
	return f, nil
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render formats d and writes it to w.
func Render(w io.Writer, f Formatter, d *domain.Dashboard) error {
	data, err := f.Format(d)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFormatted runs a formatter and writes the output to a timestamped
// file in dir, returning its path.
func WriteFormatted(dir string, f Formatter, d *domain.Dashboard) (string, error) {
	data, err := f.Format(d)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("ecomet_%s_%s.%s", f.Name(), nowFunc().Format("20060102_150405"), f.Ext())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
