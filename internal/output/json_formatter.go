package output

import (
	"encoding/json"

	"github.com/ecomet/investor-dashboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter serializes the dashboard as pretty-printed JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }
func (JSONFormatter) Ext() string  { return "json" }

func (JSONFormatter) Format(d *domain.Dashboard) ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// YAMLFormatter serializes the dashboard as YAML.
type YAMLFormatter struct{}

func (YAMLFormatter) Name() string { return "yaml" }
func (YAMLFormatter) Ext() string  { return "yaml" }

func (YAMLFormatter) Format(d *domain.Dashboard) ([]byte, error) {
	return yaml.Marshal(d)
}
