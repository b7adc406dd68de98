// Package dataset embeds the Apr 1 – Aug 31, 2025 reporting snapshot.
package dataset

import (
	_ "embed"
	"fmt"

	"github.com/ecomet/investor-dashboard/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed snapshot.yaml
var snapshot []byte

// Default decodes a fresh copy of the embedded snapshot. Callers own the
// returned value; nothing is shared between calls.
func Default() (*domain.Dataset, error) {
	var ds domain.Dataset
	if err := yaml.Unmarshal(snapshot, &ds); err != nil {
		return nil, fmt.Errorf("decode embedded dataset: %w", err)
	}
	return &ds, nil
}
