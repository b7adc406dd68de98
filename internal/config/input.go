package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ecomet/investor-dashboard/internal/calculation"
	"github.com/ecomet/investor-dashboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDataset is returned for a document that holds no dataset sections.
var ErrEmptyDataset = errors.New("dataset document is empty")

// InputParser loads reporting datasets from YAML or JSON documents.
type InputParser struct {
	Logger calculation.Logger
}

// NewInputParser creates a new input parser. A nil logger discards output.
func NewInputParser(logger calculation.Logger) *InputParser {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &InputParser{Logger: logger}
}

// LoadDataset reads a YAML or JSON dataset file.
func (ip *InputParser) LoadDataset(filename string) (*domain.Dataset, []domain.Issue, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	ds, issues, err := ip.ParseDataset(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	return ds, issues, nil
}

// ParseDataset decodes a dataset document and runs the normalization pass.
// Numeric fields that cannot be read are kept as unavailable and reported
// as issues; only a malformed document is an error.
func (ip *InputParser) ParseDataset(data []byte) (*domain.Dataset, []domain.Issue, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil, ErrEmptyDataset
	}

	var ds domain.Dataset
	if data[0] == '{' {
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, nil, fmt.Errorf("failed to parse JSON dataset: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, nil, fmt.Errorf("failed to parse YAML dataset: %w", err)
	}
	if isEmpty(&ds) {
		return nil, nil, ErrEmptyDataset
	}

	issues := ip.NormalizeDataset(&ds)
	return &ds, issues, nil
}

// NormalizeDataset runs the field and consistency checks once and logs
// every finding.
func (ip *InputParser) NormalizeDataset(ds *domain.Dataset) []domain.Issue {
	issues := calculation.Inspect(ds)
	calculation.LogIssues(ip.Logger, issues)
	if len(issues) == 0 {
		ip.Logger.Debugf("dataset %q passed all checks", ds.Meta.Period)
	}
	return issues
}

// SaveDataset writes a dataset as YAML, keeping the exchange keys.
func SaveDataset(ds *domain.Dataset, filename string) error {
	b, err := yaml.Marshal(ds)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

func isEmpty(ds *domain.Dataset) bool {
	return ds.Meta.Period == "" &&
		!ds.Purchases.InvoiceTotal.IsAvailable() &&
		!ds.Orders.GrossSales.IsAvailable() &&
		!ds.Shipments.TotalUnits.IsAvailable() &&
		len(ds.Shipments.Monthly) == 0 &&
		!ds.Payments.NetPayout.IsAvailable() &&
		!ds.Storage.Total.IsAvailable() &&
		!ds.Returns.TotalUnits.IsAvailable() &&
		!ds.Reimbursements.Amount.IsAvailable() &&
		!ds.Profitability.NetPosition.IsAvailable()
}
