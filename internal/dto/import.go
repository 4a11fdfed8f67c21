package dto

import "budgetd/internal/importer"

// ImportResponse represents the outcome of a CSV import
type ImportResponse struct {
	Imported int                 `json:"imported"`
	Skipped  int                 `json:"skipped"`
	Errors   []importer.RowError `json:"errors,omitempty"`
}
