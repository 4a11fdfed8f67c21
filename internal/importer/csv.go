// Package importer turns CSV exports into posted transactions. The expected
// layout is date,description,amount,type with optional category and account
// name columns; a header row is detected and skipped.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"budgetd/internal/models"
	"budgetd/internal/repositories"
	"budgetd/internal/services"
)

var (
	ErrTooManyRows = errors.New("import exceeds the configured row limit")
	ErrEmptyImport = errors.New("import contains no rows")
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// RowError describes why a single CSV line was rejected
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Result reports the outcome of one import call
type Result struct {
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors,omitempty"`
}

type CSVImporter struct {
	txnService   services.TransactionServiceInterface
	categoryRepo repositories.CategoryRepositoryInterface
	accountRepo  repositories.AccountRepositoryInterface
	metrics      services.MetricsRecorderInterface
	maxRows      int
}

func NewCSVImporter(
	txnService services.TransactionServiceInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	metrics services.MetricsRecorderInterface,
	maxRows int,
) *CSVImporter {
	return &CSVImporter{
		txnService:   txnService,
		categoryRepo: categoryRepo,
		accountRepo:  accountRepo,
		metrics:      metrics,
		maxRows:      maxRows,
	}
}

// csvRow is a raw line held between the read pass and the posting pass
type csvRow struct {
	line    int
	record  []string
	readErr error
}

// Import reads CSV rows and posts one transaction per valid row. The whole
// file is read before anything is posted so the row limit rejects an
// oversized import without committing a partial prefix. Rows with
// unparseable fields are skipped and reported, never aborting the rest of
// the file. Category and account names that match nothing leave the
// reference unset rather than failing the row.
func (imp *CSVImporter) Import(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []csvRow
	dataRows := 0
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rows = append(rows, csvRow{line: line, readErr: err})
			continue
		}
		if line == 1 && isHeaderRow(record) {
			continue
		}
		rows = append(rows, csvRow{line: line, record: record})
		dataRows++
	}

	if imp.maxRows > 0 && dataRows > imp.maxRows {
		return nil, ErrTooManyRows
	}
	if len(rows) == 0 {
		return nil, ErrEmptyImport
	}

	categories, err := imp.categoryIndex()
	if err != nil {
		return nil, err
	}
	accounts, err := imp.accountIndex()
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, row := range rows {
		if row.readErr != nil {
			result.Skipped++
			result.Errors = append(result.Errors, RowError{Line: row.line, Message: fmt.Sprintf("malformed CSV: %v", row.readErr)})
			continue
		}

		txn, rowErr := imp.parseRow(row.record, categories, accounts)
		if rowErr != "" {
			result.Skipped++
			result.Errors = append(result.Errors, RowError{Line: row.line, Message: rowErr})
			continue
		}

		if _, err := imp.txnService.RecordTransaction(txn); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, RowError{Line: row.line, Message: err.Error()})
			continue
		}
		result.Imported++
	}

	if imp.metrics != nil && result.Imported > 0 {
		imp.metrics.RecordImportedRows(result.Imported)
	}

	slog.Info("csv import finished",
		"imported", result.Imported,
		"skipped", result.Skipped)

	return result, nil
}

func (imp *CSVImporter) parseRow(record []string, categories map[string]*models.Category, accounts map[string]*models.Account) (*models.Transaction, string) {
	if len(record) < 4 {
		return nil, "expected at least 4 columns: date, description, amount, type"
	}

	date, ok := parseDate(strings.TrimSpace(record[0]))
	if !ok {
		return nil, fmt.Sprintf("unrecognized date %q", record[0])
	}

	amount, err := models.ParseMoney(record[2])
	if err != nil {
		return nil, fmt.Sprintf("invalid amount %q", record[2])
	}
	if amount.IsNegative() {
		return nil, "amount must not be negative; direction is carried by the type column"
	}

	transactionType := strings.ToLower(strings.TrimSpace(record[3]))
	if !models.IsValidTransactionType(transactionType) {
		return nil, fmt.Sprintf("invalid transaction type %q", record[3])
	}

	txn := &models.Transaction{
		Date:            date,
		Amount:          amount,
		TransactionType: transactionType,
		Description:     strings.TrimSpace(record[1]),
	}
	if txn.Description == "" {
		return nil, "description must not be empty"
	}

	if len(record) > 4 {
		if category, ok := categories[normalizeName(record[4])]; ok {
			txn.CategoryID = &category.ID
		}
	}
	if len(record) > 5 {
		if account, ok := accounts[normalizeName(record[5])]; ok {
			txn.AccountID = &account.ID
		}
	}

	return txn, ""
}

func (imp *CSVImporter) categoryIndex() (map[string]*models.Category, error) {
	categories, err := imp.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for import: %w", err)
	}
	index := make(map[string]*models.Category, len(categories))
	for i := range categories {
		index[normalizeName(categories[i].Name)] = &categories[i]
	}
	return index, nil
}

func (imp *CSVImporter) accountIndex() (map[string]*models.Account, error) {
	accounts, err := imp.accountRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for import: %w", err)
	}
	index := make(map[string]*models.Account, len(accounts))
	for i := range accounts {
		index[normalizeName(accounts[i].Name)] = &accounts[i]
	}
	return index, nil
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func isHeaderRow(record []string) bool {
	if len(record) == 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(record[0]), "date")
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
