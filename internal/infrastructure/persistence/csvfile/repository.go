// Package csvfile persists the employee collection as a comma-delimited
// flat file with a fixed header row.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/bitfutura/ems/internal/domain/employee"
)

// Ensure Repository implements employee.Repository
var _ employee.Repository = (*Repository)(nil)

// Repository stores employee records in a CSV file. Saves go through a
// temporary file in the same directory and an atomic rename, so a failed
// write never leaves a half-formed file behind.
type Repository struct {
	path   string
	logger *zap.Logger
}

// NewRepository creates a CSV-file repository for the given path.
func NewRepository(path string, logger *zap.Logger) *Repository {
	return &Repository{
		path:   path,
		logger: logger,
	}
}

// Path returns the backing file path.
func (r *Repository) Path() string {
	return r.path
}

// LoadAll reads the persisted records in file order. A missing file yields
// an empty collection. Rows are trusted: field formats are not re-validated
// against the domain rules. Rows missing any of the required columns are
// skipped. On a read error the records parsed so far are returned together
// with the error, so the caller can degrade to a partial collection.
func (r *Repository) LoadAll(ctx context.Context) ([]*employee.Employee, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Info("No existing employee data found", zap.String("path", r.path))
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate trailing/extra columns

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header of %s: %w", r.path, err)
	}

	columns, ok := requiredColumns(header)
	if !ok {
		r.logger.Warn("Employee file is missing required columns, ignoring it",
			zap.String("path", r.path), zap.Strings("header", header))
		return nil, nil
	}

	var employees []*employee.Employee
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return employees, fmt.Errorf("read %s: %w", r.path, err)
		}
		emp, ok := rowToEmployee(row, columns)
		if !ok {
			r.logger.Warn("Skipping malformed employee row", zap.Strings("row", row))
			continue
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// SaveAll writes the full collection, header first, replacing the previous
// file contents atomically.
func (r *Repository) SaveAll(ctx context.Context, employees []*employee.Employee) error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	writer := csv.NewWriter(tmp)
	if err := writer.Write(employee.FieldNames); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, emp := range employees {
		fields := emp.Fields()
		row := make([]string, len(employee.FieldNames))
		for i, name := range employee.FieldNames {
			row[i] = fields[name]
		}
		if err := writer.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write record %s: %w", emp.ID(), err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush records: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace %s: %w", r.path, err)
	}

	return nil
}

// requiredColumns maps each required field name to its position in the
// header, reporting false when any required column is absent.
func requiredColumns(header []string) (map[string]int, bool) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range employee.FieldNames {
		if _, ok := columns[name]; !ok {
			return nil, false
		}
	}
	return columns, true
}

// rowToEmployee builds a record from a raw row. Rows too short to carry all
// required columns, or with an unparseable salary, are rejected.
func rowToEmployee(row []string, columns map[string]int) (*employee.Employee, bool) {
	get := func(name string) (string, bool) {
		i := columns[name]
		if i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	values := make(map[string]string, len(employee.FieldNames))
	for _, name := range employee.FieldNames {
		v, ok := get(name)
		if !ok {
			return nil, false
		}
		values[name] = v
	}

	emp, err := employee.New(values["ID"], values["Name"], values["Department"], values["Salary"], values["Contact"])
	if err != nil {
		return nil, false
	}
	return emp, true
}
