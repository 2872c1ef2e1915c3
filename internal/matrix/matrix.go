// Package matrix loads and validates the CSV variant matrix that drives
// icon generation. Loading and row validation are two separate operations:
// the whole batch is validated before anything is generated, and every
// violation is reported, not just the first.
package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Jvryan92/StategyDECK/internal/palette"
)

// CSV header names.
const (
	FieldMode     = "Mode"
	FieldFinish   = "Finish"
	FieldSize     = "Size (px)"
	FieldContext  = "Context"
	FieldFilename = "Filename"
)

var requiredFields = []string{FieldMode, FieldFinish, FieldSize, FieldContext}

// Row is one CSV data row as string-keyed fields. Num is the 1-based
// data-row number used in validation messages.
type Row struct {
	Num    int
	Fields map[string]string
}

// Variant is one validated generation request.
type Variant struct {
	Mode     palette.Mode
	Finish   string
	SizePx   int
	Context  string
	Filename string // optional override, empty = default naming
}

// ValidationError carries every violation found across the batch.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("CSV validation failed with %d problem(s):\n  %s",
		len(e.Problems), strings.Join(e.Problems, "\n  "))
}

// ReadFile reads all data rows of the CSV at path. A missing or unreadable
// file is an error; a header-only or fully empty file yields zero rows.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV matrix")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing CSV matrix %s", path)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for num := 1; ; num++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "parsing CSV matrix %s row %d", path, num)
		}
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				fields[name] = record[i]
			}
		}
		rows = append(rows, Row{Num: num, Fields: fields})
	}
	return rows, nil
}

// Validate checks every row and returns a *ValidationError listing all
// violations, or nil when the batch is clean. Validation never
// short-circuits: three bad rows produce at least three messages.
func Validate(rows []Row) error {
	var problems []string
	for _, row := range rows {
		problems = append(problems, validateRow(row)...)
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func validateRow(row Row) []string {
	var problems []string

	for _, field := range requiredFields {
		if strings.TrimSpace(row.Fields[field]) == "" {
			problems = append(problems, fmt.Sprintf("row %d: missing or empty field %q", row.Num, field))
		}
	}

	if mode := row.Fields[FieldMode]; mode != "" && !palette.ValidMode(mode) {
		problems = append(problems, fmt.Sprintf("row %d: invalid mode %q (must be \"light\" or \"dark\")", row.Num, mode))
	}

	if finish := row.Fields[FieldFinish]; finish != "" && !palette.ValidFinish(finish) {
		problems = append(problems, fmt.Sprintf("row %d: invalid finish %q (must be one of: %s)",
			row.Num, finish, strings.Join(palette.FinishNames(), ", ")))
	}

	if raw := strings.TrimSpace(row.Fields[FieldSize]); raw != "" {
		size, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("row %d: size must be a number, got %q", row.Num, raw))
		case size <= 0:
			problems = append(problems, fmt.Sprintf("row %d: size must be positive, got %d", row.Num, size))
		}
	}

	return problems
}

// Variants converts validated rows into typed requests, preserving CSV
// order. It assumes Validate has passed; a size that fails to parse
// becomes zero, which a validated batch never contains.
func Variants(rows []Row) []Variant {
	out := make([]Variant, 0, len(rows))
	for _, row := range rows {
		size, _ := strconv.Atoi(strings.TrimSpace(row.Fields[FieldSize]))
		out = append(out, Variant{
			Mode:     palette.Mode(row.Fields[FieldMode]),
			Finish:   row.Fields[FieldFinish],
			SizePx:   size,
			Context:  row.Fields[FieldContext],
			Filename: strings.TrimSpace(row.Fields[FieldFilename]),
		})
	}
	return out
}
