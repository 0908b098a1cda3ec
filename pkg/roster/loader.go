package roster

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// Kind identifies the recipient file format.
type Kind string

const (
	// KindCSV is a comma-separated values file.
	KindCSV Kind = "csv"
	// KindWorkbook is an XLSX spreadsheet workbook.
	KindWorkbook Kind = "xlsx"
)

// ParseKind maps operator input to a file kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv", "1":
		return KindCSV, nil
	case "xlsx", "excel", "workbook", "2":
		return KindWorkbook, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// DetectKind guesses the file kind from the path extension, defaulting to CSV.
func DetectKind(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return KindWorkbook
	default:
		return KindCSV
	}
}

// Row is a raw spreadsheet row before validation.
type Row struct {
	Name  string `csv:"name"`
	Email string `csv:"email"`
}

// Recipient is one validated roster entry. Immutable after validation.
type Recipient struct {
	Name  string `csv:"name"`
	Email string `csv:"email"`
}

func init() {
	gocsv.SetHeaderNormalizer(normalizeHeader)
	gocsv.FailIfUnmatchedStructTags = true
}

// normalizeHeader lowercases header names and maps the Indonesian "nama"
// column onto "name" so both spellings load.
func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "nama" {
		return "name"
	}
	return s
}

// Load reads the recipient file at path into raw rows, in file order.
func Load(path string, kind Kind) ([]Row, error) {
	switch kind {
	case KindCSV:
		return LoadCSV(path)
	case KindWorkbook:
		return LoadWorkbook(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// LoadCSV reads rows from a CSV file with name/email columns.
func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFile, err)
	}
	defer f.Close()

	var rows []Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("%w: %v", ErrMissingColumns, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

// LoadWorkbook reads rows from the first sheet of an XLSX workbook.
func LoadWorkbook(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFile, err)
	}
	defer f.Close()

	records, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFile, err)
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}

	nameIdx, emailIdx := -1, -1
	for i, h := range records[0] {
		switch normalizeHeader(h) {
		case "name":
			nameIdx = i
		case "email":
			emailIdx = i
		}
	}
	if nameIdx < 0 || emailIdx < 0 {
		return nil, fmt.Errorf("%w: want name and email headers", ErrMissingColumns)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		var row Row
		if nameIdx < len(rec) {
			row.Name = rec[nameIdx]
		}
		if emailIdx < len(rec) {
			row.Email = rec[emailIdx]
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}
