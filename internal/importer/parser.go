// internal/importer/parser.go
package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tealeg/xlsx/v3"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
)

// MaxFileSize is the default upload cap.
const MaxFileSize = 10 << 20 // 10 MiB

// Accepted header synonyms per canonical field, matched after trimming
// and case folding. The import sheets arrive with mixed Russian and
// Latin headers.
var (
	shkHeaderAliases  = []string{"артикул", "shk", "шк"}
	nameHeaderAliases = []string{"название", "name", "наименование"}
)

// ParseResult is the outcome of reading an import spreadsheet. Rows
// that were skipped for missing fields are reported as warnings, not
// errors.
type ParseResult struct {
	Items    []domain.MinimalImportRecord
	Warnings []string
}

// ValidateFile checks the declared file name and size before any
// parsing. Rejection leaves no partial state behind.
func ValidateFile(filename string, size int64, maxSize int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xlsx" && ext != ".xls" {
		return domain.NewValidationError("неподдерживаемый тип файла %q: ожидается .xlsx или .xls", ext)
	}
	if maxSize > 0 && size > maxSize {
		return domain.NewValidationError("файл слишком большой (%d байт), максимум %d байт", size, maxSize)
	}
	return nil
}

// Parse reads the first sheet of an xlsx document: the first row is
// the header row, matched against the synonym sets; every following
// row yields a minimal record when both cells are non-empty. Entirely
// empty rows are skipped silently; rows missing one field are skipped
// with a warning. Zero valid rows is an error.
func Parse(data []byte) (*ParseResult, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, domain.NewValidationError("не удалось прочитать Excel файл: %v", err)
	}

	if len(file.Sheets) == 0 {
		return nil, domain.NewValidationError("Excel файл не содержит листов")
	}
	sheet := file.Sheets[0]

	var (
		result   ParseResult
		shkCol   = -1
		nameCol  = -1
		rowIdx   int
		rowError error
	)

	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		defer func() { rowIdx++ }()

		if rowIdx == 0 {
			shkCol, nameCol = resolveColumns(r, sheet.MaxCol)
			if shkCol == -1 || nameCol == -1 {
				rowError = missingHeaderError(shkCol, nameCol)
			}
			return nil
		}
		if rowError != nil {
			return nil
		}

		shk := strings.TrimSpace(cellString(r, shkCol))
		name := strings.TrimSpace(cellString(r, nameCol))

		if shk == "" && name == "" && rowIsEmpty(r, sheet.MaxCol) {
			return nil
		}
		if shk == "" || name == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("строка %d: пропущены обязательные поля (Артикул: %q, Название: %q)", rowIdx+1, shk, name))
			return nil
		}

		result.Items = append(result.Items, domain.MinimalImportRecord{SHK: shk, Name: name})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate sheet rows: %w", err)
	}
	if rowError != nil {
		return nil, rowError
	}
	if rowIdx == 0 {
		return nil, domain.NewValidationError("Excel файл пустой")
	}
	if len(result.Items) == 0 {
		return nil, domain.NewValidationError("в файле не найдены валидные данные для загрузки")
	}

	return &result, nil
}

// resolveColumns locates the item-code and name columns in the header
// row. Matching is a pure lookup against the alias sets, independent
// of cell order.
func resolveColumns(header *xlsx.Row, maxCol int) (shkCol, nameCol int) {
	shkCol, nameCol = -1, -1
	for i := 0; i < maxCol; i++ {
		value := strings.ToLower(strings.TrimSpace(cellString(header, i)))
		if value == "" {
			continue
		}
		if shkCol == -1 && matchesAlias(value, shkHeaderAliases) {
			shkCol = i
			continue
		}
		if nameCol == -1 && matchesAlias(value, nameHeaderAliases) {
			nameCol = i
		}
	}
	return shkCol, nameCol
}

func matchesAlias(value string, aliases []string) bool {
	for _, alias := range aliases {
		if value == alias {
			return true
		}
	}
	return false
}

func missingHeaderError(shkCol, nameCol int) error {
	var missing []string
	if shkCol == -1 {
		missing = append(missing, fmt.Sprintf("не найдена колонка «Артикул» (варианты: %s)", strings.Join(shkHeaderAliases, ", ")))
	}
	if nameCol == -1 {
		missing = append(missing, fmt.Sprintf("не найдена колонка «Название» (варианты: %s)", strings.Join(nameHeaderAliases, ", ")))
	}
	return domain.NewValidationError("неверная структура файла: %s", strings.Join(missing, "; "))
}

func cellString(r *xlsx.Row, idx int) string {
	if idx < 0 {
		return ""
	}
	c := r.GetCell(idx)
	if c == nil {
		return ""
	}
	return c.String()
}

func rowIsEmpty(r *xlsx.Row, maxCol int) bool {
	for i := 0; i < maxCol; i++ {
		if strings.TrimSpace(cellString(r, i)) != "" {
			return false
		}
	}
	return true
}
