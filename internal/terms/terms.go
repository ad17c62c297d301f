package terms

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column is the required header of the input file.
const Column = "search_terms"

var ErrMissingColumn = errors.New("terms: input file has no search_terms column")

// Load reads the search-term list from a CSV file. The file must carry a
// search_terms header column; empty cells are skipped. Duplicate terms
// are kept and processed independently.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("terms: open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrMissingColumn
		}
		return nil, fmt.Errorf("terms: read header: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), Column) {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, ErrMissingColumn
	}

	var out []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("terms: read row: %w", err)
		}
		if col >= len(row) {
			continue
		}
		if term := strings.TrimSpace(row[col]); term != "" {
			out = append(out, term)
		}
	}
	return out, nil
}
