package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Encode serializes rows under header in the same dialect Parse reads.
// Missing keys are written as empty cells.
func Encode(header []string, rows []Row) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(header))
	for i, row := range rows {
		for c, h := range header {
			record[c] = row[h]
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
