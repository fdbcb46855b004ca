package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EncodeCSV writes rows without a header, CRLF terminated.
func EncodeCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return cw.WriteAll(rows)
}

// WriteReport writes rep into dir and returns the file path.
func WriteReport(dir string, rep Report) (string, error) {
	path := filepath.Join(dir, rep.File)
	f, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := EncodeCSV(f, rep.Rows); err != nil {
		f.Close()
		return path, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}
