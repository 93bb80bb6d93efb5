// Package report exports annotated series and priced option chains to CSV files and
// InfluxDB.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/tantralabs/bspx/models"
)

// WriteCSV replaces the file at path with rows, a slice of gocsv tagged structs.
func WriteCSV(path string, rows interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	os.Remove(path)
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	if err := gocsv.MarshalFile(rows, file); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}

// SeriesPath returns dir/TICKER_annotated.csv.
func SeriesPath(dir, ticker string) string {
	return filepath.Join(dir, strings.ToUpper(ticker)+"_annotated.csv")
}

// ChainPath returns dir/TICKER_chain.csv.
func ChainPath(dir, ticker string) string {
	return filepath.Join(dir, strings.ToUpper(ticker)+"_chain.csv")
}

// WriteSeries writes the annotated bars of ticker under dir.
func WriteSeries(dir, ticker string, rows []*models.AnnotatedBar) error {
	return WriteCSV(SeriesPath(dir, ticker), &rows)
}

// WriteChain writes the priced chain of ticker under dir.
func WriteChain(dir, ticker string, rows []models.ChainRow) error {
	return WriteCSV(ChainPath(dir, ticker), &rows)
}
