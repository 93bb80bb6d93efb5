package data

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/tantralabs/bspx/models"
)

// Cache keeps one CSV file of bars per ticker in Dir. Files are written once and never
// overwritten.
type Cache struct {
	Dir string
}

// NewCache returns a cache rooted at dir.
func NewCache(dir string) *Cache {
	return &Cache{Dir: dir}
}

// Path returns the file bars of ticker are cached in.
func (c *Cache) Path(ticker string) string {
	return filepath.Join(c.Dir, ticker+"_returns.csv")
}

// Exists reports whether ticker has a cache file.
func (c *Cache) Exists(ticker string) bool {
	_, err := os.Stat(c.Path(ticker))
	return err == nil
}

// Load reads the cached bars of ticker. A missing file yields an error matching os.ErrNotExist.
func (c *Cache) Load(ticker string) ([]*models.Bar, error) {
	f, err := os.Open(c.Path(ticker))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bars := []*models.Bar{}
	if err := gocsv.UnmarshalFile(f, &bars); err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name(), err)
	}
	return bars, nil
}

// Store writes bars to the cache file of ticker. It fails with an error matching
// os.ErrExist if the file is already there.
func (c *Cache) Store(ticker string, bars []*models.Bar) (err error) {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(c.Path(ticker), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(f.Name())
		}
	}()

	if err := gocsv.MarshalFile(&bars, f); err != nil {
		return fmt.Errorf("writing %s: %w", f.Name(), err)
	}
	return nil
}
