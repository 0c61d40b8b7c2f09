// Package bankdir maps bank codes to BICs. The directory starts from a
// built-in extract and may be extended by a bank-directory.csv overlay; a
// lookup miss is not an error, rows simply export without a BIC.
package bankdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Entry maps one national bank code to its BIC.
type Entry struct {
	Country  string // ISO 3166-1 alpha-2
	BankCode string
	BIC      string
	Name     string
}

// Directory provides in-memory BIC lookup by country and bank code.
type Directory struct {
	entries []Entry
	byCode  map[string]Entry
}

// NewDirectory creates a Directory from entries. Later entries override
// earlier ones with the same country and bank code.
func NewDirectory(entries []Entry) *Directory {
	byCode := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byCode[key(e.Country, e.BankCode)] = e
	}
	return &Directory{entries: entries, byCode: byCode}
}

// Load returns the built-in directory merged with the overlay file at
// <root>/banks/bank-directory.csv, if one exists.
func Load(root string) (*Directory, error) {
	entries := DefaultEntries()

	path := filepath.Join(root, "banks", "bank-directory.csv")
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewDirectory(entries), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening bank directory: %w", err)
	}
	defer f.Close()

	overlay, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading bank directory %s: %w", path, err)
	}
	return NewDirectory(append(entries, overlay...)), nil
}

// Lookup returns the BIC for a country and bank code, or false on a miss.
func (d *Directory) Lookup(country, bankCode string) (string, bool) {
	e, ok := d.byCode[key(country, bankCode)]
	if !ok {
		return "", false
	}
	return e.BIC, true
}

// All returns every entry in the directory.
func (d *Directory) All() []Entry {
	return d.entries
}

func key(country, bankCode string) string {
	return strings.ToUpper(country) + ":" + strings.ToUpper(bankCode)
}
