// Package iban canonicalizes and validates international bank account
// numbers. Validation (mod-97 checksum plus country-specific BBAN rules)
// is delegated to github.com/jbub/banking.
package iban

import (
	"errors"
	"fmt"
	"strings"

	bankiban "github.com/jbub/banking/iban"
)

// ErrEmpty marks a missing IBAN field.
var ErrEmpty = errors.New("empty IBAN")

// Account is a validated IBAN in canonical form (upper case, no spaces).
type Account struct {
	value  string
	parsed *bankiban.Iban
}

// Parse canonicalizes raw (strips spaces, upper-cases) and validates it.
func Parse(raw string) (Account, error) {
	compact := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if compact == "" {
		return Account{}, ErrEmpty
	}
	parsed, err := bankiban.Parse(compact)
	if err != nil {
		return Account{}, fmt.Errorf("invalid IBAN %q: %w", raw, err)
	}
	return Account{value: compact, parsed: parsed}, nil
}

// String returns the canonical IBAN.
func (a Account) String() string { return a.value }

// CountryCode returns the two-letter country prefix.
func (a Account) CountryCode() string { return a.parsed.CountryCode() }

// BankCode returns the country-specific bank code segment of the BBAN.
func (a Account) BankCode() string { return a.parsed.BankCode() }
