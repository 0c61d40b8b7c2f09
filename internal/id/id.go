// Package id generates the unique identifiers required by the credit
// transfer format: a message ID for the group header and one end-to-end
// ID per payment.
package id

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxEndToEndLen is the scheme limit for an end-to-end identifier.
const maxEndToEndLen = 35

// Generator produces unique end-to-end identifiers for one export run.
type Generator struct {
	datePart string
}

// NewGenerator creates a Generator stamped with the given date.
func NewGenerator(t time.Time) *Generator {
	return &Generator{datePart: t.Format("20060102")}
}

// EndToEnd returns a fresh identifier like "LP-20250831-9F2C41A0B7D3",
// unique per call and within the scheme's 35-character limit.
func (g *Generator) EndToEnd() string {
	s := "LP-" + g.datePart + "-" + hex12()
	if len(s) > maxEndToEndLen {
		s = s[:maxEndToEndLen]
	}
	return s
}

// MessageID returns a group-header message identifier for an export
// created at t.
func MessageID(t time.Time) string {
	return "LABPAY-" + t.Format("20060102150405") + "-" + hex12()
}

func hex12() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:12]
}
