package id

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEndToEndUniqueAndBounded(t *testing.T) {
	gen := NewGenerator(time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC))

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		e2e := gen.EndToEnd()
		assert.LessOrEqual(t, len(e2e), 35)
		assert.True(t, strings.HasPrefix(e2e, "LP-20250831-"), "got %q", e2e)
		assert.False(t, seen[e2e], "duplicate end-to-end ID %q", e2e)
		seen[e2e] = true
	}
}

func TestMessageID(t *testing.T) {
	ts := time.Date(2025, 8, 31, 9, 30, 0, 0, time.UTC)
	m1 := MessageID(ts)
	m2 := MessageID(ts)
	assert.True(t, strings.HasPrefix(m1, "LABPAY-20250831093000-"), "got %q", m1)
	assert.NotEqual(t, m1, m2)
}
