package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Add(t *testing.T) {
	var r Report
	r.Add(Entry{CaseID: "a", Status: StatusPass})
	r.Add(Entry{CaseID: "b", Status: StatusFail, Reason: "mismatch"})
	r.Add(Entry{CaseID: "c", Status: StatusPass})

	assert.Equal(t, 3, r.Total())
	assert.Equal(t, 2, r.Passed)
	assert.Equal(t, 1, r.Failed)
	assert.False(t, r.OK())
}

func TestWriteTable(t *testing.T) {
	seven := 7.0
	r := &Report{Suite: "reference", Duration: 3 * time.Millisecond}
	r.Add(Entry{CaseID: "precedence", Infix: "A+B*C", Expected: "ABC*+", Got: "ABC*+", Value: &seven, Status: StatusPass})
	r.Add(Entry{CaseID: "empty", Status: StatusPass})
	r.Add(Entry{
		CaseID:    "caret",
		Infix:     "A^B",
		Expected:  "unbalanced_parentheses",
		ErrorKind: "invalid_character",
		Status:    StatusFail,
		Reason:    "expected error unbalanced_parentheses, got invalid_character",
	})

	var buf bytes.Buffer
	require.NoError(t, WriteTable(r, &buf))
	out := buf.String()

	assert.Contains(t, out, "=== Conversion Suite: reference ===")
	assert.Contains(t, out, "Case")
	assert.Contains(t, out, "ABC*+")
	assert.Contains(t, out, `""`)
	assert.Contains(t, out, "invalid_character")
	assert.Contains(t, out, "Passed: 2/3")
	assert.Contains(t, out, "caret: expected error unbalanced_parentheses, got invalid_character")
	assert.NotContains(t, out, "precedence: ")
}
