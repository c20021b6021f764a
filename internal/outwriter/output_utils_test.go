package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormatRootCauses verifies joined display and the empty placeholder.
func TestFormatRootCauses(t *testing.T) {
	assert.Equal(t, "None", formatRootCauses(nil))
	assert.Equal(t, "Low QSC inspection score", formatRootCauses([]string{"Low QSC inspection score"}))
	assert.Equal(t, "a > b > c", formatRootCauses([]string{"a", "b", "c"}))
}

// TestFormatSkippedSignals verifies the compact pipe-joined form.
func TestFormatSkippedSignals(t *testing.T) {
	assert.Equal(t, "", formatSkippedSignals(nil))
	assert.Equal(t, "pos|ops", formatSkippedSignals([]schema.SignalClass{schema.POSSignalClass, schema.OpsSignalClass}))
}

// TestFormatPassed verifies the pass/fail labels.
func TestFormatPassed(t *testing.T) {
	assert.Equal(t, "PASS", formatPassed(true))
	assert.Equal(t, "FAIL", formatPassed(false))
}

// TestCreateFormatters verifies precision handling in the float formatter.
func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(1)
	assert.Equal(t, "76.9", fmtFloat(76.92))
	assert.Equal(t, "%d", intFmt)

	fmtFloat2, _ := createFormatters(2)
	assert.Equal(t, "76.92", fmtFloat2(76.92))
}

// TestWriteJSON verifies two-space indentation.
func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"stores": 3}))
	assert.Equal(t, "{\n  \"stores\": 3\n}\n", buf.String())
}

// TestWriteCSVWithHeader verifies header-then-rows ordering.
func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"store", "score"}, func(w *csv.Writer) error {
		return w.Write([]string{"store-1", "82.5"})
	})
	require.NoError(t, err)
	assert.Equal(t, "store,score\nstore-1,82.5\n", buf.String())
}

// TestGetMaxTableTextWidth verifies the width override and its clamps.
func TestGetMaxTableTextWidth(t *testing.T) {
	cases := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow terminal clamps low", 50, 15},
		{"mid terminal subtracts fixed columns", 100, 55},
		{"wide terminal clamps high", 400, 70},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tc.width}
			assert.Equal(t, tc.want, GetMaxTableTextWidth(cfg))
		})
	}
}
