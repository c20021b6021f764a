//go:build basic

package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStoresenseBasicCommands runs the CLI end to end against file inputs
// with snapshot persistence disabled.
func TestStoresenseBasicCommands(t *testing.T) {
	dir := t.TempDir()

	templatePath := filepath.Join(dir, "template.json")
	require.NoError(t, os.WriteFile(templatePath, []byte(`{
		"id": "qsc-standard",
		"version": "QSC-0001",
		"name": "Standard QSC",
		"categories": [
			{"id": "hyg", "name": "Hygiene", "weight": 50, "items": [
				{"id": "hyg-1", "prompt": "Hand wash station stocked", "weight": 5, "required": true},
				{"id": "hyg-2", "prompt": "Cold storage at temperature", "weight": 5}
			]},
			{"id": "svc", "name": "Service", "weight": 50, "items": [
				{"id": "svc-1", "prompt": "Greeting within 10 seconds", "weight": 5}
			]}
		]
	}`), 0o644))

	answersPath := filepath.Join(dir, "answers.json")
	require.NoError(t, os.WriteFile(answersPath, []byte(`[
		{"storeId": "store-1", "evaluatedAt": "2026-04-01T09:00:00Z", "answers": {"hyg-1": 5, "hyg-2": 4, "svc-1": 5}},
		{"storeId": "store-2", "evaluatedAt": "2026-04-01T10:00:00Z", "answers": {"hyg-1": 3, "hyg-2": 2, "svc-1": 3}}
	]`), 0o644))

	signalsPath := filepath.Join(dir, "signals.json")
	require.NoError(t, os.WriteFile(signalsPath, []byte(`[
		{"storeId": "store-1", "evaluatedAt": "2026-04-01T09:00:00Z",
		 "qsc": {"score": 93.3, "evaluatedAt": "2026-04-01T09:00:00Z"},
		 "pos": {"weekOverWeekPct": 2.0}},
		{"storeId": "store-2", "evaluatedAt": "2026-04-01T10:00:00Z",
		 "qsc": {"score": 53.3, "evaluatedAt": "2026-04-01T10:00:00Z"},
		 "pos": {"weekOverWeekPct": -22.0},
		 "ops": {"status": "SUSPENDED", "statusChangedAt": "2026-03-20T00:00:00Z"}}
	]`), 0o644))

	err := runStoresenseCommand(t, "score",
		"--template", templatePath, "--answers", answersPath,
		"--snapshot-backend", "none")
	require.NoError(t, err)

	err = runStoresenseCommand(t, "risk",
		"--signals", signalsPath,
		"--snapshot-backend", "none")
	require.NoError(t, err)

	err = runStoresenseCommand(t, "rules", "--output", "json")
	require.NoError(t, err)

	// store-2 is at RISK, so check must exit non-zero.
	err = runStoresenseCommand(t, "check",
		"--signals", signalsPath,
		"--fail-level", "RISK",
		"--snapshot-backend", "none")
	require.Error(t, err)
}
