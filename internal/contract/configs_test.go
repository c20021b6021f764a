package contract

import (
	"testing"

	"github.com/franchops/storesense/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:           DefaultResultLimit,
		Workers:         4,
		Precision:       DefaultPrecision,
		Output:          "text",
		Direction:       "top",
		FailLevel:       "RISK",
		SnapshotBackend: "sqlite",
		Months:          DefaultMonths,
		Color:           "yes",
	}
}

// TestProcessAndValidateDefaults verifies a valid raw input produces a
// fully populated config with the shipped rule set.
func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.TopDirection, cfg.Direction)
	assert.Equal(t, schema.RiskLevelRisk, cfg.FailLevel)
	assert.Equal(t, schema.SQLiteBackend, cfg.SnapshotBackend)
	assert.True(t, cfg.UseColors)
	require.NotNil(t, cfg.Rules)
	assert.Equal(t, 20.0, cfg.Rules.Baseline)
}

// TestProcessAndValidateNormalization verifies case folding and precision
// clamping on inputs that are recoverable rather than invalid.
func TestProcessAndValidateNormalization(t *testing.T) {
	input := validRawInput()
	input.Output = "JSON"
	input.Direction = "Bottom"
	input.FailLevel = "watchlist"
	input.Precision = 9
	input.Color = "off"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, schema.BottomDirection, cfg.Direction)
	assert.Equal(t, schema.WatchlistLevel, cfg.FailLevel)
	assert.Equal(t, 2, cfg.Precision)
	assert.False(t, cfg.UseColors)
}

// TestProcessAndValidateErrors verifies rejection of out-of-range and
// unknown values.
func TestProcessAndValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ConfigRawInput)
		errMsg string
	}{
		{
			name:   "limit too low",
			mutate: func(in *ConfigRawInput) { in.Limit = 0 },
			errMsg: "limit must be within",
		},
		{
			name:   "limit too high",
			mutate: func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 },
			errMsg: "limit must be within",
		},
		{
			name:   "zero workers",
			mutate: func(in *ConfigRawInput) { in.Workers = 0 },
			errMsg: "workers must be at least 1",
		},
		{
			name:   "unknown output mode",
			mutate: func(in *ConfigRawInput) { in.Output = "xml" },
			errMsg: "invalid output mode",
		},
		{
			name:   "parquet without output file",
			mutate: func(in *ConfigRawInput) { in.Output = "parquet" },
			errMsg: "parquet output requires --output-file",
		},
		{
			name:   "unknown direction",
			mutate: func(in *ConfigRawInput) { in.Direction = "sideways" },
			errMsg: "invalid rank direction",
		},
		{
			name:   "unknown fail level",
			mutate: func(in *ConfigRawInput) { in.FailLevel = "CRITICAL" },
			errMsg: "invalid fail level",
		},
		{
			name:   "negative demo stores",
			mutate: func(in *ConfigRawInput) { in.DemoStores = -1 },
			errMsg: "demo stores cannot be negative",
		},
		{
			name:   "unknown backend",
			mutate: func(in *ConfigRawInput) { in.SnapshotBackend = "oracle" },
			errMsg: "invalid snapshot backend",
		},
		{
			name:   "negative months",
			mutate: func(in *ConfigRawInput) { in.Months = -1 },
			errMsg: "months cannot be negative",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validRawInput()
			tc.mutate(input)
			err := ProcessAndValidate(&Config{}, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

// TestProcessRulesOverrides verifies config-file rule overrides overlay
// the defaults and are re-validated.
func TestProcessRulesOverrides(t *testing.T) {
	baseline := 10.0
	lowQSC := 50.0
	riskMin := 80.0
	unanswered := "EXCLUDE"

	input := validRawInput()
	input.Rules = RulesRawInput{
		Baseline:   &baseline,
		Unanswered: &unanswered,
		Impacts:    &ImpactsRawInput{LowQSC: &lowQSC},
		GradeBands: map[string]float64{"s": 97},
		Thresholds: &ThresholdsRawInput{Risk: &riskMin},
	}

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, 10.0, cfg.Rules.Baseline)
	assert.Equal(t, schema.ExcludePolicy, cfg.Rules.Unanswered)
	assert.Equal(t, 50.0, cfg.Rules.LowQSCImpact)
	assert.Equal(t, 97.0, cfg.Rules.GradeBands[0].MinScore)
	assert.Equal(t, 80.0, cfg.Rules.RiskThresholds[0].MinScore)
}

// TestProcessRulesInvalidOverride verifies a bad override fails as a whole
// rule set, not silently.
func TestProcessRulesInvalidOverride(t *testing.T) {
	baseline := 150.0
	input := validRawInput()
	input.Rules = RulesRawInput{Baseline: &baseline}

	err := ProcessAndValidate(&Config{}, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rule set")
}

// TestValidateDatabaseConnectionString verifies per-backend connection
// string requirements.
func TestValidateDatabaseConnectionString(t *testing.T) {
	cases := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite needs nothing", schema.SQLiteBackend, "", false},
		{"none needs nothing", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/storesense", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql malformed", schema.MySQLBackend, "localhost:3306", true},
		{"postgres keyword form", schema.PostgreSQLBackend, "host=localhost user=app dbname=storesense", false},
		{"postgres url form", schema.PostgreSQLBackend, "postgres://app@localhost/storesense", false},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
		{"postgres malformed", schema.PostgreSQLBackend, "localhost", true},
		{"unknown backend", schema.DatabaseBackend("oracle"), "x", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tc.backend, tc.connStr)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestConfigClone verifies scalar fields are independent after cloning.
func TestConfigClone(t *testing.T) {
	cfg := &Config{StoreID: "store-1", Months: 6, Rules: schema.DefaultRuleSet()}
	clone := cfg.Clone()
	clone.StoreID = "store-2"
	clone.Months = 3

	assert.Equal(t, "store-1", cfg.StoreID)
	assert.Equal(t, 6, cfg.Months)
	assert.Same(t, cfg.Rules, clone.Rules)
}
