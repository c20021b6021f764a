package contract

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/franchops/storesense/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultMonths      = 12
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for the CLI. This struct remains
// the "final, validated" config; raw values from flags, env and the config
// file arrive through ConfigRawInput.
type Config struct {
	Rules *schema.RuleSet

	TemplateFile string
	AnswersFile  string
	SignalsFile  string
	EventsFile   string
	ScoresFile   string

	StoreID     string
	Months      int
	Direction   schema.RankDirection
	ResultLimit int
	Workers     int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	UseColors   bool
	Width       int // Terminal width override (0 = auto-detect)

	FailLevel schema.RiskLevel

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string // Please use env var as this is plaintext

	DemoStores int
	DemoSeed   int64
}

// Clone returns a shallow copy of the config. The rule set is shared; tool
// handlers that tweak scalar fields per request must not mutate Rules.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ImpactsRawInput holds per-rule impact overrides from the config file.
// Pointers distinguish "absent" from an explicit zero.
type ImpactsRawInput struct {
	LowQSC       *float64 `mapstructure:"low_qsc"`
	MidQSC       *float64 `mapstructure:"mid_qsc"`
	SalesDecline *float64 `mapstructure:"sales_decline"`
	SevereStatus *float64 `mapstructure:"severe_status"`
}

// ThresholdsRawInput holds risk threshold overrides from the config file.
type ThresholdsRawInput struct {
	Risk      *float64 `mapstructure:"risk"`
	Watchlist *float64 `mapstructure:"watchlist"`
}

// RulesRawInput holds all rule-set overrides from the YAML config file.
// Anything left nil keeps its DefaultRuleSet value.
type RulesRawInput struct {
	Baseline           *float64            `mapstructure:"baseline"`
	PassThreshold      *float64            `mapstructure:"pass_threshold"`
	DeclineMagnitude   *float64            `mapstructure:"decline_magnitude"`
	ConsecutivePeriods *int                `mapstructure:"consecutive_periods"`
	GraceDays          *int                `mapstructure:"grace_days"`
	Unanswered         *string             `mapstructure:"unanswered"`
	Impacts            *ImpactsRawInput    `mapstructure:"impacts"`
	GradeBands         map[string]float64  `mapstructure:"grade_bands"`
	Thresholds         *ThresholdsRawInput `mapstructure:"thresholds"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Template          string `mapstructure:"template"`
	Answers           string `mapstructure:"answers"`
	Signals           string `mapstructure:"signals"`
	Events            string `mapstructure:"events"`
	Scores            string `mapstructure:"scores"`
	Store             string `mapstructure:"store"`
	Limit             int    `mapstructure:"limit"`
	Workers           int    `mapstructure:"workers"`
	Precision         int    `mapstructure:"precision"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Width             int    `mapstructure:"width"`
	Color             string `mapstructure:"color"`
	SnapshotBackend   string `mapstructure:"snapshot-backend"`
	SnapshotDBConnect string `mapstructure:"snapshot-db-connect"`

	// --- Fields from trendCmd.Flags() ---
	Months int `mapstructure:"months"`

	// --- Fields from rankCmd.Flags() ---
	Direction string `mapstructure:"direction"`

	// --- Fields from checkCmd.Flags() ---
	FailLevel string `mapstructure:"fail-level"`

	// --- Fields from demoCmd.Flags() ---
	DemoStores int   `mapstructure:"demo-stores"`
	DemoSeed   int64 `mapstructure:"demo-seed"`

	// --- Fields from snapshotsMigrateCmd.Flags() ---
	TargetVersion int `mapstructure:"target-version"`

	// --- Rule-set overrides from config file ---
	Rules RulesRawInput `mapstructure:"rules"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processRules(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs validates scalar flags and copies them into cfg.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Limit < 1 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be within [1,%d], got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", input.Workers)
	}
	cfg.Workers = input.Workers

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 2 {
		cfg.Precision = 2
	}

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode: %q. Must be text, csv, json, or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	direction := schema.RankDirection(strings.ToLower(input.Direction))
	if _, ok := schema.ValidRankDirections[direction]; !ok {
		return fmt.Errorf("invalid rank direction: %q. Must be top or bottom", input.Direction)
	}
	cfg.Direction = direction

	failLevel := schema.RiskLevel(strings.ToUpper(input.FailLevel))
	if _, ok := schema.ValidRiskLevels[failLevel]; !ok {
		return fmt.Errorf("invalid fail level: %q. Must be NORMAL, WATCHLIST, or RISK", input.FailLevel)
	}
	cfg.FailLevel = failLevel

	backend := schema.DatabaseBackend(strings.ToLower(input.SnapshotBackend))
	if _, ok := schema.ValidSnapshotBackends[backend]; !ok {
		return fmt.Errorf("invalid snapshot backend: %q. Must be sqlite, mysql, postgresql, or none", input.SnapshotBackend)
	}
	cfg.SnapshotBackend = backend
	if err := ValidateDatabaseConnectionString(backend, input.SnapshotDBConnect); err != nil {
		return err
	}
	cfg.SnapshotDBConnect = input.SnapshotDBConnect

	cfg.UseColors = parseBoolish(input.Color, true)
	cfg.Width = input.Width
	cfg.Months = input.Months
	if cfg.Months < 0 {
		return fmt.Errorf("months cannot be negative, got %d", cfg.Months)
	}

	cfg.TemplateFile = input.Template
	cfg.AnswersFile = input.Answers
	cfg.SignalsFile = input.Signals
	cfg.EventsFile = input.Events
	cfg.ScoresFile = input.Scores
	cfg.StoreID = input.Store

	cfg.DemoStores = input.DemoStores
	if cfg.DemoStores < 0 {
		return fmt.Errorf("demo stores cannot be negative, got %d", cfg.DemoStores)
	}
	cfg.DemoSeed = input.DemoSeed
	return nil
}

// processRules builds the active rule set: defaults overlaid with any
// overrides from the config file, then validated as a whole.
func processRules(cfg *Config, input *ConfigRawInput) error {
	rules := schema.DefaultRuleSet()
	raw := &input.Rules

	if raw.Baseline != nil {
		rules.Baseline = *raw.Baseline
	}
	if raw.PassThreshold != nil {
		rules.PassThreshold = *raw.PassThreshold
	}
	if raw.DeclineMagnitude != nil {
		rules.DeclineMagnitude = *raw.DeclineMagnitude
	}
	if raw.ConsecutivePeriods != nil {
		rules.ConsecutivePeriods = *raw.ConsecutivePeriods
	}
	if raw.GraceDays != nil {
		rules.ActionGraceDays = *raw.GraceDays
	}
	if raw.Unanswered != nil {
		rules.Unanswered = schema.UnansweredPolicy(strings.ToLower(*raw.Unanswered))
	}

	if raw.Impacts != nil {
		if raw.Impacts.LowQSC != nil {
			rules.LowQSCImpact = *raw.Impacts.LowQSC
		}
		if raw.Impacts.MidQSC != nil {
			rules.MidQSCImpact = *raw.Impacts.MidQSC
		}
		if raw.Impacts.SalesDecline != nil {
			rules.SalesDeclineImpact = *raw.Impacts.SalesDecline
		}
		if raw.Impacts.SevereStatus != nil {
			rules.SevereStatusImpact = *raw.Impacts.SevereStatus
		}
	}

	if len(raw.GradeBands) > 0 {
		for i := range rules.GradeBands {
			if min, ok := raw.GradeBands[strings.ToLower(string(rules.GradeBands[i].Grade))]; ok {
				rules.GradeBands[i].MinScore = min
			}
		}
	}

	if raw.Thresholds != nil {
		for i := range rules.RiskThresholds {
			switch rules.RiskThresholds[i].Level {
			case schema.RiskLevelRisk:
				if raw.Thresholds.Risk != nil {
					rules.RiskThresholds[i].MinScore = *raw.Thresholds.Risk
				}
			case schema.WatchlistLevel:
				if raw.Thresholds.Watchlist != nil {
					rules.RiskThresholds[i].MinScore = *raw.Thresholds.Watchlist
				}
			}
		}
	}

	if err := rules.Validate(); err != nil {
		return fmt.Errorf("invalid rule set: %w", err)
	}
	cfg.Rules = rules
	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("snapshot-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("invalid MySQL connection string. Expected format: user:password@tcp(host:port)/dbname")
		}
		return nil
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("snapshot-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("invalid PostgreSQL connection string. Expected key=value pairs or a postgres:// URL")
		}
		return nil
	default:
		return fmt.Errorf("unsupported backend: %s", backend)
	}
}

// parseBoolish interprets yes/no/true/false/1/0 with a fallback default.
func parseBoolish(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return def
	}
}
