package schema

// Custom string types for type safety.
type (
	// Grade represents a letter grade for a scored inspection.
	Grade string

	// RiskLevel represents the derived risk classification of a store.
	RiskLevel string

	// EvidenceKind represents the variant of an evidence item.
	EvidenceKind string

	// EvidenceCategory represents the signal domain of numerical evidence.
	EvidenceCategory string

	// PatternType represents a detected recurring condition.
	PatternType string

	// ContextType represents a contextual, non-numeric evidence marker.
	ContextType string

	// SignalClass represents one of the input signal families.
	SignalClass string

	// Lifecycle represents the operational lifecycle state of a store.
	Lifecycle string

	// UnansweredPolicy represents how unanswered checklist items are scored.
	UnansweredPolicy string

	// RankDirection represents the direction of a ranking query.
	RankDirection string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshots.
	DatabaseBackend string
)

// All letter grades, best to worst.
const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// All risk levels, least to most severe.
const (
	NormalLevel    RiskLevel = "NORMAL"
	WatchlistLevel RiskLevel = "WATCHLIST"
	RiskLevelRisk  RiskLevel = "RISK"
)

// All evidence variants.
const (
	NumericalEvidence EvidenceKind = "numerical"
	PatternEvidence   EvidenceKind = "pattern"
	ContextEvidence   EvidenceKind = "context"
)

// All numerical evidence categories.
const (
	QSCCategory       EvidenceCategory = "QSC"
	POSCategory       EvidenceCategory = "POS"
	OperationCategory EvidenceCategory = "OPERATION"
)

// All pattern types.
const (
	RepeatedPattern        PatternType = "REPEATED"
	ConsecutiveDropPattern PatternType = "CONSECUTIVE_DROP"
	LongTermChurnPattern   PatternType = "LONG_TERM_CHURN"
)

// All context types.
const (
	EventContext        ContextType = "EVENT"
	StatusChangeContext ContextType = "STATUS_CHANGE"
	ActionDelayContext  ContextType = "ACTION_DELAY"
)

// All signal classes consumed by the risk aggregator.
const (
	QSCSignalClass SignalClass = "qsc"
	POSSignalClass SignalClass = "pos"
	OpsSignalClass SignalClass = "ops"
)

// All store lifecycle states, least to most severe.
const (
	OpenLifecycle      Lifecycle = "OPEN"
	WarningLifecycle   Lifecycle = "WARNING"
	SuspendedLifecycle Lifecycle = "SUSPENDED"
)

// All unanswered-item policies.
const (
	StrictPolicy  UnansweredPolicy = "strict" // default: unanswered scores 0, stays in the denominator
	ExcludePolicy UnansweredPolicy = "exclude"
)

// All ranking directions.
const (
	TopDirection    RankDirection = "top"    // highest metric first
	BottomDirection RankDirection = "bottom" // lowest metric first (worst performers)
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All snapshot backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// lifecycleSeverity orders lifecycle states from least to most severe.
var lifecycleSeverity = map[Lifecycle]int{
	OpenLifecycle:      0,
	WarningLifecycle:   1,
	SuspendedLifecycle: 2,
}

// Severity returns the severity rank of a lifecycle state.
// Unknown states rank below OPEN so they never trigger severity rules.
func (l Lifecycle) Severity() int {
	if s, ok := lifecycleSeverity[l]; ok {
		return s
	}
	return -1
}

// MostSevereLifecycle is the lifecycle state that triggers the
// operational-status evidence rule.
const MostSevereLifecycle = SuspendedLifecycle

// severityRank orders risk levels from least to most severe.
var severityRank = map[RiskLevel]int{
	NormalLevel:    0,
	WatchlistLevel: 1,
	RiskLevelRisk:  2,
}

// Severity returns the severity rank of a risk level.
func (r RiskLevel) Severity() int {
	return severityRank[r]
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidSnapshotBackends lists all valid snapshot backends.
var ValidSnapshotBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidRankDirections lists all valid ranking directions.
var ValidRankDirections = map[RankDirection]struct{}{
	TopDirection:    {},
	BottomDirection: {},
}

// ValidUnansweredPolicies lists all valid unanswered-item policies.
var ValidUnansweredPolicies = map[UnansweredPolicy]struct{}{
	StrictPolicy:  {},
	ExcludePolicy: {},
}

// ValidRiskLevels lists all valid risk levels.
var ValidRiskLevels = map[RiskLevel]struct{}{
	NormalLevel:    {},
	WatchlistLevel: {},
	RiskLevelRisk:  {},
}
