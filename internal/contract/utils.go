package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/franchops/storesense/schema"
)

// DateTimeFormat is the timestamp layout used in CSV and table output.
const DateTimeFormat = "2006-01-02 15:04:05"

// DateFormat is the day-granularity layout used where times add no value.
const DateFormat = "2006-01-02"

// Color variables for console output.
var (
	RiskColor      = color.New(color.FgRed, color.Bold)    // immediate intervention
	WatchlistColor = color.New(color.FgYellow, color.Bold) // needs monitoring
	NormalColor    = color.New(color.FgGreen)              // healthy

	GradeTopColor  = color.New(color.FgCyan, color.Bold) // S and A grades
	GradeMidColor  = color.New(color.FgYellow)           // B and C grades
	GradeLowColor  = color.New(color.FgRed, color.Bold)  // D grade
)

// LevelLabel returns the risk level as a plain string. This is the form
// used for CSV, JSON and parquet output.
func LevelLabel(level schema.RiskLevel) string {
	return string(level)
}

// ColorLevelLabel returns a colored risk level label for table output.
func ColorLevelLabel(level schema.RiskLevel, useColors bool) string {
	if !useColors {
		return string(level)
	}
	switch level {
	case schema.RiskLevelRisk:
		return RiskColor.Sprint(level)
	case schema.WatchlistLevel:
		return WatchlistColor.Sprint(level)
	default:
		return NormalColor.Sprint(level)
	}
}

// ColorGradeLabel returns a colored grade label for table output.
func ColorGradeLabel(grade schema.Grade, useColors bool) string {
	if !useColors {
		return string(grade)
	}
	switch grade {
	case schema.GradeS, schema.GradeA:
		return GradeTopColor.Sprint(grade)
	case schema.GradeD:
		return GradeLowColor.Sprint(grade)
	default:
		return GradeMidColor.Sprint(grade)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateText truncates text to maxWidth runes, keeping the head and
// appending an ellipsis. Used for long descriptions in table output.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
