package models

import "fmt"

// RuleType represents specific rule findings as an enum
//
//go:generate go run github.com/dmarkham/enumer@latest -type=RuleType -trimprefix=Rule
type RuleType uint16

const (
	// Closer rules (1-9)
	RuleCloserMissing RuleType = 1 + iota
	RuleCloseFieldNotClosed

	// Finalizer rules (10-19)
	RuleFinalizerCapture RuleType = 10 + iota - 2
	RuleFinalizerEmpty
	RuleFinalizerPanic

	// Native handle rules (20-29)
	RuleNativeHandleNoClose RuleType = 20 + iota - 5

	// Design rules (30-39)
	RuleTooManyParams RuleType = 30 + iota - 6
	RuleTooManyResults

	RuleTypeMax RuleType = 40
)

// ruleSeverityMap holds severities for rules that are not LOW
var ruleSeverityMap = map[RuleType]SeverityLevel{
	RuleCloserMissing:       SeverityLevelHigh,
	RuleFinalizerCapture:    SeverityLevelHigh,
	RuleFinalizerPanic:      SeverityLevelHigh,
	RuleCloseFieldNotClosed: SeverityLevelMedium,
	RuleNativeHandleNoClose: SeverityLevelMedium,
}

func (r RuleType) Severity() SeverityLevel {
	if severity, ok := ruleSeverityMap[r]; ok {
		return severity
	}
	// LOW severity - all other rules
	return SeverityLevelLow
}

// ruleAnalyzerMap maps each rule to the analyzer that detects it
var ruleAnalyzerMap = map[RuleType]AnalyzerType{
	RuleCloserMissing:       AnalyzerCloserType,
	RuleCloseFieldNotClosed: AnalyzerCloseFields,
	RuleFinalizerCapture:    AnalyzerFinalizer,
	RuleFinalizerEmpty:      AnalyzerFinalizer,
	RuleFinalizerPanic:      AnalyzerFinalizer,
	RuleNativeHandleNoClose: AnalyzerNativeHandle,
	RuleTooManyParams:       AnalyzerParamCount,
	RuleTooManyResults:      AnalyzerParamCount,
}

// GetAnalyzer returns the analyzer type that detects this rule
func (r RuleType) GetAnalyzer() AnalyzerType {
	if analyzer, ok := ruleAnalyzerMap[r]; ok {
		return analyzer
	}
	return AnalyzerCloserType // Default fallback
}

// GetRGID returns the RG-ID for this rule type (e.g., RG-001)
func (r RuleType) GetRGID() string {
	return fmt.Sprintf("RG-%03d", int(r))
}

// ruleSummaryMap explains why each finding matters
var ruleSummaryMap = map[RuleType]string{
	RuleCloserMissing:       "owning a closeable value without exposing Close leaks the resource when the owner goes out of scope",
	RuleCloseFieldNotClosed: "a Close method that skips an owned closeable field leaks that field's resource",
	RuleFinalizerCapture:    "a finalizer closure that captures enclosing variables extends their lifetime; capturing the finalized object itself keeps it reachable forever",
	RuleFinalizerEmpty:      "an empty finalizer does nothing but delays collection of the object by at least one GC cycle",
	RuleFinalizerPanic:      "a panic inside a finalizer is unrecoverable and crashes the whole program during garbage collection",
	RuleNativeHandleNoClose: "raw OS handles are invisible to the garbage collector and stay open until the process exits",
	RuleTooManyParams:       "long parameter lists are error-prone at call sites and usually hide a missing struct",
	RuleTooManyResults:      "many return values force callers to track positional meaning and invite swapped assignments",
}

// Summary returns the rationale attached to diagnostics for this rule
func (r RuleType) Summary() string {
	return ruleSummaryMap[r]
}

// ruleFixMap holds the suggested remediation per rule
var ruleFixMap = map[RuleType]string{
	RuleCloserMissing:       "implement io.Closer on the owning type and close the field there",
	RuleCloseFieldNotClosed: "close or hand off the field inside Close",
	RuleFinalizerCapture:    "give the finalizer the object via its parameter and capture nothing else",
	RuleFinalizerEmpty:      "remove the SetFinalizer call",
	RuleFinalizerPanic:      "return instead of panicking; log if the state is unexpected",
	RuleNativeHandleNoClose: "add a Close (or Release/Free) method that releases the handle",
	RuleTooManyParams:       "group related parameters into a struct",
	RuleTooManyResults:      "return a struct or split the function",
}

// Fix returns the remediation hint attached to diagnostics for this rule
func (r RuleType) Fix() string {
	return ruleFixMap[r]
}
