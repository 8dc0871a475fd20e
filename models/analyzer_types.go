package models

//go:generate go run github.com/dmarkham/enumer@latest -type=AnalyzerType -trimprefix=Analyzer

// AnalyzerType represents the type of analyzer
type AnalyzerType uint8

const (
	AnalyzerCloserType AnalyzerType = iota
	AnalyzerCloseFields
	AnalyzerFinalizer
	AnalyzerNativeHandle
	AnalyzerParamCount
	AnalyzerTypeMax
)

var analyzerNames = [...]string{
	AnalyzerCloserType:   "closertype",
	AnalyzerCloseFields:  "closefields",
	AnalyzerFinalizer:    "finalizer",
	AnalyzerNativeHandle: "nativehandle",
	AnalyzerParamCount:   "paramcount",
}

func (a AnalyzerType) String() string {
	if int(a) < len(analyzerNames) && analyzerNames[a] != "" {
		return analyzerNames[a]
	}
	return "unknown"
}
