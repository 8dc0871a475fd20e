// Package analyzer hosts relguard's reliability and design detectors.
//
// Every detector is a plain golang.org/x/tools/go/analysis.Analyzer: it
// subscribes to the host's inspector pass and reports findings through the
// pass. Scheduling, package loading, and diagnostic aggregation belong to
// whatever driver runs the analyzers (go vet, multichecker, golangci-lint).
package analyzer

import "golang.org/x/tools/go/analysis"

// All returns the analyzers implemented by relguard in stable order.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		closerTypeAnalyzer,
		closeFieldsAnalyzer,
		finalizerAnalyzer,
		nativeHandleAnalyzer,
		paramCountAnalyzer,
	}
}

// ByName returns a single analyzer by its registered name.
func ByName(name string) (*analysis.Analyzer, bool) {
	for _, a := range All() {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// FromConfig filters the bundle by the enabled map. A nil map enables
// everything; a non-nil map enables only names mapped to true.
func FromConfig(enabled map[string]bool) []*analysis.Analyzer {
	all := All()
	if enabled == nil {
		return all
	}
	out := make([]*analysis.Analyzer, 0, len(all))
	for _, a := range all {
		if enabled[a.Name] {
			out = append(out, a)
		}
	}
	return out
}
