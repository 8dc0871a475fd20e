package gclplugin

import (
	"fmt"
	"strconv"

	"golang.org/x/tools/go/analysis"

	"github.com/relguard/relguard/analyzer"
)

// Settings mirrors the plugin settings block in .golangci.yml.
type Settings struct {
	// Enable lists analyzer names to run. Empty means all.
	Enable []string `json:"enable"`
	// Disable lists analyzer names to skip. Applied after Enable.
	Disable []string `json:"disable"`
	// Thresholds for the paramcount analyzer. Nil keeps the defaults.
	MaxParameters   *int `json:"max-parameters"`
	MaxReturnValues *int `json:"max-return-values"`
}

// Analyzers resolves the settings into a concrete analyzer list.
func (s Settings) Analyzers() ([]*analysis.Analyzer, error) {
	for _, name := range append(append([]string{}, s.Enable...), s.Disable...) {
		if _, ok := analyzer.ByName(name); !ok {
			return nil, fmt.Errorf("unknown analyzer %q", name)
		}
	}

	enabled := make(map[string]bool)
	if len(s.Enable) == 0 {
		for _, a := range analyzer.All() {
			enabled[a.Name] = true
		}
	} else {
		for _, name := range s.Enable {
			enabled[name] = true
		}
	}
	for _, name := range s.Disable {
		enabled[name] = false
	}

	selected := analyzer.FromConfig(enabled)
	if err := s.applyThresholds(selected); err != nil {
		return nil, err
	}
	return selected, nil
}

func (s Settings) applyThresholds(selected []*analysis.Analyzer) error {
	for _, a := range selected {
		if a.Name != "paramcount" {
			continue
		}
		if s.MaxParameters != nil {
			if err := a.Flags.Set("max-params", strconv.Itoa(*s.MaxParameters)); err != nil {
				return fmt.Errorf("invalid max-parameters: %w", err)
			}
		}
		if s.MaxReturnValues != nil {
			if err := a.Flags.Set("max-results", strconv.Itoa(*s.MaxReturnValues)); err != nil {
				return fmt.Errorf("invalid max-return-values: %w", err)
			}
		}
	}
	return nil
}
