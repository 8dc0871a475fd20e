package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/timakin/bodyclose/passes/bodyclose"
	"gitlab.com/bosi/decorder"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"honnef.co/go/tools/staticcheck"

	"github.com/relguard/relguard/analyzer"
)

// buildEnabledAnalyzers maps the config onto analyzer names the registry knows.
func buildEnabledAnalyzers(config *Config) map[string]bool {
	return map[string]bool{
		"closertype":   config.Analyzers.CloserType.Enabled,
		"closefields":  config.Analyzers.CloseFields.Enabled,
		"finalizer":    config.Analyzers.Finalizer.Enabled,
		"nativehandle": config.Analyzers.NativeHandle.Enabled,
		"paramcount":   config.Analyzers.ParamCount.Enabled,
	}
}

// buildCheckers assembles the full analyzer list for a run: our own rules
// filtered by the config, thresholds applied through analyzer flags, and any
// opted-in third-party bundles appended at the end.
func buildCheckers(config *Config) []*analysis.Analyzer {
	checkers := analyzer.FromConfig(buildEnabledAnalyzers(config))
	applyThresholds(config, checkers)

	if config.Bundle.Staticcheck {
		for _, v := range staticcheck.Analyzers {
			if strings.HasPrefix(v.Analyzer.Name, "SA") {
				checkers = append(checkers, v.Analyzer)
			}
		}
	}
	if config.Bundle.Bodyclose {
		checkers = append(checkers, bodyclose.Analyzer)
	}
	if config.Bundle.Decorder {
		checkers = append(checkers, decorder.Analyzer)
	}

	return checkers
}

func applyThresholds(config *Config, checkers []*analysis.Analyzer) {
	for _, a := range checkers {
		if a.Name != "paramcount" {
			continue
		}
		if v := config.Thresholds.MaxParameters; v > 0 {
			if err := a.Flags.Set("max-params", strconv.Itoa(v)); err != nil {
				slog.Warn("Failed to apply parameter threshold", "error", err)
			}
		}
		if v := config.Thresholds.MaxReturnValues; v > 0 {
			if err := a.Flags.Set("max-results", strconv.Itoa(v)); err != nil {
				slog.Warn("Failed to apply result threshold", "error", err)
			}
		}
	}
}

// runCheck hands the package patterns to the multichecker, which owns all
// loading, caching, diagnostics rendering and the exit code.
func runCheck(config *Config, patterns []string) {
	checkers := buildCheckers(config)
	if len(checkers) == 0 {
		slog.Error("No analyzers enabled, nothing to do")
		os.Exit(1)
	}

	if verbose {
		slog.Info("Running analyzers", "count", len(checkers), "patterns", strings.Join(patterns, " "))
	}

	// multichecker parses os.Args itself, so rebuild it with only the
	// package patterns before handing over control.
	os.Args = append([]string{os.Args[0]}, patterns...)
	multichecker.Main(checkers...)
}
