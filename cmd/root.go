package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/relguard/relguard/analyzer"
	"github.com/relguard/relguard/version"
)

var (
	configPath string
	verbose    bool
	logLevel   string
	jsonLog    bool
)

var rootCmd = &cobra.Command{
	Use:   "relguard [packages]",
	Short: "relguard - reliability and design analyzers for Go",
	Long: `relguard is a collection of static-analysis rules for Go code.
It flags types that own closeable state without a Close method, Close
methods that leak owned fields, unsafe runtime.SetFinalizer usage, raw
native handles without a release method, and functions with excessive
parameter counts.

All driving is delegated to the go/analysis multichecker, so the same
rules also run under go vet -vettool and as a golangci-lint plugin.`,
	Example: `
  relguard ./...                       # analyze all packages
  relguard ./internal/...              # analyze a subtree
  relguard --config=.relguard.yaml .   # explicit configuration`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = append(args, "./...")
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			slog.Error("Failed to load config", "error", err)
			os.Exit(1)
		}

		runCheck(config, args)
	},
}

var initConfigCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long:  `Creates a .relguard.yaml configuration file with default settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		createDefaultConfig()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("relguard version %s\n", version.Version))
		sb.WriteString(fmt.Sprintf("Commit: %s\n", version.CommitHash))
		sb.WriteString(fmt.Sprintf("Built: %s\n", version.BuiltAt))
		fmt.Print(sb.String())
	},
}

var listCmd = &cobra.Command{
	Use:   "list-analyzers",
	Short: "List all available analyzers",
	Long:  `Shows all available analyzers, what each one detects, and its effective configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := LoadConfig(configPath)
		if err != nil {
			slog.Error("Failed to load config", "error", err)
			os.Exit(1)
		}

		fmt.Println("Available Analyzers:")
		fmt.Println("====================")
		for _, a := range analyzer.All() {
			fmt.Println(describeAnalyzer(config, a.Name, a.Doc))
		}
	},
}

// describeAnalyzer renders one list-analyzers line including the analyzer's
// effective state from the loaded config.
func describeAnalyzer(config *Config, name, doc string) string {
	cfg := config.GetAnalyzerConfig(name)
	state := "enabled"
	if !cfg.Enabled {
		state = "disabled"
	}
	if cfg.Severity != "" {
		state += ", severity=" + cfg.Severity
	}
	return fmt.Sprintf("• %-15s [%s] %s", name, state, doc)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "Emit logs as JSON")

	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)

	cobra.OnInitialize(initLogger)
}

func initLogger() {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Keep the message and custom attrs only; the host owns all
			// diagnostic output and the log channel must stay quiet.
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.SourceKey {
				return slog.Attr{}
			}
			return a
		},
	}

	var handler slog.Handler
	if jsonLog {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func Execute() error {
	return rootCmd.Execute()
}

func createDefaultConfig() {
	config := DefaultConfig()

	yamlData, err := yaml.Marshal(config)
	if err != nil {
		slog.Error("Failed to marshal config", "error", err)
		return
	}

	const configFile = ".relguard.yaml"
	const configFileMode = 0644
	if err := os.WriteFile(configFile, yamlData, configFileMode); err != nil {
		slog.Error("Failed to write config file", "error", err)
		return
	}

	fmt.Printf("Created default configuration file: %s\n", configFile)
	fmt.Println("\tEdit this file to customize enabled analyzers and thresholds")
	fmt.Println("")
	fmt.Println("Example usage:")
	fmt.Println("  relguard --config=.relguard.yaml ./...")
}
