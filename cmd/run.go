package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jugglefest/jugglefest/fest"
	"github.com/jugglefest/jugglefest/fest/festfile"
	"github.com/jugglefest/jugglefest/fest/trace"
)

var (
	// CLI flags for the run command
	configPath    string // Optional YAML run config
	inputPath     string // Fest input file
	outputPath    string // Assignment report file; stdout when empty
	logLevel      string // Log verbosity level
	reportCircuit string // Circuit whose juggler name sum is printed
	traceLevel    string // Decision trace level
	printSummary  bool   // Print a run summary to stderr
)

// runCmd parses a fest file, scatters the jugglers and writes the assignments
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Assign the jugglers of an input file to circuits",
	Run: func(cmd *cobra.Command, args []string) {
		var fileCfg *fest.RunConfig
		if configPath != "" {
			var err error
			fileCfg, err = fest.LoadRunConfig(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load run config: %v", err)
			}
		}
		cfg := mergeRunConfig(fileCfg, cmd.Flags().Changed)
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid run config: %v", err)
		}

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
		}
		logrus.SetLevel(level)

		if cfg.Input == "" {
			logrus.Fatalf("No input file given. Use --input or set input in the run config.")
		}

		if err := runAssignment(cfg, os.Stdout, os.Stderr); err != nil {
			logrus.Fatalf("Assignment failed: %v", err)
		}
		logrus.Info("Assignment complete.")
	},
}

// mergeRunConfig layers command-line flags over a YAML config.
// A flag wins when it was set explicitly or when the file leaves the field unset.
func mergeRunConfig(fileCfg *fest.RunConfig, changed func(name string) bool) *fest.RunConfig {
	cfg := &fest.RunConfig{}
	if fileCfg != nil {
		*cfg = *fileCfg
	}
	pick := func(field *string, flag, value string) {
		if changed(flag) || *field == "" {
			*field = value
		}
	}
	pick(&cfg.Input, "input", inputPath)
	pick(&cfg.Output, "output", outputPath)
	pick(&cfg.LogLevel, "log", logLevel)
	pick(&cfg.Report.Circuit, "report-circuit", reportCircuit)
	pick(&cfg.Trace.Level, "trace", traceLevel)
	if changed("summary") || cfg.Report.Summary == nil {
		summary := printSummary
		cfg.Report.Summary = &summary
	}
	return cfg
}

// runAssignment executes one run. The report goes to cfg.Output, or to out
// when no output file is set; the summary goes to summaryOut.
func runAssignment(cfg *fest.RunConfig, out, summaryOut io.Writer) error {
	startTime := time.Now()

	parsed, err := festfile.ParseFile(cfg.Input)
	if err != nil {
		return err
	}
	logrus.Infof("Parsed %d circuits and %d jugglers from %s",
		parsed.Circuits.Len(), len(parsed.Jugglers), cfg.Input)

	level := trace.TraceLevel(cfg.Trace.Level)
	wantSummary := cfg.Report.Summary != nil && *cfg.Report.Summary
	if wantSummary && level == "" {
		level = trace.TraceLevelDecisions
	}
	at := trace.NewAssignmentTrace(trace.TraceConfig{Level: level})

	if err := fest.Scatter(parsed.Jugglers, parsed.Circuits, fest.WithTrace(at)); err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := festfile.WriteAssignmentsFile(cfg.Output, parsed.Circuits); err != nil {
			return err
		}
		logrus.Infof("Wrote assignments to %s", cfg.Output)
	} else {
		if err := festfile.WriteAssignments(out, parsed.Circuits); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if !wantSummary {
		return nil
	}
	var nameSum *int
	if cfg.Report.Circuit != "" {
		c, ok := parsed.Circuits.Get(cfg.Report.Circuit)
		if !ok {
			return fmt.Errorf("report circuit %q not found", cfg.Report.Circuit)
		}
		sum, err := fest.NameSum(c.Jugglers)
		if err != nil {
			return err
		}
		nameSum = &sum
	}
	var traceSummary *trace.TraceSummary
	if at.Enabled() {
		traceSummary = trace.Summarize(at)
	}
	writeSummary(summaryOut, runSummary{
		RunID:         at.RunID,
		Circuits:      parsed.Circuits,
		Jugglers:      len(parsed.Jugglers),
		Trace:         traceSummary,
		ReportCircuit: cfg.Report.Circuit,
		NameSum:       nameSum,
		Elapsed:       time.Since(startTime),
	})
	return nil
}

// init sets up CLI flags for the run command
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run config; explicit flags override it")
	runCmd.Flags().StringVar(&inputPath, "input", "", "Path to the fest input file")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Path to write assignments to (default stdout)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&reportCircuit, "report-circuit", "", "Circuit whose juggler name sum is reported")
	runCmd.Flags().StringVar(&traceLevel, "trace", "", "Decision trace level (none, decisions)")
	runCmd.Flags().BoolVar(&printSummary, "summary", true, "Print a run summary to stderr")
}
