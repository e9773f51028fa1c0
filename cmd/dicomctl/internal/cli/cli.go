// Package cli wires the dicomctl subcommands together with alecthomas/kong
// and sets up the process-wide charmbracelet/log logger, following the same
// shape as the teacher's cmd/radx CLI (kong.Parse + GlobalConfig +
// setupLogger).
package cli

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

const (
	appName        = "dicomctl"
	appDescription = "DICOM inspection, conversion, indexing, and query CLI"
)

// GlobalConfig holds flags shared by every subcommand.
type GlobalConfig struct {
	LogLevel string `name:"log-level" enum:"debug,info,warn,error" default:"info" help:"Log verbosity"`
	Pretty   bool   `name:"pretty" default:"true" negatable:"" help:"Human-readable (vs JSON) log output"`
}

// CLI is the root command structure.
type CLI struct {
	GlobalConfig

	Dump     DumpCmd     `cmd:"" help:"Inspect DICOM file contents"`
	Scan     ScanCmd     `cmd:"" help:"Index a directory tree of DICOM files"`
	Serve    ServeCmd    `cmd:"" help:"Run the QIDO-RS/WADO-RS query service"`
	Dcm2JSON Dcm2JSONCmd `cmd:"" name:"dcm2json" help:"Convert a DICOM file to DICOM-JSON"`
	Dcm2XML  Dcm2XMLCmd  `cmd:"" name:"dcm2xml" help:"Convert a DICOM file to Native DICOM Model XML"`
	JSON2Dcm JSON2DcmCmd `cmd:"" name:"json2dcm" help:"Convert DICOM-JSON back to a binary DICOM file"`
}

// ConfigError marks a failure the CLI should report with exit code 2: bad
// YAML, a validator failure, or a missing required field list.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Run to the process exit status: 0 for
// nil, 2 for a configuration error, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return 2
	}
	return 1
}

// Run parses os.Args, sets up logging, and dispatches to the selected
// subcommand.
func Run(version, commit, date string) error {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version, "commit": commit, "date": date},
	)

	logger := setupLogger(&cli.GlobalConfig)
	logger.Debug("dicomctl starting", "version", version, "commit", commit, "build_date", date)

	if err := ctx.Run(&cli.GlobalConfig, logger); err != nil {
		logger.Error("command failed", "error", err)
		return err
	}
	return nil
}

func setupLogger(cfg *GlobalConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	switch cfg.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	if !cfg.Pretty {
		logger.SetFormatter(log.JSONFormatter)
	}

	log.SetDefault(logger)
	return logger
}
