// Command dicomctl is the CLI entrypoint for the DICOM toolkit: file
// inspection (dump), format conversion (dcm2json/dcm2xml/json2dcm),
// filesystem indexing (scan), and the QIDO-RS/WADO-RS query service
// (serve).
package main

import (
	"os"

	"github.com/codeninja55/go-radx/cmd/dicomctl/internal/cli"
)

// Build metadata, injected via -ldflags at release build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.Run(version, commit, date); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
