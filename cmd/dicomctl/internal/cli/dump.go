package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"

	"github.com/codeninja55/go-radx/dicom"
)

// DumpCmd prints every attribute of one or more DICOM files as a table.
type DumpCmd struct {
	Paths []string `arg:"" type:"existingfile" help:"DICOM files to dump"`
}

func (c *DumpCmd) Run(_ *GlobalConfig, logger *log.Logger) error {
	for _, path := range c.Paths {
		ds, err := dicom.ParseFile(path)
		if err != nil {
			logger.Error("failed to parse file", "file", path, "error", err)
			continue
		}

		if len(c.Paths) > 1 {
			fmt.Fprintf(os.Stdout, "== %s ==\n", path)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TAG\tVR\tNAME\tVALUE")
		for _, elem := range ds.Elements() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", elem.Tag(), elem.VR(), elem.Name(), elem.Value())
		}
		_ = tw.Flush()
	}
	return nil
}
