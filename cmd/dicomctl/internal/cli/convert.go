package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/dicomjson"
	"github.com/codeninja55/go-radx/dicom/dicomxml"
)

// Dcm2JSONCmd converts a binary DICOM file to DICOM-JSON.
type Dcm2JSONCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Input DICOM file"`
	Output string `name:"output" short:"o" type:"path" help:"Output path (default: stdout)"`
}

func (c *Dcm2JSONCmd) Run(_ *GlobalConfig, logger *log.Logger) error {
	ds, err := dicom.ParseFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.Input, err)
	}

	b, err := dicomjson.MarshalIndent(ds, nil, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to DICOM-JSON: %w", err)
	}

	return writeOutput(c.Output, b, logger)
}

// Dcm2XMLCmd converts a binary DICOM file to Native DICOM Model XML.
type Dcm2XMLCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Input DICOM file"`
	Output string `name:"output" short:"o" type:"path" help:"Output path (default: stdout)"`
}

func (c *Dcm2XMLCmd) Run(_ *GlobalConfig, logger *log.Logger) error {
	ds, err := dicom.ParseFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.Input, err)
	}

	b, err := dicomxml.MarshalIndent(ds, nil, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to DICOM XML: %w", err)
	}

	return writeOutput(c.Output, b, logger)
}

// JSON2DcmCmd converts a DICOM-JSON document back into a binary DICOM file.
type JSON2DcmCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Input DICOM-JSON file"`
	Output string `arg:"" type:"path" help:"Output DICOM file path"`
}

func (c *JSON2DcmCmd) Run(_ *GlobalConfig, logger *log.Logger) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Input, err)
	}

	ds, err := dicomjson.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("failed to parse DICOM-JSON: %w", err)
	}

	if err := dicom.WriteFile(c.Output, ds); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}

	logger.Info("wrote DICOM file", "output", c.Output)
	return nil
}

func writeOutput(path string, data []byte, logger *log.Logger) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("wrote output", "path", path)
	return nil
}
