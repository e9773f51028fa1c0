package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/uid"
	"github.com/codeninja55/go-radx/dicom/value"
	"github.com/codeninja55/go-radx/dicom/vr"
)

// generateNestedDICOM creates a nested directory structure with synthetic DICOM files
// similar to the CTC_2 structure but without any PHI.
//
// Structure created:
// testdata/dicom/nested/
//
//	├── series_1/ (2 files)
//	├── series_2/ (58 files)
//	├── series_3/ (56 files)
//	├── series_4/ (184 files)
//	├── series_5/ (69 files)
//	├── series_6/ (69 files)
//	├── series_7/ (688 files) - main test target
//	└── series_8/ (69 files)
//
// Total: ~1195 files across 8 series directories
func main() {
	baseDir := filepath.Join("dicom", "nested")

	// Define series structure: series name -> number of files
	seriesStructure := map[string]int{
		"series_1": 2,
		"series_2": 58,
		"series_3": 56,
		"series_4": 184,
		"series_5": 69,
		"series_6": 69,
		"series_7": 688, // Main test target - needs >100 files
		"series_8": 69,
	}

	fmt.Println("Generating synthetic nested DICOM test data...")

	for seriesName, numFiles := range seriesStructure {
		seriesDir := filepath.Join(baseDir, seriesName)

		// Create series directory
		if err := os.MkdirAll(seriesDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating directory %s: %v\n", seriesDir, err)
			os.Exit(1)
		}

		fmt.Printf("Creating %d files in %s...\n", numFiles, seriesName)

		// Generate DICOM files for this series
		for i := 1; i <= numFiles; i++ {
			if err := generateSyntheticDICOM(seriesDir, seriesName, i); err != nil {
				fmt.Fprintf(os.Stderr, "Error generating file %d in %s: %v\n", i, seriesName, err)
				os.Exit(1)
			}
		}

		fmt.Printf("  ✓ Created %d files in %s\n", numFiles, seriesName)
	}

	fmt.Printf("\n✓ Successfully generated synthetic DICOM test data in %s\n", baseDir)
	fmt.Println("  Total files created: ~1195 across 8 series directories")
}

// generateSyntheticDICOM creates a minimal synthetic DICOM file without any PHI
func generateSyntheticDICOM(seriesDir, seriesName string, instanceNum int) error {
	// Create synthetic dataset with minimal required elements
	ds := dicom.NewDataSet()

	// Generate synthetic UIDs using the UID generator (no PHI)
	studyUID := uid.Generate()       // One study UID for all series
	seriesUID := uid.Generate()      // One series UID per series
	sopInstanceUID := uid.Generate() // Unique instance UID per file

	// Set series and instance numbers
	seriesNum := 1
	switch seriesName {
	case "series_1":
		seriesNum = 1
	case "series_2":
		seriesNum = 2
	case "series_3":
		seriesNum = 3
	case "series_4":
		seriesNum = 4
	case "series_5":
		seriesNum = 5
	case "series_6":
		seriesNum = 6
	case "series_7":
		seriesNum = 7
	case "series_8":
		seriesNum = 8
	}

	// Add synthetic patient information and identifiers (clearly marked as
	// test data, no PHI) directly as elements.
	stringElems := []struct {
		t   tag.Tag
		vr  vr.VR
		val string
	}{
		{tag.PatientName, vr.PersonName, fmt.Sprintf("TEST^SYNTHETIC^DATA^%d", instanceNum)},
		{tag.PatientID, vr.LongString, fmt.Sprintf("SYNTHETIC_%s_%04d", seriesName, instanceNum)},
		{tag.PatientBirthDate, vr.Date, "20000101"},
		{tag.PatientSex, vr.CodeString, "O"}, // Other - clearly synthetic
		{tag.SOPClassUID, vr.UniqueIdentifier, "1.2.840.10008.5.1.4.1.1.2"},
		{tag.StudyInstanceUID, vr.UniqueIdentifier, studyUID},
		{tag.SeriesInstanceUID, vr.UniqueIdentifier, seriesUID},
		{tag.SOPInstanceUID, vr.UniqueIdentifier, sopInstanceUID},
		{tag.StudyDate, vr.Date, "20240101"},
		{tag.SeriesNumber, vr.IntegerString, fmt.Sprintf("%d", seriesNum)},
		{tag.InstanceNumber, vr.IntegerString, fmt.Sprintf("%d", instanceNum)},
	}
	for _, e := range stringElems {
		val, err := value.NewStringValue(e.vr, []string{e.val})
		if err != nil {
			return fmt.Errorf("failed to build value for %v: %w", e.t, err)
		}
		elem, err := element.NewElement(e.t, e.vr, val)
		if err != nil {
			return fmt.Errorf("failed to build element for %v: %w", e.t, err)
		}
		if err := ds.Add(elem); err != nil {
			return fmt.Errorf("failed to add element for %v: %w", e.t, err)
		}
	}

	// Write DICOM file
	filename := filepath.Join(seriesDir, fmt.Sprintf("%s.%d.dcm", seriesName, instanceNum))
	if err := dicom.WriteFile(filename, ds); err != nil {
		return fmt.Errorf("failed to write DICOM file: %w", err)
	}

	return nil
}
