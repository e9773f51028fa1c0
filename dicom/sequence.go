// Package dicom provides DICOM file parsing and manipulation.
package dicom

import (
	"fmt"

	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/value"
)

// SequenceItems converts a decoded Sequence of Items (SQ) value into a slice
// of DataSets, one per item, so that nested attributes can be navigated with
// the same Get/GetByKeyword API as a top-level dataset.
//
// value.SequenceValue keeps its items as plain (tag, VR, value) triples
// rather than *element.Element or *DataSet to avoid an import cycle (dicom/
// value cannot import the root dicom package). SequenceItems is the bridge
// that lives on the dicom side of that boundary.
func SequenceItems(seq *value.SequenceValue) ([]*DataSet, error) {
	if seq == nil {
		return nil, nil
	}

	items := seq.Items()
	datasets := make([]*DataSet, len(items))

	for i, item := range items {
		ds := NewDataSet()
		for _, attr := range item {
			elem, err := element.NewElement(attr.Tag, attr.VR, attr.Val)
			if err != nil {
				return nil, fmt.Errorf("failed to build element for item %d attribute %s: %w", i, attr.Tag, err)
			}
			if err := ds.Add(elem); err != nil {
				return nil, fmt.Errorf("failed to add attribute %s to item %d: %w", attr.Tag, i, err)
			}
		}
		datasets[i] = ds
	}

	return datasets, nil
}
