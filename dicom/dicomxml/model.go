// Package dicomxml implements the Native DICOM Model XML representation
// (PS3.19 Annex A): a <NativeDicomModel> document of <DicomAttribute>
// elements, each carrying <Value>, <Item>, <BulkData>, or <InlineBinary>
// children.
package dicomxml

import "encoding/xml"

// NativeDicomModel is the root element of a Native DICOM Model XML document.
type NativeDicomModel struct {
	XMLName    xml.Name         `xml:"NativeDicomModel"`
	Attributes []DicomAttribute `xml:"DicomAttribute"`
}

// DicomAttribute is one <DicomAttribute> element: a tag, VR, optional
// dictionary keyword, and exactly one of Values, Items, BulkData, or
// InlineBinary.
type DicomAttribute struct {
	Tag          string     `xml:"tag,attr"`
	VR           string     `xml:"vr,attr"`
	Keyword      string     `xml:"keyword,attr,omitempty"`
	Values       []XMLValue `xml:"Value,omitempty"`
	Items        []Item     `xml:"Item,omitempty"`
	BulkData     *BulkData  `xml:"BulkData,omitempty"`
	InlineBinary string     `xml:"InlineBinary,omitempty"`
}

// XMLValue is one <Value number="n">...</Value> element.
type XMLValue struct {
	Number int    `xml:"number,attr"`
	Text   string `xml:",chardata"`
}

// Item is one <Item number="n">...</Item> element, holding the nested
// attributes of one sequence item.
type Item struct {
	Number     int              `xml:"number,attr"`
	Attributes []DicomAttribute `xml:"DicomAttribute"`
}

// BulkData is a <BulkData uri="..."/> element referencing externally
// retrievable data.
type BulkData struct {
	URI string `xml:"uri,attr"`
}

// BulkDataURIResolver maps a tag to a WADO-RS bulkdata retrieval URI. See
// dicomjson.BulkDataURIResolver for the equivalent JSON-side contract.
type BulkDataURIResolver func(hex8 string) (string, bool)

// bulkDataThreshold mirrors dicomjson.bulkDataThreshold.
const bulkDataThreshold = 16
