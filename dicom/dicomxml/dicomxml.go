package dicomxml

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/value"
	"github.com/codeninja55/go-radx/dicom/vr"
)

// ToModel converts a DataSet into a NativeDicomModel. resolver may be nil, in
// which case every bulk-data-eligible value is emitted as InlineBinary.
func ToModel(ds *dicom.DataSet, resolver BulkDataURIResolver) (*NativeDicomModel, error) {
	m := &NativeDicomModel{Attributes: make([]DicomAttribute, 0, ds.Len())}
	for _, elem := range ds.Elements() {
		attr, err := attributeFromElement(elem, resolver)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s to Native DICOM XML: %w", elem.Tag(), err)
		}
		m.Attributes = append(m.Attributes, attr)
	}
	return m, nil
}

// Marshal converts a DataSet directly to Native DICOM Model XML bytes.
func Marshal(ds *dicom.DataSet, resolver BulkDataURIResolver) ([]byte, error) {
	m, err := ToModel(ds, resolver)
	if err != nil {
		return nil, err
	}
	return xml.Marshal(m)
}

// MarshalIndent is Marshal with xml.MarshalIndent formatting.
func MarshalIndent(ds *dicom.DataSet, resolver BulkDataURIResolver, prefix, indent string) ([]byte, error) {
	m, err := ToModel(ds, resolver)
	if err != nil {
		return nil, err
	}
	return xml.MarshalIndent(m, prefix, indent)
}

func attributeFromElement(elem *element.Element, resolver BulkDataURIResolver) (DicomAttribute, error) {
	attr := DicomAttribute{
		Tag:     elem.Tag().Hex8(),
		VR:      elem.VR().String(),
		Keyword: elem.Keyword(),
	}

	switch v := elem.Value().(type) {
	case *value.StringValue:
		for i, s := range v.Strings() {
			attr.Values = append(attr.Values, XMLValue{Number: i + 1, Text: s})
		}
	case *value.IntValue:
		for i, n := range v.Ints() {
			attr.Values = append(attr.Values, XMLValue{Number: i + 1, Text: strconv.FormatInt(n, 10)})
		}
	case *value.FloatValue:
		for i, f := range v.Floats() {
			attr.Values = append(attr.Values, XMLValue{Number: i + 1, Text: strconv.FormatFloat(f, 'g', -1, 64)})
		}
	case *value.BytesValue:
		data := v.Bytes()
		if len(data) == 0 {
			break
		}
		if len(data) > bulkDataThreshold && resolver != nil {
			if uri, ok := resolver(elem.Tag().Hex8()); ok {
				attr.BulkData = &BulkData{URI: uri}
				break
			}
		}
		attr.InlineBinary = base64.StdEncoding.EncodeToString(data)
	case *value.SequenceValue:
		items, err := dicom.SequenceItems(v)
		if err != nil {
			return DicomAttribute{}, err
		}
		for i, item := range items {
			itemModel, err := ToModel(item, resolver)
			if err != nil {
				return DicomAttribute{}, err
			}
			attr.Items = append(attr.Items, Item{Number: i + 1, Attributes: itemModel.Attributes})
		}
	default:
		return DicomAttribute{}, fmt.Errorf("unsupported value type %T for tag %s", v, elem.Tag())
	}

	return attr, nil
}

// FromModel converts a NativeDicomModel back into a DataSet.
func FromModel(m *NativeDicomModel) (*dicom.DataSet, error) {
	ds := dicom.NewDataSet()
	for _, attr := range m.Attributes {
		elem, err := elementFromAttribute(attr)
		if err != nil {
			return nil, fmt.Errorf("failed to convert attribute %s from Native DICOM XML: %w", attr.Tag, err)
		}
		if err := ds.Add(elem); err != nil {
			return nil, fmt.Errorf("failed to add attribute %s: %w", attr.Tag, err)
		}
	}
	return ds, nil
}

// Unmarshal parses Native DICOM Model XML bytes directly into a DataSet.
func Unmarshal(data []byte) (*dicom.DataSet, error) {
	var m NativeDicomModel
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse Native DICOM XML: %w", err)
	}
	return FromModel(&m)
}

func elementFromAttribute(attr DicomAttribute) (*element.Element, error) {
	t, err := tag.ParseHex8(attr.Tag)
	if err != nil {
		return nil, fmt.Errorf("invalid tag %q: %w", attr.Tag, err)
	}

	v, err := vr.Parse(attr.VR)
	if err != nil {
		return nil, fmt.Errorf("invalid VR %q: %w", attr.VR, err)
	}

	val, err := valueFromAttribute(v, attr)
	if err != nil {
		return nil, err
	}

	return element.NewElement(t, v, val)
}

func valueFromAttribute(v vr.VR, attr DicomAttribute) (value.Value, error) {
	if v == vr.SequenceOfItems {
		items := make([]value.Item, 0, len(attr.Items))
		for _, it := range attr.Items {
			itemDS := dicom.NewDataSet()
			for _, nested := range it.Attributes {
				elem, err := elementFromAttribute(nested)
				if err != nil {
					return nil, err
				}
				if err := itemDS.Add(elem); err != nil {
					return nil, err
				}
			}
			items = append(items, itemFromDataSet(itemDS))
		}
		return value.NewSequenceValue(items)
	}

	if attr.BulkData != nil {
		return nil, fmt.Errorf("BulkData values cannot be reconstructed without fetching the referenced data")
	}

	if attr.InlineBinary != "" {
		data, err := base64.StdEncoding.DecodeString(attr.InlineBinary)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 InlineBinary: %w", err)
		}
		return value.NewBytesValue(v, data)
	}

	switch {
	case v.IsStringType():
		strs := make([]string, 0, len(attr.Values))
		for _, val := range attr.Values {
			strs = append(strs, val.Text)
		}
		return value.NewStringValue(v, strs)
	case v.IsNumericType() || v == vr.AttributeTag:
		if isFloatVR(v) {
			floats := make([]float64, 0, len(attr.Values))
			for _, val := range attr.Values {
				f, err := strconv.ParseFloat(strings.TrimSpace(val.Text), 64)
				if err != nil {
					return nil, fmt.Errorf("invalid numeric value %q: %w", val.Text, err)
				}
				floats = append(floats, f)
			}
			return value.NewFloatValue(v, floats)
		}
		ints := make([]int64, 0, len(attr.Values))
		for _, val := range attr.Values {
			n, err := strconv.ParseInt(strings.TrimSpace(val.Text), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid integer value %q: %w", val.Text, err)
			}
			ints = append(ints, n)
		}
		return value.NewIntValue(v, ints)
	default:
		return value.NewBytesValue(v, nil)
	}
}

func isFloatVR(v vr.VR) bool {
	switch v {
	case vr.FloatingPointSingle, vr.FloatingPointDouble:
		return true
	default:
		return false
	}
}

func itemFromDataSet(ds *dicom.DataSet) value.Item {
	item := make(value.Item, 0, ds.Len())
	for _, elem := range ds.Elements() {
		item = append(item, value.Attr{Tag: elem.Tag(), VR: elem.VR(), Val: elem.Value()})
	}
	return item
}
