package dicomjson

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/value"
	"github.com/codeninja55/go-radx/dicom/vr"
)

// ToModel converts a DataSet into a DICOM-JSON Model. resolver may be nil, in
// which case every bulk-data-eligible value is emitted as InlineBinary.
func ToModel(ds *dicom.DataSet, resolver BulkDataURIResolver) (Model, error) {
	m := make(Model, ds.Len())
	for _, elem := range ds.Elements() {
		attr, err := attributeFromElement(elem, resolver)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s to DICOM-JSON: %w", elem.Tag(), err)
		}
		m[elem.Tag().Hex8()] = attr
	}
	return m, nil
}

// Marshal converts a DataSet directly to DICOM-JSON bytes.
func Marshal(ds *dicom.DataSet, resolver BulkDataURIResolver) ([]byte, error) {
	m, err := ToModel(ds, resolver)
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

// MarshalIndent is Marshal with json.MarshalIndent formatting.
func MarshalIndent(ds *dicom.DataSet, resolver BulkDataURIResolver, prefix, indent string) ([]byte, error) {
	m, err := ToModel(ds, resolver)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(m, prefix, indent)
}

func attributeFromElement(elem *element.Element, resolver BulkDataURIResolver) (Attribute, error) {
	attr := Attribute{VR: elem.VR().String()}

	switch v := elem.Value().(type) {
	case *value.StringValue:
		for _, s := range v.Strings() {
			attr.Value = append(attr.Value, s)
		}
	case *value.IntValue:
		for _, n := range v.Ints() {
			attr.Value = append(attr.Value, n)
		}
	case *value.FloatValue:
		for _, f := range v.Floats() {
			attr.Value = append(attr.Value, f)
		}
	case *value.BytesValue:
		data := v.Bytes()
		if len(data) == 0 {
			break
		}
		if len(data) > bulkDataThreshold {
			if resolver != nil {
				if uri, ok := resolver(elem.Tag().Hex8()); ok {
					attr.BulkDataURI = uri
					break
				}
			}
		}
		attr.InlineBinary = base64.StdEncoding.EncodeToString(data)
	case *value.SequenceValue:
		items, err := dicom.SequenceItems(v)
		if err != nil {
			return Attribute{}, err
		}
		for _, item := range items {
			itemModel, err := ToModel(item, resolver)
			if err != nil {
				return Attribute{}, err
			}
			attr.Value = append(attr.Value, itemModel)
		}
	default:
		return Attribute{}, fmt.Errorf("unsupported value type %T for tag %s", v, elem.Tag())
	}

	return attr, nil
}

// FromModel converts a decoded DICOM-JSON Model back into a DataSet.
func FromModel(m Model) (*dicom.DataSet, error) {
	ds := dicom.NewDataSet()

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		elem, err := elementFromAttribute(k, m[k])
		if err != nil {
			return nil, fmt.Errorf("failed to convert attribute %s from DICOM-JSON: %w", k, err)
		}
		if err := ds.Add(elem); err != nil {
			return nil, fmt.Errorf("failed to add attribute %s: %w", k, err)
		}
	}

	return ds, nil
}

// Unmarshal parses DICOM-JSON bytes directly into a DataSet.
func Unmarshal(data []byte) (*dicom.DataSet, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse DICOM-JSON: %w", err)
	}
	return FromModel(m)
}

func elementFromAttribute(hex8 string, attr Attribute) (*element.Element, error) {
	t, err := tag.ParseHex8(hex8)
	if err != nil {
		return nil, fmt.Errorf("invalid tag key %q: %w", hex8, err)
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

func valueFromAttribute(v vr.VR, attr Attribute) (value.Value, error) {
	if v == vr.SequenceOfItems {
		items := make([]value.Item, 0, len(attr.Value))
		for i, raw := range attr.Value {
			itemModel, err := coerceItemModel(raw)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			itemDS, err := FromModel(itemModel)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			items = append(items, itemFromDataSet(itemDS))
		}
		return value.NewSequenceValue(items)
	}

	if attr.BulkDataURI != "" {
		return nil, fmt.Errorf("BulkDataURI values cannot be reconstructed without fetching the referenced data")
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
		strs := make([]string, 0, len(attr.Value))
		for _, raw := range attr.Value {
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("expected string Value entry, got %T", raw)
			}
			strs = append(strs, s)
		}
		return value.NewStringValue(v, strs)
	case v.IsNumericType() || v == vr.AttributeTag:
		if isFloatVR(v) {
			floats := make([]float64, 0, len(attr.Value))
			for _, raw := range attr.Value {
				f, ok := raw.(float64)
				if !ok {
					return nil, fmt.Errorf("expected numeric Value entry, got %T", raw)
				}
				floats = append(floats, f)
			}
			return value.NewFloatValue(v, floats)
		}
		ints := make([]int64, 0, len(attr.Value))
		for _, raw := range attr.Value {
			f, ok := raw.(float64)
			if !ok {
				return nil, fmt.Errorf("expected numeric Value entry, got %T", raw)
			}
			ints = append(ints, int64(f))
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

func coerceItemModel(raw interface{}) (Model, error) {
	switch m := raw.(type) {
	case Model:
		return m, nil
	case map[string]interface{}:
		result := make(Model, len(m))
		for k, v := range m {
			attrMap, ok := v.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("malformed item attribute %q", k)
			}
			b, err := json.Marshal(attrMap)
			if err != nil {
				return nil, err
			}
			var attr Attribute
			if err := json.Unmarshal(b, &attr); err != nil {
				return nil, err
			}
			result[k] = attr
		}
		return result, nil
	default:
		return nil, fmt.Errorf("expected sequence item object, got %T", raw)
	}
}

func itemFromDataSet(ds *dicom.DataSet) value.Item {
	item := make(value.Item, 0, ds.Len())
	for _, elem := range ds.Elements() {
		item = append(item, value.Attr{Tag: elem.Tag(), VR: elem.VR(), Val: elem.Value()})
	}
	return item
}
