package dicomjson_test

import (
	"testing"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/dicomjson"
	"github.com/codeninja55/go-radx/dicom/element"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/value"
	"github.com/codeninja55/go-radx/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStringElem(t *testing.T, tg tag.Tag, v vr.VR, s string) *element.Element {
	t.Helper()
	val, err := value.NewStringValue(v, []string{s})
	require.NoError(t, err)
	elem, err := element.NewElement(tg, v, val)
	require.NoError(t, err)
	return elem
}

// TestToModel_StringAttribute tests that a simple string attribute converts
// to a DICOM-JSON entry with its VR and a one-element Value array.
func TestToModel_StringAttribute(t *testing.T) {
	ds := dicom.NewDataSet()
	require.NoError(t, ds.Add(newStringElem(t, tag.PatientName, vr.PersonName, "DOE^JANE")))

	m, err := dicomjson.ToModel(ds, nil)
	require.NoError(t, err)

	attr, ok := m[tag.PatientName.Hex8()]
	require.True(t, ok)
	assert.Equal(t, "PN", attr.VR)
	require.Len(t, attr.Value, 1)
	assert.Equal(t, "DOE^JANE", attr.Value[0])
}

// TestMarshalUnmarshal_RoundTrip tests that a dataset with a plain string
// attribute round-trips through Marshal/Unmarshal unchanged.
func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	ds := dicom.NewDataSet()
	require.NoError(t, ds.Add(newStringElem(t, tag.PatientID, vr.LongString, "AB12")))

	data, err := dicomjson.Marshal(ds, nil)
	require.NoError(t, err)

	got, err := dicomjson.Unmarshal(data)
	require.NoError(t, err)

	elem, err := got.Get(tag.PatientID)
	require.NoError(t, err)
	assert.Equal(t, "AB12", elem.Value().String())
}

// TestToModel_BulkData tests that long binary values defer to the
// BulkDataURIResolver when one resolves the tag, and fall back to
// InlineBinary otherwise.
func TestToModel_BulkData(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i)
	}
	val, err := value.NewBytesValue(vr.OtherByte, data)
	require.NoError(t, err)
	elem, err := element.NewElement(tag.Tag{Group: 0x7FE0, Element: 0x0010}, vr.OtherByte, val)
	require.NoError(t, err)

	ds := dicom.NewDataSet()
	require.NoError(t, ds.Add(elem))

	resolver := func(hex8 string) (string, bool) {
		return "http://example.test/bulkdata/" + hex8, true
	}
	m, err := dicomjson.ToModel(ds, resolver)
	require.NoError(t, err)
	attr := m[elem.Tag().Hex8()]
	assert.Equal(t, "http://example.test/bulkdata/"+elem.Tag().Hex8(), attr.BulkDataURI)
	assert.Empty(t, attr.InlineBinary)

	mNoResolver, err := dicomjson.ToModel(ds, nil)
	require.NoError(t, err)
	attrNoResolver := mNoResolver[elem.Tag().Hex8()]
	assert.Empty(t, attrNoResolver.BulkDataURI)
	assert.NotEmpty(t, attrNoResolver.InlineBinary)
}

// TestSequence_RoundTrip tests that a sequence with one item round-trips
// through Marshal/Unmarshal with the nested attribute intact.
func TestSequence_RoundTrip(t *testing.T) {
	patientIDVal, err := value.NewStringValue(vr.LongString, []string{"AB12"})
	require.NoError(t, err)
	item := value.Item{{Tag: tag.PatientID, VR: vr.LongString, Val: patientIDVal}}
	seqVal, err := value.NewSequenceValue([]value.Item{item})
	require.NoError(t, err)
	seqElem, err := element.NewElement(tag.ReferencedImageSequence, vr.SequenceOfItems, seqVal)
	require.NoError(t, err)

	ds := dicom.NewDataSet()
	require.NoError(t, ds.Add(seqElem))

	data, err := dicomjson.Marshal(ds, nil)
	require.NoError(t, err)

	got, err := dicomjson.Unmarshal(data)
	require.NoError(t, err)

	elem, err := got.Get(tag.ReferencedImageSequence)
	require.NoError(t, err)
	seq, ok := elem.Value().(*value.SequenceValue)
	require.True(t, ok)
	require.Len(t, seq.Items(), 1)

	attr, found := seq.Items()[0].Get(tag.PatientID)
	require.True(t, found)
	assert.Equal(t, "AB12", attr.Val.String())
}
