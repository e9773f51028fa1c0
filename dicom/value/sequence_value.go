package value

import (
	"fmt"

	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/vr"
)

// Attr is a single decoded attribute within a sequence Item: its tag, the VR
// it was decoded with, and its value. Nested sequences are represented by an
// Attr whose Val is itself a *SequenceValue.
type Attr struct {
	Tag tag.Tag
	VR  vr.VR
	Val Value
}

// Item is the ordered set of attributes that make up one Item of a Sequence
// of Items (SQ). DICOM does not require items to be internally sorted by
// tag, so Item preserves decode order.
type Item []Attr

// Get returns the first attribute in the item matching t, if present.
func (it Item) Get(t tag.Tag) (Attr, bool) {
	for _, a := range it {
		if a.Tag.Equals(t) {
			return a, true
		}
	}
	return Attr{}, false
}

// SequenceValue represents a DICOM Sequence of Items (SQ) value: zero or
// more Items, each a nested set of attributes.
//
// Unlike the other Value implementations, a SequenceValue does not carry a
// self-contained byte encoding: re-serializing a sequence requires knowing
// the transfer syntax (explicit vs. implicit VR, defined vs. undefined
// length) the caller wants to write it back out in, which is a concern of
// the writer, not of the decoded value. Bytes returns nil for this reason.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
type SequenceValue struct {
	items []Item
}

// NewSequenceValue creates a new SequenceValue from already-decoded items.
// A nil items slice is treated as an empty sequence.
func NewSequenceValue(items []Item) (*SequenceValue, error) {
	if items == nil {
		items = []Item{}
	}
	return &SequenceValue{items: items}, nil
}

// VR always returns vr.SequenceOfItems for a SequenceValue.
func (s *SequenceValue) VR() vr.VR {
	return vr.SequenceOfItems
}

// Items returns the sequence's items in decode order.
func (s *SequenceValue) Items() []Item {
	return s.items
}

// Bytes returns nil: sequences have no transfer-syntax-independent byte
// encoding. See the SequenceValue doc comment.
func (s *SequenceValue) Bytes() []byte {
	return nil
}

// String returns a human-readable summary, e.g. "Sequence with 2 items"
// ("Sequence with 1 item" for a single item).
func (s *SequenceValue) String() string {
	if len(s.items) == 1 {
		return "Sequence with 1 item"
	}
	return fmt.Sprintf("Sequence with %d items", len(s.items))
}

// Equals returns true if this sequence has the same items, in the same
// order, with the same tags, VRs, and values as other.
func (s *SequenceValue) Equals(other Value) bool {
	otherSeq, ok := other.(*SequenceValue)
	if !ok {
		return false
	}

	if len(s.items) != len(otherSeq.items) {
		return false
	}

	for i, item := range s.items {
		otherItem := otherSeq.items[i]
		if len(item) != len(otherItem) {
			return false
		}
		for j, attr := range item {
			otherAttr := otherItem[j]
			if !attr.Tag.Equals(otherAttr.Tag) || attr.VR != otherAttr.VR {
				return false
			}
			if (attr.Val == nil) != (otherAttr.Val == nil) {
				return false
			}
			if attr.Val != nil && !attr.Val.Equals(otherAttr.Val) {
				return false
			}
		}
	}

	return true
}

// Verify SequenceValue implements Value interface at compile time
var _ Value = (*SequenceValue)(nil)
