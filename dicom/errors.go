// Package dicom provides DICOM file parsing and manipulation.
package dicom

import "errors"

// ErrInvalidPreamble indicates the file doesn't have a valid DICOM preamble.
// A valid DICOM file must have 128 bytes followed by "DICM" (ASCII).
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
var ErrInvalidPreamble = errors.New("invalid DICOM preamble: missing or invalid DICM prefix")

// ErrInvalidVR indicates an invalid or unknown VR was encountered.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
var ErrInvalidVR = errors.New("invalid or unknown VR")

// ErrInvalidTag indicates a malformed tag was encountered.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
var ErrInvalidTag = errors.New("invalid or malformed tag")

// ErrInvalidTransferSyntax indicates an unsupported or invalid transfer syntax.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_10
var ErrInvalidTransferSyntax = errors.New("invalid or unsupported transfer syntax")

// ErrMissingTransferSyntax indicates the Transfer Syntax UID was not found in File Meta Information.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
var ErrMissingTransferSyntax = errors.New("missing Transfer Syntax UID in File Meta Information")

// ErrInvalidLength indicates an invalid value length was encountered.
var ErrInvalidLength = errors.New("invalid value length")

// ErrUndefinedLength indicates an undefined length (0xFFFFFFFF) was encountered.
// This is valid for sequences but requires special handling.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
var ErrUndefinedLength = errors.New("undefined length encountered")

// ErrDuplicateTag indicates the same tag appeared twice at the same nesting
// level while decoding a dataset. The DICOM standard requires each element
// to appear at most once within a dataset.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
var ErrDuplicateTag = errors.New("duplicate tag encountered while decoding dataset")

// ErrUnknownField indicates a query or attribute request referenced a
// keyword or tag this toolkit has no dictionary entry for, and that is not
// a syntactically valid private/standard tag either.
var ErrUnknownField = errors.New("unknown DICOM attribute field")

// ErrUnsupportedTransferSyntax indicates the Transfer Syntax UID in File
// Meta Information is well-formed but not one this decoder recognizes.
// Unlike ErrInvalidTransferSyntax (a malformed/empty UID), this is
// non-fatal: the parser falls back to Explicit VR Little Endian and
// continues, recording the condition as a warning on the resulting
// DataSet rather than aborting the decode.
var ErrUnsupportedTransferSyntax = errors.New("unsupported transfer syntax, falling back to Explicit VR Little Endian")

// ErrUnexpectedTag indicates a tag was encountered somewhere it structurally
// cannot occur, such as an Item tag (FFFE,E000) outside of a sequence.
var ErrUnexpectedTag = errors.New("unexpected tag in current context")

// ErrTruncated indicates the input ended before a complete element, item,
// or sequence could be read. Wraps io.ErrUnexpectedEOF where applicable.
var ErrTruncated = errors.New("truncated DICOM stream")
