//go:build js && wasm

package wasmbridge

import (
	"bytes"
	"math"
	"sync"
	"sync/atomic"
	"syscall/js"

	"github.com/codeninja55/go-radx/dicom"
	"github.com/codeninja55/go-radx/dicom/tag"
	"github.com/codeninja55/go-radx/dicom/value"
)

// handles maps a handle (returned to the host) to a decoded DataSet.
var handles sync.Map

var nextHandle uint32

// Register installs instance_from_ptr and get_value_from_ptr as global
// JavaScript functions, following the teacher's plain-function, no-framework
// style -- there is no wasm-specific example anywhere in the pack to ground
// this on, so the shape is the standard syscall/js idiom (register global
// functions, block on an empty channel in main).
func Register() {
	js.Global().Set("instance_from_ptr", js.FuncOf(instanceFromPtr))
	js.Global().Set("get_value_from_ptr", js.FuncOf(getValueFromPtr))
}

// instanceFromPtr(bytes Uint8Array) uint32
//
// The distilled ABI signature is (ptr, size uint32); since syscall/js has no
// notion of a raw linear-memory pointer usable from Go, the host passes a
// Uint8Array value directly instead of a (ptr, size) pair. Decodes with
// dicom.ParseReader and returns an opaque handle (0 on failure).
func instanceFromPtr(_ js.Value, args []js.Value) any {
	if len(args) != 1 {
		return js.ValueOf(0)
	}

	data := make([]byte, args[0].Get("length").Int())
	js.CopyBytesToGo(data, args[0])

	ds, err := dicom.ParseReader(bytes.NewReader(data))
	if err != nil {
		return js.ValueOf(0)
	}

	handle := atomic.AddUint32(&nextHandle, 1)
	handles.Store(handle, ds)
	return js.ValueOf(int(handle))
}

// getValueFromPtr(handle uint32, tagHex8 string) -> Uint8Array | null
//
// tag is passed as its canonical 8-hex-digit string (tag.ParseHex8) rather
// than a raw uint32, since the layout table's numeric tag encoding is only
// meaningful to a caller sharing Go's memory layout; js.Value callers do
// not. Returns null when the handle is invalid or the attribute is absent.
func getValueFromPtr(_ js.Value, args []js.Value) any {
	if len(args) != 2 {
		return js.Null()
	}

	handle := uint32(args[0].Int())
	v, ok := handles.Load(handle)
	if !ok {
		return js.Null()
	}
	ds := v.(*dicom.DataSet)

	t, err := tag.ParseHex8(args[1].String())
	if err != nil {
		return js.Null()
	}

	elem, err := ds.Get(t)
	if err != nil {
		return js.Null()
	}

	return encodeValue(elem.Value())
}

// encodeValue renders a decoded value per the layout table: string VRs as
// NUL-terminated UTF-8, numeric VRs as an IEEE-754 double, binary values as
// raw bytes; sequences and any other value type yield null. Array-of-strings and the explicit [len][data_ptr] binary
// header are left to the caller to reconstruct client-side from this flat
// byte view, since syscall/js already hands back a typed array length.
func encodeValue(v value.Value) any {
	var data []byte
	switch val := v.(type) {
	case *value.StringValue:
		data = append([]byte(val.String()), 0)
	case *value.IntValue:
		ints := val.Ints()
		if len(ints) > 0 {
			data = float64Bytes(float64(ints[0]))
		}
	case *value.FloatValue:
		floats := val.Floats()
		if len(floats) > 0 {
			data = float64Bytes(floats[0])
		}
	case *value.BytesValue:
		data = val.Bytes()
	default:
		return js.Null()
	}

	arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)
	return arr
}

func float64Bytes(f float64) []byte {
	bits := make([]byte, 8)
	u := math.Float64bits(f)
	for i := 0; i < 8; i++ {
		bits[i] = byte(u >> (8 * i))
	}
	return bits
}
