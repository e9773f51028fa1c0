// Package wasmbridge exports the decoder over a WebAssembly host boundary
// for a GOOS=js GOARCH=wasm build.
//
// Only two of the host ABI's exported functions are implemented here:
// instance_from_ptr (decode) and get_value_from_ptr (attribute lookup;
// string, numeric and raw-byte values, with sequences returned as null). The raw-pointer calling convention these
// functions are specified against assumes a non-Go host (the caller passes
// a linear-memory offset and expects one back) -- syscall/js, the only
// wasm bridge the Go toolchain offers, exchanges js.Value handles instead of
// raw pointers, so the functions below approximate the ABI using
// JavaScript-side Uint8Array views rather than bare uint32 offsets. A
// byte-for-byte reimplementation of the pointer ABI (a hand-rolled bump
// allocator exposing __heap_base-relative offsets) is out of scope; see
// DESIGN.md's Open Question entry for wasmbridge.
package wasmbridge
