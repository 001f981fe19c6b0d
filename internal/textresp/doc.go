// Package textresp implements fast Reader and Writer types for the legacy text-based RESP2/RESP3
// protocol, used here only to shuttle the verbatim payload of RESPB passthrough frames.
//
// This package is low level and only deals with parsing of the different messages in the RESP protocol, avoiding any
// kind of validation that would slow down reading / writing.
//
// All structs can be reused via the corresponding Reset method and duplex connections are supported using a ReaderWriter
// type that wraps a Reader and a Writer in a single allocation.
package textresp
