// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package wire implements the iRODS wire encoding: a constrained XML dialect
// (the "packing instruction" or _PI dialect) plus the length-prefixed framing
// that carries it over a duplex byte stream.
//
// Every message in the catalogue has a fixed element name and a fixed child
// order. Decoders are written as explicit state machines over the token
// stream from an encoding/xml.Decoder rather than as a general tree
// unmarshal, so that an unexpected tag can be reported together with the
// state that expected something else.
package wire
