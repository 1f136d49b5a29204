// Package gdsstream reads and writes GDSII stream files at the record level.
//
// A GDSII library is a flat sequence of length-prefixed binary records. This
// module decodes each record into a typed value and encodes typed values back
// into frames, byte for byte.
//
// # Architecture Overview
//
//	gdsstream/           Root package with the Source and Sink stream contracts
//	├── gdsii/           Record framing, field codec and tag registry
//	├── errors/          Structured error types for debugging
//	└── cmd/gdsdump/     Record dump and interactive browser
//
// # Quick Start
//
// Read a library:
//
//	f, err := os.Open("chip.gds")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	recs, err := gdsstream.ReadLibrary(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, rec := range recs {
//	    fmt.Println(rec)
//	}
//
// Write one:
//
//	err := gdsstream.WriteLibrary(w, []gdsii.Record{
//	    gdsii.MustRecord(gdsii.NewInt16s(gdsii.TagHeader, 600)),
//	    gdsii.MustRecord(gdsii.NewNoData(gdsii.TagEndLib)),
//	})
//
// # Thread Safety
//
// The tag registry is immutable and safe for concurrent use. Decoders and
// encoders hold stream state and must be used by a single goroutine; separate
// streams can be processed in parallel.
//
// # Scope
//
// Records are not assembled into structures or elements, and no ordering
// between records is checked beyond the terminal ENDLIB.
package gdsstream
