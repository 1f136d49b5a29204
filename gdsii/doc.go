// Package gdsii provides GDSII stream format record decoding and encoding.
//
// A GDSII stream is a flat sequence of self-delimited records. Each record
// is a 4-byte big-endian header followed by its payload:
//
//	[total length (2)][tag (2)][payload (total length - 4)]
//
// The total length includes the header and is always even. The tag's high
// byte is the record type, its low byte the wire data type. This package
// decodes and encodes records; it does not interpret their meaning (that
// BOUNDARY is followed by LAYER, XY and ENDEL, for example).
//
// # Payload Kinds
//
//	PayloadNone      markers: BOUNDARY, ENDEL, ENDLIB, ...
//	PayloadBitArray  one 16-bit word: STRANS, PRESENTATION
//	PayloadInt16     16-bit integers: LAYER, DATATYPE, COLROW
//	PayloadInt32     32-bit integers: WIDTH, XY
//	PayloadReal8     excess-64 radix-16 reals: UNITS, MAG, ANGLE
//	PayloadASCII     text, NUL padded to even length: LIBNAME, STRING
//	PayloadDateTime  six 16-bit fields: BGNLIB, BGNSTR
//
// # Decoding
//
// Read a whole library:
//
//	recs, err := gdsii.ReadAll(f)
//
// Or stream it record by record:
//
//	d := gdsii.NewDecoder(f)
//	for {
//	    rec, err := d.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(rec)
//	}
//
// The decoder stops after ENDLIB. Any malformed record fails the stream:
// the format has no resynchronization point, so there is no recovery.
//
// # Encoding
//
//	rec, err := gdsii.NewInt16s(gdsii.TagLayer, 5)
//	frame, err := rec.Encode()
//
// Constructors reject payload kinds that do not match the tag's registered
// kind. Encoding applies the same size and arity constraints as decoding,
// and every record accepted by the decoder re-encodes to identical bytes.
//
// # Registry
//
// Lookup returns the static entry for a tag: payload kind, fixed size and
// validators. The registry is read-only and safe for concurrent use;
// decoders and encoders are not, but independent streams may be processed
// in parallel.
//
// # Errors
//
// All failures are *errors.Error values from the errors package, carrying
// the phase, kind, tag and expected/actual size or count:
//
//	if errors.Is(err, gdserrors.ErrSizeMismatch) { ... }
package gdsii
