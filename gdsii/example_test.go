package gdsii_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wippyai/gds-stream/gdsii"
)

func ExampleDecoder() {
	var buf bytes.Buffer
	_ = gdsii.WriteAll(&buf, []gdsii.Record{
		gdsii.MustRecord(gdsii.NewInt16s(gdsii.TagHeader, 600)),
		gdsii.MustRecord(gdsii.NewString(gdsii.TagLibName, "DEMO")),
		gdsii.MustRecord(gdsii.NewReal8s(gdsii.TagUnits, 0.001, 1e-9)),
		gdsii.MustRecord(gdsii.NewNoData(gdsii.TagEndLib)),
	})

	d := gdsii.NewDecoder(&buf)
	for {
		rec, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(rec)
	}
	// Output:
	// HEADER 600
	// LIBNAME "DEMO"
	// UNITS 0.001 1e-09
	// ENDLIB
}

func ExampleRecord_Encode() {
	rec, err := gdsii.NewInt16s(gdsii.TagLayer, 5)
	if err != nil {
		panic(err)
	}
	frame, err := rec.Encode()
	if err != nil {
		panic(err)
	}
	fmt.Printf("% X\n", frame)
	// Output: 00 06 0D 02 00 05
}

func ExampleEncodeReal8() {
	w, _ := gdsii.EncodeReal8(1.0)
	fmt.Printf("0x%016X %g\n", w, gdsii.DecodeReal8(w))
	// Output: 0x4110000000000000 1
}
