package gdsstream_test

import (
	"bytes"
	"testing"

	gdsstream "github.com/wippyai/gds-stream"
	"github.com/wippyai/gds-stream/gdsii"
)

func TestLibraryRoundTrip(t *testing.T) {
	recs := []gdsii.Record{
		gdsii.MustRecord(gdsii.NewInt16s(gdsii.TagHeader, 600)),
		gdsii.MustRecord(gdsii.NewString(gdsii.TagLibName, "ROUND")),
		gdsii.MustRecord(gdsii.NewReal8s(gdsii.TagUnits, 0.001, 1e-9)),
		gdsii.MustRecord(gdsii.NewNoData(gdsii.TagEndLib)),
	}

	var buf bytes.Buffer
	if err := gdsstream.WriteLibrary(&buf, recs); err != nil {
		t.Fatalf("WriteLibrary: %v", err)
	}
	data := append([]byte(nil), buf.Bytes()...)

	got, err := gdsstream.ReadLibrary(&buf)
	if err != nil {
		t.Fatalf("ReadLibrary: %v", err)
	}
	if len(got) != len(recs) {
		t.Fatalf("expected %d records, got %d", len(recs), len(got))
	}
	if got[1].Text() != "ROUND" {
		t.Errorf("LIBNAME: got %q", got[1].Text())
	}

	var again bytes.Buffer
	if err := gdsstream.WriteLibrary(&again, got); err != nil {
		t.Fatalf("WriteLibrary: %v", err)
	}
	if !bytes.Equal(again.Bytes(), data) {
		t.Error("re-encoded library differs")
	}
}
