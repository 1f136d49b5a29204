package gdsii

import (
	"testing"

	"github.com/wippyai/gds-stream/errors"
)

func TestDecodeKeepsReal8Words(t *testing.T) {
	e := registry[TagMag]
	rec, err := e.Decode([]byte{0x42, 0x01, 0, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rec.Value.words) != 1 || rec.Value.words[0] != 0x4201000000000000 {
		t.Errorf("words: got %X", rec.Value.words)
	}

	clone := cloneValue(rec.Value)
	clone.words[0] = 0
	if rec.Value.words[0] == 0 {
		t.Error("cloneValue shares the word slice")
	}
}

func TestValidateOrder(t *testing.T) {
	var calls []string
	e := &Entry{
		Tag:          TagLayer,
		Name:         "LAYER",
		ExpectedSize: 2,
		CheckSize: func(errors.Phase, int) error {
			calls = append(calls, "size")
			return nil
		},
		CheckData: func(errors.Phase, Value) error {
			calls = append(calls, "data")
			return nil
		},
	}

	if err := e.validate(errors.PhaseDecode, 4, Value{}); err == nil {
		t.Fatal("expected fixed-size failure")
	}
	if len(calls) != 0 {
		t.Errorf("predicates ran after the fixed-size failure: %v", calls)
	}

	if err := e.validate(errors.PhaseDecode, 2, Value{}); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(calls) != 2 || calls[0] != "size" || calls[1] != "data" {
		t.Errorf("order: got %v", calls)
	}
}

func TestRegistryIndexes(t *testing.T) {
	if len(registry) != len(table) {
		t.Errorf("duplicate tags in table: %d entries, %d indexed", len(table), len(registry))
	}
	if len(names) != len(table) {
		t.Errorf("duplicate names in table: %d entries, %d indexed", len(table), len(names))
	}
	for _, e := range table {
		if byte(e.Tag) == DataReal4 {
			t.Errorf("%s uses the real4 data type", e.Name)
		}
		if e.Kind == PayloadNone && byte(e.Tag) != DataNone {
			t.Errorf("%s: marker with data type 0x%02X", e.Name, byte(e.Tag))
		}
	}
}
