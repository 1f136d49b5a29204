package gdsii_test

import (
	"bytes"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/gds-stream/gdsii"
)

func TestSetLogger(t *testing.T) {
	defer gdsii.SetLogger(nil)

	core, logs := observer.New(zap.DebugLevel)
	gdsii.SetLogger(zap.New(core))

	if _, err := gdsii.ReadAll(bytes.NewReader(concat(frame(0x0002, 0x02, 0x58), []byte{0x00, 0x05}))); err == nil {
		t.Fatal("expected a decode failure")
	}
	if n := logs.FilterMessage("gdsii stream failed").Len(); n != 1 {
		t.Errorf("expected one failure entry, got %d", n)
	}

	gdsii.SetLogger(nil)
	if gdsii.Logger() == nil {
		t.Fatal("nil logger after reset")
	}
}

func TestSetLoggerConcurrent(t *testing.T) {
	defer gdsii.SetLogger(nil)

	data := sampleLibrary()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			gdsii.SetLogger(zap.NewNop())
		}()
		go func() {
			defer wg.Done()
			if _, err := gdsii.ReadAll(bytes.NewReader(data)); err != nil {
				t.Errorf("ReadAll: %v", err)
			}
		}()
	}
	wg.Wait()
}
