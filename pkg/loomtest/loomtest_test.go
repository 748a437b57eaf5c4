package loomtest

import "testing"

func TestManualFrames_FlushRunsQueued(t *testing.T) {
	frames := NewManualFrames()

	runs := 0
	frames.RequestFrame(func() { runs++ })
	frames.RequestFrame(func() { runs++ })

	if frames.Pending() != 2 {
		t.Fatalf("expected 2 pending, got %d", frames.Pending())
	}
	if ran := frames.Flush(); ran != 2 {
		t.Fatalf("expected 2 run, got %d", ran)
	}
	if runs != 2 {
		t.Fatalf("expected both callbacks to run, got %d", runs)
	}
	if frames.Pending() != 0 {
		t.Fatalf("expected empty queue after flush, got %d", frames.Pending())
	}
}

func TestManualFrames_CancelSkipsCallback(t *testing.T) {
	frames := NewManualFrames()

	ran := false
	cancel := frames.RequestFrame(func() { ran = true })
	cancel()

	if frames.Pending() != 0 {
		t.Fatalf("expected 0 pending after cancel, got %d", frames.Pending())
	}
	if n := frames.Flush(); n != 0 {
		t.Fatalf("expected 0 run, got %d", n)
	}
	if ran {
		t.Fatal("cancelled callback must not run")
	}
}

func TestManualFrames_RequestDuringFlushWaits(t *testing.T) {
	frames := NewManualFrames()

	var nested bool
	frames.RequestFrame(func() {
		frames.RequestFrame(func() { nested = true })
	})

	frames.Flush()
	if nested {
		t.Fatal("callback queued during flush must wait for the next frame")
	}
	frames.Flush()
	if !nested {
		t.Fatal("expected nested callback to run on the next flush")
	}
}
