package core

import (
	"testing"
	"time"
)

func TestPacerReleasesStepsAtRate(t *testing.T) {
	p := NewPacer(10)
	start := time.Unix(100, 0)
	if n := p.Due(start); n != 0 {
		t.Fatalf("first call released %d steps", n)
	}
	if n := p.Due(start.Add(50 * time.Millisecond)); n != 0 {
		t.Fatalf("released %d steps after half an interval", n)
	}
	if n := p.Due(start.Add(100 * time.Millisecond)); n != 1 {
		t.Fatalf("released %d steps after one interval, want 1", n)
	}
	if n := p.Due(start.Add(350 * time.Millisecond)); n != 2 {
		t.Fatalf("released %d steps after 250ms, want 2", n)
	}
	if n := p.Due(start.Add(400 * time.Millisecond)); n != 1 {
		t.Fatalf("leftover time not carried: got %d", n)
	}
}

func TestPacerUnpaced(t *testing.T) {
	p := NewPacer(0)
	now := time.Unix(5, 0)
	for i := 0; i < 3; i++ {
		if n := p.Due(now); n != 1 {
			t.Fatalf("unpaced pacer released %d steps", n)
		}
	}
}
