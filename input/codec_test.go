package input

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestButtonBits(t *testing.T) {
	// One entry per line of the wire layout table.
	tests := []struct {
		btn Button
		bit uint
	}{
		{DRight, 0},
		{DLeft, 1},
		{DDown, 2},
		{DUp, 3},
		{Start, 4},
		{Z, 5},
		{B, 6},
		{A, 7},
		{CRight, 8},
		{CLeft, 9},
		{CDown, 10},
		{CUp, 11},
		{R, 12},
		{L, 13},
	}

	for _, tt := range tests {
		t.Run(tt.btn.String(), func(t *testing.T) {
			var s State
			s.Set(tt.btn, true)
			if got, want := Encode(s), uint32(1)<<tt.bit; got != want {
				t.Fatalf("Encode(%s) = %08x, want %08x", tt.btn, got, want)
			}

			dec := Decode(uint32(1) << tt.bit)
			if diff := cmp.Diff(s, dec); diff != "" {
				t.Fatalf("Decode(1<<%d) mismatch (-want +got):\n%s", tt.bit, diff)
			}
		})
	}
}

func TestToggleChangesOneBit(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		s := Decode(rng.Uint32() &^ 0xC000)
		for _, b := range Buttons() {
			toggled := s
			toggled.Set(b, !s.Pressed(b))
			if got := Encode(s) ^ Encode(toggled); got != b.Mask() {
				t.Fatalf("toggling %s on %v changed bits %08x, want %08x", b, s, got, b.Mask())
			}
		}
	}
}

func TestAxisSign(t *testing.T) {
	tests := []struct {
		x, y int8
		want uint32
	}{
		{0, 0, 0x00000000},
		{-1, 0, 0x00FF0000},
		{0, -1, 0xFF000000},
		{127, -127, 0x817F0000},
		{-127, 127, 0x7F810000},
		{-5, 0, 0x00FB0000},
		{-128, -128, 0x80800000}, // out of UI range, still lossless
	}

	for _, tt := range tests {
		s := State{X: tt.x, Y: tt.y}
		if got := Encode(s); got != tt.want {
			t.Errorf("Encode(X=%d Y=%d) = %08x, want %08x", tt.x, tt.y, got, tt.want)
		}
		dec := Decode(tt.want)
		if dec.X != tt.x || dec.Y != tt.y {
			t.Errorf("Decode(%08x) = X=%d Y=%d, want X=%d Y=%d", tt.want, dec.X, dec.Y, tt.x, tt.y)
		}
	}
}

func TestDecodeIgnoresUnusedBits(t *testing.T) {
	if diff := cmp.Diff(State{}, Decode(0xC000)); diff != "" {
		t.Fatalf("Decode(0xC000) mismatch (-want +got):\n%s", diff)
	}
	if got := Encode(Decode(0xFFFFFFFF)); got != 0xFFFF3FFF {
		t.Fatalf("Encode(Decode(0xFFFFFFFF)) = %08x, want ffff3fff", got)
	}
}

func TestRoundTripWire(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 10000 {
		w := rng.Uint32() &^ 0xC000
		if got := Encode(Decode(w)); got != w {
			t.Fatalf("Encode(Decode(%08x)) = %08x", w, got)
		}
	}
}

func TestRoundTripState(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	axis := func() int8 { return int8(rng.IntN(AxisMax-AxisMin+1) + AxisMin) }
	for range 10000 {
		var s State
		for _, b := range Buttons() {
			s.Set(b, rng.IntN(2) == 1)
		}
		s.X, s.Y = axis(), axis()

		if diff := cmp.Diff(s, Decode(Encode(s))); diff != "" {
			t.Fatalf("Decode(Encode(s)) mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestScenarioWire(t *testing.T) {
	s := State{A: true, X: -5}
	if got := Encode(s); got != 0x00FB0080 {
		t.Fatalf("Encode(%v) = %08x, want 00fb0080", s, got)
	}
	if got := Encode(State{}); got != 0 {
		t.Fatalf("Encode(default) = %08x, want 0", got)
	}
}

func TestButtonBitsHelper(t *testing.T) {
	if got := ButtonBits(0xFFFFFFFF); got != 0x3FFF {
		t.Fatalf("ButtonBits = %04x, want 3fff", got)
	}
}
