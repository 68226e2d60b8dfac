package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseButton(t *testing.T) {
	for b := range NumButtons {
		got, err := ParseButton(b.String())
		if err != nil {
			t.Fatalf("ParseButton(%q) error: %v", b, err)
		}
		if got != b {
			t.Errorf("ParseButton(%q) = %s", b.String(), got)
		}
	}

	for _, s := range []string{"cup", "C-UP", "dright", "start"} {
		if _, err := ParseButton(s); err != nil {
			t.Errorf("ParseButton(%q) error: %v", s, err)
		}
	}
	if _, err := ParseButton("select"); err == nil {
		t.Errorf("ParseButton(select) should fail")
	}
}

func TestParseAxis(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want Axis
	}{{"x", AxisX}, {"Y", AxisY}} {
		got, err := ParseAxis(tt.s)
		if err != nil || got != tt.want {
			t.Errorf("ParseAxis(%q) = %v, %v", tt.s, got, err)
		}
	}
	if _, err := ParseAxis("z"); err == nil {
		t.Errorf("ParseAxis(z) should fail")
	}
}

func TestUpdateApply(t *testing.T) {
	var s State
	Press(A, true).Apply(&s)
	Press(CLeft, true).Apply(&s)
	Move(AxisX, -5).Apply(&s)
	Move(AxisY, 100).Apply(&s)
	Press(A, false).Apply(&s)

	want := State{C: Directional{Left: true}, X: -5, Y: 100}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		old, cur State
		want     []Update
	}{
		{State{}, State{}, nil},
		{
			State{},
			State{A: true, D: Directional{Up: true}, Y: -3},
			[]Update{Press(A, true), Press(DUp, true), Move(AxisY, -3)},
		},
		{
			State{Start: true, X: 12},
			State{X: 13},
			[]Update{Press(Start, false), Move(AxisX, 13)},
		},
	}

	for _, tt := range tests {
		ups := Diff(tt.old, tt.cur)
		if diff := cmp.Diff(tt.want, ups); diff != "" {
			t.Errorf("Diff(%v, %v) mismatch (-want +got):\n%s", tt.old, tt.cur, diff)
		}

		s := tt.old
		for _, u := range ups {
			u.Apply(&s)
		}
		if diff := cmp.Diff(tt.cur, s); diff != "" {
			t.Errorf("applying Diff mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{State{}, "X=0 Y=0"},
		{State{A: true, Start: true, X: -5}, "A + Start X=-5 Y=0"},
		{State{C: Directional{Up: true}, D: Directional{Right: true}, Y: 127}, "C-Up + D-Right X=0 Y=127"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestJSON(t *testing.T) {
	s := State{A: true, C: Directional{Down: true}, X: -5, Y: 127}
	buf, err := s.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	var got State
	if err := got.UnmarshalJSON(buf); err != nil {
		t.Fatalf("UnmarshalJSON(%s) error: %v", buf, err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Fatalf("JSON mismatch (-want +got):\n%s", diff)
	}

	var partial State
	if err := partial.UnmarshalJSON([]byte(`{"start":true,"extra":[1,2],"y":-1}`)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(State{Start: true, Y: -1}, partial); diff != "" {
		t.Fatalf("partial JSON mismatch (-want +got):\n%s", diff)
	}
}
