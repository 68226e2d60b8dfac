package input

import "github.com/go-faster/jx"

var jsonKeys = [NumButtons]string{
	"d_right", "d_left", "d_down", "d_up",
	"start", "z", "b", "a",
	"c_right", "c_left", "c_down", "c_up",
	"r", "l",
}

// EncodeJSON writes s as a JSON object, for example
// {"a":true,...,"x":-5,"y":0}.
func EncodeJSON(e *jx.Encoder, s State) {
	e.ObjStart()
	for _, b := range Buttons() {
		e.FieldStart(jsonKeys[b])
		e.Bool(s.Pressed(b))
	}
	e.FieldStart("x")
	e.Int8(s.X)
	e.FieldStart("y")
	e.Int8(s.Y)
	e.ObjEnd()
}

// DecodeJSON reads a State written by EncodeJSON. Missing fields keep their
// default value; unknown fields are skipped.
func DecodeJSON(d *jx.Decoder) (State, error) {
	var s State
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "x", "y":
			v, err := d.Int8()
			if err != nil {
				return err
			}
			if key == "x" {
				s.X = v
			} else {
				s.Y = v
			}
			return nil
		}
		for b, k := range jsonKeys {
			if k == key {
				v, err := d.Bool()
				if err != nil {
					return err
				}
				s.Set(Button(b), v)
				return nil
			}
		}
		return d.Skip()
	})
	return s, err
}

func (s State) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	EncodeJSON(&e, s)
	return e.Bytes(), nil
}

func (s *State) UnmarshalJSON(data []byte) error {
	v, err := DecodeJSON(jx.DecodeBytes(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
