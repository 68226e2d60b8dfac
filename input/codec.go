package input

// Wire value layout, bit 0 being the least significant:
//
//	0-3    D-Right, D-Left, D-Down, D-Up
//	4-7    Start, Z, B, A
//	8-11   C-Right, C-Left, C-Down, C-Up
//	12-13  R, L
//	14-15  unused, always 0
//	16-23  X, two's complement
//	24-31  Y, two's complement
const (
	xShift = 16
	yShift = 24

	buttonsMask = 1<<NumButtons - 1
)

func getbit(v uint32, n Button) bool { return (v>>n)&1 != 0 }

func b2u32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Decode converts a wire value into a State. Bits 14 and 15 are ignored.
func Decode(v uint32) State {
	return State{
		D: Directional{
			Right: getbit(v, DRight),
			Left:  getbit(v, DLeft),
			Down:  getbit(v, DDown),
			Up:    getbit(v, DUp),
		},
		Start: getbit(v, Start),
		Z:     getbit(v, Z),
		B:     getbit(v, B),
		A:     getbit(v, A),
		C: Directional{
			Right: getbit(v, CRight),
			Left:  getbit(v, CLeft),
			Down:  getbit(v, CDown),
			Up:    getbit(v, CUp),
		},
		R: getbit(v, R),
		L: getbit(v, L),
		X: int8(uint8(v >> xShift)),
		Y: int8(uint8(v >> yShift)),
	}
}

// Encode converts s into its wire value. X and Y are written as their raw
// 8-bit pattern, whatever their value.
func Encode(s State) uint32 {
	v := b2u32(s.D.Right)<<DRight |
		b2u32(s.D.Left)<<DLeft |
		b2u32(s.D.Down)<<DDown |
		b2u32(s.D.Up)<<DUp |
		b2u32(s.Start)<<Start |
		b2u32(s.Z)<<Z |
		b2u32(s.B)<<B |
		b2u32(s.A)<<A |
		b2u32(s.C.Right)<<CRight |
		b2u32(s.C.Left)<<CLeft |
		b2u32(s.C.Down)<<CDown |
		b2u32(s.C.Up)<<CUp |
		b2u32(s.R)<<R |
		b2u32(s.L)<<L

	v |= uint32(uint8(s.X)) << xShift
	v |= uint32(uint8(s.Y)) << yShift
	return v
}

// ButtonBits returns the button bits of a wire value, stick lanes and unused
// bits cleared.
func ButtonBits(v uint32) uint32 {
	return v & buttonsMask
}
