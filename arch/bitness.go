package arch

import "strconv"

type Bitness int

const (
	BitnessInvalid Bitness = 0
	Bitness32Bit   Bitness = 32
	Bitness64Bit   Bitness = 64
)

var bitnessShortNames = map[Bitness]string{
	BitnessInvalid: "??",
	Bitness64Bit:   "64",
	Bitness32Bit:   "32",
}

func (b Bitness) Short() string {
	return bitnessShortNames[b]
}

// PointerSize returns the size in bytes of a pointer on an architecture
// of this bitness.
func (b Bitness) PointerSize() int {
	return int(b) / 8
}

// NativeBitness returns the bitness of the running binary. Architectures
// not covered by Native fall back to the width of the host uint.
func NativeBitness() Bitness {
	if b := Native().Bitness(); b != BitnessInvalid {
		return b
	}
	return Bitness(strconv.IntSize)
}
