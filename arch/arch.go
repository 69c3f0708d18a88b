package arch

import "runtime"

type T int

const (
	Invalid T = iota
	AMD64
	I386
	ARM64
	ARM
)

var native = map[string]T{
	"amd64": AMD64,
	"386":   I386,
	"arm64": ARM64,
	"arm":   ARM,
}

// Native returns the architecture this binary was built for.
func Native() T {
	return native[runtime.GOARCH]
}

var bitness = map[T]Bitness{
	Invalid: BitnessInvalid,
	AMD64:   Bitness64Bit,
	I386:    Bitness32Bit,
	ARM64:   Bitness64Bit,
	ARM:     Bitness32Bit,
}

func (t T) Bitness() Bitness {
	return bitness[t]
}
