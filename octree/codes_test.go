package octree

import (
	"math/rand"

	"go.viam.com/linearoctree/morton"
)

// tinyCode is a two level code, enough to spell out splits by hand.
type tinyCode uint8

const tinyNull = tinyCode(0xff)

func tiny(d0, d1 uint8) tinyCode {
	return tinyCode(d0<<3 | d1)
}

func (c tinyCode) Null() tinyCode        { return tinyNull }
func (c tinyCode) IsNull() bool          { return c == tinyNull }
func (c tinyCode) Levels() int           { return 2 }
func (c tinyCode) Bits() int             { return 8 }
func (c tinyCode) Digit(level int) uint8 { return uint8(c>>(3*(1-level))) & 7 }

func (c tinyCode) WithDigit(level int, d uint8) tinyCode {
	s := 3 * (1 - level)
	return c&^(7<<s) | tinyCode(d&7)<<s
}

// flatCode claims two levels but reports every digit as zero, so distinct codes never diverge.
type flatCode uint8

func (c flatCode) Null() flatCode                       { return 0xff }
func (c flatCode) IsNull() bool                         { return c == 0xff }
func (c flatCode) Levels() int                          { return 2 }
func (c flatCode) Bits() int                            { return 8 }
func (c flatCode) Digit(level int) uint8                { return 0 }
func (c flatCode) WithDigit(level int, d uint8) flatCode { return c }

// wideCode claims more levels than its storage can hold.
type wideCode uint8

func (c wideCode) Null() wideCode                       { return 0xff }
func (c wideCode) IsNull() bool                         { return c == 0xff }
func (c wideCode) Levels() int                          { return 3 }
func (c wideCode) Bits() int                            { return 8 }
func (c wideCode) Digit(level int) uint8                { return 0 }
func (c wideCode) WithDigit(level int, d uint8) wideCode { return c }

// lostNullCode has a null sentinel that does not recognize itself.
type lostNullCode uint8

func (c lostNullCode) Null() lostNullCode                       { return 0xff }
func (c lostNullCode) IsNull() bool                             { return false }
func (c lostNullCode) Levels() int                              { return 2 }
func (c lostNullCode) Bits() int                                { return 8 }
func (c lostNullCode) Digit(level int) uint8                    { return 0 }
func (c lostNullCode) WithDigit(level int, d uint8) lostNullCode { return c }

// zeroNullCode uses the all-zero code, which is also the code of octants 0 and 0, as null.
type zeroNullCode uint8

func (c zeroNullCode) Null() zeroNullCode    { return 0 }
func (c zeroNullCode) IsNull() bool          { return c == 0 }
func (c zeroNullCode) Levels() int           { return 2 }
func (c zeroNullCode) Bits() int             { return 8 }
func (c zeroNullCode) Digit(level int) uint8 { return uint8(c>>(3*(1-level))) & 7 }

func (c zeroNullCode) WithDigit(level int, d uint8) zeroNullCode {
	s := 3 * (1 - level)
	return c&^(7<<s) | zeroNullCode(d&7)<<s
}

// randomCodes returns n distinct codes. Half of them are clustered around a few centers so that
// they share long prefixes and force deep splits.
func randomCodes(rng *rand.Rand, n int) []morton.Code {
	centers := make([]morton.Code, 4)
	for i := range centers {
		centers[i] = morton.Code(rng.Uint64() >> 1)
	}

	seen := make(map[morton.Code]bool, n)
	codes := make([]morton.Code, 0, n)
	for len(codes) < n {
		c := morton.Code(rng.Uint64() >> 1)
		if rng.Intn(2) == 0 {
			c = centers[rng.Intn(len(centers))] ^ morton.Code(rng.Intn(64))
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		codes = append(codes, c)
	}
	return codes
}
