package engine

import (
	"io"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
)

// DefaultSeed replaces a zero Seed.
const DefaultSeed uint64 = 42

// DefaultMargin is the default horizontal and vertical cluster margin.
const DefaultMargin = 5.0

// Orientation selects where the root or source layer of a layered drawing sits.
type Orientation string

const (
	North Orientation = "N" // roots at the top, layers grow downward
	South Orientation = "S" // roots at the bottom
	West  Orientation = "W" // roots on the left, layers grow rightward
	East  Orientation = "E" // roots on the right
)

// ParseOrientation parses N, E, S or W case-insensitively. The empty string
// yields North.
func ParseOrientation(s string) (Orientation, error) {
	if err := lerrors.ValidateOrientation(s); err != nil {
		return "", err
	}
	if s == "" {
		return North, nil
	}
	return Orientation(strings.ToUpper(s)), nil
}

// Transposed reports whether logical width and height are swapped.
func (o Orientation) Transposed() bool { return o == East || o == West }

// Common is embedded by every engine's options.
type Common struct {
	MarginX float64 `json:"margin_x" toml:"margin_x"`
	MarginY float64 `json:"margin_y" toml:"margin_y"`
	// Seed seeds the random source. Zero means DefaultSeed.
	Seed uint64 `json:"seed,omitempty" toml:"seed"`

	// Rand overrides the seeded source.
	Rand *rand.Rand `json:"-" toml:"-"`
	// Logger receives debug output. Nil discards.
	Logger *log.Logger `json:"-" toml:"-"`
}

// DefaultCommon returns margins of 5 and the default seed.
func DefaultCommon() Common {
	return Common{MarginX: DefaultMargin, MarginY: DefaultMargin}
}

// Validate checks the margins.
func (c Common) Validate() error {
	if err := lerrors.ValidateNonNegative("margin_x", c.MarginX); err != nil {
		return err
	}
	return lerrors.ValidateNonNegative("margin_y", c.MarginY)
}

// RNG returns Rand if set, otherwise a fresh source seeded from Seed.
func (c Common) RNG() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return NewRand(c.Seed)
}

// Log returns Logger, or a logger that discards everything.
func (c Common) Log() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard)
}

// Placer returns a placer using the common margins.
func (c Common) Placer() *Placer {
	return &Placer{MarginX: c.MarginX, MarginY: c.MarginY}
}

// NewRand returns a PCG-backed source for seed. Seed 0 uses DefaultSeed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// StepFunc is called after each simulation round. Returning true stops the
// simulation early.
type StepFunc func(round int) (stop bool)
