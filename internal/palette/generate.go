package palette

import "github.com/jmylchreest/huestep/internal/colour"

// Options configures gradient generation.
type Options struct {
	// Index selects the gradient entry, 1 (lightest) to 10 (darkest).
	// Zero means BaseIndex. Ignored by GenerateList.
	Index int

	// Dark selects the dark-mode algorithm.
	Dark bool

	// Format selects the output encoding. Empty means hex.
	Format colour.Format
}

// DefaultOptions returns options for the light-mode base colour in hex.
func DefaultOptions() Options {
	return Options{
		Index:  BaseIndex,
		Dark:   false,
		Format: colour.FormatHex,
	}
}

// normalized applies defaults for unset fields.
func (o Options) normalized() Options {
	if o.Index == 0 {
		o.Index = BaseIndex
	}
	if o.Format == "" {
		o.Format = colour.FormatHex
	}
	return o
}

// Ramp is a full gradient. Ramp[0] is index 1 and Ramp[9] is index 10.
type Ramp [Steps]string

// At returns the entry for a 1-based index.
func (r Ramp) At(index int) string {
	return r[index-1]
}

// Slice returns the ramp as a slice.
func (r Ramp) Slice() []string {
	out := make([]string, Steps)
	copy(out, r[:])
	return out
}

// Generate returns a single gradient entry.
func Generate(seed colour.Colour, opts Options) string {
	opts = opts.normalized()
	if opts.Dark {
		return Dark(seed, opts.Index, opts.Format)
	}
	return Light(seed, opts.Index, opts.Format)
}

// GenerateList returns all ten gradient entries in index order.
func GenerateList(seed colour.Colour, opts Options) Ramp {
	opts = opts.normalized()
	f := Light
	if opts.Dark {
		f = Dark
	}

	var ramp Ramp
	for i := range ramp {
		ramp[i] = f(seed, i+1, opts.Format)
	}
	return ramp
}

// GenerateFrom parses input and returns a single gradient entry.
func GenerateFrom(input any, opts Options) (string, error) {
	seed, err := colour.From(input)
	if err != nil {
		return "", err
	}
	return Generate(seed, opts), nil
}

// GenerateListFrom parses input and returns all ten gradient entries.
func GenerateListFrom(input any, opts Options) (Ramp, error) {
	seed, err := colour.From(input)
	if err != nil {
		return Ramp{}, err
	}
	return GenerateList(seed, opts), nil
}
