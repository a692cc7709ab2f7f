package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/huestep/internal/colour"
	"github.com/jmylchreest/huestep/internal/config"
	"github.com/jmylchreest/huestep/internal/export"
	"github.com/jmylchreest/huestep/internal/palette"
)

const swatchWidth = 4

type generateOptions struct {
	index    int
	dark     bool
	list     bool
	format   colour.Format
	encoding export.Encoding
	preview  string
	name     string
}

func newGenerateCmd(a *app) *cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <colour>",
		Short: "Generate a gradient entry or a full ramp from a seed colour",
		Long: `Generate one entry of the ten-step gradient for a seed colour, or the whole
ramp with --list.

Index 1 is the lightest entry and 10 the darkest; index 6 is the seed itself.
With --dark the ramp is inverted for dark backgrounds. Any encoding other
than text always writes the full ramp.

The seed may be a hex code (#165DFF, 165dff, #fff), rgb(), hsl(), hsv() or
a CSS colour name.`,
		Example: `  huestep generate '#165DFF' --index 3
  huestep generate '#165DFF' --list --dark --format rgb
  huestep generate rebeccapurple --encoding css --name brand`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, o, args[0])
		},
	}

	o.register(cmd.Flags())

	return cmd
}

// register adds the ramp output flags shared by generate and extract.
func (o *generateOptions) register(flags *pflag.FlagSet) {
	flags.IntVarP(&o.index, "index", "i", palette.BaseIndex, "gradient index, 1 (lightest) to 10 (darkest)")
	flags.BoolVarP(&o.dark, "dark", "d", false, "use the dark-mode algorithm")
	flags.BoolVarP(&o.list, "list", "l", false, "print the full ten-step ramp")
	flags.VarP(&o.format, "format", "f", "colour format (hex, rgb, hsl)")
	flags.VarP(&o.encoding, "encoding", "e", "output encoding (text, json, yaml, toml, css, less)")
	flags.StringVar(&o.preview, "preview", "", "terminal swatches (auto, always, never)")
	flags.StringVar(&o.name, "name", "color", "variable name prefix for css and less output")
}

// resolve fills unset flags from config.
func (o *generateOptions) resolve(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if !flags.Changed("format") {
		o.format = cfg.Format
	}
	if !flags.Changed("encoding") {
		o.encoding = cfg.Encoding
	}
	if !flags.Changed("dark") {
		o.dark = cfg.Dark
	}
	if !flags.Changed("preview") {
		o.preview = cfg.Preview
	}
	switch o.preview {
	case config.PreviewAuto, config.PreviewAlways, config.PreviewNever:
	default:
		return fmt.Errorf("invalid preview mode %q (use auto, always or never)", o.preview)
	}
	if o.encoding != export.EncodingText {
		o.list = true
	}
	return nil
}

func (a *app) runGenerate(cmd *cobra.Command, o *generateOptions, input string) error {
	if err := o.resolve(cmd, a.cfg); err != nil {
		return err
	}

	seed, err := colour.Parse(input)
	if err != nil {
		return err
	}
	return a.writeRamp(cmd, o, seed)
}

// writeRamp prints the entry or ramp selected by o for seed.
func (a *app) writeRamp(cmd *cobra.Command, o *generateOptions, seed colour.Colour) error {
	opts := palette.Options{Index: o.index, Dark: o.dark, Format: o.format}
	// Index 0 selects the base entry.
	if opts.Index != 0 && (opts.Index < 1 || opts.Index > palette.Steps) {
		a.logger.Warn("index outside 1..10, extrapolating", "index", opts.Index)
	}
	a.logger.Debug("generating", "seed", seed.Hex(), "index", opts.Index, "dark", opts.Dark, "format", opts.Format, "list", o.list)

	out := cmd.OutOrStdout()
	preview := a.preview(out, o.preview)

	if !o.list {
		value := palette.Generate(seed, opts)
		if preview {
			value = previewLine(value)
		}
		_, err := fmt.Fprintln(out, value)
		return err
	}

	ramp := palette.GenerateList(seed, opts)
	if o.encoding == export.EncodingText && preview {
		return writePreviewRamp(out, ramp)
	}
	return export.WriteRamp(out, o.name, ramp, opts.Dark, o.encoding)
}

// previewLine prefixes a rendered colour with its swatch.
func previewLine(value string) string {
	c, err := colour.Parse(value)
	if err != nil {
		return value
	}
	return colour.Swatch(c, swatchWidth) + " " + value
}

func writePreviewRamp(w io.Writer, ramp palette.Ramp) error {
	var b strings.Builder
	for i, entry := range ramp {
		fmt.Fprintf(&b, "%2d %s\n", i+1, previewLine(entry))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
