package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huestep/internal/colour"
	"github.com/jmylchreest/huestep/internal/config"
	"github.com/jmylchreest/huestep/internal/export"
	"github.com/jmylchreest/huestep/internal/palette"
)

const (
	modeLight = "light"
	modeDark  = "dark"
	modeBoth  = "both"
)

type presetsOptions struct {
	encoding export.Encoding
	file     string
	mode     string
	preview  string
}

func newPresetsCmd(a *app) *cobra.Command {
	o := &presetsOptions{}

	cmd := &cobra.Command{
		Use:   "presets [name...]",
		Short: "Show the named preset ramps",
		Long: `Show the light and dark ramps of the preset colours.

The built-in table holds thirteen brand colours plus a fixed gray ramp.
Use --file to build the table from your own brands file instead:

  brands:
    - name: brand
      color: "#1890ff"

Names restrict the output to those presets, in the order given.`,
		Example: `  huestep presets
  huestep presets arcoblue gray --mode dark
  huestep presets --encoding css > theme.css`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPresets(cmd, o, args)
		},
	}

	cmd.Flags().VarP(&o.encoding, "encoding", "e", "output encoding (text, json, yaml, toml, css, less)")
	cmd.Flags().StringVar(&o.file, "file", "", "brands file (yaml, toml or json)")
	cmd.Flags().StringVarP(&o.mode, "mode", "m", modeBoth, "ramps to show in text output (light, dark, both)")
	cmd.Flags().StringVar(&o.preview, "preview", "", "terminal swatches (auto, always, never)")

	return cmd
}

func (a *app) runPresets(cmd *cobra.Command, o *presetsOptions, names []string) error {
	flags := cmd.Flags()
	if !flags.Changed("encoding") {
		o.encoding = a.cfg.Encoding
	}
	if !flags.Changed("file") {
		o.file = a.cfg.PresetsFile
	}
	if !flags.Changed("preview") {
		o.preview = a.cfg.Preview
	}
	switch o.mode {
	case modeLight, modeDark, modeBoth:
	default:
		return fmt.Errorf("invalid mode %q (use light, dark or both)", o.mode)
	}

	presets, err := config.LoadPresets(o.file)
	if err != nil {
		return err
	}
	if o.file != "" {
		a.logger.Debug("loaded brands", "file", o.file, "presets", presets.Len())
	}

	presets, err = presets.Select(names...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if o.encoding != export.EncodingText {
		return export.WritePresets(out, presets, o.encoding)
	}
	return writePresetTable(out, presets, o.mode, a.preview(out, o.preview))
}

func writePresetTable(w io.Writer, presets palette.PresetColors, mode string, preview bool) error {
	headers := []string{"NAME", "MODE"}
	for i := 1; i <= palette.Steps; i++ {
		headers = append(headers, strconv.Itoa(i))
	}
	table := NewTable(headers)

	addRow := func(name, label string, ramp palette.Ramp) {
		row := []string{name, label}
		for _, entry := range ramp {
			if preview {
				entry = previewCell(entry)
			}
			row = append(row, entry)
		}
		table.AddRow(row)
	}

	for name, p := range presets.All() {
		if mode != modeDark {
			addRow(name, modeLight, p.Light)
		}
		if mode != modeLight {
			addRow(name, modeDark, p.Dark)
		}
	}

	_, err := io.WriteString(w, table.Render())
	return err
}

// previewCell draws the hex code over its own colour.
func previewCell(entry string) string {
	c, err := colour.Parse(entry)
	if err != nil {
		return entry
	}
	return colour.SwatchWithText(c, entry, len(entry)+2)
}
