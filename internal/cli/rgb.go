package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huestep/internal/colour"
)

func newRGBCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rgb <colour>",
		Short: "Print a colour as an R,G,B triplet",
		Long: `Print a colour as comma-separated 0-255 channels, the form used inside
CSS custom properties consumed as rgb(var(--name)).`,
		Example: `  huestep rgb '#F53F3F'
  huestep rgb 'hsl(0, 90%, 60%)'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := colour.RGBStr(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("converted", "input", args[0], "rgb", rgb)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rgb)
			return err
		},
	}
}
