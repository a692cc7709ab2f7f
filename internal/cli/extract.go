package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huestep/internal/colour"
	"github.com/jmylchreest/huestep/internal/extract"
	"github.com/jmylchreest/huestep/internal/image"
)

const (
	pickDominant = "dominant"
	pickVibrant  = "vibrant"
)

func newExtractCmd(a *app) *cobra.Command {
	o := &generateOptions{}
	var (
		clusters int
		pick     string
		seed     uint64
		seedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Generate a ramp seeded from an image's main colour",
		Long: `Cluster the pixels of an image, pick one cluster colour as the seed and
generate its gradient exactly as generate does.

--pick dominant takes the colour covering the most pixels; --pick vibrant
weights each cluster by its saturation so a small brand accent can win over
a large neutral background.

The image may be a local file or an http(s) URL.
Supported image formats: JPEG, PNG, GIF, WebP`,
		Example: `  huestep extract logo.png --list
  huestep extract wallpaper.jpg --pick vibrant --encoding css --name brand
  huestep extract logo.png --seed-only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.resolve(cmd, a.cfg); err != nil {
				return err
			}

			img, err := image.NewSmartLoader(cmd.Context()).Load(args[0])
			if err != nil {
				return err
			}

			e := extract.NewKMeans(seed)
			var c colour.Colour
			switch pick {
			case pickDominant:
				c, err = e.Dominant(img, clusters)
			case pickVibrant:
				c, err = e.Vibrant(img, clusters)
			default:
				return fmt.Errorf("invalid pick %q (use dominant or vibrant)", pick)
			}
			if err != nil {
				return fmt.Errorf("failed to extract seed colour: %w", err)
			}
			a.logger.Debug("extracted seed", "image", args[0], "pick", pick, "seed", c.Hex())

			if seedOnly {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), c.Format(o.format))
				return err
			}
			return a.writeRamp(cmd, o, c)
		},
	}

	o.register(cmd.Flags())
	cmd.Flags().IntVarP(&clusters, "clusters", "k", extract.DefaultClusters, "number of k-means clusters")
	cmd.Flags().StringVar(&pick, "pick", pickDominant, "seed selection (dominant, vibrant)")
	cmd.Flags().Uint64Var(&seed, "random-seed", 1, "k-means initialisation seed")
	cmd.Flags().BoolVar(&seedOnly, "seed-only", false, "print the extracted seed colour instead of a ramp")

	return cmd
}
