package cli

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ironsheep/backdrop-mcp/internal/background"
	"github.com/ironsheep/backdrop-mcp/internal/layout"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	regionsHBRatio float64
	regionsMargins []string
	regionsExclude bool
)

var regionsCmd = &cobra.Command{
	Use:   "regions <image>",
	Short: "Print the region table of an image",
	Long: `Print the header/body split and every region rectangle of an image.

Margins use the same keys as a recipe's margins section. A value below 1 is
a fraction of the governing dimension, 1 or more is a pixel count.

Example:
  pbc regions slide.png
  pbc regions slide.png --hbratio 0.3 --margin header_left=40 --margin body_top=0.05
  pbc regions slide.png --exclude-margins`,
	Args: cobra.ExactArgs(1),
	RunE: runRegions,
}

func init() {
	regionsCmd.Flags().Float64Var(&regionsHBRatio, "hbratio", 0, "share of the height given to the header (default 0.2)")
	regionsCmd.Flags().StringArrayVarP(&regionsMargins, "margin", "m", nil, "margin override as key=value, e.g. header_left=0.15")
	regionsCmd.Flags().BoolVar(&regionsExclude, "exclude-margins", false, "bind the plain side names to the exclusive bands")

	rootCmd.AddCommand(regionsCmd)
}

func runRegions(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	margins, err := parseMargins(regionsMargins)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("hbratio") {
		margins.HBRatio = layout.Float(regionsHBRatio)
	}

	b, err := background.Open(args[0], background.Options{
		Config:   margins.Merge(cfg.Margins),
		Reporter: logger,
		Silent:   cfg.Silent,
	})
	if err != nil {
		return err
	}
	defer b.Close()

	if regionsExclude {
		b.SetIncludeMargins(false)
	}

	writeRegions(cmd.OutOrStdout(), b)
	return nil
}

// parseMargins turns key=value pairs into a layout.Config, accepting the keys
// of a recipe's margins section.
func parseMargins(pairs []string) (layout.Config, error) {
	var cfg layout.Config
	if len(pairs) == 0 {
		return cfg, nil
	}

	values := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return cfg, fmt.Errorf("margin %q: expected key=value", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return cfg, fmt.Errorf("margin %q: %w", pair, err)
		}
		values[strings.TrimSpace(key)] = v
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid margin: %w", err)
	}
	return cfg, nil
}

// writeRegions prints the geometry and the region table. Placeholder regions
// without a rectangle are shown as "-".
func writeRegions(out io.Writer, b *background.Background) {
	g := b.Geometry()
	fmt.Fprintf(out, "%s: %dx%d %s, header %d rows, body %d rows, include margins %t\n\n",
		b.Name(), g.Width, g.Height, b.Mode(), g.HeaderHeight, g.BodyHeight, b.IncludeMargins())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PART\tREGION\tX\tY\tWIDTH\tHEIGHT")
	for _, e := range b.Regions() {
		if !e.Region.Defined {
			fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\n", e.Part, e.Name)
			continue
		}
		r := e.Region
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n", e.Part, e.Name, r.Origin.X, r.Origin.Y, r.Size.X, r.Size.Y)
	}
	w.Flush()
}
