package cli

import (
	"fmt"

	"github.com/ironsheep/backdrop-mcp/internal/background"
	"github.com/ironsheep/backdrop-mcp/internal/imaging"
	"github.com/ironsheep/backdrop-mcp/internal/logging"
	"github.com/ironsheep/backdrop-mcp/internal/recipe"
	"github.com/spf13/cobra"
)

var renderStrict bool

var renderCmd = &cobra.Command{
	Use:   "render <recipe>",
	Short: "Apply a recipe to its background and save the result",
	Long: `Apply a recipe to its background and save the result.

A recipe is a YAML file naming the background image, optional margins and a
list of steps. Relative paths in the recipe resolve against its directory,
and a save without a location writes pbc-<name> next to the recipe unless
save_dir or PBC_SAVE_DIR is set.

Example:
  image: slide.png
  margins:
    hbratio: 0.25
  steps:
    - filter: {operation: blur, part: body, value: 8}
    - overlay: {source: blank, part: body, region: inner}
    - image: {picture: logo.png, part: header, region: right}
  save:
    name: title.png

With --strict, any warning makes the command fail after the recipe ran.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "fail when any step reports a warning")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	r, err := recipe.Load(args[0])
	if err != nil {
		return err
	}

	rec := logging.NewRecorder(logger)
	path, err := r.Run(background.Options{
		Config:   cfg.Margins,
		Reporter: rec,
		Opener:   imaging.NewImageCache(),
		Silent:   cfg.Silent,
	})
	if err != nil {
		return err
	}

	if path != "" {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	if n := len(rec.Warnings()); renderStrict && n > 0 {
		return fmt.Errorf("%s: %d warning(s)", args[0], n)
	}
	return nil
}
