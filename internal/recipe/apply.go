package recipe

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/ironsheep/backdrop-mcp/internal/background"
	"github.com/ironsheep/backdrop-mcp/internal/logging"
)

// Open loads the recipe's image. The recipe margins are layered over
// opts.Config, and the include-margins flag is applied when the recipe sets it.
func (r *Recipe) Open(opts background.Options) (*background.Background, error) {
	opts.Config = r.Margins.Merge(opts.Config)

	b, err := background.Open(r.Path(r.Image), opts)
	if err != nil {
		return nil, err
	}
	if r.IncludeMargins != nil {
		b.SetIncludeMargins(*r.IncludeMargins)
	}
	return b, nil
}

// Apply runs the steps in order and returns how many were applied. A step
// with no action or with several actions is reported to rep and skipped.
func (r *Recipe) Apply(b *background.Background, rep logging.Reporter) int {
	if rep == nil {
		rep = logging.NewLogger("pbc")
	}

	applied := 0
	for i, step := range r.Steps {
		actions := step.Actions()
		if len(actions) != 1 {
			rep.Report(logging.Diagnostic{
				Kind:    logging.KindWarning,
				Op:      "recipe",
				Message: "step must have exactly one action, skipping",
				Image:   b.Name(),
				Fields:  map[string]interface{}{"step": i + 1, "actions": strings.Join(actions, ",")},
			})
			continue
		}

		switch {
		case step.Filter != nil:
			r.filter(b, step.Filter)
		case step.Overlay != nil:
			b.Overlay(r.source(step.Overlay), orFull(step.Overlay.Part), orFull(step.Overlay.Region))
		case step.Image != nil:
			r.image(b, step.Image, i+1, rep)
		case step.Margins != nil:
			b.Margins(background.ParseSwitch(*step.Margins))
		}
		applied++
	}
	return applied
}

// Run opens the image, applies every step and saves when the recipe has a
// save section. It returns the written path, which is empty when nothing was
// saved.
func (r *Recipe) Run(opts background.Options) (string, error) {
	b, err := r.Open(opts)
	if err != nil {
		return "", err
	}
	defer b.Close()

	r.Apply(b, opts.Reporter)
	if r.Save == nil {
		return "", nil
	}

	name := r.Save.Name
	var location []string
	if len(r.Save.Location) > 0 {
		location = []string{r.Path(filepath.Join(r.Save.Location...))}
		if filepath.Dir(name) != "." {
			name = r.Path(name)
		}
	} else {
		// Without a location the file lands next to the recipe.
		if name == "" {
			name = filepath.Base(r.Image)
		}
		name = r.Path(name)
	}

	path, err := b.Save(name, location...)
	if err != nil {
		return "", fmt.Errorf("recipe save: %w", err)
	}
	return path, nil
}

func (r *Recipe) filter(b *background.Background, s *FilterStep) {
	op := background.FilterOp(s.Operation)
	if s.Operation == "" {
		op = background.FilterBlur
	}
	value := float64(background.DefaultBlurRadius)
	if s.Value != nil {
		value = *s.Value
	}
	b.Filter(op, orFull(s.Part), orFull(s.Region), value)
}

func (r *Recipe) source(s *OverlayStep) background.Source {
	if len(s.Color) > 0 {
		return background.Color(s.Color...)
	}
	src := strings.TrimSpace(s.Source)
	if src == "" || strings.EqualFold(src, "blank") || strings.HasPrefix(src, "#") {
		return background.ParseSource(src)
	}
	return background.File(r.Path(src))
}

func (r *Recipe) image(b *background.Background, s *ImageStep, n int, rep logging.Reporter) {
	opts := background.ImageOptions{
		Picture:      r.Path(s.Picture),
		Part:         orFull(s.Part),
		Region:       orFull(s.Region),
		Borders:      background.ParseBorders(s.Borders),
		Transparency: s.Transparency,
	}

	switch len(s.Anchor) {
	case 0:
	case 2:
		opts.Anchor = &image.Point{X: s.Anchor[0], Y: s.Anchor[1]}
	default:
		rep.Report(logging.Diagnostic{
			Kind:    logging.KindWarning,
			Op:      "recipe",
			Message: "anchor needs two coordinates, ignoring it",
			Image:   b.Name(),
			Fields:  map[string]interface{}{"step": n, "anchor": fmt.Sprint(s.Anchor)},
		})
	}
	b.Image(opts)
}

func orFull(s string) string {
	if s == "" {
		return "full"
	}
	return s
}
