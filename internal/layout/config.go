package layout

// Default margins and header/body ratio used when a Config leaves a value unset.
var (
	DefaultHeader  = Margins{Left: 0.1, Right: 0.1, Top: 0.2, Bottom: 0.2}
	DefaultBody    = Margins{Left: 0.15, Right: 0.15, Top: 0.1, Bottom: 0.1}
	DefaultHBRatio = 0.2
)

// Margins holds requested margin values for one area. A value below 1 is a
// fraction of the governing dimension, a value of 1 or more is a pixel count.
type Margins struct {
	Left   float64 `yaml:"left" json:"left"`
	Right  float64 `yaml:"right" json:"right"`
	Top    float64 `yaml:"top" json:"top"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
}

// Sides is the nested form of a margin override, e.g. `header: {left: 0.2}`.
// Nil fields are unset.
type Sides struct {
	Left   *float64 `yaml:"left,omitempty" json:"left,omitempty"`
	Right  *float64 `yaml:"right,omitempty" json:"right,omitempty"`
	Top    *float64 `yaml:"top,omitempty" json:"top,omitempty"`
	Bottom *float64 `yaml:"bottom,omitempty" json:"bottom,omitempty"`
}

// Config describes the margin layout of a background.
//
// Every margin can be given flat (HeaderLeft) or nested (Header.Left). When both
// are present the flat value wins; when neither is present the default applies.
type Config struct {
	HeaderLeft   *float64 `yaml:"header_left,omitempty" json:"header_left,omitempty"`
	HeaderRight  *float64 `yaml:"header_right,omitempty" json:"header_right,omitempty"`
	HeaderTop    *float64 `yaml:"header_top,omitempty" json:"header_top,omitempty"`
	HeaderBottom *float64 `yaml:"header_bottom,omitempty" json:"header_bottom,omitempty"`

	BodyLeft   *float64 `yaml:"body_left,omitempty" json:"body_left,omitempty"`
	BodyRight  *float64 `yaml:"body_right,omitempty" json:"body_right,omitempty"`
	BodyTop    *float64 `yaml:"body_top,omitempty" json:"body_top,omitempty"`
	BodyBottom *float64 `yaml:"body_bottom,omitempty" json:"body_bottom,omitempty"`

	Header Sides `yaml:"header,omitempty" json:"header,omitempty"`
	Body   Sides `yaml:"body,omitempty" json:"body,omitempty"`

	// HBRatio is the share of the image height given to the header, in (0,1].
	HBRatio *float64 `yaml:"hbratio,omitempty" json:"hbratio,omitempty"`
}

// Float returns a pointer to v, for filling Config literals.
func Float(v float64) *float64 {
	return &v
}

// Requested applies the flat > nested > default precedence and returns the
// margin values that will be resolved for the header and the body.
func (c Config) Requested() (header, body Margins) {
	header = Margins{
		Left:   pick(c.HeaderLeft, c.Header.Left, DefaultHeader.Left),
		Right:  pick(c.HeaderRight, c.Header.Right, DefaultHeader.Right),
		Top:    pick(c.HeaderTop, c.Header.Top, DefaultHeader.Top),
		Bottom: pick(c.HeaderBottom, c.Header.Bottom, DefaultHeader.Bottom),
	}
	body = Margins{
		Left:   pick(c.BodyLeft, c.Body.Left, DefaultBody.Left),
		Right:  pick(c.BodyRight, c.Body.Right, DefaultBody.Right),
		Top:    pick(c.BodyTop, c.Body.Top, DefaultBody.Top),
		Bottom: pick(c.BodyBottom, c.Body.Bottom, DefaultBody.Bottom),
	}
	return header, body
}

// Ratio returns the configured header/body ratio or DefaultHBRatio.
func (c Config) Ratio() float64 {
	if c.HBRatio == nil {
		return DefaultHBRatio
	}
	return *c.HBRatio
}

// Merge returns a copy of c where every side that c leaves unset, in both its
// flat and nested form, is taken from base. It is used to layer per-recipe
// settings over configured defaults.
func (c Config) Merge(base Config) Config {
	out := c
	mergeSide(&out.HeaderLeft, &out.Header.Left, base.HeaderLeft, base.Header.Left)
	mergeSide(&out.HeaderRight, &out.Header.Right, base.HeaderRight, base.Header.Right)
	mergeSide(&out.HeaderTop, &out.Header.Top, base.HeaderTop, base.Header.Top)
	mergeSide(&out.HeaderBottom, &out.Header.Bottom, base.HeaderBottom, base.Header.Bottom)
	mergeSide(&out.BodyLeft, &out.Body.Left, base.BodyLeft, base.Body.Left)
	mergeSide(&out.BodyRight, &out.Body.Right, base.BodyRight, base.Body.Right)
	mergeSide(&out.BodyTop, &out.Body.Top, base.BodyTop, base.Body.Top)
	mergeSide(&out.BodyBottom, &out.Body.Bottom, base.BodyBottom, base.Body.Bottom)
	mergeField(&out.HBRatio, base.HBRatio)
	return out
}

func pick(flat, nested *float64, def float64) float64 {
	if flat != nil {
		return *flat
	}
	if nested != nil {
		return *nested
	}
	return def
}

func mergeField(dst **float64, src *float64) {
	if *dst == nil && src != nil {
		v := *src
		*dst = &v
	}
}

func mergeSide(flat, nested **float64, baseFlat, baseNested *float64) {
	if *flat != nil || *nested != nil {
		return
	}
	mergeField(flat, baseFlat)
	mergeField(nested, baseNested)
}
