package graphics

import "fmt"

// FillRule determines how path interiors are calculated for filling.
type FillRule int

const (
	// FillNonZero fills regions with nonzero winding count.
	FillNonZero FillRule = iota

	// FillEvenOdd fills regions crossed an odd number of times.
	// Useful for creating holes: nested shapes alternate between filled/unfilled.
	FillEvenOdd
)

// String returns a human-readable representation of the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillNonZero:
		return "nonzero"
	case FillEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt   StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                   // Semicircle at endpoint
	CapSquare                  // Square extending past endpoint
)

// String returns a human-readable representation of the stroke cap.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// StrokeJoin describes how stroke corners are drawn.
type StrokeJoin int

const (
	JoinMiter StrokeJoin = iota // Sharp corner (default)
	JoinRound                   // Rounded corner
	JoinBevel                   // Flattened corner
)

// String returns a human-readable representation of the stroke join.
func (j StrokeJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("StrokeJoin(%d)", int(j))
	}
}

// StrokeStyle describes how outlines are stroked.
type StrokeStyle struct {
	Width      float64
	Cap        StrokeCap
	Join       StrokeJoin
	MiterLimit float64 // 0 defaults to 4.0
}

// NewStrokeStyle returns a butt-capped, miter-joined stroke of the given width.
func NewStrokeStyle(width float64) StrokeStyle {
	return StrokeStyle{Width: width, Cap: CapButt, Join: JoinMiter, MiterLimit: 4}
}

// BlendMode controls how a layer is composited onto the content below it.
// BlendClip composites normally and exists to mark layers that only clip.
type BlendMode int

const (
	BlendNormal     BlendMode = iota // normal
	BlendMultiply                    // multiply
	BlendScreen                      // screen
	BlendOverlay                     // overlay
	BlendDarken                      // darken
	BlendLighten                     // lighten
	BlendColorDodge                  // color_dodge
	BlendColorBurn                   // color_burn
	BlendHardLight                   // hard_light
	BlendSoftLight                   // soft_light
	BlendDifference                  // difference
	BlendExclusion                   // exclusion
	BlendHue                         // hue
	BlendSaturation                  // saturation
	BlendColor                       // color
	BlendLuminosity                  // luminosity
	BlendClip                        // clip
)

var blendModeNames = []string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten",
	"color_dodge", "color_burn", "hard_light", "soft_light",
	"difference", "exclusion", "hue", "saturation", "color", "luminosity",
	"clip",
}

// String returns a human-readable representation of the blend mode.
func (b BlendMode) String() string {
	if int(b) >= 0 && int(b) < len(blendModeNames) {
		return blendModeNames[b]
	}
	return fmt.Sprintf("BlendMode(%d)", int(b))
}
