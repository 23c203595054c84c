package registry

import "actionsearch/internal/domain"

// DrawableState describes the active drawable, which decides which
// filters can run.
type DrawableState struct {
	Present  bool
	Writable bool
	Gray     bool
	Alpha    bool
}

type filterEntry struct {
	name        string
	label       string
	operation   string
	description string
	sensitive   func(s DrawableState) bool
}

func writable(s DrawableState) bool           { return s.Writable }
func writableColor(s DrawableState) bool      { return s.Writable && !s.Gray }
func writableAlpha(s DrawableState) bool      { return s.Writable && s.Alpha }
func writableColorAlpha(s DrawableState) bool { return s.Writable && !s.Gray && s.Alpha }

var filterEntries = []filterEntry{
	{"filters-alien-map", "_Alien Map...", "gegl:alien-map", "Alter colors in interesting ways", writable},
	{"filters-c2g", "Color to Gray...", "gegl:c2g", "Color to grayscale conversion using local contrast", writableColor},
	{"filters-cartoon", "Ca_rtoon...", "gegl:cartoon", "Simulate a cartoon by darkening edges", writable},
	{"filters-checkerboard", "_Checkerboard...", "gegl:checkerboard", "Render a checkerboard pattern", writable},
	{"filters-color-reduction", "Color _Reduction...", "gegl:color-reduction", "Reduce the number of colors by dithering", writable},
	{"filters-color-temperature", "Color T_emperature...", "gegl:color-temperature", "Change the color temperature of the image", writableColor},
	{"filters-color-to-alpha", "Color to _Alpha...", "gegl:color-to-alpha", "Convert a specified color to transparency", writableColorAlpha},
	{"filters-cubism", "_Cubism...", "gegl:cubism", "Convert the image into randomly rotated square blobs", writable},
	{"filters-deinterlace", "_Deinterlace...", "gegl:deinterlace", "Fix images where every other row or column is missing", writable},
	{"filters-difference-of-gaussians", "Difference of Gaussians...", "gegl:difference-of-gaussians", "Edge detection with control of edge thickness", writable},
	{"filters-dot", "Dots...", "gegl:dot", "Simplify image into an array of solid-colored dots", writable},
	{"filters-dropshadow", "_Drop Shadow...", "gegl:dropshadow", "Create a drop shadow effect on the input buffer", writableAlpha},
	{"filters-edge-laplace", "_Laplace", "gegl:edge-laplace", "High-resolution edge detection", writable},
	{"filters-edge-sobel", "_Sobel...", "gegl:edge-sobel", "Specialized direction-dependent edge detection", writable},
	{"filters-emboss", "_Emboss...", "gegl:emboss", "Simulate an image created by embossing", writable},
	{"filters-exposure", "_E_xposure...", "gegl:exposure", "Adjust the exposure of an image", writable},
	{"filters-fractal-trace", "_Fractal Trace...", "gegl:fractal-trace", "Transform the image with the fractals", writable},
	{"filters-gaussian-blur", "_Gaussian Blur...", "gegl:gaussian-blur", "Performs an averaging of neighboring pixels with the normal distribution as weighting", writable},
	{"filters-grid", "_Grid...", "gegl:grid", "Grid renderer", writable},
	{"filters-lens-distortion", "Lens Distortion...", "gegl:lens-distortion", "Corrects barrel or pincushion lens distortion", writable},
	{"filters-mono-mixer", "Mono Mixer...", "gegl:mono-mixer", "Monochrome channel mixer", writableColor},
	{"filters-motion-blur-circular", "_Circular Motion Blur...", "gegl:motion-blur-circular", "Circular motion blur", writable},
	{"filters-motion-blur-linear", "_Linear Motion Blur...", "gegl:motion-blur-linear", "Blur resulting from averaging the colors of a row of pixels", writable},
	{"filters-motion-blur-zoom", "_Zoom Motion Blur...", "gegl:motion-blur-zoom", "Zoom motion blur", writable},
	{"filters-noise-cie-lch", "CIE lch Noise...", "gegl:noise-cie-lch", "Randomize lightness, chroma and hue independently", writable},
	{"filters-noise-hsv", "HSV Noise...", "gegl:noise-hsv", "Randomize hue, saturation and value independently", writableColor},
	{"filters-noise-hurl", "_Hurl...", "gegl:noise-hurl", "Completely randomize a fraction of pixels", writable},
	{"filters-noise-pick", "_Pick...", "gegl:noise-pick", "Randomly interchange some pixels with neighbors", writable},
	{"filters-noise-rgb", "_RGB Noise...", "gegl:noise-rgb", "Distort colors by random amounts", writable},
	{"filters-noise-slur", "_Slur...", "gegl:noise-slur", "Randomly slide some pixels downward (similar to melting)", writable},
	{"filters-noise-spread", "_Sp_read...", "gegl:noise-spread", "Move pixels around randomly", writable},
	{"filters-photocopy", "_Photocopy...", "gegl:photocopy", "Simulate color distortion produced by a copy machine", writable},
	{"filters-pixelize", "_Pixelize...", "gegl:pixelize", "Simplify image into an array of solid-colored squares", writable},
	{"filters-polar-coordinates", "P_olar Coordinates...", "gegl:polar-coordinates", "Convert image to or from polar coordinates", writable},
	{"filters-red-eye-removal", "_Red Eye Removal...", "gegl:red-eye-removal", "Remove the red eye effect caused by camera flashes", writableColor},
	{"filters-ripple", "_Ripple...", "gegl:ripple", "Displace pixels in a ripple pattern", writable},
	{"filters-semi-flatten", "_Semi-Flatten...", "gimp:semi-flatten", "Replace partial transparency with a color", writableAlpha},
	{"filters-shift", "_Shift...", "gegl:shift", "Shift each row or column of pixels by a random amount", writable},
	{"filters-softglow", "_Softglow...", "gegl:softglow", "Simulate glow by making highlights intense and fuzzy", writable},
	{"filters-threshold-alpha", "_Threshold Alpha...", "gimp:threshold-alpha", "Make transparency all-or-nothing", writableAlpha},
	{"filters-unsharp-mask", "_Unsharp Mask...", "gegl:unsharp-mask", "The most widely used method for sharpening an image", writable},
	{"filters-vignette", "_Vignette...", "gegl:vignette", "Applies a vignette to an image", writable},
	{"filters-waves", "_Waves...", "gegl:waves", "Distort the image with waves", writable},
	{"filters-whirl-pinch", "W_hirl and Pinch...", "gegl:whirl-pinch", "Distort an image by whirling and pinching", writable},
}

// NewFiltersGroup builds the "filters" group. Every action carries its
// operation name in Value; all actions start insensitive until
// UpdateFilters is called with the active drawable.
func NewFiltersGroup() *domain.ActionGroup {
	group := &domain.ActionGroup{Name: "filters"}
	for _, e := range filterEntries {
		group.Actions = append(group.Actions, &domain.Action{
			Name:    e.name,
			Label:   e.label,
			Tooltip: e.description,
			Icon:    "gegl",
			Value:   e.operation,
		})
	}
	return group
}

// UpdateFilters recomputes the sensitivity of every filter action from the
// drawable state. A missing or content-locked drawable disables them all.
func UpdateFilters(group *domain.ActionGroup, state DrawableState) {
	if !state.Present {
		state = DrawableState{}
	}
	for _, e := range filterEntries {
		if a := group.Lookup(e.name); a != nil {
			a.Sensitive = e.sensitive(state)
		}
	}
}
