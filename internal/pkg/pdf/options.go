package pdf

func WithPaperSize(width, height float64) Option {
	return func(o *Options) {
		o.PaperWidthInch = width
		o.PaperHeightInch = height
	}
}

func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTopInch = top
		o.MarginRightInch = right
		o.MarginBottomInch = bottom
		o.MarginLeftInch = left
	}
}

func WithLandscape(landscape bool) Option {
	return func(o *Options) {
		o.Landscape = landscape
	}
}

func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// Common paper sizes in inches.
var (
	PaperA4     = WithPaperSize(8.27, 11.69)
	PaperLetter = WithPaperSize(8.5, 11)
)

var (
	MarginsNormal = WithMargins(0.4, 0.4, 0.4, 0.4)
	MarginsNarrow = WithMargins(0.2, 0.2, 0.2, 0.2)
	MarginsNone   = WithMargins(0, 0, 0, 0)
)
