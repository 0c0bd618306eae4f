package pdf

import "context"

// Converter renders an HTML document to PDF bytes.
type Converter interface {
	ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error)
}

type Options struct {
	PaperWidthInch   float64
	PaperHeightInch  float64
	MarginTopInch    float64
	MarginBottomInch float64
	MarginLeftInch   float64
	MarginRightInch  float64
	Landscape        bool
	Title            string
}

type Option func(*Options)
