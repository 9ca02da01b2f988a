package viz

import "github.com/guptarohit/asciigraph"

// Plot renders one or more series as an ascii chart.
func Plot(series [][]float64, width, height int, caption string) string {
	return asciigraph.PlotMany(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}
