package chart

import (
	"fmt"

	"github.com/nikolayk812/bakery-pos/internal/domain"
	"golang.org/x/text/currency"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const barWidth = 24

// RenderPrices draws one bar per product, labelled with its cost.
// The image format follows the extension of path (.png, .svg, .pdf, ...).
func RenderPrices(products []domain.Product, unit currency.Unit, path string) error {
	if len(products) == 0 {
		return domain.Validationf("no products to chart")
	}

	names := make([]string, 0, len(products))
	values := make(plotter.Values, 0, len(products))
	points := make(plotter.XYs, 0, len(products))
	labels := make([]string, 0, len(products))

	for i, p := range products {
		cost := p.Cost.Amount.InexactFloat64()

		names = append(names, p.Name)
		values = append(values, cost)
		points = append(points, plotter.XY{X: float64(i), Y: cost})
		labels = append(labels, p.Cost.Amount.String())
	}

	p := plot.New()
	p.Title.Text = "Product Price Analysis"
	p.X.Label.Text = "Products"
	p.Y.Label.Text = fmt.Sprintf("Price (%s)", unit)
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(barWidth))
	if err != nil {
		return fmt.Errorf("plotter.NewBarChart: %w", err)
	}
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = vg.Length(0)

	costLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
	if err != nil {
		return fmt.Errorf("plotter.NewLabels: %w", err)
	}

	p.Add(bars, costLabels)
	p.NominalX(names...)

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("p.Save: %w", err)
	}

	return nil
}
