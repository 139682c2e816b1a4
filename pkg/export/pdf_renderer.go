package export

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/vacaytracker/vacaytracker/pkg/category"
	"github.com/vacaytracker/vacaytracker/pkg/currency"
	"github.com/vacaytracker/vacaytracker/pkg/stats"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
)

const (
	pageCenterX = 105
	// pageBreakY is the vertical offset past which the next major
	// section starts on a fresh page.
	pageBreakY = 240
	// rowBreakY is the overflow limit for individual table rows.
	rowBreakY = 270

	chartLeft   = 20.0
	chartWidth  = 170.0
	chartHeight = 85.0

	legendMaxEntries = 8
)

// PDFRenderer composes the paginated expense report: title and period,
// summary, an optional donut chart drawn from primitive fill
// operations, an optional category breakdown table, and the expense
// detail table.
type PDFRenderer struct {
	resolver *category.Resolver
}

func NewPDFRenderer(resolver *category.Resolver) *PDFRenderer {
	return &PDFRenderer{resolver: resolver}
}

// Render produces the PDF payload. The budget figures come from the
// whole trip while expense totals come from the filtered list.
func (r *PDFRenderer) Render(expenses []trip.Expense, opts Options, activeTrip *trip.Trip, currencyCode string) ([]byte, error) {
	symbol := currency.Symbol(currencyCode)

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 22)
	centerText(doc, pageCenterX, 20, "VacayTracker Expense Report")

	doc.SetFont("Helvetica", "", 12)
	centerText(doc, pageCenterX, 30, "Period: "+periodLabel(opts.DateRange))

	var totalFiltered float64
	for _, exp := range expenses {
		totalFiltered += exp.Amount
	}

	doc.SetFont("Helvetica", "B", 14)
	doc.Text(14, 45, "Summary")
	doc.SetFont("Helvetica", "", 12)
	doc.Text(14, 55, fmt.Sprintf("Total Expenses: %s%.2f", symbol, totalFiltered))

	y := 70.0
	if opts.PDF.IncludeBudget {
		totalBudget := stats.TotalBudget(activeTrip)
		doc.Text(14, 65, fmt.Sprintf("Total Budget: %s%.2f", symbol, totalBudget))
		doc.Text(14, 75, fmt.Sprintf("Remaining Budget: %s%.2f", symbol, totalBudget-totalFiltered))
		y = 90
	}

	byCategory := stats.ExpensesByCategory(&trip.Trip{Expenses: expenses}, r.resolver.Name)

	if opts.PDF.IncludeCharts && len(expenses) > 0 {
		doc.SetFont("Helvetica", "B", 14)
		doc.Text(14, y, "Expense Overview")
		y += 15

		r.drawDonutChart(doc, byCategory, totalFiltered, y, symbol, opts.DarkMode)
		y += chartHeight + 10

		if y > pageBreakY {
			doc.AddPage()
			y = 20
		}
	}

	if opts.PDF.IncludeCategoryBreakdown {
		if y > pageBreakY {
			doc.AddPage()
			y = 20
		}
		y = r.drawCategoryBreakdown(doc, byCategory, totalFiltered, y, symbol)
	}

	if y > pageBreakY {
		doc.AddPage()
		y = 20
	}
	r.drawExpenseDetails(doc, expenses, y, symbol)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func periodLabel(dateRange *DateRange) string {
	if dateRange == nil {
		return "All dates"
	}
	return formatLongDate(dateRange.From) + " - " + formatLongDate(dateRange.To)
}

// drawDonutChart renders the aggregated categories as a donut with
// percentage labels on wedges holding at least a 5% share, plus a side
// legend of up to eight categories.
func (r *PDFRenderer) drawDonutChart(doc *fpdf.Fpdf, byCategory []stats.CategoryTotal, total float64, top float64, symbol string, darkMode bool) {
	if darkMode {
		doc.SetFillColor(31, 41, 55)
	} else {
		doc.SetFillColor(255, 255, 255)
	}
	doc.Rect(chartLeft, top, chartWidth, chartHeight, "F")

	cx := chartLeft + chartWidth*0.3
	cy := top + chartHeight/2
	outerRadius := math.Min(chartWidth*0.25, chartHeight*0.4)
	innerRadius := outerRadius * 0.6

	if total <= 0 {
		return
	}

	// Wedges sweep clockwise from the top, with a small gap between
	// slices.
	startDeg := 90.0
	for _, entry := range byCategory {
		sliceDeg := entry.Amount / total * 360
		red, green, blue := hexToRGB(r.resolver.Color(entry.ID))
		doc.SetFillColor(red, green, blue)
		doc.Polygon(donutWedge(cx, cy, innerRadius, outerRadius, startDeg, startDeg-sliceDeg*0.98), "F")

		if share := math.Round(entry.Amount / total * 100); share >= 5 {
			midDeg := startDeg - sliceDeg/2
			textRadius := (innerRadius + outerRadius) / 2 * 0.85
			labelX := cx + math.Cos(degToRad(midDeg))*textRadius
			labelY := cy - math.Sin(degToRad(midDeg))*textRadius
			doc.SetFont("Helvetica", "B", 9)
			doc.SetTextColor(255, 255, 255)
			centerText(doc, labelX, labelY+1.5, strconv.Itoa(int(share))+"%")
		}

		startDeg -= sliceDeg
	}

	if darkMode {
		doc.SetTextColor(255, 255, 255)
	} else {
		doc.SetTextColor(51, 51, 51)
	}

	legendX := chartLeft + chartWidth*0.58
	legendY := top + chartHeight*0.25
	legendSpacing := 8.5

	doc.SetFont("Helvetica", "B", 11)
	doc.Text(legendX, legendY-legendSpacing, "Category Breakdown")

	doc.SetFont("Helvetica", "", 9)
	maxNameWidth := 0.0
	for _, entry := range byCategory {
		share := int(math.Round(entry.Amount / total * 100))
		label := fmt.Sprintf("%s (%d%%)", truncateName(entry.Category), share)
		maxNameWidth = math.Max(maxNameWidth, doc.GetStringWidth(label))
	}

	for i, entry := range byCategory {
		if i >= legendMaxEntries {
			break
		}

		red, green, blue := hexToRGB(r.resolver.Color(entry.ID))
		doc.SetFillColor(red, green, blue)
		doc.Circle(legendX+1.5, legendY, 1.8, "F")

		share := int(math.Round(entry.Amount / total * 100))
		doc.Text(legendX+5, legendY+1.2, fmt.Sprintf("%s (%d%%)", truncateName(entry.Category), share))

		amount := fmt.Sprintf("%s%d", symbol, int(math.Round(entry.Amount)))
		doc.Text(legendX+maxNameWidth+22-doc.GetStringWidth(amount), legendY+1.2, amount)

		legendY += legendSpacing
	}

	doc.SetTextColor(0, 0, 0)
}

func (r *PDFRenderer) drawCategoryBreakdown(doc *fpdf.Fpdf, byCategory []stats.CategoryTotal, total float64, y float64, symbol string) float64 {
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(0, 0, 0)
	doc.Text(14, y, "Category Breakdown")
	y += 10

	widths := []float64{60, 40, 40}
	header := []string{"Category", "Amount", "Percentage"}
	y = drawTableHeader(doc, y, widths, header)

	for _, entry := range byCategory {
		if y > rowBreakY {
			doc.AddPage()
			y = drawTableHeader(doc, 20, widths, header)
		}
		share := 0.0
		if total > 0 {
			share = entry.Amount / total * 100
		}
		y = drawTableRow(doc, y, widths, []string{
			entry.Category,
			fmt.Sprintf("%s%.2f", symbol, entry.Amount),
			fmt.Sprintf("%.1f%%", share),
		})
	}

	return y + 15
}

func (r *PDFRenderer) drawExpenseDetails(doc *fpdf.Fpdf, expenses []trip.Expense, y float64, symbol string) {
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(0, 0, 0)
	doc.Text(14, y, "Expense Details")
	y += 10

	widths := []float64{28, 38, 72, 28}
	header := []string{"Date", "Category", "Description", "Amount"}
	y = drawTableHeader(doc, y, widths, header)

	for _, exp := range expenses {
		if y > rowBreakY {
			doc.AddPage()
			y = drawTableHeader(doc, 20, widths, header)
		}
		y = drawTableRow(doc, y, widths, []string{
			formatShortDate(exp.Date),
			r.resolver.Name(exp.Category),
			exp.Description,
			fmt.Sprintf("%s%.2f", symbol, exp.Amount),
		})
	}
}

func drawTableHeader(doc *fpdf.Fpdf, y float64, widths []float64, cells []string) float64 {
	doc.SetFillColor(59, 130, 246)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 10)
	y = writeTableCells(doc, y, widths, cells, true)
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)
	return y
}

func drawTableRow(doc *fpdf.Fpdf, y float64, widths []float64, cells []string) float64 {
	return writeTableCells(doc, y, widths, cells, false)
}

func writeTableCells(doc *fpdf.Fpdf, y float64, widths []float64, cells []string, fill bool) float64 {
	const rowHeight = 8
	doc.SetXY(14, y)
	for i, cell := range cells {
		doc.CellFormat(widths[i], rowHeight, cell, "1", 0, "L", fill, 0, "")
	}
	return y + rowHeight
}

// donutWedge approximates a filled donut segment with a polygon traced
// along the outer arc and back along the inner arc.
func donutWedge(cx, cy, innerRadius, outerRadius, fromDeg, toDeg float64) []fpdf.PointType {
	const steps = 24

	points := make([]fpdf.PointType, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		deg := fromDeg + (toDeg-fromDeg)*float64(i)/steps
		points = append(points, arcPoint(cx, cy, outerRadius, deg))
	}
	for i := steps; i >= 0; i-- {
		deg := fromDeg + (toDeg-fromDeg)*float64(i)/steps
		points = append(points, arcPoint(cx, cy, innerRadius, deg))
	}
	return points
}

func arcPoint(cx, cy, radius, deg float64) fpdf.PointType {
	return fpdf.PointType{
		X: cx + radius*math.Cos(degToRad(deg)),
		Y: cy - radius*math.Sin(degToRad(deg)),
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func centerText(doc *fpdf.Fpdf, x, y float64, text string) {
	doc.Text(x-doc.GetStringWidth(text)/2, y, text)
}

func truncateName(name string) string {
	if len(name) > 15 {
		return name[:12] + "..."
	}
	return name
}

// hexToRGB parses a #rrggbb display color; unparseable input maps to
// the neutral gray.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 107, 114, 128
	}
	value, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 107, 114, 128
	}
	return int(value >> 16 & 0xff), int(value >> 8 & 0xff), int(value & 0xff)
}
