package export

import (
	"fmt"
	"strings"

	"github.com/vacaytracker/vacaytracker/pkg/category"
	"github.com/vacaytracker/vacaytracker/pkg/currency"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
)

// CSVRenderer renders an expense list as a quoted comma-separated
// table. Every field is double-quote wrapped regardless of content;
// embedded quotes are not separately escaped, which is a documented
// limitation of the format.
type CSVRenderer struct {
	resolver *category.Resolver
}

func NewCSVRenderer(resolver *category.Resolver) *CSVRenderer {
	return &CSVRenderer{resolver: resolver}
}

func (r *CSVRenderer) Render(expenses []trip.Expense, currencyCode string) string {
	symbol := currency.Symbol(currencyCode)

	rows := make([][]string, 0, len(expenses)+1)
	rows = append(rows, []string{"Date", "Category", "Description", "Amount", "Currency"})
	for _, exp := range expenses {
		rows = append(rows, []string{
			formatShortDate(exp.Date),
			r.resolver.Name(exp.Category),
			exp.Description,
			fmt.Sprintf("%.2f", exp.Amount),
			symbol,
		})
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		quoted := make([]string, 0, len(row))
		for _, value := range row {
			quoted = append(quoted, `"`+value+`"`)
		}
		lines = append(lines, strings.Join(quoted, ","))
	}
	return strings.Join(lines, "\n")
}
