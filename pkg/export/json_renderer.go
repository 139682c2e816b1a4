package export

import (
	"encoding/json"
	"fmt"

	"github.com/vacaytracker/vacaytracker/pkg/category"
	"github.com/vacaytracker/vacaytracker/pkg/currency"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
)

// ExpenseRecord is one entry of the JSON export. Amount stays numeric
// and unrounded so decoding reproduces the input amounts exactly.
type ExpenseRecord struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	CategoryID  string  `json:"categoryId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

// JSONRenderer renders an expense list as a pretty-printed JSON array
// with two-space indentation.
type JSONRenderer struct {
	resolver *category.Resolver
}

func NewJSONRenderer(resolver *category.Resolver) *JSONRenderer {
	return &JSONRenderer{resolver: resolver}
}

func (r *JSONRenderer) Render(expenses []trip.Expense, currencyCode string) (string, error) {
	symbol := currency.Symbol(currencyCode)

	records := make([]ExpenseRecord, 0, len(expenses))
	for _, exp := range expenses {
		records = append(records, ExpenseRecord{
			Date:        formatShortDate(exp.Date),
			Category:    r.resolver.Name(exp.Category),
			CategoryID:  exp.Category,
			Description: exp.Description,
			Amount:      exp.Amount,
			Currency:    symbol,
		})
	}

	encoded, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode expenses: %w", err)
	}
	return string(encoded), nil
}
