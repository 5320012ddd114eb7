package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
)

// formatQuotationNumber constructs the quotation number from components.
func formatQuotationNumber(year, sequence int) string {
	return fmt.Sprintf("RLX-%d-%03d", year, sequence)
}

// GenerateQuotationNumber creates the next quotation number.
// Format: RLX-{calendar_year}-{sequence}, sequence zero-padded to 3 digits
// and counted per calendar year. The next sequence is one past the highest
// existing suffix, so deleting a quotation never causes a number to be
// handed out twice.
func GenerateQuotationNumber(app *pocketbase.PocketBase, now time.Time) (string, error) {
	year := now.Year()
	prefix := fmt.Sprintf("RLX-%d-", year)

	existing, err := app.FindRecordsByFilter(
		"quotations",
		"quotation_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		// Collection missing or empty: start the sequence at 1.
		existing = nil
	}

	maxSeq := 0
	for _, rec := range existing {
		number := rec.GetString("quotation_number")
		if !strings.HasPrefix(number, prefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(number, prefix))
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	return formatQuotationNumber(year, maxSeq+1), nil
}
