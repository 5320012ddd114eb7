package services

import (
	"fmt"
	"log"
)

// Company identity block printed on every quotation.
const (
	CompanyName    = "RELOX PACKERS & MOVERS"
	CompanyAddress = "No. 42, Old Madras Road, Bangalore, Karnataka 560016"
	CompanyPhone   = "+91 98450 12345"
	CompanyEmail   = "bookings@reloxmovers.in"
	CompanyTagline = "Safe hands for every move: household, office and vehicle relocation across India."
)

// quotationTerms is the fixed terms-and-conditions block. It is static
// content, not derived from the record.
var quotationTerms = []string{
	"This quotation is valid for 15 days from the quotation date.",
	"FOV (Freight on Value) insurance covers transit risk only against the declared value of goods.",
	"Packing and loading dates to be confirmed at least 3 working days in advance.",
	"Octroi, toll and state entry taxes, if applicable, are payable at actuals.",
	"50% advance is payable at the time of booking; balance before unloading at destination.",
}

// RowKind tags a line row in the composed table.
type RowKind string

const (
	RowHousehold  RowKind = "household"
	RowCar        RowKind = "car"
	RowServices   RowKind = "services"
	RowSubtotal   RowKind = "subtotal"
	RowTax        RowKind = "tax"
	RowGrandTotal RowKind = "grandTotal"
)

// ServiceRow is one nested row under the ancillary-services line item.
type ServiceRow struct {
	Name   string
	Amount string
}

// LineRow is one row of the line-item table. Sr is 0 on the subtotal and
// grand-total rows, which are never numbered.
type LineRow struct {
	Kind     RowKind
	Sr       int
	Label    string
	Detail   string       // e.g. "Volume: 2 BHK (approx. 450 cft)"
	Services []ServiceRow // populated on the services row only
	Amount   string
}

// Document is the fully composed, render-ready quotation. All derived
// fields are pre-formatted strings so the renderer stage stays free of
// business rules and can be swapped out.
type Document struct {
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string

	QuotationNumber string
	QuotationDate   string // DD/MM/YYYY

	Salutation   string
	CustomerName string
	Address      string
	Phone        string
	Email        string // empty means the line is omitted

	Intro string

	Rows          []LineRow
	AmountInWords string

	Terms           []string
	FooterSignatory string
	FooterTagline   string
}

// Compose builds the document tree for a quotation. The quotation is
// validated first; composition itself cannot fail for a valid record, so
// any later failure wraps ErrComposition.
func Compose(q *Quotation) (*Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if diff, diverged := CheckTotalDivergence(q); diverged {
		log.Printf("compose: quotation %s stored total diverges from subtotal+taxes by %.2f", q.QuotationNumber, diff)
	}

	date, err := FormatDisplayDate(q.QuotationDate)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		CompanyName:    CompanyName,
		CompanyAddress: CompanyAddress,
		CompanyPhone:   CompanyPhone,
		CompanyEmail:   CompanyEmail,

		QuotationNumber: q.QuotationNumber,
		QuotationDate:   date,

		Salutation:   q.Salutation(),
		CustomerName: q.CustomerName,
		Address:      q.Address,
		Phone:        q.Phone,
		Email:        q.Email,

		Intro: fmt.Sprintf(
			"Dear %s %s, thank you for giving us the opportunity to quote for the relocation of your household effects from %s to %s. We are pleased to submit our most competitive rates below.",
			q.Salutation(), q.CustomerName, q.Origin, q.Destination,
		),

		Terms:           quotationTerms,
		FooterSignatory: "For " + CompanyName,
		FooterTagline:   CompanyTagline,
	}

	rows, err := composeRows(q)
	if err != nil {
		return nil, err
	}
	doc.Rows = rows
	doc.AmountInWords = AmountToWords(q.TotalAmount)

	return doc, nil
}

// composeRows builds the line-item table. Sr numbering is dense and
// sequential over the household, car, services and tax rows; absent rows
// are skipped without leaving a gap, and the subtotal/grand-total rows
// carry no number.
func composeRows(q *Quotation) ([]LineRow, error) {
	inr := func(amount float64) (string, error) {
		s, err := FormatINR(amount)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrComposition, err)
		}
		return s, nil
	}

	var rows []LineRow
	sr := 0

	// Household goods transportation is always present.
	sr++
	household, err := inr(q.HouseholdCharge)
	if err != nil {
		return nil, err
	}
	row := LineRow{
		Kind:   RowHousehold,
		Sr:     sr,
		Label:  "Household Goods Transportation",
		Amount: household,
	}
	if q.HouseholdVolume != "" {
		row.Detail = "Volume: " + q.HouseholdVolume
	}
	rows = append(rows, row)

	if q.CarCharge > 0 {
		sr++
		car, err := inr(q.CarCharge)
		if err != nil {
			return nil, err
		}
		rows = append(rows, LineRow{
			Kind:   RowCar,
			Sr:     sr,
			Label:  "Car Transportation",
			Amount: car,
		})
	}

	if active := ActiveServices(q); len(active) > 0 {
		sr++
		var serviceRows []ServiceRow
		var total float64
		for _, s := range active {
			amount, err := inr(s.Amount)
			if err != nil {
				return nil, err
			}
			serviceRows = append(serviceRows, ServiceRow{
				Name:   HumanizeServiceKey(s.Key),
				Amount: amount,
			})
			total += s.Amount
		}
		amount, err := inr(total)
		if err != nil {
			return nil, err
		}
		rows = append(rows, LineRow{
			Kind:     RowServices,
			Sr:       sr,
			Label:    "Ancillary Services",
			Services: serviceRows,
			Amount:   amount,
		})
	}

	subtotal, err := inr(ComputeSubtotal(q))
	if err != nil {
		return nil, err
	}
	rows = append(rows, LineRow{
		Kind:   RowSubtotal,
		Label:  "Subtotal",
		Amount: subtotal,
	})

	for _, tax := range ActiveTaxes(q) {
		sr++
		amount, err := inr(tax.Amount)
		if err != nil {
			return nil, err
		}
		rows = append(rows, LineRow{
			Kind:   RowTax,
			Sr:     sr,
			Label:  fmt.Sprintf("%s @%g%%", tax.Kind.Label(), tax.Percentage),
			Amount: amount,
		})
	}

	// The stored total is authoritative; it is never recomputed here even
	// when it disagrees with subtotal + taxes.
	grand, err := inr(q.TotalAmount)
	if err != nil {
		return nil, err
	}
	rows = append(rows, LineRow{
		Kind:   RowGrandTotal,
		Label:  "Grand Total",
		Amount: grand,
	})

	return rows, nil
}
