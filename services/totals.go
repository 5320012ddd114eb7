package services

import "math"

// totalEpsilon is the tolerated gap between the stored grand total and
// subtotal + taxes before a divergence warning fires. Half a rupee covers
// round-to-rupee data entry upstream.
const totalEpsilon = 0.5

// ComputeSubtotal sums the household charge, the car charge when set, and
// every active ancillary service. It never fails; zero-value fields simply
// contribute nothing. The stored total_amount is deliberately not
// consulted here.
func ComputeSubtotal(q *Quotation) float64 {
	subtotal := q.HouseholdCharge
	if q.CarCharge > 0 {
		subtotal += q.CarCharge
	}
	for _, s := range ActiveServices(q) {
		subtotal += s.Amount
	}
	return subtotal
}

// ActiveServices filters the service list to entries with a positive
// amount, preserving the admin form's insertion order.
func ActiveServices(q *Quotation) []ServiceCharge {
	var active []ServiceCharge
	for _, s := range q.Services {
		if s.Amount > 0 {
			active = append(active, s)
		}
	}
	return active
}

// ActiveTaxes filters the tax lines to entries with a positive amount.
// The order is the fixed FOV, Surcharge, GST sequence from DecodeTaxes.
// A tax with a nonzero percentage but a zero stored amount is excluded:
// the stored amount is authoritative, not the rate.
func ActiveTaxes(q *Quotation) []TaxLine {
	var active []TaxLine
	for _, tax := range q.Taxes {
		if tax.Amount > 0 {
			active = append(active, tax)
		}
	}
	return active
}

// CheckTotalDivergence compares the stored grand total against the
// recomputed subtotal plus active taxes. It returns the signed difference
// and whether it exceeds the rounding epsilon. Callers log the divergence
// as a data-entry warning; it is never a hard failure because the stored
// total stays authoritative on the document.
func CheckTotalDivergence(q *Quotation) (float64, bool) {
	expected := ComputeSubtotal(q)
	for _, tax := range ActiveTaxes(q) {
		expected += tax.Amount
	}
	diff := q.TotalAmount - expected
	return diff, math.Abs(diff) > totalEpsilon
}
