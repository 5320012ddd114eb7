package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF renders a composed quotation document to PDF bytes.
// Every call builds its own maroto instance, so concurrent exports never
// share rendering state. Rows that overflow an A4 page flow onto the next
// page. Any generation failure is returned as *ExportError wrapping the
// cause, with no partial output.
func GenerateQuotationPDF(doc *Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, doc)
	addRecipientBlock(m, doc)
	addIntroParagraph(m, doc)
	addLineItemsTable(m, doc)
	addAmountInWords(m, doc)
	addTermsBlock(m, doc)
	addFooterBlock(m, doc)

	out, err := m.Generate()
	if err != nil {
		return nil, &ExportError{Cause: fmt.Errorf("generate quotation pdf: %w", err)}
	}

	return out.GetBytes(), nil
}

// addQuotationHeader adds the company identity block with the quotation
// number and date on the right.
func addQuotationHeader(m core.Maroto, doc *Document) {
	m.AddRows(
		row.New(10).Add(
			col.New(7).Add(
				text.New(doc.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(5).Add(
				text.New("QUOTATION", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(5).Add(
			col.New(7).Add(
				text.New(doc.CompanyAddress, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(5).Add(
				text.New(fmt.Sprintf("Quotation #: %s", doc.QuotationNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(
		row.New(5).Add(
			col.New(7).Add(
				text.New(fmt.Sprintf("%s | %s", doc.CompanyPhone, doc.CompanyEmail), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(5).Add(
				text.New(fmt.Sprintf("Date: %s", doc.QuotationDate), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addRecipientBlock adds the customer block. The email line is omitted
// when the record has no email.
func addRecipientBlock(m core.Maroto, doc *Document) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("TO", labelStyle)),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(fmt.Sprintf("%s %s", doc.Salutation, doc.CustomerName), props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		),
	)

	for _, line := range strings.Split(doc.Address, "\n") {
		if line == "" {
			continue
		}
		m.AddRows(
			row.New(5).Add(col.New(12).Add(text.New(line, valueStyle))),
		)
	}

	m.AddRows(
		row.New(5).Add(col.New(12).Add(text.New(fmt.Sprintf("Phone: %s", doc.Phone), valueStyle))),
	)

	if doc.Email != "" {
		m.AddRows(
			row.New(5).Add(col.New(12).Add(text.New(fmt.Sprintf("Email: %s", doc.Email), valueStyle))),
		)
	}

	m.AddRows(row.New(3))
}

// addIntroParagraph adds the templated greeting paragraph.
func addIntroParagraph(m core.Maroto, doc *Document) {
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(text.New(doc.Intro, props.Text{
				Size:  8,
				Align: align.Left,
			})),
		),
	)
	m.AddRows(row.New(2))
}

// addLineItemsTable renders the composed rows. Sr numbering, conditional
// rows and the authoritative grand total are all decided by the composer;
// this stage only draws.
func addLineItemsTable(m core.Maroto, doc *Document) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("Sr.", headerText)).WithStyle(&headerCell),
			col.New(8).Add(text.New("Particulars", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
		),
	)

	bodyText := props.Text{Size: 8, Align: align.Center}
	bodyTextLeft := props.Text{Size: 8, Align: align.Left}
	bodyTextRight := props.Text{Size: 8, Align: align.Right}
	detailText := props.Text{
		Size:  7,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}

	for _, lr := range doc.Rows {
		switch lr.Kind {
		case RowSubtotal:
			labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
			m.AddRows(
				row.New(7).Add(
					col.New(9).Add(text.New(lr.Label, labelStyle)).WithStyle(summaryCell),
					col.New(3).Add(text.New(lr.Amount, bodyTextRight)).WithStyle(summaryCell),
				),
			)

		case RowGrandTotal:
			labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: white}
			valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: white}
			m.AddRows(
				row.New(8).Add(
					col.New(9).Add(text.New(lr.Label, labelStyle)).WithStyle(grandCell),
					col.New(3).Add(text.New(lr.Amount, valueStyle)).WithStyle(grandCell),
				),
			)

		default:
			m.AddRows(
				row.New(7).Add(
					col.New(1).Add(text.New(fmt.Sprintf("%d", lr.Sr), bodyText)),
					col.New(8).Add(text.New(lr.Label, bodyTextLeft)),
					col.New(3).Add(text.New(lr.Amount, bodyTextRight)),
				),
			)
			if lr.Detail != "" {
				m.AddRows(
					row.New(5).Add(
						col.New(1),
						col.New(11).Add(text.New(lr.Detail, detailText)),
					),
				)
			}
			for _, svc := range lr.Services {
				m.AddRows(
					row.New(5).Add(
						col.New(1),
						col.New(8).Add(text.New("- "+svc.Name, detailText)),
						col.New(3).Add(text.New(svc.Amount, props.Text{
							Size:  7,
							Align: align.Right,
							Color: &props.Color{Red: 100, Green: 100, Blue: 100},
						})),
					),
				)
			}
		}
	}

	m.AddRows(row.New(3))
}

// addAmountInWords adds the grand total spelled out in words.
func addAmountInWords(m core.Maroto, doc *Document) {
	if doc.AmountInWords == "" {
		return
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: %s", doc.AmountInWords), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(row.New(2))
}

// addTermsBlock adds the fixed terms and conditions.
func addTermsBlock(m core.Maroto, doc *Document) {
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("TERMS & CONDITIONS", props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: &props.Color{Red: 33, Green: 37, Blue: 41},
			})),
		),
	)

	for i, term := range doc.Terms {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New(fmt.Sprintf("%d. %s", i+1, term), props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				})),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addFooterBlock adds the signatory placeholder and the marketing line.
func addFooterBlock(m core.Maroto, doc *Document) {
	m.AddRows(row.New(8))

	m.AddRows(
		row.New(5).Add(
			col.New(7),
			col.New(5).Add(text.New(doc.FooterSignatory, props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
		),
	)

	m.AddRows(row.New(10))

	m.AddRows(
		row.New(5).Add(
			col.New(7),
			col.New(5).Add(text.New("Authorized Signatory", props.Text{
				Size:  7,
				Align: align.Right,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(doc.FooterTagline, props.Text{
				Size:  7,
				Style: fontstyle.Italic,
				Align: align.Center,
				Color: &props.Color{Red: 120, Green: 120, Blue: 120},
			})),
		),
	)
}
