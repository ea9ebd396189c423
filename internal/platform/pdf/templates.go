package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/invomate/invomate_app/internal/utils/billing"
)

var (
	headerShade = props.Color{Red: 60, Green: 60, Blue: 60}
	lightShade  = props.Color{Red: 240, Green: 240, Blue: 240}
	accentBlue  = props.Color{Red: 37, Green: 99, Blue: 165}
	white       = props.Color{Red: 255, Green: 255, Blue: 255}
)

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// buildTemplate1 is the classic layout: centered title, boxed party blocks,
// shaded table header with alternating row shading.
func buildTemplate1(m core.Maroto, data documentData) {
	m.AddRows(
		text.NewRow(12, data.Kind, props.Text{Size: 20, Style: fontstyle.Bold, Align: align.Center}),
		text.NewRow(6, fmt.Sprintf("%s #%s", data.Kind, data.Number), props.Text{Size: 10, Align: align.Center}),
		text.NewRow(5, fmt.Sprintf("Date: %s    Due: %s    Status: %s", data.Date, data.DueDate, data.Status),
			props.Text{Size: 9, Align: align.Center}),
		row.New(4),
	)

	addPartyBlocks(m, data)
	addItemTable(m, data.Items, true)
	addTotalsBlock(m, data)
}

// buildTemplate2 is the minimal layout: left-aligned title, no row shading,
// rule lines between sections.
func buildTemplate2(m core.Maroto, data documentData) {
	m.AddRows(
		text.NewRow(12, data.Kind, props.Text{Size: 22, Style: fontstyle.Bold}),
		text.NewRow(5, fmt.Sprintf("#%s", data.Number), props.Text{Size: 10}),
		text.NewRow(5, fmt.Sprintf("Issued %s — due %s (%s)", data.Date, data.DueDate, data.Status), props.Text{Size: 9}),
		line.NewRow(3),
	)

	addPartyBlocks(m, data)
	m.AddRows(line.NewRow(3))
	addItemTable(m, data.Items, false)
	m.AddRows(line.NewRow(3))
	addTotalsBlock(m, data)
}

// buildTemplate3 is the accented layout: colored banner header and
// alternating row shading.
func buildTemplate3(m core.Maroto, data documentData) {
	m.AddRows(
		row.New(14).Add(
			text.NewCol(8, data.Kind, props.Text{Size: 20, Style: fontstyle.Bold, Color: &white, Top: 3, Left: 3}),
			text.NewCol(4, "#"+data.Number, props.Text{Size: 11, Color: &white, Top: 5, Align: align.Right, Right: 3}),
		).WithStyle(&props.Cell{BackgroundColor: &accentBlue}),
		row.New(6).Add(
			text.NewCol(12, fmt.Sprintf("Date: %s  |  Due: %s  |  Status: %s", data.Date, data.DueDate, data.Status),
				props.Text{Size: 9, Top: 1}),
		),
		row.New(4),
	)

	addPartyBlocks(m, data)
	addItemTable(m, data.Items, true)
	addTotalsBlock(m, data)
}

// addPartyBlocks renders the two-column business/client info blocks shared by
// every template.
func addPartyBlocks(m core.Maroto, data documentData) {
	m.AddRows(
		row.New(6).Add(
			text.NewCol(6, "From", props.Text{Size: 10, Style: fontstyle.Bold}),
			text.NewCol(6, "Bill To", props.Text{Size: 10, Style: fontstyle.Bold}),
		),
		row.New(5).Add(
			text.NewCol(6, data.Business.Name, props.Text{Size: 9}),
			text.NewCol(6, data.Client.Name, props.Text{Size: 9}),
		),
		row.New(5).Add(
			text.NewCol(6, data.Business.Address, props.Text{Size: 8}),
			text.NewCol(6, data.Client.Address, props.Text{Size: 8}),
		),
		row.New(5).Add(
			text.NewCol(6, contactLine(data.Business.Email, data.Business.PhoneNumber), props.Text{Size: 8}),
			text.NewCol(6, contactLine(data.Client.Email, data.Client.PhoneNumber), props.Text{Size: 8}),
		),
	)
	if data.Business.ABN != "" {
		m.AddRows(row.New(5).Add(
			text.NewCol(6, "ABN: "+data.Business.ABN, props.Text{Size: 8}),
			col.New(6),
		))
	}
	m.AddRows(row.New(4))
}

func contactLine(email, phone string) string {
	switch {
	case email != "" && phone != "":
		return email + "  |  " + phone
	case email != "":
		return email
	default:
		return phone
	}
}

// addItemTable renders the line-item table. When shaded is true, every other
// data row gets a light background.
func addItemTable(m core.Maroto, items []domain.LineItem, shaded bool) {
	header := row.New(7).Add(
		text.NewCol(3, "Item", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 1, Left: 1}),
		text.NewCol(4, "Description", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 1}),
		text.NewCol(1, "Qty", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 1, Align: align.Right}),
		text.NewCol(2, "Unit Price", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 1, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 1, Align: align.Right, Right: 1}),
	).WithStyle(&props.Cell{BackgroundColor: &headerShade})

	rows := []core.Row{header}
	for i, item := range items {
		r := row.New(6).Add(
			text.NewCol(3, item.ItemName, props.Text{Size: 9, Top: 1, Left: 1}),
			text.NewCol(4, item.Description, props.Text{Size: 8, Top: 1}),
			text.NewCol(1, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Top: 1, Align: align.Right}),
			text.NewCol(2, money(item.UnitPrice), props.Text{Size: 9, Top: 1, Align: align.Right}),
			text.NewCol(2, money(item.Total), props.Text{Size: 9, Top: 1, Align: align.Right, Right: 1}),
		)
		if shaded && i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: &lightShade})
		}
		rows = append(rows, r)
	}
	m.AddRows(rows...)
}

// addTotalsBlock renders the subtotal/discount/tax/total summary. Totals are
// recomputed here from the items; this is the authoritative display total.
func addTotalsBlock(m core.Maroto, data documentData) {
	totals := billing.RenderTotals(data.Items, data.Discount, data.TaxRate)

	m.AddRows(
		row.New(4),
		totalsRow("Subtotal", money(totals.Subtotal), false),
		totalsRow("Discount", "-"+money(data.Discount), false),
		totalsRow(fmt.Sprintf("Tax (%s%%)", data.TaxRate.String()), money(totals.Tax), false),
		totalsRow("Total", money(totals.Total), true),
	)
}

func totalsRow(label, value string, emphasized bool) core.Row {
	style := props.Text{Size: 9, Align: align.Right}
	if emphasized {
		style = props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}
	}
	return row.New(6).Add(
		col.New(8),
		text.NewCol(2, label, style),
		text.NewCol(2, value, style),
	)
}
