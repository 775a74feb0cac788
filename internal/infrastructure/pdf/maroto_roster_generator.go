// Package pdf renders the printable criminal records roster handed out at
// station briefings.
//
// A4 landscape layout:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Criminal Records Register + generation date         │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLE: Name | Crime | State | LGA | Gender | Age | Arrest   │
//	│         ... one row per record, newest first ...             │
//	│  ──────────────────────────────────────────────────────────  │
//	│  FOOTER: record count                                        │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/crimsng/crims-api/internal/application/usecase"
	"github.com/crimsng/crims-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 51, Blue: 102}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ usecase.RosterPDFGenerator = (*MarotoRosterGenerator)(nil)

// MarotoRosterGenerator implements usecase.RosterPDFGenerator with Maroto v2.
type MarotoRosterGenerator struct{}

// NewMarotoRosterGenerator builds the generator.
func NewMarotoRosterGenerator() *MarotoRosterGenerator { return &MarotoRosterGenerator{} }

// GenerateRoster renders the roster and returns the PDF bytes.
func (g *MarotoRosterGenerator) GenerateRoster(_ context.Context, criminals []*entity.Criminal) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Criminal Records Register", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, c := range criminals {
		m.AddRows(detailRow(c))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(criminals)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate roster PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("CRIMINAL RECORDS REGISTER", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New("Generated "+time.Now().Format("02 Jan 2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Size: 9, Style: fontstyle.Bold, Color: colorWhite, Top: 1}),
		)
	}
	r := row.New(7).Add(
		header(3, "Name"),
		header(2, "Crime code"),
		header(2, "State"),
		header(1, "LGA"),
		header(1, "Gender"),
		header(1, "Age"),
		header(2, "Arrest date"),
	)
	r.WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	return r
}

func detailRow(c *entity.Criminal) core.Row {
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Top: 1}))
	}
	age := ""
	if c.Age != nil {
		age = fmt.Sprintf("%d", *c.Age)
	}
	arrest := ""
	if c.ArrestDate != nil {
		arrest = c.ArrestDate.Format("2006-01-02")
	}
	return row.New(6).Add(
		cell(3, c.Name),
		cell(2, c.CrimeCode),
		cell(2, c.State),
		cell(1, c.LGA),
		cell(1, c.Gender),
		cell(1, age),
		cell(2, arrest),
	)
}

func footerRow(total int) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d record(s)", total), props.Text{
				Size: 8, Color: colorGray, Align: align.Right,
			}),
		),
	)
}
