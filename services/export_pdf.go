package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF encodes a rendered document into PDF bytes using maroto/v2.
// The instruction sequence already carries the page breaks, so each segment
// between breaks becomes one explicit page.
func GeneratePDF(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).
		WithTopMargin(20).
		WithRightMargin(20).
		Build()

	m := maroto.New(cfg)

	var rows []core.Row
	flush := func() {
		m.AddPages(page.New().Add(rows...))
		rows = nil
	}

	for _, instr := range doc.Instructions {
		switch instr.Op {
		case OpPageBreak:
			flush()
		case OpTitle:
			rows = append(rows, textRow(instr.Text, lineHeight*2, 20, fontstyle.Bold))
		case OpHeading:
			rows = append(rows, textRow(instr.Text, lineHeight*1.5, 16, fontstyle.Bold))
		case OpSubheading:
			rows = append(rows, textRow(instr.Text, lineHeight, 14, fontstyle.Bold))
		case OpField, OpText:
			rows = append(rows, textRow(instr.Text, lineHeight, 12, fontstyle.Normal))
		case OpSpacer:
			rows = append(rows, row.New(lineHeight))
		}
	}
	flush()

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return generated.GetBytes(), nil
}

func textRow(content string, height, size float64, style fontstyle.Type) core.Row {
	return row.New(height).Add(
		col.New(12).Add(
			text.New(content, props.Text{
				Size:  size,
				Style: style,
			}),
		),
	)
}
