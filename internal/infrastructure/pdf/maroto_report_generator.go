// Package pdf renders farm report snapshots as printable A4 documents.
//
// Page layout:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: report title                        │
//	│  META: type | period | generated by/at       │
//	│  ───────────────────────────────────────     │
//	│  SUMMARY: key figures from the snapshot      │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jefftricks/shamba-api/internal/domain/entity"
	"github.com/jefftricks/shamba-api/pkg/currency"
)

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// monetary summary keys rendered as KES amounts.
var monetaryKeys = map[string]bool{
	"revenue":             true,
	"expenses":            true,
	"profit":              true,
	"totalRevenue":        true,
	"totalInventoryValue": true,
	"averageSaleValue":    true,
}

// MarotoReportGenerator implements reporting.PDFGenerator with Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Render draws the report's header, metadata, and summary figures.
func (g *MarotoReportGenerator) Render(report *entity.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metaRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	for _, r := range summaryRows(report.Content) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(report *entity.Report) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func metaRow(report *entity.Report) core.Row {
	period := fmt.Sprintf("%s to %s",
		report.PeriodStart.Format("2006-01-02"), report.PeriodEnd.Format("2006-01-02"))
	generated := report.CreatedAt.Format("2006-01-02 15:04")

	return row.New(10).Add(
		col.New(4).Add(text.New("Type: "+report.ReportType, props.Text{Size: 8, Color: colorGray, Top: 2})),
		col.New(4).Add(text.New("Period: "+period, props.Text{Size: 8, Color: colorGray, Top: 2})),
		col.New(4).Add(text.New("Generated: "+generated, props.Text{Size: 8, Color: colorGray, Top: 2})),
	)
}

// summaryRows renders the content's "summary" object as label/value lines,
// sorted by key for a stable layout. Non-summary sections stay in the stored
// JSON only.
func summaryRows(content json.RawMessage) []core.Row {
	var payload struct {
		Summary map[string]any `json:"summary"`
	}
	if err := json.Unmarshal(content, &payload); err != nil || len(payload.Summary) == 0 {
		return []core.Row{row.New(8).Add(
			col.New(12).Add(text.New("No summary data.", props.Text{Size: 9, Color: colorGray})),
		)}
	}

	keys := make([]string, 0, len(payload.Summary))
	for k := range payload.Summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]core.Row, 0, len(keys)+1)
	rows = append(rows, row.New(9).Add(
		col.New(12).Add(text.New("Summary", props.Text{Style: fontstyle.Bold, Size: 11, Top: 1})),
	))
	for _, k := range keys {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(labelFor(k), props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New(valueFor(k, payload.Summary[k]), props.Text{Size: 9, Top: 1, Style: fontstyle.Bold})),
		))
	}
	return rows
}

// labelFor turns a camelCase summary key into a readable label.
func labelFor(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(r - 'a' + 'A')
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func valueFor(key string, v any) string {
	switch val := v.(type) {
	case float64:
		if monetaryKeys[key] {
			return currency.FormatKESFloat(val)
		}
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%.2f", val)
	case string:
		// Decimal amounts marshal as quoted numbers.
		if monetaryKeys[key] {
			if d, err := decimal.NewFromString(val); err == nil {
				return currency.FormatKES(d)
			}
		}
		return val
	default:
		return fmt.Sprintf("%v", v)
	}
}
