package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/ecomet/investor-dashboard/internal/domain"
	"golang.org/x/text/language"
)

// HTMLFormatter produces a standalone HTML dashboard with a projection chart.
type HTMLFormatter struct {
	Views Views
	Lang  language.Tag
}

func (HTMLFormatter) Name() string { return "html" }
func (HTMLFormatter) Ext() string  { return "html" }

// WithLocale implements Localizer.
func (h HTMLFormatter) WithLocale(tag language.Tag) Formatter {
	h.Views = NewViews(tag)
	h.Lang = tag
	return h
}

//go:embed templates/dashboard.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"json": func(v any) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type htmlCard struct {
	Label, Value, Detail string
}

type htmlStep struct {
	Label, Value string
	Negative     bool
}

type htmlPair struct {
	Label, Value string
}

type htmlPage struct {
	Lang       string
	Period     string
	KPIs       []htmlCard
	Funnel     []htmlStep
	Quality    []htmlPair
	Sections   []Table
	Projection Table
	Chart      []domain.ChartPoint
	Issues     []domain.Issue
}

func (h HTMLFormatter) Format(d *domain.Dashboard) ([]byte, error) {
	if d == nil || d.Dataset == nil {
		return nil, fmt.Errorf("html: empty dashboard")
	}
	v := h.Views
	page := htmlPage{
		Lang:   "en",
		Period: d.Dataset.Meta.Period,
		Chart:  d.Chart,
		Issues: d.Issues,
	}
	if h.Lang != language.Und {
		page.Lang = h.Lang.String()
	}
	for _, k := range d.KPIs {
		c := htmlCard{Label: k.Label, Value: FormatCount(k.Value), Detail: v.kpiDetail(k)}
		if k.Currency {
			c.Value = v.Currency.Format(k.Value)
		}
		page.KPIs = append(page.KPIs, c)
	}
	for _, s := range d.Funnel {
		dec, ok := s.Amount.Decimal()
		page.Funnel = append(page.Funnel, htmlStep{
			Label:    s.Label,
			Value:    v.Currency.Format(s.Amount),
			Negative: ok && dec.IsNegative(),
		})
	}
	q := d.SalesQuality
	page.Quality = []htmlPair{
		{"Conversion", FormatPercent(q.ConversionPercent)},
		{"Buy Box", FormatPercent(q.BuyBoxPercent)},
		{"Avg Cost / Unit", v.Currency.Format(q.AvgCostPerUnit)},
		{"Avg Sale Price", v.Currency.Format(q.AvgSalePrice)},
	}
	reasons, disp := v.ReturnsTables(d)
	for _, t := range []Table{
		v.ShipmentsTable(d),
		v.StorageTable(d),
		v.FeesTable(d),
		reasons,
		disp,
		v.ReimbursementsTable(d),
		v.ProfitabilityTable(d),
	} {
		page.Sections = append(page.Sections, withoutSeparators(t))
	}
	page.Projection = withoutSeparators(v.ProjectionTable(d))

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// withoutSeparators drops console rule rows from t.
func withoutSeparators(t Table) Table {
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		if len(r) == 1 && r[0] == "---" {
			continue
		}
		rows = append(rows, r)
	}
	t.Rows = rows
	return t
}
