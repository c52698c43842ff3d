package layout

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
)

// Link is a navigation link shown above the pages (preview only).
type Link struct {
	Label string
	Href  string
}

// HTMLOptions controls document-level output.
type HTMLOptions struct {
	Title string
	// AutoPrint adds a script that opens the print dialog once layout has
	// settled for two animation frames.
	AutoPrint bool
	Links     []Link
}

// PageBreakClass marks the element placed between consecutive pages.
const PageBreakClass = "pageBreak"

// WriteHTML writes a standalone HTML document containing pages in order.
// Every page shares the @page size of the first one, so pages must come
// from the same settings.
func WriteHTML(w io.Writer, pages []Page, opts HTMLOptions) error {
	doc := htmlDoc{
		Title:     opts.Title,
		AutoPrint: opts.AutoPrint,
		Links:     opts.Links,
		BaseCSS:   template.CSS(baseCSS),
	}
	if doc.Title == "" {
		doc.Title = "Planner"
	}
	if len(pages) > 0 {
		doc.PageRule = template.CSS(fmt.Sprintf(
			"@media print { @page { size: %smm %smm; margin: 0; } }",
			num(pages[0].WidthMm), num(pages[0].HeightMm)))
	}
	for i, p := range pages {
		doc.Pages = append(doc.Pages, newHTMLPage(p, i < len(pages)-1))
	}
	if err := documentTmpl.Execute(w, doc); err != nil {
		return fmt.Errorf("rendering planner html: %w", err)
	}
	return nil
}

type htmlDoc struct {
	Title     string
	AutoPrint bool
	Links     []Link
	BaseCSS   template.CSS
	PageRule  template.CSS
	Pages     []htmlPage
}

type htmlPage struct {
	Page
	BreakAfter bool

	PageStyle      template.CSS
	InnerStyle     template.CSS
	YearStyle      template.CSS
	MonthStyle     template.CSS
	GapStyle       template.CSS
	GridStyle      template.CSS
	HeaderRowStyle template.CSS
	RowStyle       template.CSS
	CellStyle      template.CSS
	HeaderCellCSS  template.CSS
	DayNumStyle    template.CSS
	WeekdayStyle   template.CSS
	Minis          []htmlMini
}

type htmlMini struct {
	MiniMonth
	TitleStyle   template.CSS
	GridStyle    template.CSS
	WeekendStyle template.CSS
}

func newHTMLPage(p Page, breakAfter bool) htmlPage {
	g := p.Grid
	line := num(g.LineWeightPt) + "pt"

	cols := make([]string, len(g.ColumnWidthsMm))
	for i, w := range g.ColumnWidthsMm {
		cols[i] = num(w) + "mm"
	}
	gridCols := strings.Join(cols, " ")

	hp := htmlPage{
		Page:       p,
		BreakAfter: breakAfter,
		PageStyle: css("width: %smm; height: %smm; font-family: %s;",
			num(p.WidthMm), num(p.HeightMm), p.FontStack),
		InnerStyle: css("padding: %smm %smm %smm %smm;",
			num(p.Margins.TopMm), num(p.Margins.RightMm), num(p.Margins.BottomMm), num(p.Margins.LeftMm)),
		YearStyle:  css("font-size: %spt;", num(p.Header.YearSizePt)),
		MonthStyle: css("font-size: %spt;", num(p.Header.MonthSizePt)),
		GapStyle:   css("height: %smm;", num(p.GapMm)),
		GridStyle:  css("border: %s solid rgba(17, 17, 17, 0.7);", line),
		HeaderRowStyle: css("grid-template-columns: %s; height: %smm; border-top-width: %s; border-bottom-width: %s;",
			gridCols, num(g.HeaderRowHeightMm), line, line),
		RowStyle: css("grid-template-columns: %s; height: %smm; border-bottom: %s solid rgba(17, 17, 17, 0.55);",
			gridCols, num(g.RowHeightMm), line),
		CellStyle:     css("border-right: %s solid rgba(17, 17, 17, 0.55); font-size: %spt;", line, num(p.BodyFontPt)),
		HeaderCellCSS: css("font-size: %spt;", num(g.HeaderCellFontPt)),
		DayNumStyle:   css("width: %smm;", num(g.DayNumWidthMm)),
		WeekdayStyle:  css("font-size: %spt;", num(g.WeekdayFontPt)),
	}

	for _, m := range p.Minis {
		weekend := "rgba(17,17,17,0.75)"
		if m.WeekendRed {
			weekend = ColorWeekend
		}
		hp.Minis = append(hp.Minis, htmlMini{
			MiniMonth:    m,
			TitleStyle:   css("font-size: %spt;", num(m.FontPt+0.6)),
			GridStyle:    css("font-size: %spt;", num(m.FontPt)),
			WeekendStyle: css("color: %s;", weekend),
		})
	}
	return hp
}

// css builds a trusted style value. Inputs come from the page model, which
// only holds numbers and the fixed font stacks.
func css(format string, args ...any) template.CSS {
	return template.CSS(fmt.Sprintf(format, args...))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var documentTmpl = template.Must(template.New("planner").Funcs(template.FuncMap{
	// cells yields n iterations for the blank writable cells of a day row.
	"cells": func(n int) []struct{} { return make([]struct{}, n) },
}).Parse(documentHTML))

const baseCSS = `
* { box-sizing: border-box; }
body { margin: 0; background: #e9e9ec; color: #111; }
.links { display: flex; gap: 12px; justify-content: center; padding: 12px; font-family: system-ui, sans-serif; }
.plannerWrap { display: grid; place-items: start center; padding: 10px 0 24px; }
.plannerPage { background: white; color: #111; border-radius: 10px; box-shadow: 0 20px 60px rgba(0, 0, 0, 0.25); border: 1px solid rgba(17, 17, 17, 0.14); overflow: hidden; }
.plannerInner { height: 100%; display: flex; flex-direction: column; }
.plannerHeader { display: flex; justify-content: space-between; align-items: flex-start; gap: 12px; }
.headerLeft { display: grid; gap: 6px; align-content: start; }
.year { font-weight: 700; letter-spacing: 0.04em; color: #333; }
.month { font-weight: 800; letter-spacing: 0.06em; line-height: 0.9; }
.headerRight { display: grid; grid-auto-flow: column; gap: 14px; align-items: start; }
.gridWrap { flex: 1; display: flex; flex-direction: column; min-height: 0; }
.gridRow { display: grid; }
.gridHeaderRow { border-style: solid none; border-color: rgba(17, 17, 17, 0.55); }
.cell { padding: 0 6px; display: flex; align-items: center; }
.cell:last-child { border-right: none !important; }
.headerCell { font-weight: 700; color: rgba(17, 17, 17, 0.65); letter-spacing: 0.08em; text-transform: uppercase; }
.dayCell { padding: 0 7px; }
.dayCellInner { display: flex; align-items: baseline; justify-content: space-between; width: 100%; gap: 8px; }
.dayNum { font-weight: 800; text-align: left; }
.dow { font-weight: 700; letter-spacing: 0.1em; text-align: right; flex: 1; }
.mini { width: 86px; user-select: none; }
.miniTitle { font-weight: 700; color: rgba(17, 17, 17, 0.75); display: flex; gap: 6px; margin-bottom: 3px; }
.miniGrid { display: grid; grid-template-columns: repeat(7, 1fr); gap: 2px; color: rgba(17, 17, 17, 0.75); }
.miniDow { font-weight: 700; text-align: center; opacity: 0.7; }
.miniCell { text-align: center; padding: 1px 0; border-radius: 3px; min-height: 10px; }
.miniCell.today { outline: 1px solid rgba(17, 17, 17, 0.4); }
.pageBreak { break-after: page; page-break-after: always; height: 0; }
@media print {
  body { background: white; }
  .links { display: none; }
  .plannerWrap { padding: 0; }
  .plannerPage { box-shadow: none !important; border: none !important; border-radius: 0 !important; }
}
`

const documentHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>{{.BaseCSS}}</style>
{{- if .PageRule}}
<style>{{.PageRule}}</style>
{{- end}}
</head>
<body>
{{- if .Links}}
<nav class="links">{{range .Links}}<a href="{{.Href}}">{{.Label}}</a>{{end}}</nav>
{{- end}}
{{- range .Pages}}
<div class="plannerWrap">
<div class="plannerPage" data-year="{{.Year}}" data-month="{{.Month}}" style="{{.PageStyle}}">
<div class="plannerInner" style="{{.InnerStyle}}">
<header class="plannerHeader">
<div class="headerLeft">
<div class="year" style="{{.YearStyle}}">{{.Header.Year}}</div>
<div class="month" style="{{.MonthStyle}}">{{.Header.Month}}</div>
</div>
<div class="headerRight">
{{- range .Minis}}
<div class="mini">
<div class="miniTitle" style="{{.TitleStyle}}">{{.Title}}</div>
<div class="miniGrid" style="{{.GridStyle}}">
{{- range .Headers}}<div class="miniDow">{{.}}</div>{{end}}
{{- $weekend := .WeekendStyle}}
{{- range .Weeks}}{{range .}}<div class="miniCell{{if .IsToday}} today{{end}}"{{if .IsWeekend}} style="{{$weekend}}"{{end}}>{{if .Day}}{{.Day}}{{end}}</div>{{end}}{{end}}
</div>
</div>
{{- end}}
</div>
</header>
<div style="{{.GapStyle}}"></div>
<section class="gridWrap" style="{{.GridStyle}}">
{{- $p := .}}
<div class="gridRow gridHeaderRow" style="{{.HeaderRowStyle}}">
<div class="cell dayCell headerCell" style="{{.CellStyle}}"><div class="dayCellInner"><span class="dayNum" style="{{.DayNumStyle}}">{{.Grid.HeaderRow.DayLabel}}</span><span class="dow">{{.Grid.HeaderRow.WeekdayLabel}}</span></div></div>
{{- range .Grid.HeaderRow.Columns}}
<div class="cell headerCell" data-column="{{.ID}}" style="{{$p.CellStyle}} {{$p.HeaderCellCSS}}">{{.Label}}</div>
{{- end}}
</div>
{{- range .Grid.Rows}}
<div class="gridRow dayRow" data-day="{{.Day}}" style="{{$p.RowStyle}}">
<div class="cell dayCell" style="{{$p.CellStyle}}"><div class="dayCellInner"><span class="dayNum" style="{{$p.DayNumStyle}} color: {{.Color}};">{{.Day}}</span><span class="dow" style="{{$p.WeekdayStyle}} color: {{.Color}};">{{.WeekdayLabel}}</span></div></div>
{{- range cells .Cells}}<div class="cell writeCell" style="{{$p.CellStyle}}"></div>{{end}}
</div>
{{- end}}
</section>
</div>
</div>
</div>
{{- if .BreakAfter}}
<div class="pageBreak"></div>
{{- end}}
{{- end}}
{{- if .AutoPrint}}
<script>requestAnimationFrame(function () { requestAnimationFrame(function () { window.print(); }); });</script>
{{- end}}
</body>
</html>
`
