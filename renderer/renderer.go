package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/etnz/getprice"
	"github.com/shopspring/decimal"
)

//go:embed *.md
var templates embed.FS

// portfolioView is the data passed to portfolio.md.
type portfolioView struct {
	Currency     string
	ExchangeRate float64
	GrandTotal   float64
	Prices       []getprice.Quote
}

// Portfolio renders a portfolio valuation as a markdown table.
func Portfolio(r *getprice.Result) string {
	view := portfolioView{
		Currency:   r.Currency(),
		GrandTotal: r.GrandTotal,
		Prices:     r.Prices,
	}
	if len(r.Prices) > 0 {
		view.ExchangeRate = r.Prices[0].ExchangeRate
	}
	return renderTemplate("portfolio", "portfolio.md", view)
}

// Money formats value in currency with its symbol and separators, e.g. "£37,500.00".
func Money(value float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return fmt.Sprintf("%.2f %s", value, currency)
	}
	minor := decimal.NewFromFloat(value).Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

var funcs = template.FuncMap{
	"money": Money,
}

// renderTemplate renders an embedded template file.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
