package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/mltpascual/ordertaker/pkg/models/domain"
)

type TableConfig struct {
	NameWidth     int
	QuantityWidth int
	RevenueWidth  int
	PercentWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:     32,
		QuantityWidth: 10,
		RevenueWidth:  12,
		PercentWidth:  8,
	}
}

// Reporter renders a sales report as fixed-width text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.SalesReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, quantity interface{}, revenue interface{}, percent interface{}) string {
			return fmt.Sprintf("| %-*s | %*v | %*v | %*v |",
				c.config.NameWidth, name,
				c.config.QuantityWidth, quantity,
				c.config.RevenueWidth, revenue,
				c.config.PercentWidth, percent)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.QuantityWidth+2),
				strings.Repeat("-", c.config.RevenueWidth+2),
				strings.Repeat("-", c.config.PercentWidth+2))
		},
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"percent": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
	}

	tmpl := `
Sales Report ({{.Range}})
Generated: {{.GeneratedAt.Format "2006-01-02 15:04"}}

Orders: {{.Metrics.TotalOrders}}
Revenue: {{money .Metrics.TotalRevenue}}
Average Order Value: {{money .Metrics.AverageOrderValue}}

=== Revenue Trend ===
{{range .Trend}}{{printf "%-12s %10s" .Label (money .Revenue)}}
{{end}}
=== Top Selling Items ===
{{separator}}
{{formatRow "Name" "Quantity" "Revenue" "Share"}}
{{separator}}
{{range .Metrics.TopSellingItems}}{{formatRow .Name .TotalQuantity (money .TotalRevenue) (percent .Percentage)}}
{{end}}{{separator}}

=== Top Earning Items ===
{{separator}}
{{formatRow "Name" "Quantity" "Revenue" "Share"}}
{{separator}}
{{range .Metrics.TopEarningItems}}{{formatRow .Name .TotalQuantity (money .TotalRevenue) (percent .Percentage)}}
{{end}}{{separator}}

=== Orders by Source ===
{{range .Metrics.BySource}}{{printf "%-20s %6d orders %12s" .Source .Count (money .Revenue)}}
{{end}}
=== Sales by Category ===
{{range .Metrics.ByCategory}}{{printf "%s: %d sold, %s" .Category .TotalQuantity (money .TotalRevenue)}}
{{range .Items}}  {{printf "%-30s %6d %8s" .Name .Quantity (percent .Percentage)}}
{{end}}{{end}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
