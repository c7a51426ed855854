// Package report renders analysis output for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/example/shopsight/internal/app"
	"github.com/example/shopsight/internal/core/revenue"
	"github.com/example/shopsight/internal/core/rfm"
	"github.com/example/shopsight/internal/models"
)

// Summaries renders the per-segment table, revenue-ranked.
func Summaries(w io.Writer, summaries []models.SegmentSummary) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader([]string{"Segment", "Customers", "Total Revenue", "Avg Revenue", "Avg Frequency", "Avg Recency (days)"})

	for _, s := range summaries {
		name := string(s.Segment)
		if rfm.IsHighValue(s.Segment) {
			name = color.New(color.FgGreen).Sprint(name)
		}
		table.Append([]string{
			name,
			strconv.Itoa(s.CustomerCount),
			fmt.Sprintf("%.2f", s.TotalRevenue),
			fmt.Sprintf("%.2f", s.AvgRevenue),
			fmt.Sprintf("%.2f", s.AvgFrequency),
			fmt.Sprintf("%.2f", s.AvgRecency),
		})
	}
	table.Render()
}

// Analysis renders the full analyze command output.
func Analysis(w io.Writer, r *app.AnalysisReport) {
	fmt.Fprintf(w, "Analysis date: %s\n", r.AnalysisDate.Format("2006-01-02"))
	fmt.Fprintf(w, "Customers scored: %d\n\n", r.CustomerCount)

	Summaries(w, r.Summaries)

	fmt.Fprintf(w, "\nHigh-value segments:\n")
	for _, hv := range r.HighValue {
		fmt.Fprintf(w, "  %-18s %4d customers  %12.2f revenue\n",
			hv.Segment, hv.Customers, rfm.Round2(hv.Revenue))
	}
	Opportunity(w, r.Opportunity)
}

// Opportunity renders the retention estimate block.
func Opportunity(w io.Writer, o models.RetentionOpportunity) {
	fmt.Fprintf(w, "\nHigh-value revenue:  %.2f\n", rfm.Round2(o.HighValueRevenue))
	boost := color.New(color.FgGreen, color.Bold).Sprintf("%.2f", rfm.Round2(o.RetentionBoost))
	fmt.Fprintf(w, "Retention boost (%.0f%% uplift): %s\n", rfm.RetentionBoostRate*100, boost)
}

// KeyMetrics renders the stats command output.
func KeyMetrics(w io.Writer, m *models.KeyMetrics) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader([]string{"Metric", "Value"})

	rows := [][]string{
		{"Total revenue", fmt.Sprintf("%.2f", m.TotalRevenue)},
		{"Completed orders", strconv.Itoa(m.CompletedOrders)},
		{"Total orders", strconv.Itoa(m.TotalOrders)},
		{"Unique customers", strconv.Itoa(m.UniqueCustomers)},
		{"Avg order value", fmt.Sprintf("%.2f", m.AvgOrderValue)},
		{"Orders per customer", fmt.Sprintf("%.2f", m.OrdersPerCustomer)},
		{"First order", m.FirstOrderDate.Format("2006-01-02")},
		{"Last order", m.LastOrderDate.Format("2006-01-02")},
	}
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

// Load renders the load command output.
func Load(w io.Writer, r *app.LoadReport) {
	fmt.Fprintf(w, "Loaded %d orders, %d customers, %d products, %d order items\n\n",
		r.Orders, r.Customers, r.Products, r.Items)

	fmt.Fprintln(w, "Top customers by completed spend:")
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader([]string{"Customer", "Orders", "Total Spent"})
	for _, c := range r.TopCustomers {
		table.Append([]string{
			strconv.Itoa(c.CustomerID),
			strconv.Itoa(c.TotalOrders),
			fmt.Sprintf("%.2f", c.TotalSpent),
		})
	}
	table.Render()
}

// Generate renders the generate command output.
func Generate(w io.Writer, r *app.GenerateReport) {
	fmt.Fprintf(w, "Generated %d customers, %d orders, %d products, %d order items\n",
		r.Customers, r.Orders, r.Products, r.Items)
	fmt.Fprintf(w, "CSV files written to %s\n", r.DataDir)
}

// Revenue renders the revenue export command output.
func Revenue(w io.Writer, r *app.RevenueReport) {
	fmt.Fprintf(w, "Daily revenue series: %d days, %.2f total\n", r.Days, r.Total)
	fmt.Fprintf(w, "Range: %s .. %s\n", r.FirstDate.Format("2006-01-02"), r.LastDate.Format("2006-01-02"))
	fmt.Fprintf(w, "Written to %s\n", r.Path)
}

// Results renders the stored-results roll-up including the optional
// forecast block.
func Results(w io.Writer, r *app.ResultsReport) {
	fmt.Fprintf(w, "Stored segmentation: %d customers, %.2f total revenue\n\n",
		r.TotalCustomers, rfm.Round2(r.TotalRevenue))

	Summaries(w, r.Summaries)
	Opportunity(w, r.Opportunity)

	if r.Forecast != nil {
		Forecast(w, r.Forecast)
	} else {
		fmt.Fprintln(w, "\nNo sales forecast file found; run the forecaster to add one.")
	}
}

// Forecast renders the external forecaster's horizon summary.
func Forecast(w io.Writer, f *revenue.ForecastSummary) {
	fmt.Fprintf(w, "\nSales forecast (%d days):\n", f.Days)
	fmt.Fprintf(w, "  Predicted revenue: %.2f\n", f.Predicted)
	fmt.Fprintf(w, "  Daily average:     %.2f\n", f.AvgDaily)
	fmt.Fprintf(w, "  Range:             %.2f .. %.2f\n", f.LowerBound, f.UpperBound)
}
