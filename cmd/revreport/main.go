// Command revreport prints the revenue/compensation table to the terminal,
// with the derived share-of-revenue column, for use without the GUI viewer.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/miguelartazos/wnba-revenue-viz/src/dataset"
)

var (
	criticalColor = color.New(color.FgRed, color.Bold)
	lowColor      = color.New(color.FgYellow)
	okColor       = color.New(color.FgGreen)
)

// shareCell colors the share percentage by how far it sits from an
// NBA-style 50% split.
func shareCell(pct float64) string {
	s := fmt.Sprintf("%.1f%%", pct)
	switch {
	case pct < 8:
		return criticalColor.Sprint(s)
	case pct < 15:
		return lowColor.Sprint(s)
	default:
		return okColor.Sprint(s)
	}
}

// buildReportRows renders the table body. In percent mode the share and
// salary columns are expressed against that year's revenue.
func buildReportRows(rows []dataset.DataRow, percent bool) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		if percent {
			out = append(out, []string{
				fmt.Sprintf("%d", r.Year),
				fmt.Sprintf("$%.0fM", r.Revenue),
				fmt.Sprintf("%.1f%%", dataset.PercentOfRevenue(r.EqualShare, r.Revenue)),
				fmt.Sprintf("%.1f%%", dataset.PercentOfRevenue(r.Actual, r.Revenue)),
				fmt.Sprintf("%.1f%%", dataset.SharePercent(r)),
			})
			continue
		}
		out = append(out, []string{
			fmt.Sprintf("%d", r.Year),
			fmt.Sprintf("$%.0fM", r.Revenue),
			fmt.Sprintf("$%.0fM", r.EqualShare),
			fmt.Sprintf("$%.0fM", r.Actual),
			fmt.Sprintf("%.1f%%", dataset.SharePercent(r)),
		})
	}
	return out
}

func reportHeaders(percent bool) []string {
	if percent {
		return []string{"Year", "Revenue", "50% Share (% rev)", "Actual (% rev)", "Share %"}
	}
	return []string{"Year", "Revenue", "50% Share", "Actual Salary", "Share %"}
}

func writeTable(w io.Writer, rows []dataset.DataRow, percent bool) error {
	table := tablewriter.NewWriter(w)
	table.Header(reportHeaders(percent))
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	data := buildReportRows(rows, percent)
	for i := range data {
		data[i][4] = shareCell(dataset.SharePercent(rows[i]))
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeCSV(w io.Writer, rows []dataset.DataRow, percent bool) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write(reportHeaders(percent)); err != nil {
		return err
	}
	for _, row := range buildReportRows(rows, percent) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var from, to int
	var percent bool
	var format string
	var logLevel string
	flag.IntVar(&from, "from", 0, "First year to include (default: dataset minimum)")
	flag.IntVar(&to, "to", 0, "Last year to include (default: dataset maximum)")
	flag.BoolVar(&percent, "percent", false, "Express share and salary as a percentage of revenue")
	flag.StringVar(&format, "format", "table", "Output format: table or csv")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	dataset.SetLogLevel(logLevel)

	rows := dataset.Sample()
	if err := dataset.Validate(rows); err != nil {
		fmt.Fprintf(os.Stderr, "error: dataset invalid: %v\n", err)
		os.Exit(1)
	}

	min, max, _ := dataset.YearBounds(rows)
	if from == 0 {
		from = min
	}
	if to == 0 {
		to = max
	}
	filtered := dataset.FilterYears(rows, from, to)
	if len(filtered) == 0 {
		fmt.Fprintf(os.Stderr, "no seasons in range %d-%d (data covers %d-%d)\n", from, to, min, max)
		os.Exit(1)
	}

	var err error
	switch format {
	case "csv":
		err = writeCSV(os.Stdout, filtered, percent)
	default:
		err = writeTable(os.Stdout, filtered, percent)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
