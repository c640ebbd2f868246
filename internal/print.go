package internal

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/usagelab/telesnap/internal/contract"
	"github.com/usagelab/telesnap/schema"
	"golang.org/x/term"
)

// dimensionCount is one value of one breakdown dimension with its record count.
type dimensionCount struct {
	Dimension string `json:"dimension"`
	Value     string `json:"value"`
	Count     int    `json:"count"`
}

// PrintBreakdown outputs the stats breakdown as a table or exports it as CSV/JSON.
func PrintBreakdown(b schema.Breakdown, cfg *contract.Config) {
	rows := flattenBreakdown(b, cfg.StatsLimit)

	// Dispatcher: handle the different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONBreakdown(rows); err != nil {
			contract.LogFatal("Error writing JSON output", err)
		}
	case schema.CSVOut:
		if err := printCSVBreakdown(rows); err != nil {
			contract.LogFatal("Error writing CSV output", err)
		}
	default:
		// Default to human-readable table
		if err := printTableBreakdown(b, rows, cfg); err != nil {
			contract.LogFatal("Error writing table output", err)
		}
	}
}

// flattenBreakdown turns the count maps into a stable row list: dimensions
// in a fixed order, values sorted by count descending (ties by name), each
// dimension capped at limit rows.
func flattenBreakdown(b schema.Breakdown, limit int) []dimensionCount {
	var rows []dimensionCount
	dims := []struct {
		name   string
		counts map[string]int
	}{
		{"platform", b.Platforms},
		{"backend", b.Backends},
		{"database", b.Databases},
	}
	for _, dim := range dims {
		var vals []dimensionCount
		for v, n := range dim.counts {
			vals = append(vals, dimensionCount{Dimension: dim.name, Value: v, Count: n})
		}
		sort.Slice(vals, func(i, j int) bool {
			if vals[i].Count != vals[j].Count {
				return vals[i].Count > vals[j].Count
			}
			return vals[i].Value < vals[j].Value
		})
		if len(vals) > limit {
			vals = vals[:limit]
		}
		rows = append(rows, vals...)
	}
	return rows
}

// printTableBreakdown generates and prints the human-readable table.
func printTableBreakdown(b schema.Breakdown, rows []dimensionCount, cfg *contract.Config) error {
	useColors := cfg.UseColors && term.IsTerminal(int(os.Stdout.Fd()))

	header := fmt.Sprintf("%d records, %s to %s", b.Total, b.FirstDate, b.LastDate)
	if b.Total == 0 {
		header = "0 records"
	}
	if useColors {
		header = contract.HeaderColor.Sprint(header)
	}
	fmt.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Dimension", "Value", "Records", "Share"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range rows {
		share := 0.0
		if b.Total > 0 {
			share = float64(r.Count) / float64(b.Total) * 100
		}
		data = append(data, []string{
			r.Dimension,
			r.Value,
			strconv.Itoa(r.Count),
			fmt.Sprintf("%.1f%%", share),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// printCSVBreakdown writes the breakdown rows in CSV format to stdout.
func printCSVBreakdown(rows []dimensionCount) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"dimension", "value", "count"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Dimension, r.Value, strconv.Itoa(r.Count)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// printJSONBreakdown writes the breakdown rows as indented JSON to stdout.
func printJSONBreakdown(rows []dimensionCount) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
