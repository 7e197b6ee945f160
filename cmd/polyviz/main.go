// Command polyviz renders a polycalc telemetry snapshot (written by
// "polycalc -stats-file") as an HTML bar chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"polycalc/calc"
)

func main() {
	statsFile := flag.String("stats-file", "", "path to a JSON snapshot written by polycalc -stats-file")
	out := flag.String("out", "polycalc_report.html", "output HTML path")
	flag.Parse()

	if *statsFile == "" {
		fmt.Fprintln(os.Stderr, "usage: polyviz -stats-file <path> [-out <path>]")
		os.Exit(1)
	}

	tel, err := calc.LoadTelemetryFile(*statsFile)
	if err != nil {
		log.Fatalf("load stats file: %v", err)
	}

	bar := newCommandBarChart(tel)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer f.Close()
	if err := bar.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Report:", *out)
}

func newCommandBarChart(tel *calc.Telemetry) *charts.Bar {
	keys := make([]string, 0, len(tel.Counts))
	for k := range tel.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	labels := make([]string, len(keys))
	items := make([]opts.BarData, len(keys))
	for i, k := range keys {
		labels[i] = k
		items[i] = opts.BarData{Value: tel.Counts[k]}
	}

	subtitle := fmt.Sprintf("lines=%d, distinct errors=%d", tel.Lines, len(tel.Errors))
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "polycalc command frequency", Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "polycalc telemetry", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("invocations", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return bar
}
