package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cloudflare/kyberkem/internal/kyber/facade"
)

type opRun struct {
	parameterSet string
	k            int
	operation    string
	latencyUS    float64
}

func main() {
	iterations := flag.Int("n", 200, "iterations per parameter set and operation")
	outPath := flag.String("out", "kyber_bench.html", "output HTML file")
	flag.Parse()

	var runs []opRun
	for _, k := range []int{2, 3, 4} {
		sch := facade.New(k)
		runs = append(runs, benchScheme(sch, *iterations)...)
		fmt.Fprintf(os.Stderr, "[debug] finished %s: %d samples\n", sch.Name(), *iterations*3)
	}

	page := components.NewPage().SetPageTitle("Kyber Operation Latency")

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Mean latency by parameter set and operation"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Parameter set"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Mean latency (microseconds)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	paramSets := []string{"Kyber512", "Kyber768", "Kyber1024"}
	bar.SetXAxis(paramSets)
	for _, op := range []string{"keygen", "encapsulate", "decapsulate"} {
		means := meansByParameterSet(runs, op, paramSets)
		items := make([]opts.BarData, 0, len(means))
		for _, m := range means {
			items = append(items, opts.BarData{Value: m})
		}
		bar.AddSeries(op, items)
	}

	page.AddCharts(bar)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s | %d samples across %d parameter sets\n", *outPath, len(runs), len(paramSets))
}

func benchScheme(sch *facade.Scheme, iterations int) []opRun {
	var runs []opRun

	var pk, sk []byte
	for i := 0; i < iterations; i++ {
		start := time.Now()
		p, s, err := sch.GenerateKeyPair()
		elapsed := time.Since(start)
		if err != nil {
			continue
		}
		pk, sk = p, s
		runs = append(runs, opRun{sch.Name(), sch.K(), "keygen", float64(elapsed.Microseconds())})
	}

	var ct []byte
	for i := 0; i < iterations; i++ {
		start := time.Now()
		c, _, err := sch.Encapsulate(pk)
		elapsed := time.Since(start)
		if err != nil {
			continue
		}
		ct = c
		runs = append(runs, opRun{sch.Name(), sch.K(), "encapsulate", float64(elapsed.Microseconds())})
	}

	for i := 0; i < iterations; i++ {
		start := time.Now()
		_, err := sch.Decapsulate(sk, ct)
		elapsed := time.Since(start)
		if err != nil {
			continue
		}
		runs = append(runs, opRun{sch.Name(), sch.K(), "decapsulate", float64(elapsed.Microseconds())})
	}

	return runs
}

func meansByParameterSet(runs []opRun, operation string, paramSets []string) []float64 {
	means := make([]float64, len(paramSets))
	for i, ps := range paramSets {
		var sum float64
		var count int
		for _, r := range runs {
			if r.operation == operation && r.parameterSet == ps {
				sum += r.latencyUS
				count++
			}
		}
		if count > 0 {
			means[i] = sum / float64(count)
		}
	}
	return means
}
