// Command bench compares the dependency-tracking engine in package
// reactive against the registry-rescan baseline in package naive over
// synthetic width-by-depth propagation graphs, the same shape of
// benchmark the teacher used to compare alien, rocket and dumbdumb.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"

	"github.com/whitefusionhq/signalize/naive"
	"github.com/whitefusionhq/signalize/reactive"
)

var (
	ww       = []int{1, 10, 100, 1_000}
	hh       = []int{1, 10, 100, 1_000}
	iters    int
	reportTo string
)

func main() {
	flag.IntVar(&iters, "iters", 100, "writes to time per width/depth combination")
	flag.StringVar(&reportTo, "report", "bench-report.txt", "path to write the consolidated text report to")
	flag.Parse()

	log.Printf("running %s propagation writes per combination, please wait...", humanize.Comma(int64(iters)))

	reactiveRows := benchmarkReactive(true)
	naiveRows := benchmarkNaive(true)

	if err := writeReport(reportTo, reactiveRows, naiveRows); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", reportTo)
}

type row struct {
	label string
	avg   time.Duration
	min   time.Duration
	p75   time.Duration
	p99   time.Duration
	max   time.Duration
}

// benchmarkReactive builds a width-by-depth chain of computeds fed by
// one signal, for each (w, h) combination, and times iters writes.
func benchmarkReactive(shouldRender bool) []row {
	tbl := table.NewWriter()
	tbl.SetTitle("reactive")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	var rows []row
	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			ctx := reactive.NewContext(func(err error) {
				log.Printf("effect error: %v", err)
			})
			src := reactive.NewSignal(ctx, 1)

			var disposers []func()
			for i := 0; i < w; i++ {
				read := src.Read
				for j := 0; j < h; j++ {
					prevRead := read
					c := reactive.NewComputed(ctx, func(old int) (int, error) {
						v, err := prevRead()
						if err != nil {
							return old, err
						}
						return v + 1, nil
					})
					read = c.Value
				}

				finalRead := read
				dispose, err := reactive.NewEffect(ctx, func() (reactive.Cleanup, error) {
					_, err := finalRead()
					return nil, err
				})
				if err != nil {
					log.Fatal(err)
				}
				disposers = append(disposers, dispose)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				if err := src.SetValue(src.Peek() + 1); err != nil {
					log.Fatal(err)
				}
				tach.AddTime(time.Since(start))
			}

			for _, dispose := range disposers {
				dispose()
			}

			calc := tach.Calc()
			r := row{
				label: fmt.Sprintf("propagate: %d * %d", w, h),
				avg:   calc.Time.Avg,
				min:   calc.Time.Min,
				p75:   calc.Time.P75,
				p99:   calc.Time.P99,
				max:   calc.Time.Max,
			}
			rows = append(rows, r)
			tbl.AppendRows([]table.Row{{r.label, r.avg, r.min, r.p75, r.p99, r.max}})
		}
	}

	if shouldRender {
		tbl.Render()
	}
	return rows
}

// benchmarkNaive mirrors benchmarkReactive's graph shape against the
// no-dependency-graph baseline in package naive.
func benchmarkNaive(shouldRender bool) []row {
	tbl := table.NewWriter()
	tbl.SetTitle("naive")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	var rows []row
	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			sys := naive.NewSystem()
			src := naive.NewSignal(sys, 1)

			var disposers []func()
			for i := 0; i < w; i++ {
				read := src.Value
				for j := 0; j < h; j++ {
					prevRead := read
					c := naive.NewComputed(sys, func() int {
						return prevRead() + 1
					})
					read = c.Value
				}

				finalRead := read
				disposers = append(disposers, naive.NewEffect(sys, func() {
					finalRead()
				}))
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Value() + 1)
				tach.AddTime(time.Since(start))
			}

			for _, dispose := range disposers {
				dispose()
			}
			sys.Reset()

			calc := tach.Calc()
			r := row{
				label: fmt.Sprintf("propagate: %d * %d", w, h),
				avg:   calc.Time.Avg,
				min:   calc.Time.Min,
				p75:   calc.Time.P75,
				p99:   calc.Time.P99,
				max:   calc.Time.Max,
			}
			rows = append(rows, r)
			tbl.AppendRows([]table.Row{{r.label, r.avg, r.min, r.p75, r.p99, r.max}})
		}
	}

	if shouldRender {
		tbl.Render()
	}
	return rows
}

// writeReport renders both engines' results to a single plain-text
// table file, so a CI run can diff successive reports without
// rerunning the benchmark.
func writeReport(path string, reactiveRows, naiveRows []row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tw := tablewriter.NewWriter(f)
	tw.SetHeader([]string{"engine", "benchmark", "avg", "min", "p75", "p99", "max"})
	for _, r := range reactiveRows {
		tw.Append([]string{"reactive", r.label, r.avg.String(), r.min.String(), r.p75.String(), r.p99.String(), r.max.String()})
	}
	for _, r := range naiveRows {
		tw.Append([]string{"naive", r.label, r.avg.String(), r.min.String(), r.p75.String(), r.p99.String(), r.max.String()})
	}
	tw.Render()
	return nil
}
