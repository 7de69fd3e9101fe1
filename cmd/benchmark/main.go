package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/slotparty/signals"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	renderKey  = "render"
	profileKey = "profile"
)

var (
	ww = []int{1, 10, 100, 1_000}
	gg = []int{1, 4, 16}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure emission latency across slot counts and priority groups",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Emissions timed per configuration",
				Value: 1_000,
			},
			&cli.BoolFlag{
				Name:  renderKey,
				Usage: "Render the result tables",
				Value: true,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))
	log.Printf("warming up")
	benchmarkEmit(iters, false)
	benchmarkCollect(iters, false)

	shouldRender := cmd.Bool(renderKey)
	benchmarkEmit(iters, shouldRender)
	benchmarkCollect(iters, shouldRender)
	return nil
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

func benchmarkEmit(iters int, shouldRender bool) {
	tbl := newTable("Void1 emission")

	for _, w := range ww {
		for _, g := range gg {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			var sig signals.Void1[int]
			sum := 0
			for i := 0; i < w; i++ {
				sig.ConnectPriority(i%g, func(x int) {
					sum += x
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				sig.Emit(1)
				tach.AddTime(time.Since(start))
			}
			if sum != w*iters {
				log.Panicf("emit %d * %d: got %d calls, want %d", w, g, sum, w*iters)
			}

			appendCalc(tbl, fmt.Sprintf("emit: %d slots * %d groups", w, g), tach)
			sig.Close()
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkCollect(iters int, shouldRender bool) {
	tbl := newTable("Collected0 vector emission")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sig := signals.NewCollected0(signals.CollectVector[int])
		for i := 0; i < w; i++ {
			sig.Connect(func() int { return i })
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			results := sig.Emit()
			tach.AddTime(time.Since(start))
			if len(results) != w {
				log.Panicf("collect %d: got %d results", w, len(results))
			}
		}

		appendCalc(tbl, fmt.Sprintf("collect: %d slots", w), tach)
		sig.Close()
	}

	if shouldRender {
		tbl.Render()
	}
}
