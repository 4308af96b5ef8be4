package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/arrowview/cellfmt/format"
	"github.com/arrowview/cellfmt/metrics"
	"github.com/arrowview/cellfmt/output"
	"github.com/arrowview/cellfmt/render"
	"github.com/arrowview/cellfmt/tableio"
)

var (
	formatFlag  = flag.String("f", "table", "Output format: table, csv, jsonl")
	limitFlag   = flag.Int("limit", 0, "Limit number of rows (0 = unlimited)")
	metricsFlag = flag.String("metrics", "", "Serve Prometheus metrics on this address after rendering")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.arrow>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Render every cell of an Arrow IPC payload as display text.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s data.arrow\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f csv data.arrow\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing Arrow IPC file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	formatter := output.New(*formatFlag, os.Stdout)
	if formatter == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", *formatFlag)
		os.Exit(1)
	}

	records, err := tableio.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	defer func() {
		for _, rec := range records {
			rec.Release()
		}
	}()

	m := metrics.New("cellfmt")
	format.FallbackHook = m.CountFallback
	renderer := render.Renderer{Metrics: m}

	remaining := *limitFlag
	for _, rec := range records {
		table := renderer.Record(rec)
		if *limitFlag > 0 {
			if remaining <= 0 {
				break
			}
			if len(table.Rows) > remaining {
				table.Rows = table.Rows[:remaining]
			}
			remaining -= len(table.Rows)
		}
		if err := formatter.Format(table); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}

	if *metricsFlag != "" {
		log.Printf("Serving metrics on %s/metrics...", *metricsFlag)
		if err := m.Serve(*metricsFlag); err != nil {
			log.Fatalf("Metrics server failed: %v", err)
		}
	}
}
