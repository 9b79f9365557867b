package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"kastelo.dev/lvt"
	"kastelo.dev/lvt/excel"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})))

	input := flag.String("input", lvt.DefaultOutputFile, "Generated data file")
	output := flag.String("output", "statistics.xlsx", "Report workbook")
	flag.Parse()

	doc, err := lvt.ReadFile(*input)
	if err != nil {
		slog.Error("Error reading data file", "error", err)
		os.Exit(1)
	}

	bs, err := excel.StatisticsXLSX(doc)
	if err != nil {
		slog.Error("Error creating Excel file", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, bs, 0o644); err != nil {
		slog.Error("Error writing Excel file", "error", err)
		os.Exit(1)
	}
	slog.Info("Wrote report", "file", *output, "properties", len(doc.Properties))
}
