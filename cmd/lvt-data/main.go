package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sourcegraph/go-diff-patch"
	"kastelo.dev/lvt"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})))

	input := kingpin.Flag("input", "Input workbook").Short('i').Default(lvt.DefaultInputFile).String()
	output := kingpin.Flag("output", "Output data file").Short('o').Default(lvt.DefaultOutputFile).String()
	useSample := kingpin.Flag("sample", "Limit the property list to a random sample (--no-sample for all rows)").Default("true").Bool()
	sampleSize := kingpin.Flag("sample-size", "Number of sampled properties").Default(fmt.Sprint(lvt.DefaultSampleSize)).Int()
	sampleSeed := kingpin.Flag("sample-seed", "Random seed for sampling").Default(fmt.Sprint(lvt.DefaultSeed)).Int64()
	coordSeed := kingpin.Flag("coord-seed", "Random seed for placeholder coordinates").Default(fmt.Sprint(lvt.DefaultSeed)).Int64()
	coordsDSN := kingpin.Flag("coords-dsn", "Postgres connection string for known property coordinates").String()
	showDiff := kingpin.Flag("diff", "Print a diff against the previous output").Bool()
	kingpin.Parse()

	cfg := lvt.DefaultConfig()
	cfg.InputFile = *input
	cfg.OutputFile = *output
	cfg.UseSample = *useSample
	cfg.SampleSize = *sampleSize
	cfg.SampleSeed = *sampleSeed
	cfg.Coordinates = lvt.UniformSource{Seed: *coordSeed}

	if *coordsDSN != "" {
		src, err := loadCoordinates(context.Background(), *coordsDSN)
		if err != nil {
			slog.Error("Error loading coordinates", "error", err)
			os.Exit(1)
		}
		cfg.Coordinates = src
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	var previous []byte
	if *showDiff {
		var err error
		previous, err = os.ReadFile(cfg.OutputFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("Error reading previous output", "error", err)
			os.Exit(1)
		}
	}

	if _, err := lvt.Run(cfg, os.Stdout); err != nil {
		os.Exit(1)
	}

	if *showDiff {
		current, err := os.ReadFile(cfg.OutputFile)
		if err != nil {
			slog.Error("Error reading output", "error", err)
			os.Exit(1)
		}
		if string(previous) == string(current) {
			fmt.Println("\nNo changes.")
			return
		}
		fmt.Println()
		fmt.Print(diffpatch.GeneratePatch(cfg.OutputFile, string(previous), string(current)))
	}
}

func loadCoordinates(ctx context.Context, dsn string) (lvt.LookupSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return lvt.LoadCoordinates(ctx, db)
}
