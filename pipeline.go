package lvt

import (
	"errors"
	"io"
)

const (
	DefaultInputFile  = "LVT_with_Tax_Calculations.xlsx"
	DefaultOutputFile = "data.js"
	DefaultSampleSize = 1000
	DefaultSeed       = 42
)

type Config struct {
	InputFile  string
	OutputFile string

	// UseSample limits the property list to SampleSize rows picked with
	// SampleSeed. Statistics always cover every row.
	UseSample  bool
	SampleSize int
	SampleSeed int64

	Coordinates CoordinateSource
}

func DefaultConfig() Config {
	return Config{
		InputFile:   DefaultInputFile,
		OutputFile:  DefaultOutputFile,
		UseSample:   true,
		SampleSize:  DefaultSampleSize,
		SampleSeed:  DefaultSeed,
		Coordinates: UniformSource{Seed: DefaultSeed},
	}
}

func (c *Config) Validate() error {
	if c.InputFile == "" || c.OutputFile == "" {
		return errors.New("input and output file must be set")
	}
	if c.UseSample && c.SampleSize < 1 {
		return errors.New("sample size must be positive")
	}
	if c.Coordinates == nil {
		return errors.New("no coordinate source")
	}
	return nil
}

// Build converts a loaded table into the output document. Properties come
// from the sample, statistics from the full table.
func Build(full *Table, cfg Config, p *Progress) (*Document, error) {
	t := full
	if cfg.UseSample && full.Len() > cfg.SampleSize {
		t = Sample(full, cfg.SampleSize, cfg.SampleSeed)
		p.OK("Using sample of %d properties from %d total", t.Len(), full.Len())
	} else {
		p.OK("Using all %d properties", t.Len())
	}

	p.Step(2, "Generating coordinates")
	if _, ok := cfg.Coordinates.(UniformSource); ok {
		p.Warn("Note: Using mock coordinates for demonstration")
		p.Linef("  For production, replace with actual property coordinates")
	}
	coords, err := cfg.Coordinates.Coordinates(t)
	if err != nil {
		p.Fail("Error generating coordinates: %v", err)
		return nil, err
	}

	p.Step(3, "Converting to JSON format")
	props, err := Transform(t, coords)
	if err != nil {
		p.Fail("Error converting properties: %v", err)
		return nil, err
	}
	p.OK("Converted %d properties", len(props))

	p.Step(4, "Calculating statistics")
	stats, err := ComputeStatistics(full)
	if err != nil {
		p.Fail("Error calculating statistics: %v", err)
		return nil, err
	}
	p.OK("Statistics calculated from %d total properties", stats.TotalProperties)
	p.Pounds("Average land value", stats.AvgLandValue)
	p.Pounds("Average council tax", stats.AvgCouncilTax)

	return &Document{Properties: props, Statistics: stats}, nil
}

// Run loads cfg.InputFile, builds the document and writes it to
// cfg.OutputFile, reporting progress to w. Any error aborts the run before
// the output file is touched, except a failed write, which leaves any
// previous output in place.
func Run(cfg Config, w io.Writer) (*Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := NewProgress(w)
	p.Rule()
	p.Linef("LVT Calculator - Data Generation Script")
	p.Rule()

	p.Linef("\nConfiguration:")
	p.Linef("  Input file: %s", cfg.InputFile)
	p.Linef("  Output file: %s", cfg.OutputFile)
	p.Linef("  Use sample: %v", cfg.UseSample)
	if cfg.UseSample {
		p.Linef("  Sample size: %d", cfg.SampleSize)
	}

	p.Step(1, "Loading data")
	full, err := Load(cfg.InputFile)
	if errors.Is(err, ErrInputNotFound) {
		p.Fail("Error: File '%s' not found", cfg.InputFile)
		return nil, err
	} else if err != nil {
		p.Fail("Error loading Excel file: %v", err)
		return nil, err
	}
	p.OK("Loaded %d properties from %s", full.Len(), cfg.InputFile)

	doc, err := Build(full, cfg, p)
	if err != nil {
		return nil, err
	}

	p.Step(5, "Writing output file")
	werr := WriteFile(cfg.OutputFile, doc)
	if werr != nil {
		p.Fail("Error writing JavaScript file: %v", werr)
	} else {
		p.OK("Successfully wrote data to %s", cfg.OutputFile)
	}

	p.Linef("")
	p.Rule()
	return doc, summarize(p, cfg, doc, werr)
}

func summarize(p *Progress, cfg Config, doc *Document, err error) error {
	if err != nil {
		p.Fail("Data generation failed")
		return err
	}
	p.OK("Data generation completed successfully!")
	p.Linef("\nGenerated files:")
	p.Linef("  - %s (%d properties)", cfg.OutputFile, len(doc.Properties))
	p.Linef("\nNext steps:")
	p.Linef("  1. Review the generated %s file", cfg.OutputFile)
	p.Linef("  2. Open index.html in a web browser")
	p.Linef("  3. For production: add real coordinates and use full dataset")
	p.Rule()
	return nil
}
