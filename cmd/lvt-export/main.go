package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin"
	"kastelo.dev/lvt"
	"kastelo.dev/lvt/shape"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Lshortfile)

	cmdCSV := kingpin.Command("csv", "Export properties as CSV")
	cmdShp := kingpin.Command("shp", "Export properties as a point shapefile")
	input := kingpin.Flag("input", "Generated data file").Default(lvt.DefaultOutputFile).String()
	dir := kingpin.Flag("dir", "Output directory").Default(".").String()
	cmd := kingpin.Parse()

	doc, err := lvt.ReadFile(*input)
	if err != nil {
		log.Fatal(err)
	}

	switch cmd {
	case cmdCSV.FullCommand():
		writeCSV(filepath.Join(*dir, "properties.csv"), doc)
	case cmdShp.FullCommand():
		if err := shape.WritePoints(filepath.Join(*dir, "properties.shp"), doc.Properties); err != nil {
			log.Fatal(err)
		}
	}
}

func writeCSV(path string, doc *lvt.Document) {
	fd, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := lvt.WriteCSV(fd, doc); err != nil {
		log.Fatal(err)
	}
	if err := fd.Close(); err != nil {
		log.Fatal(err)
	}
}
