// cmd/charts/main.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/ps-vitor/homefolio/internal/charts"
	"github.com/ps-vitor/homefolio/internal/config"
	"github.com/ps-vitor/homefolio/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding app.yaml")
	out := flag.String("o", "-", "output file, - for stdout")
	svg := flag.Bool("svg", false, "render the static SVG outcomes chart")
	years := flag.Int("years", -1, "number of projected years, required with -svg")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-svg -years N] [-o file] <table.csv>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.New("charts")
	if err := run(*configDir, flag.Arg(0), *out, *svg, *years); err != nil {
		log.Err(err, "rendering charts")
		os.Exit(1)
	}
}

func run(configDir, input, output string, svg bool, years int) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return err
	}
	renderer := charts.NewRenderer(cfg.Charts.Options())

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := charts.ReadCSV(f)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if svg {
		markup, err := renderer.OutcomesSVG(table, years)
		if err != nil {
			return err
		}
		buf.WriteString(string(markup))
	} else {
		outcomes, err := renderer.Outcomes(table)
		if err != nil {
			return err
		}
		lines := []components.Charter{outcomes}
		// the wealth chart only makes sense when both columns exist
		if wealth, err := renderer.Wealth(table); err == nil {
			lines = append(lines, wealth)
		}
		if err := renderer.Page(&buf, lines...); err != nil {
			return err
		}
	}

	return write(output, &buf)
}

func write(path string, r io.Reader) error {
	if path == "-" {
		_, err := io.Copy(os.Stdout, r)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
