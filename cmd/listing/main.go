// cmd/listing/main.go

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ps-vitor/homefolio/internal/config"
	"github.com/ps-vitor/homefolio/internal/scraping"
	"github.com/ps-vitor/homefolio/internal/services"
	"github.com/ps-vitor/homefolio/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding app.yaml and scraping.yaml")
	strict := flag.Bool("strict", false, "report the failure instead of printing the fallback listing")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-strict] [-config dir] <listing-url>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	url := flag.Arg(0)

	log := logger.New("listing")
	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Err(err, "loading config")
		os.Exit(1)
	}
	log.SetDebug(cfg.App.Debug)

	fetcher, err := services.NewFetcher(cfg.Scraping)
	if err != nil {
		log.Err(err, "building fetcher")
		os.Exit(1)
	}
	svc := services.NewListingService(fetcher, log)

	ctx := context.Background()
	var listing interface{}
	if *strict {
		l, err := svc.Fetch(ctx, url)
		if err != nil {
			log.Err(err, "scrape failed ("+scraping.KindOf(err).String()+")")
			os.Exit(1)
		}
		listing = l
	} else {
		listing = svc.GetListing(ctx, url)
	}

	jsonData, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		log.Err(err, "marshaling to JSON")
		os.Exit(1)
	}

	fmt.Println(string(jsonData))
}
