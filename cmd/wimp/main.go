package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/skypies/wimp/config"
	"github.com/skypies/wimp/fr24"
	"github.com/skypies/wimp/locator"
	"github.com/skypies/wimp/ref"
	"github.com/skypies/wimp/report"
	"github.com/skypies/wimp/ui"
)

var (
	ctx = context.Background()

	fVerbose bool
	fLong    bool
	fPdf     string
	fServe   bool
)

func init() {
	flag.BoolVar(&fVerbose, "v", false, "print the lookup transcript")
	flag.BoolVar(&fLong, "long", false, "parse whole histories, not just the scheduled-through-landed window")
	flag.StringVar(&fPdf, "pdf", "", "also write a leg-history sheet to this file")
	flag.BoolVar(&fServe, "serve", false, "run the web UI instead of a one-shot lookup")
	flag.Parse()
}

func loadTables(cfg *config.Config) (*ref.Tables, error) {
	if cfg.GCSBucket != "" {
		return ref.LoadTablesFromGCS(ctx, cfg.GCSBucket, cfg.GCSObject)
	}
	return ref.LoadTablesFromFile(cfg.RefDataPath)
}

func newFetcher(cfg *config.Config) fr24.Fetcher {
	if cfg.Fetcher == "node" {
		return fr24.NewNodeScraper(cfg.NodeScript)
	}
	s := fr24.NewScraper(cfg.ChromeBin)
	s.Timeout = time.Duration(cfg.ScrapeTimeoutMs) * time.Millisecond
	return s
}

func flightNumberArg() string {
	if len(flag.Args()) > 0 {
		return flag.Args()[0]
	}
	fmt.Print("flight number: ")
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

func main() {
	cfg := config.Load()

	tables, err := loadTables(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if fVerbose {
		fmt.Printf("%s\n", tables)
	}

	loc := locator.New(tables, newFetcher(cfg))
	loc.Short = !fLong

	if fServe {
		mux := http.NewServeMux()
		ui.NewServer(loc).RegisterHandlers(mux)
		log.Printf("listening on %s", cfg.ListenAddr)
		log.Fatal(http.ListenAndServe(cfg.ListenAddr, mux))
	}

	answer, err := loc.Locate(flightNumberArg())
	if err != nil {
		log.Fatal(err)
	}

	if fVerbose {
		fmt.Print(answer.Debug)
	}

	line := answer.Line()
	if line == "" {
		fmt.Println("could not determine - no usable result")
	} else {
		fmt.Println(line)
	}

	if fPdf != "" && answer.Registration != "" {
		f, err := os.Create(fPdf)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := report.WriteLegSheet(f, answer.Registration, answer.AircraftLegs, line); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", fPdf)
	}
}
