package fr24

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	flightHistoryURL   = "https://www.flightradar24.com/data/flights/"
	aircraftHistoryURL = "https://www.flightradar24.com/data/aircraft/"
)

// Scraper is the headless-browser fetcher: it renders the public history
// page and reads the leg table straight out of the DOM, producing the
// same cell matrix the node scraper prints. Use this when there's no node
// runtime around.
type Scraper struct {
	ChromeBin string        // "" means probe the usual locations
	Timeout   time.Duration // per-lookup budget; zero means 60s
}

func NewScraper(chromeBin string) *Scraper {
	return &Scraper{ChromeBin: chromeBin, Timeout: 60 * time.Second}
}

func (s *Scraper) LookupHistory(kind Kind, arg string) (*HistoryResult, error) {
	if !kind.Valid() {
		return nil, ErrBadKind
	}

	pageURL := flightHistoryURL
	if kind == KindAircraft {
		pageURL = aircraftHistoryURL
	}
	pageURL += strings.ToLower(arg)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if bin := s.chromeBinary(); bin != "" {
		opts = append(opts, chromedp.ExecPath(bin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {})) // suppress chromedp noise
	defer cancel()

	timeout := s.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	defer cancelTimeout()

	var matrix [][]string
	err := chromedp.Run(ctx,
		chromedp.Navigate(pageURL),
		chromedp.Sleep(3*time.Second),

		// One flat array of cell texts per table row, same shape the node
		// scraper emits.
		chromedp.Evaluate(`
			(function() {
				var table = document.querySelector('#tbl-datatable tbody') ||
				            document.querySelector('table.table-condensed tbody');
				if (!table) { return []; }
				var out = [];
				var rows = table.querySelectorAll('tr');
				for (var i = 0; i < rows.length; i++) {
					var cells = [];
					var tds = rows[i].querySelectorAll('td');
					for (var j = 0; j < tds.length; j++) {
						cells.push((tds[j].textContent || '').trim());
					}
					out.push(cells);
				}
				return out;
			})()
		`, &matrix),
	)
	if err != nil {
		return nil, fmt.Errorf("fr24: scrape of %s failed: %v", pageURL, err)
	}

	return &HistoryResult{Query: arg, Rows: DecodeRows(matrix)}, nil
}

func (s *Scraper) chromeBinary() string {
	if s.ChromeBin != "" {
		return s.ChromeBin
	}
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "chrome"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}
