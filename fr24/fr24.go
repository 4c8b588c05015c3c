// Package fr24 fetches raw leg-history batches from flightradar24, either
// through the legacy node scraper (exec.go) or a headless browser
// (scrape.go), and decodes the positional row matrix those produce into
// named records. The core never sees a positional index.
package fr24

import (
	"fmt"
	"sort"
	"sync"

	"github.com/skypies/wimp"
)

var ErrBadKind = fmt.Errorf("Query kind must be 'flight' or 'aircraft'")

// Kind says which axis a history lookup runs along.
type Kind string

const (
	KindFlight   Kind = "flight"   // arg is a flight number; rows' subject is a registration
	KindAircraft Kind = "aircraft" // arg is a registration; rows' subject is a flight number
)

func (k Kind) Valid() bool { return k == KindFlight || k == KindAircraft }

// HistoryResult is one decoded batch, keyed by the argument that was
// queried. Nil Rows means the source had nothing for the argument.
type HistoryResult struct {
	Query string
	Rows  []wimp.RawLegRow
}

// A Fetcher runs one history lookup. Implementations run to completion or
// are bounded by their own timeouts; the fan-out doesn't impose one.
type Fetcher interface {
	LookupHistory(kind Kind, arg string) (*HistoryResult, error)
}

// {{{ DecodeRows

/* The scraper emits each leg as a flat array of cell strings. The cell
positions have been stable for years:

  [0] subject (reg or flightnumber)   [1] date "07 Sep 2023"
  [3] status "Landed 19:06"           [6] scheduled departure "15:30"
  [9] actual departure "15:42"        [12] scheduled arrival "19:00"
  [15] origin "Krakow (KRK)"          [18] destination "Bergamo (BGY)"

The other cells are presentation junk (icons, spacing). */

const (
	cellSubject        = 0
	cellDate           = 1
	cellStatus         = 3
	cellSchedDeparture = 6
	cellActDeparture   = 9
	cellSchedArrival   = 12
	cellOrigin         = 15
	cellDestination    = 18

	minCells = 19
)

// DecodeRows converts a raw cell matrix into named rows. Rows too short
// to hold every known cell are dropped; the caller finds out via the
// count mismatch in its own diagnostics.
func DecodeRows(matrix [][]string) []wimp.RawLegRow {
	out := []wimp.RawLegRow{}
	for _, cells := range matrix {
		if len(cells) < minCells {
			continue
		}
		out = append(out, wimp.RawLegRow{
			Subject:        cells[cellSubject],
			Date:           cells[cellDate],
			Status:         cells[cellStatus],
			SchedDeparture: cells[cellSchedDeparture],
			ActDeparture:   cells[cellActDeparture],
			SchedArrival:   cells[cellSchedArrival],
			Origin:         cells[cellOrigin],
			Destination:    cells[cellDestination],
		})
	}
	return out
}

// }}}
// {{{ FanoutHistory

// FanoutHistory looks up every variant concurrently, one goroutine per
// variant, and joins on all of them before judging the merged results.
// Exactly one variant coming back non-empty is success. Zero is a plain
// miss. More than one means the variants resolved to different flights,
// and we fail closed rather than guess which aircraft the user meant.
//
// Returns the single winning result (or nil) plus a transcript.
func FanoutHistory(f Fetcher, kind Kind, args []string) (*HistoryResult, string) {
	if !kind.Valid() {
		return nil, fmt.Sprintf("** bad query kind '%s'\n", kind)
	}

	args = dedupe(args)
	str := fmt.Sprintf("** fan-out %s lookup over %v\n", kind, args)

	var mu sync.Mutex
	var wg sync.WaitGroup
	results := map[string]*HistoryResult{}

	for _, arg := range args {
		wg.Add(1)
		go func(arg string) {
			defer wg.Done()
			res, err := f.LookupHistory(kind, arg)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				str += fmt.Sprintf("** %s: lookup failed: %v\n", arg, err)
				return
			}
			if res == nil || len(res.Rows) == 0 {
				str += fmt.Sprintf("** %s: empty\n", arg)
				return
			}
			results[arg] = res
		}(arg)
	}
	wg.Wait()

	switch len(results) {
	case 1:
		for _, res := range results {
			return res, str + fmt.Sprintf("** found: %s (%d rows)\n", res.Query, len(res.Rows))
		}
	case 0:
		return nil, str + "** nothing found\n"
	}

	keys := []string{}
	for k := range results {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return nil, str + fmt.Sprintf("** some mismatch, found more than 1 flight: %v\n", keys)
}

func dedupe(in []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
