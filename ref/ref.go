// Package ref holds the airport and airline reference tables: immutable
// multi-keyed indices built once at startup, plus the loaders that
// populate them from a local gob blob, a GCS bucket, or CSV dumps.
package ref

import (
	"fmt"
	"sort"
	"strings"

	"github.com/skypies/wimp"
)

// Tables indexes the reference data every way the lookups need. Build it
// once with NewTables and treat it as read-only from then on; no locking
// anywhere.
type Tables struct {
	AirportsByIATA map[string]wimp.AirportRecord
	AirportsByICAO map[string]wimp.AirportRecord
	AirportsByName map[string]wimp.AirportRecord

	AirlinesByICAO map[string]wimp.AirlineRecord
	AirlinesByName map[string]wimp.AirlineRecord
	AirlinesByCode map[string]wimp.AirlineRecord

	// Multi maps a canonical airline name to every airline name sharing
	// it as a prefix ("easyJet" -> easyJet, easyJet Europe, easyJet
	// Switzerland). See MultiNames for the caveats.
	Multi map[string][]string
}

func NewTables(airports []wimp.AirportRecord, airlines []wimp.AirlineRecord) *Tables {
	t := &Tables{
		AirportsByIATA: map[string]wimp.AirportRecord{},
		AirportsByICAO: map[string]wimp.AirportRecord{},
		AirportsByName: map[string]wimp.AirportRecord{},
		AirlinesByICAO: map[string]wimp.AirlineRecord{},
		AirlinesByName: map[string]wimp.AirlineRecord{},
		AirlinesByCode: map[string]wimp.AirlineRecord{},
		Multi:          map[string][]string{},
	}

	for _, ap := range airports {
		t.AirportsByIATA[ap.IATA] = ap
		t.AirportsByICAO[ap.ICAO] = ap
		t.AirportsByName[ap.Name] = ap
	}

	for _, al := range airlines {
		t.AirlinesByICAO[al.ICAO] = al
		t.AirlinesByName[al.Name] = al
		if al.Code != "" {
			t.AirlinesByCode[al.Code] = al
		}
	}

	t.buildMulti()
	return t
}

func (t *Tables) String() string {
	return fmt.Sprintf("--- ref tables (%d airports, %d airlines, %d multi-code groups) ---",
		len(t.AirportsByIATA), len(t.AirlinesByICAO), len(t.Multi))
}

// buildMulti groups airline names by shared prefix. This is a heuristic:
// unrelated airlines whose names happen to share a prefix will be grouped
// too. It matches the behavior the downstream flight-number fan-out has
// always had, so it stays as-is.
func (t *Tables) buildMulti() {
	names := make([]string, 0, len(t.AirlinesByName))
	for name := range t.AirlinesByName {
		names = append(names, name)
	}
	sort.Strings(names) // deterministic group ordering

	for _, name := range names {
		for _, other := range names {
			if other != name && strings.HasPrefix(other, name) {
				if len(t.Multi[name]) == 0 {
					t.Multi[name] = []string{name, other}
				} else {
					t.Multi[name] = append(t.Multi[name], other)
				}
			}
		}
	}
}

// {{{ AirportDirectory

func (t *Tables) AirportByIATA(iata string) (wimp.AirportRecord, bool) {
	ap, ok := t.AirportsByIATA[strings.ToUpper(iata)]
	return ap, ok
}

func (t *Tables) AirportByICAO(icao string) (wimp.AirportRecord, bool) {
	ap, ok := t.AirportsByICAO[strings.ToUpper(icao)]
	return ap, ok
}

// }}}
// {{{ AirlineDirectory

func (t *Tables) AirlineByCode(code string) (wimp.AirlineRecord, bool) {
	al, ok := t.AirlinesByCode[strings.ToUpper(code)]
	return al, ok
}

func (t *Tables) AirlineByICAO(icao string) (wimp.AirlineRecord, bool) {
	al, ok := t.AirlinesByICAO[strings.ToUpper(icao)]
	return al, ok
}

// MultiNames finds the name variants grouped with an airline, trying
// successively longer word prefixes of the given name ("easyJet Europe"
// falls back to "easyJet").
func (t *Tables) MultiNames(airlineName string) []string {
	words := strings.Fields(airlineName)
	for i := 1; i <= len(words); i++ {
		if names, ok := t.Multi[strings.Join(words[:i], " ")]; ok {
			return names
		}
	}
	return nil
}

// SisterCodes maps an airline name to the carrier codes of its whole
// brand family; nil when it belongs to none.
func (t *Tables) SisterCodes(airlineName string) []string {
	names := t.MultiNames(airlineName)
	if names == nil {
		return nil
	}
	codes := []string{}
	for _, name := range names {
		codes = append(codes, t.AirlinesByName[name].Code)
	}
	return codes
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
