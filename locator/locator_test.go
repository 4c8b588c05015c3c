package locator

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/skypies/wimp"
	"github.com/skypies/wimp/fr24"
	"github.com/skypies/wimp/ref"
)

var testTables = ref.NewTables(
	[]wimp.AirportRecord{
		{IATA: "BGY", ICAO: "LIME", Name: "Bergamo Orio al Serio", TZName: "Europe/Rome", TZOffset: "+02:00"},
		{IATA: "KRK", ICAO: "EPKK", Name: "Krakow John Paul II", TZName: "Europe/Warsaw", TZOffset: "+02:00"},
	},
	[]wimp.AirlineRecord{
		{ICAO: "EZY", Name: "easyJet", Code: "U2"},
		{ICAO: "EJU", Name: "easyJet Europe", Code: "EC"},
		{ICAO: "EZS", Name: "easyJet Switzerland", Code: "DS"},
	})

// 2023-09-07 20:00 UTC; the landed leg below is behind it, the scheduled
// one ahead of it.
var testNow = func() time.Time {
	return time.Date(2023, time.September, 7, 20, 0, 0, 0, time.UTC)
}

func mkRow(subject, status, std, atd, sta, origin, dest string) wimp.RawLegRow {
	return wimp.RawLegRow{
		Subject:        subject,
		Date:           "07 Sep 2023",
		Status:         status,
		SchedDeparture: std,
		ActDeparture:   atd,
		SchedArrival:   sta,
		Origin:         origin,
		Destination:    dest,
	}
}

// tableFetcher serves canned histories keyed by kind and argument.
type tableFetcher map[string][]wimp.RawLegRow

func (tf tableFetcher) LookupHistory(kind fr24.Kind, arg string) (*fr24.HistoryResult, error) {
	rows, ok := tf[fmt.Sprintf("%s=%s", kind, arg)]
	if !ok {
		return &fr24.HistoryResult{Query: arg}, nil
	}
	return &fr24.HistoryResult{Query: arg, Rows: rows}, nil
}

func TestLocate(t *testing.T) {
	fetcher := tableFetcher{
		"flight=U2123": {
			mkRow("G-EZBY", "Landed 19:06", "15:30", "15:42", "19:00",
				"Krakow (KRK)", "Bergamo (BGY)"),
		},
		"aircraft=G-EZBY": {
			mkRow("U2 9748", "Scheduled", "22:30", "-", "23:55",
				"Bergamo (BGY)", "Krakow (KRK)"),
			mkRow("U2 9747", "Landed 19:06", "15:30", "15:42", "19:00",
				"Krakow (KRK)", "Bergamo (BGY)"),
		},
	}

	loc := New(testTables, fetcher)
	loc.Now = testNow

	a, err := loc.Locate("U2123")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}

	if a.Registration != "G-EZBY" {
		t.Errorf("expected registration G-EZBY, got '%s'; debug:\n%s", a.Registration, a.Debug)
	}
	if len(a.AircraftLegs) != 2 {
		t.Fatalf("expected 2 aircraft legs, got %d; debug:\n%s", len(a.AircraftLegs), a.Debug)
	}

	expected := `\_BGY_ 19:06 (+6) | _BGY_/ ~22:30 (+0) | \_KRK_ ~23:55 (--)`
	if got := a.Line(); got != expected {
		t.Errorf("expected line\n  %s\ngot\n  %s\ndebug:\n%s", expected, got, a.Debug)
	}
}

func TestLocateSisterCarrier(t *testing.T) {
	// The flight is only indexed under the Austrian subsidiary's code; the
	// fan-out over the brand family still finds it.
	fetcher := tableFetcher{
		"flight=EC123": {
			mkRow("OE-IAB", "Landed 19:06", "15:30", "15:42", "19:00",
				"Krakow (KRK)", "Bergamo (BGY)"),
		},
		"aircraft=OE-IAB": {
			mkRow("EC 123", "Landed 19:06", "15:30", "15:42", "19:00",
				"Krakow (KRK)", "Bergamo (BGY)"),
		},
	}

	loc := New(testTables, fetcher)
	loc.Now = testNow

	a, err := loc.Locate("U20123")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if a.Registration != "OE-IAB" {
		t.Errorf("expected registration OE-IAB, got '%s'; debug:\n%s", a.Registration, a.Debug)
	}

	expected := `\_BGY_ 19:06 (+6) | No further scheduled flights for: OE-IAB`
	if got := a.Line(); got != expected {
		t.Errorf("expected line\n  %s\ngot\n  %s", expected, got)
	}
}

func TestLocateMiss(t *testing.T) {
	loc := New(testTables, tableFetcher{})
	loc.Now = testNow

	a, err := loc.Locate("U2999")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if a.Line() != "" {
		t.Errorf("expected empty line for a miss, got '%s'", a.Line())
	}
	if !strings.Contains(a.Debug, "nothing found") {
		t.Errorf("expected a miss transcript, got:\n%s", a.Debug)
	}
}

func TestLocateBadFlightNumber(t *testing.T) {
	loc := New(testTables, tableFetcher{})
	if _, err := loc.Locate("!!"); err == nil {
		t.Errorf("expected an error for junk input")
	}
}
