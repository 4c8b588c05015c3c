package wimp

import (
	"fmt"
	"time"
)

// Timeline classifies a leg relative to "now", where "now" is computed in
// the leg's own origin time zone.
type Timeline int

const (
	TimelineIndeterminate Timeline = iota // in progress, or not enough data to say
	TimelinePast
	TimelineFuture
)

func (t Timeline) String() string {
	switch t {
	case TimelinePast:
		return "past"
	case TimelineFuture:
		return "future"
	default:
		return "indeterminate"
	}
}

// RawLegRow is one leg-history row as scraped from the source, already
// decoded out of its positional cell layout (see fr24.DecodeRows). All
// fields are untrusted free text; nothing is guaranteed to parse.
type RawLegRow struct {
	Subject        string // registration when queried by flight, flight number when queried by aircraft
	Date           string // "07 Sep 2023"
	Status         string // "Landed 19:06", "Scheduled", "Unknown", ...
	SchedDeparture string // "15:30"
	ActDeparture   string // "15:42", or junk when the flight hasn't departed
	SchedArrival   string // "19:00"
	Origin         string // "Krakow (KRK)"
	Destination    string // "Bergamo (BGY)"
}

// FlightLeg is a validated, timezone-correct leg record. Times are in the
// local zone of the relevant airport; absent times are the zero time.
type FlightLeg struct {
	Subject     string    // see RawLegRow.Subject
	STD         time.Time // scheduled departure, origin-local
	ATD         time.Time // actual departure, origin-local; zero if not departed
	STA         time.Time // scheduled arrival, destination-local
	Status      string    // status label, with any trailing time token removed
	StatusTime  time.Time // time split off the status text; zero if none
	Origin      string    // IATA
	Destination string    // IATA

	Timeline
}

func (l FlightLeg) String() string {
	return fmt.Sprintf("%-8.8s %s %s-%s [%s] %s",
		l.Subject, l.STD.Format("02 Jan 15:04"), l.Origin, l.Destination,
		l.Status, l.Timeline)
}

// A LocationEstimate is the per-query answer: where the aircraft last
// touched down, and (when known) the leg it flies next. Fields after
// LastLandedATA are only populated when a further leg exists.
type LocationEstimate struct {
	LastLanded    string    // IATA of the most recent landing
	LastLandedSTA time.Time // when it was supposed to arrive there
	LastLandedATA time.Time // when it actually did (from the status time)

	NextDestination string
	NextSTD         time.Time
	NextATD         time.Time // zero until the next leg actually departs
	NextSTA         time.Time
	NextStatus      string
	NextStatusTime  time.Time
}

// HasLanded reports whether the walk found a landing at all; an estimate
// without one is unusable.
func (le *LocationEstimate) HasLanded() bool { return le != nil && le.LastLanded != "" }

// HasNextLeg reports whether a further scheduled leg is known.
func (le *LocationEstimate) HasNextLeg() bool { return le != nil && le.NextDestination != "" }
