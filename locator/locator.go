// Package locator chains the whole lookup: flight number -> variants ->
// fan-out history fetch -> registration -> aircraft history -> location
// estimate. It's the one place the pipeline order lives; the CLI and the
// web UI both drive it.
package locator

import (
	"time"

	"github.com/skypies/wimp"
	"github.com/skypies/wimp/fr24"
	"github.com/skypies/wimp/ref"
)

type Locator struct {
	Tables  *ref.Tables
	Fetcher fr24.Fetcher

	// Short applies the scheduled-through-landed window when parsing
	// histories; on by default.
	Short bool

	// Now overrides the clock for timeline classification (tests).
	Now func() time.Time
}

func New(tables *ref.Tables, fetcher fr24.Fetcher) *Locator {
	return &Locator{Tables: tables, Fetcher: fetcher, Short: true}
}

// Answer carries everything a caller might render: the estimate itself,
// the intermediate results, and a transcript of every decision taken on
// the way. An Answer with a nil or landing-less Estimate means "could not
// determine"; that's an expected outcome, not an error.
type Answer struct {
	Flight       string
	Variants     []string
	Registration string

	FlightLegs   []wimp.FlightLeg // history of the flight number
	AircraftLegs []wimp.FlightLeg // history of the chosen airframe

	Estimate *wimp.LocationEstimate
	Debug    string
}

// Line renders the Answer's legacy status line; empty when unresolved.
func (a *Answer) Line() string {
	return wimp.FormatLocation(a.Estimate, a.Registration)
}

// Locate runs the whole chain for one flight number. Only a malformed
// flight number is an error; everything downstream degrades to an Answer
// that explains itself in Debug.
func (l *Locator) Locate(flightNumber string) (*Answer, error) {
	fn, err := wimp.ParseFlightNumber(flightNumber)
	if err != nil {
		return nil, err
	}

	a := &Answer{Flight: fn.Raw}

	a.Variants = fn.Resolve(l.Tables)
	if len(a.Variants) == 0 {
		// Unrecognized carrier: carry on with whatever spellings we can
		// derive from the input itself.
		a.Variants = fn.Variants(l.Tables)
	}

	parser := wimp.NewHistoryParser(l.Tables)
	parser.Short = l.Short
	parser.Now = l.Now

	flightRes, str := fr24.FanoutHistory(l.Fetcher, fr24.KindFlight, a.Variants)
	a.Debug += str
	if flightRes == nil {
		return a, nil
	}

	a.FlightLegs, str = parser.Parse(flightRes.Rows)
	a.Debug += str

	a.Registration, str = wimp.RegistrationFromFlight(a.FlightLegs)
	a.Debug += str
	if a.Registration == "" {
		return a, nil
	}

	acRes, str := fr24.FanoutHistory(l.Fetcher, fr24.KindAircraft, []string{a.Registration})
	a.Debug += str
	if acRes == nil {
		return a, nil
	}

	a.AircraftLegs, str = parser.Parse(acRes.Rows)
	a.Debug += str

	a.Estimate = wimp.LocationFromHistory(a.AircraftLegs)
	return a, nil
}
