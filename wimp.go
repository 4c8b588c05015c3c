// Package wimp answers "where is my plane?". Given a public flight number
// it works out which physical aircraft is operating that flight, walks the
// aircraft's recent flight legs, and reports where it last landed and what
// it is scheduled to do next, all in airport-local time.
//
// The lookup chain:
//
//	flight number ---> flights/[flight_no] ---> registration --->
//	  aircraft/[registration] ---> leg history ---> last landing + next leg
//
// The history rows come from an external source (see the fr24 subpackage);
// this package only parses and reasons about already-fetched rows.
package wimp

// An AirportDirectory is a read-only view onto the airport reference
// table. Built once at startup (see the ref subpackage) and injected into
// anything that needs lookups.
type AirportDirectory interface {
	AirportByIATA(iata string) (AirportRecord, bool)
}

// An AirlineDirectory is a read-only view onto the airline reference
// table, including the sister-carrier groupings.
type AirlineDirectory interface {
	AirlineByCode(code string) (AirlineRecord, bool)
	AirlineByICAO(icao string) (AirlineRecord, bool)

	// SisterCodes returns the carrier codes of every airline sharing a
	// brand family with the named airline, or nil if it isn't part of one.
	SisterCodes(name string) []string
}

// AirportRecord is one row of the airport reference table.
type AirportRecord struct {
	IATA     string // "BGY"
	ICAO     string // "LIME"
	Name     string
	TZName   string // "Europe/Rome"; a real IANA zone
	TZOffset string // "+02:00"; fixed UTC offset, as the source publishes it
}

// AirlineRecord is one row of the airline reference table.
type AirlineRecord struct {
	ICAO string // "EZY"
	Name string // "easyJet"
	Code string // "U2"; the marketing carrier code, may be empty
}
