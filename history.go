package wimp

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// The source's date/time cells look like "07 Sep 2023" and "15:30", with
// no zone attached; we glue on the airport's fixed UTC offset and parse
// the lot in one go.
const legTimeLayout = "02 Jan 2006 15:04-07:00"

var (
	iataInParensRE = regexp.MustCompile(`\(([A-Z]{3})\)`)
	statusTimeRE   = regexp.MustCompile(`^[0-9]{2}:[0-9]{2}`)
)

// Status labels whose trailing time is in the destination's zone (arrival
// side), vs the origin's zone (departure side).
var (
	arrivalSideStatuses   = map[string]bool{"Landed": true, "Estimated": true, "Delayed": true}
	departureSideStatuses = map[string]bool{"Estimated departure": true}
)

// A HistoryParser turns one raw batch of scraped leg rows into validated
// FlightLegs. Row-level problems are skipped with a diagnostic, never
// fatal; the worst outcome is fewer legs.
type HistoryParser struct {
	Airports AirportDirectory

	// Short restricts the batch to the most relevant stretch: the last
	// still-Scheduled row through the first already-Landed row. Long
	// histories can span months; nothing outside that window matters for
	// locating the aircraft.
	Short bool

	// Now is the clock used for timeline classification; nil means
	// time.Now. Tests pin it.
	Now func() time.Time
}

func NewHistoryParser(airports AirportDirectory) *HistoryParser {
	return &HistoryParser{Airports: airports, Short: true}
}

func (p *HistoryParser) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// {{{ p.Window

// Window slices rows down to the span from the last row whose status
// starts "Scheduled" through the first row whose status starts "Landed"
// (inclusive), preserving order. Missing markers leave the corresponding
// end open. Idempotent.
func (p *HistoryParser) Window(rows []RawLegRow) []RawLegRow {
	start, stop := 0, len(rows)

	for i, row := range rows {
		if strings.HasPrefix(row.Status, "Scheduled") {
			start = i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(row.Status, "Landed") {
			stop = i + 1
			break
		}
	}

	if start > stop { // contradictory markers; nothing relevant between them
		start = stop
	}
	return rows[start:stop]
}

// }}}
// {{{ p.Parse

// Parse validates a raw batch into an ordered leg sequence, preserving
// input order (most-recent-first, as the source lists them). A nil input
// means the source had nothing for the subject, and yields nil (distinct
// from "rows present but none valid", which yields an empty slice). The
// returned transcript describes every row that was skipped or only
// partially understood.
func (p *HistoryParser) Parse(rows []RawLegRow) ([]FlightLeg, string) {
	if rows == nil {
		return nil, "** no history rows for subject\n"
	}

	if p.Short {
		rows = p.Window(rows)
	}

	str := ""
	legs := []FlightLeg{}
	offsets := map[string]string{} // per-invocation memo of IATA -> "+02:00"

	lookupOffset := func(iata string) (string, bool) {
		if off, ok := offsets[iata]; ok {
			return off, true
		}
		ap, ok := p.Airports.AirportByIATA(iata)
		if !ok || ap.TZOffset == "" {
			return "", false
		}
		offsets[iata] = ap.TZOffset
		return ap.TZOffset, true
	}

	for _, row := range rows {
		if row.Status == "Unknown" {
			continue
		}

		from, ok := extractIata(row.Origin)
		if !ok {
			str += fmt.Sprintf("** no airport code in origin '%s'; row skipped\n", row.Origin)
			continue
		}
		fromOffset, ok := lookupOffset(from)
		if !ok {
			str += fmt.Sprintf("** airport '%s' not in database; row skipped\n", from)
			continue
		}

		to, ok := extractIata(row.Destination)
		if !ok {
			str += fmt.Sprintf("** no airport code in destination '%s'; row skipped\n", row.Destination)
			continue
		}
		toOffset, ok := lookupOffset(to)
		if !ok {
			str += fmt.Sprintf("** airport '%s' not in database; row skipped\n", to)
			continue
		}

		day := strings.TrimSpace(row.Date)

		std, err := time.Parse(legTimeLayout, day+" "+row.SchedDeparture+fromOffset)
		if err != nil {
			str += fmt.Sprintf("** bad scheduled departure '%s %s': %v; row skipped\n",
				day, row.SchedDeparture, err)
			continue
		}
		sta, err := time.Parse(legTimeLayout, day+" "+row.SchedArrival+toOffset)
		if err != nil {
			str += fmt.Sprintf("** bad scheduled arrival '%s %s': %v; row skipped\n",
				day, row.SchedArrival, err)
			continue
		}

		// An unparsable actual departure just means "hasn't departed".
		atd, err := time.Parse(legTimeLayout, day+" "+row.ActDeparture+fromOffset)
		if err != nil {
			atd = time.Time{}
		}

		status, statusTime, diag := parseStatus(row.Status, day, fromOffset, toOffset)
		str += diag

		now := p.now().In(p.airportLocation(from, fromOffset))

		timeline := TimelineIndeterminate
		if !statusTime.IsZero() && statusTime.Before(now) {
			timeline = TimelinePast
		} else if std.After(now) {
			timeline = TimelineFuture
		}

		legs = append(legs, FlightLeg{
			Subject:     strings.TrimSpace(row.Subject),
			STD:         std,
			ATD:         atd,
			STA:         sta,
			Status:      status,
			StatusTime:  statusTime,
			Origin:      from,
			Destination: to,
			Timeline:    timeline,
		})
	}

	return legs, str
}

// }}}
// {{{ parseStatus

// parseStatus splits a status cell into its label and optional trailing
// HH:MM token. Which airport's offset applies to the token depends on the
// label; an unrecognized label-with-time is a data-quality warning, and
// the time is dropped rather than guessed at.
func parseStatus(raw, day, fromOffset, toOffset string) (string, time.Time, string) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", time.Time{}, ""
	}

	tok := statusTimeRE.FindString(fields[len(fields)-1])
	if tok == "" {
		return strings.Join(fields, " "), time.Time{}, ""
	}

	label := strings.Join(fields[:len(fields)-1], " ")

	offset := ""
	switch {
	case arrivalSideStatuses[label]:
		offset = toOffset
	case departureSideStatuses[label]:
		offset = fromOffset
	default:
		return label, time.Time{},
			fmt.Sprintf("** unrecognized status '%s'; time %s dropped\n", label, tok)
	}

	t, err := time.Parse(legTimeLayout, day+" "+tok+offset)
	if err != nil {
		return label, time.Time{},
			fmt.Sprintf("** bad status time '%s %s': %v\n", day, tok, err)
	}
	return label, t, ""
}

// }}}
// {{{ p.airportLocation, extractIata

// airportLocation resolves the IANA zone for "now", so the observer's
// calendar date is right across DST; the fixed offset is only the
// fallback when the zone name is missing or unloadable.
func (p *HistoryParser) airportLocation(iata, offset string) *time.Location {
	if ap, ok := p.Airports.AirportByIATA(iata); ok && ap.TZName != "" {
		if loc, err := time.LoadLocation(ap.TZName); err == nil {
			return loc
		}
	}
	if t, err := time.Parse("-07:00", offset); err == nil {
		return t.Location()
	}
	return time.UTC
}

func extractIata(field string) (string, bool) {
	m := iataInParensRE.FindStringSubmatch(field)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
