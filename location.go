package wimp

// LocationFromHistory walks an aircraft's parsed leg history (in source
// order, most-recent-first) and derives where the airframe is. The first
// leg with status "Landed" is the most recent touchdown; the leg listed
// just before it is the next one chronologically, so it supplies the
// "what happens next" half of the estimate.
//
// Nil history yields nil. A landing at the head of the list means the
// aircraft is down with no further leg known; no landing at all yields an
// estimate with no last-landed fields, which callers must treat as
// unusable.
func LocationFromHistory(history []FlightLeg) *LocationEstimate {
	if history == nil {
		return nil
	}

	est := &LocationEstimate{}

	landedAt := -1
	for i, leg := range history {
		if leg.Status == "Landed" {
			est.LastLanded = leg.Destination
			est.LastLandedSTA = leg.STA
			est.LastLandedATA = leg.StatusTime
			landedAt = i
			break
		}
	}

	if landedAt > 0 {
		next := history[landedAt-1]
		est.NextDestination = next.Destination
		est.NextSTD = next.STD
		est.NextATD = next.ATD
		est.NextSTA = next.STA
		est.NextStatus = next.Status
		est.NextStatusTime = next.StatusTime
	}

	return est
}
