package wimp

import "fmt"

// RegistrationFromFlight picks the single aircraft registration operating
// a flight, from that flight's parsed leg history (where each leg's
// Subject is the registration that flew, or will fly, the leg).
//
// Rows with a one-character subject are placeholder junk ("-") and are
// ignored. The scan stops at (and includes) the first reliable leg that
// has already landed: legs beyond it are older instances of the flight,
// flown by whichever airframe happened to be on rotation that day.
//
// With exactly one reliable leg, that's the answer. With several, where
// the last one is the already-landed leg, the answer is the leg just
// before it: the aircraft now assigned is the one flying the leg after
// the landing, which the source lists second-to-last. Any other shape is
// ambiguous, and we fail closed rather than guess the wrong aircraft.
//
// Returns the registration (or "" when undeterminable) plus a transcript
// of how the choice was made.
func RegistrationFromFlight(history []FlightLeg) (string, string) {
	if len(history) == 0 {
		return "", "** no flight history to pick a registration from\n"
	}

	picked := []FlightLeg{}
	for _, leg := range history {
		if len(leg.Subject) <= 1 {
			continue
		}
		picked = append(picked, leg)
		if leg.Status == "Landed" && leg.Timeline == TimelinePast {
			break
		}
	}

	str := fmt.Sprintf("** %d candidate legs (of %d)\n", len(picked), len(history))

	switch {
	case len(picked) == 1:
		return picked[0].Subject, str + fmt.Sprintf("** sole candidate: %s\n", picked[0].Subject)

	case len(picked) > 1 &&
		picked[len(picked)-1].Status == "Landed" &&
		picked[len(picked)-1].Timeline == TimelinePast:
		reg := picked[len(picked)-2].Subject
		return reg, str + fmt.Sprintf("** last candidate already landed; taking %s\n", reg)

	default:
		str += fmt.Sprintf("** couldn't select one aircraft - found: %d\n", len(picked))
		for _, leg := range picked {
			str += fmt.Sprintf("**   %s\n", leg)
		}
		return "", str
	}
}
