package wimp

import (
	"fmt"
	"time"
)

/* The rendered status line is consumed by a presentation layer that
predates this code, so the token syntax is load-bearing: '|' separates
segments, and '\_XXX_' / '_XXX_/' mark airport codes for highlighting
(arrival vs departure). Example:

  \_BGY_ 19:06 (+6) | _BGY_/ 19:42 (+12) | \_KTW_ ~21:18 (+8)

A '~' prefixes times that are estimates rather than recorded facts, and
'--' stands in for a delay that cannot be known yet.
*/

// FormatLocation renders a LocationEstimate into the legacy status line.
// reg is the aircraft registration, used in the no-further-flights
// notice. A nil estimate renders as the empty string.
func FormatLocation(est *LocationEstimate, reg string) string {
	if !est.HasLanded() {
		return ""
	}

	loc0 := est.LastLanded
	time0 := est.LastLandedATA.Format("15:04")
	delay0 := delayMinutes(est.LastLandedATA, est.LastLandedSTA)

	if !est.HasNextLeg() {
		return fmt.Sprintf("\\_%s_ %s (%s) | No further scheduled flights for: %s",
			loc0, time0, signedDelay(delay0), reg)
	}

	var time1, delay1, time2, delay2 string

	if est.NextATD.IsZero() {
		// Not yet departed: anchor on the status time (or failing that the
		// schedule itself), and the arrival delay is unknowable.
		anchor := est.NextStatusTime
		if anchor.IsZero() {
			anchor = est.NextSTD
		}
		time1 = "~" + anchor.Format("15:04")
		delay1 = signedDelay(delayMinutes(anchor, est.NextSTD))
		time2 = "~" + est.NextSTA.Format("15:04")
		delay2 = "--"
	} else {
		eta := est.NextStatusTime
		if eta.IsZero() {
			eta = est.NextSTA
		}
		time1 = est.NextATD.Format("15:04")
		delay1 = signedDelay(delayMinutes(est.NextATD, est.NextSTD))
		time2 = "~" + eta.Format("15:04")
		delay2 = signedDelay(delayMinutes(eta, est.NextSTA))
	}

	return fmt.Sprintf("\\_%s_ %s (%s) | _%s_/ %s (%s) | \\_%s_ %s (%s)",
		loc0, time0, signedDelay(delay0),
		loc0, time1, delay1,
		est.NextDestination, time2, delay2)
}

func delayMinutes(actual, sched time.Time) int {
	return int(actual.Sub(sched).Minutes())
}

// On-time-or-later gets an explicit '+'; negatives carry their own sign.
func signedDelay(mins int) string {
	if mins >= 0 {
		return fmt.Sprintf("+%d", mins)
	}
	return fmt.Sprintf("%d", mins)
}
