package wimp

import "testing"

func mkLeg(subject, status string, timeline Timeline) FlightLeg {
	return FlightLeg{Subject: subject, Status: status, Timeline: timeline}
}

func TestRegistrationFromFlight(t *testing.T) {
	landed := mkLeg("G-EZBY", "Landed", TimelinePast)

	tests := []struct {
		name     string
		history  []FlightLeg
		expected string
	}{
		{"empty history", []FlightLeg{}, ""},

		{"single reliable leg",
			[]FlightLeg{mkLeg("-", "Scheduled", TimelineFuture), landed},
			"G-EZBY"},

		// Two reliable legs ending on the already-landed one: the
		// aircraft on the leg before it is the one assigned now.
		{"reassignment shape",
			[]FlightLeg{
				mkLeg("-", "Scheduled", TimelineFuture),
				mkLeg("G-EZTD", "Estimated departure", TimelineIndeterminate),
				landed,
			},
			"G-EZTD"},

		// Candidates beyond the first landed/past leg are old history
		// and don't make this ambiguous.
		{"stops at first landing",
			[]FlightLeg{
				landed,
				mkLeg("G-EZTD", "Landed", TimelinePast),
				mkLeg("G-EZAA", "Landed", TimelinePast),
			},
			"G-EZBY"},

		{"all placeholders",
			[]FlightLeg{mkLeg("-", "Scheduled", TimelineFuture), mkLeg("-", "Scheduled", TimelineFuture)},
			""},

		// Several reliable legs, none of them a completed landing:
		// ambiguous, fail closed.
		{"ambiguous multi-match",
			[]FlightLeg{
				mkLeg("G-EZBY", "Estimated", TimelineIndeterminate),
				mkLeg("G-EZTD", "Scheduled", TimelineFuture),
			},
			""},

		// A landed leg that isn't yet classified past doesn't end the
		// scan or anchor a selection.
		{"landed but not past",
			[]FlightLeg{
				mkLeg("G-EZBY", "Estimated", TimelineIndeterminate),
				mkLeg("G-EZTD", "Landed", TimelineIndeterminate),
			},
			""},
	}

	for _, test := range tests {
		reg, str := RegistrationFromFlight(test.history)
		if reg != test.expected {
			t.Errorf("%s: expected '%s', got '%s'; transcript:\n%s",
				test.name, test.expected, reg, str)
		}
	}
}
