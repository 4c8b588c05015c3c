package wimp

import (
	"testing"
	"time"
)

func TestFormatLocation(t *testing.T) {
	cet := time.FixedZone("", 2*60*60)
	at := func(h, m int) time.Time {
		return time.Date(2023, 9, 7, h, m, 0, 0, cet)
	}

	landedOnly := &LocationEstimate{
		LastLanded:    "BGY",
		LastLandedSTA: at(19, 0),
		LastLandedATA: at(19, 6),
	}

	withNext := func(mutate func(*LocationEstimate)) *LocationEstimate {
		est := *landedOnly
		est.NextDestination = "KTW"
		est.NextSTD = at(19, 30)
		est.NextSTA = at(21, 10)
		mutate(&est)
		return &est
	}

	tests := []struct {
		name     string
		est      *LocationEstimate
		expected string
	}{
		{"nil estimate", nil, ""},

		{"no landing found", &LocationEstimate{NextDestination: "KTW"}, ""},

		{"landed, nothing further", landedOnly,
			`\_BGY_ 19:06 (+6) | No further scheduled flights for: G-EZBY`},

		{"next not departed, status time anchors",
			withNext(func(est *LocationEstimate) {
				est.NextStatus = "Estimated departure"
				est.NextStatusTime = at(19, 45)
			}),
			`\_BGY_ 19:06 (+6) | _BGY_/ ~19:45 (+15) | \_KTW_ ~21:10 (--)`},

		{"next not departed, no status time",
			withNext(func(est *LocationEstimate) {}),
			`\_BGY_ 19:06 (+6) | _BGY_/ ~19:30 (+0) | \_KTW_ ~21:10 (--)`},

		{"next departed",
			withNext(func(est *LocationEstimate) {
				est.NextATD = at(19, 42)
				est.NextStatus = "Estimated"
				est.NextStatusTime = at(21, 18)
			}),
			`\_BGY_ 19:06 (+6) | _BGY_/ 19:42 (+12) | \_KTW_ ~21:18 (+8)`},
	}

	for _, test := range tests {
		if got := FormatLocation(test.est, "G-EZBY"); got != test.expected {
			t.Errorf("%s:\n expected %q\n      got %q", test.name, test.expected, got)
		}
	}
}

func TestFormatLocationEarlyArrival(t *testing.T) {
	est := &LocationEstimate{
		LastLanded:    "BGY",
		LastLandedSTA: time.Date(2023, 9, 7, 19, 0, 0, 0, time.UTC),
		LastLandedATA: time.Date(2023, 9, 7, 18, 55, 0, 0, time.UTC),
	}
	expected := `\_BGY_ 18:55 (-5) | No further scheduled flights for: G-EZBY`
	if got := FormatLocation(est, "G-EZBY"); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
