package wimp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/* Flight number spellings, as users type them and as the history source
indexes them:

1. IATA carrier code + number:  U2123   (what fr24 mostly wants)
2. ICAO operator code + number: EZY123  (what crews and ADS-B use)
3. Leading zeroes are unreliable: U20123 is listed as U2123, except when
   it isn't. easyJet ("U2") is the repeat offender here.
4. Regional subsidiaries fly under the parent's numbers with their own
   carrier codes ("easyJet Europe", "easyJet Switzerland", ...), so one
   flight may be reachable under several codes.
*/

// easyJet's carrier code gets special leading-zero handling; see Variants.
const easyJetCode = "U2"

var fnSplitRE = regexp.MustCompile(`^([A-Z]{2,3})([0-9]+)$`)

// FlightNumber is a user-supplied flight number, split into its carrier
// code segment and numeric suffix. The suffix keeps any leading zeroes.
type FlightNumber struct {
	Raw    string // uppercased input, verbatim
	Code   string // "U2", "EZY"
	Suffix string // "0123"
}

func (fn FlightNumber) String() string { return fn.Raw }

// ParseFlightNumber splits a flight number into code and suffix. When the
// first two characters mix a letter and a digit (either order) they are
// taken as the code outright; otherwise the split is at the first digit
// run.
func ParseFlightNumber(raw string) (FlightNumber, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) < 3 {
		return FlightNumber{}, fmt.Errorf("ParseFlightNumber: '%s' too short", raw)
	}

	isAlpha := func(b byte) bool { return b >= 'A' && b <= 'Z' }
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }

	if (isAlpha(s[0]) && isDigit(s[1])) || (isDigit(s[0]) && isAlpha(s[1])) {
		code, suffix := s[:2], s[2:]
		for i := 0; i < len(suffix); i++ {
			if !isDigit(suffix[i]) {
				return FlightNumber{}, fmt.Errorf("ParseFlightNumber: bad suffix in '%s'", raw)
			}
		}
		return FlightNumber{Raw: s, Code: code, Suffix: suffix}, nil
	}

	m := fnSplitRE.FindStringSubmatch(s)
	if m == nil {
		return FlightNumber{}, fmt.Errorf("ParseFlightNumber: could not split '%s'", raw)
	}
	return FlightNumber{Raw: s, Code: m[1], Suffix: m[2]}, nil
}

// Variants lists the spellings of this flight number worth asking the
// history source about. The original spelling always comes first; callers
// must tolerate duplicates. An unrecognized code just means no extra
// variants, never an error.
func (fn FlightNumber) Variants(airlines AirlineDirectory) []string {
	out := []string{fn.Raw}

	// Swap an ICAO operator code (EZY) for its carrier code (U2); or, if
	// the input already used a carrier code, just note which one.
	code := ""
	if al, ok := airlines.AirlineByICAO(fn.Code); ok && al.Code != "" {
		code = al.Code
		out = append(out, code+fn.Suffix)
	} else if al, ok := airlines.AirlineByCode(fn.Code); ok {
		code = al.Code
	}

	if code == easyJetCode && strings.HasPrefix(fn.Suffix, "0") {
		out = append(out, code+strings.Replace(fn.Suffix, "0", "", 1))
	}
	return out
}

// Resolve re-derives flight numbers strictly from carrier identity. Where
// the airline belongs to a multi-code brand family, one flight number per
// sister carrier code is emitted; the numeric suffix is re-parsed as an
// integer, dropping leading zeroes. Empty result when the code is
// unrecognized; the caller should carry on with the original input.
func (fn FlightNumber) Resolve(airlines AirlineDirectory) []string {
	al, ok := airlines.AirlineByCode(fn.Code)
	if !ok {
		al, ok = airlines.AirlineByICAO(fn.Code)
	}
	if !ok {
		return nil
	}

	n, err := strconv.Atoi(fn.Suffix)
	if err != nil {
		return nil
	}

	codes := airlines.SisterCodes(al.Name)
	if len(codes) == 0 {
		codes = []string{al.Code}
	}

	out := []string{}
	for _, code := range codes {
		if code != "" {
			out = append(out, fmt.Sprintf("%s%d", code, n))
		}
	}
	return out
}
