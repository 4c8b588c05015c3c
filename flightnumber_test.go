package wimp

import (
	"reflect"
	"testing"
)

// A canned airline directory, so these tests don't need real reference
// tables.
type testAirlines struct {
	byCode  map[string]AirlineRecord
	byICAO  map[string]AirlineRecord
	sisters map[string][]string
}

func (t testAirlines) AirlineByCode(code string) (AirlineRecord, bool) {
	al, ok := t.byCode[code]
	return al, ok
}
func (t testAirlines) AirlineByICAO(icao string) (AirlineRecord, bool) {
	al, ok := t.byICAO[icao]
	return al, ok
}
func (t testAirlines) SisterCodes(name string) []string { return t.sisters[name] }

var easyJetDir = testAirlines{
	byCode: map[string]AirlineRecord{
		"U2": {ICAO: "EZY", Name: "easyJet", Code: "U2"},
		"FR": {ICAO: "RYR", Name: "Ryanair", Code: "FR"},
	},
	byICAO: map[string]AirlineRecord{
		"EZY": {ICAO: "EZY", Name: "easyJet", Code: "U2"},
		"RYR": {ICAO: "RYR", Name: "Ryanair", Code: "FR"},
		"WZZ": {ICAO: "WZZ", Name: "Wizz Air", Code: ""},
	},
	sisters: map[string][]string{
		"easyJet": {"U2", "DS", "EC"},
	},
}

func TestParseFlightNumber(t *testing.T) {
	tests := []struct {
		in, code, suffix string
		bad              bool
	}{
		{"U2123", "U2", "123", false},
		{"u2123", "U2", "123", false}, // case-insensitive
		{"EZY123", "EZY", "123", false},
		{"FR0075", "FR", "0075", false},
		{"2U123", "2U", "123", false}, // digit-first mixed code
		{"U20123", "U2", "0123", false},
		{"EZY", "", "", true},
		{"12345", "", "", true},
		{"U2", "", "", true},
		{"", "", "", true},
	}

	for _, test := range tests {
		fn, err := ParseFlightNumber(test.in)
		if test.bad {
			if err == nil {
				t.Errorf("'%s' - expected parse error, got %v", test.in, fn)
			}
			continue
		}
		if err != nil {
			t.Errorf("'%s' - unexpected error: %v", test.in, err)
		} else if fn.Code != test.code || fn.Suffix != test.suffix {
			t.Errorf("'%s' - expected %s/%s, got %s/%s",
				test.in, test.code, test.suffix, fn.Code, fn.Suffix)
		}
	}
}

func TestVariants(t *testing.T) {
	tests := []struct {
		in       string
		expected []string
	}{
		{"EZY123", []string{"EZY123", "U2123"}},
		{"EZY0123", []string{"EZY0123", "U20123", "U2123"}}, // zero-strip via ICAO
		{"U2075", []string{"U2075", "U275"}},                // zero-strip on the bare carrier code
		{"U2123", []string{"U2123"}},
		{"FR0075", []string{"FR0075"}}, // zero-strip is easyJet-only
		{"WZZ012", []string{"WZZ012"}}, // ICAO known but no carrier code
		{"XX999", []string{"XX999"}},   // unrecognized: original only
	}

	for _, test := range tests {
		fn, err := ParseFlightNumber(test.in)
		if err != nil {
			t.Fatalf("'%s' - parse failed: %v", test.in, err)
		}
		got := fn.Variants(easyJetDir)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("'%s' - expected %v, got %v", test.in, test.expected, got)
		}
		if got[0] != fn.Raw {
			t.Errorf("'%s' - original input not first in %v", test.in, got)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		in       string
		expected []string
	}{
		{"U20123", []string{"U2123", "DS123", "EC123"}}, // sister fan-out, zeroes dropped
		{"EZY0123", []string{"U2123", "DS123", "EC123"}},
		{"FR0075", []string{"FR75"}}, // no sisters: own code, int suffix
		{"XX999", nil},               // unrecognized: empty, not an error
	}

	for _, test := range tests {
		fn, err := ParseFlightNumber(test.in)
		if err != nil {
			t.Fatalf("'%s' - parse failed: %v", test.in, err)
		}
		got := fn.Resolve(easyJetDir)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("'%s' - expected %v, got %v", test.in, test.expected, got)
		}
	}
}
