package ref

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/skypies/wimp"
)

/* The reference dumps are CSV with a header row; column names vary a bit
between dumps, so rows are read into a name->value map and picked out by
whichever header is present.

Airports:  iata,icao,name,tz_name,tz_offset
Airlines:  icao,name,code          (code may be blank)
*/

type rowReader struct {
	csvreader *csv.Reader
	headers   []string
}

func newRowReader(r io.Reader) *rowReader {
	rdr := &rowReader{csvreader: csv.NewReader(r)}
	rdr.headers, _ = rdr.csvreader.Read() // discard err; resurfaces on first Read
	return rdr
}

func (r *rowReader) Read() (map[string]string, error) {
	vals, err := r.csvreader.Read()
	if err != nil {
		return nil, err
	}
	if len(r.headers) != len(vals) {
		return nil, fmt.Errorf("ref: header/val mismatch (%d/%d)", len(r.headers), len(vals))
	}
	m := map[string]string{}
	for i := range vals {
		m[r.headers[i]] = vals[i]
	}
	return m, nil
}

func pick(m map[string]string, names ...string) string {
	for _, name := range names {
		if v, ok := m[name]; ok {
			return v
		}
	}
	return ""
}

// ReadAirportsCSV parses an airport dump. Rows without an IATA code are
// useless for lookups and get dropped.
func ReadAirportsCSV(r io.Reader) ([]wimp.AirportRecord, error) {
	out := []wimp.AirportRecord{}
	rdr := newRowReader(r)
	for {
		m, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, err
		}
		ap := wimp.AirportRecord{
			IATA:     pick(m, "iata", "iata_code"),
			ICAO:     pick(m, "icao", "icao_code"),
			Name:     pick(m, "name"),
			TZName:   pick(m, "tz_name", "timezone"),
			TZOffset: pick(m, "tz_offset", "utc_offset"),
		}
		if ap.IATA == "" {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func ReadAirlinesCSV(r io.Reader) ([]wimp.AirlineRecord, error) {
	out := []wimp.AirlineRecord{}
	rdr := newRowReader(r)
	for {
		m, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, err
		}
		al := wimp.AirlineRecord{
			ICAO: pick(m, "icao", "ICAO"),
			Name: pick(m, "name", "Name"),
			Code: pick(m, "code", "Code"),
		}
		if al.ICAO == "" && al.Name == "" {
			continue
		}
		out = append(out, al)
	}
	return out, nil
}
