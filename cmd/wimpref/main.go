// wimpref builds the reference-data blob out of airport/airline CSV dumps.
//
//	wimpref -airports airports.csv -airlines airlines.csv -out refdata.gob
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/skypies/wimp/ref"
)

var (
	fAirports string
	fAirlines string
	fOut      string
)

func init() {
	flag.StringVar(&fAirports, "airports", "airports.csv", "airport reference CSV")
	flag.StringVar(&fAirlines, "airlines", "airlines.csv", "airline reference CSV")
	flag.StringVar(&fOut, "out", "refdata.gob", "output blob")
	flag.Parse()
}

func main() {
	apFile, err := os.Open(fAirports)
	if err != nil {
		log.Fatal(err)
	}
	defer apFile.Close()

	airports, err := ref.ReadAirportsCSV(apFile)
	if err != nil {
		log.Fatal(err)
	}

	alFile, err := os.Open(fAirlines)
	if err != nil {
		log.Fatal(err)
	}
	defer alFile.Close()

	airlines, err := ref.ReadAirlinesCSV(alFile)
	if err != nil {
		log.Fatal(err)
	}

	blob := ref.Blob{Airports: airports, Airlines: airlines}
	if err := ref.SaveBlobToFile(blob, fOut); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("wrote %s (%d airports, %d airlines)\n", fOut, len(airports), len(airlines))
}
