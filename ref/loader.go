package ref

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/skypies/wimp"
)

// Blob is the persisted form of the reference data: a single gob blob
// holding both tables. Regenerate it with the CSV importers in this
// package (cmd/wimpref does this from the command line).
type Blob struct {
	Airports []wimp.AirportRecord
	Airlines []wimp.AirlineRecord
}

func (b Blob) Tables() *Tables { return NewTables(b.Airports, b.Airlines) }

// {{{ encode/decode

func (b Blob) Encode(w io.Writer) error {
	return gob.NewEncoder(w).Encode(b)
}

func DecodeBlob(r io.Reader) (Blob, error) {
	b := Blob{}
	if err := gob.NewDecoder(r).Decode(&b); err != nil {
		return Blob{}, fmt.Errorf("ref: could not decode blob: %v", err)
	}
	return b, nil
}

// }}}
// {{{ LoadTablesFromFile

func LoadTablesFromFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ref: could not read %s: %v", path, err)
	}
	b, err := DecodeBlob(bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	return b.Tables(), nil
}

// }}}
// {{{ LoadTablesFromGCS

// LoadTablesFromGCS reads the blob out of a bucket, for deployments that
// don't ship the data file alongside the binary. Extra client options
// (credentials etc.) pass straight through.
func LoadTablesFromGCS(ctx context.Context, bucketName, objectName string, opts ...option.ClientOption) (*Tables, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	gcsReader, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("ref: GCS-Open %s|%s: %v", bucketName, objectName, err)
	}
	defer gcsReader.Close()

	b, err := DecodeBlob(gcsReader)
	if err != nil {
		return nil, err
	}
	return b.Tables(), nil
}

// }}}
// {{{ SaveBlobToFile

func SaveBlobToFile(b Blob, path string) error {
	var buf bytes.Buffer
	if err := b.Encode(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
