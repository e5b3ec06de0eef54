package grid

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"domain-checker/core/reconcile"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVCodec reads and writes comma-separated tables.
type CSVCodec struct{}

// Decode implements Codec.
func (CSVCodec) Decode(data []byte) (Grid, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse csv: %w", reconcile.ErrMalformedInput, err)
	}
	return Normalize(records), nil
}

// Encode implements Codec. The original bytes are only consulted for a
// leading byte order mark, which is kept.
func (CSVCodec) Encode(original []byte, g Grid) ([]byte, error) {
	var buf bytes.Buffer
	if bytes.HasPrefix(original, utf8BOM) {
		buf.Write(utf8BOM)
	}

	w := csv.NewWriter(&buf)
	if err := w.WriteAll(g); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}
