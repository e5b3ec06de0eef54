package grid

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Format identifies a table file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat is returned for file types without a codec.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// Codec converts between file bytes and a Grid.
type Codec interface {
	// Decode reads the first table found in data.
	Decode(data []byte) (Grid, error)
	// Encode produces file bytes for g. If original is not nil the codec may use
	// it as a template to keep formatting that the grid does not carry.
	Encode(original []byte, g Grid) ([]byte, error)
}

// FormatOf guesses the format from a file name or object key.
func FormatOf(location string) (Format, error) {
	switch strings.ToLower(path.Ext(location)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w %q (want .xlsx or .csv)", ErrUnsupportedFormat, path.Ext(location))
	}
}

// CodecFor returns the codec for f.
func CodecFor(f Format) (Codec, error) {
	switch f {
	case FormatXLSX:
		return XLSXCodec{}, nil
	case FormatCSV:
		return CSVCodec{}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, f)
	}
}

// ContentType returns the MIME type used when uploading f.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
