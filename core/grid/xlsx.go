package grid

import (
	"bytes"
	"fmt"

	"domain-checker/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// XLSXCodec reads and writes the first worksheet of an Excel workbook.
type XLSXCodec struct{}

// Decode implements Codec.
func (XLSXCodec) Decode(data []byte) (Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook: %w", reconcile.ErrMalformedInput, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no worksheet found", reconcile.ErrMalformedInput)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}
	return Normalize(rows), nil
}

// Encode implements Codec. With an original workbook only cells whose text
// changed are written, so styles, other sheets and typed values survive.
func (XLSXCodec) Encode(original []byte, g Grid) ([]byte, error) {
	var (
		f   *excelize.File
		err error
	)
	if original != nil {
		f, err = excelize.OpenReader(bytes.NewReader(original))
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
	} else {
		f = excelize.NewFile()
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no worksheet found", reconcile.ErrMalformedInput)
	}
	sheet := sheets[0]

	for r, row := range g {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			current, err := f.GetCellValue(sheet, cell)
			if err != nil {
				return nil, fmt.Errorf("failed to read cell %s: %w", cell, err)
			}
			if current == value {
				continue
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
