package grid

import (
	"testing"

	"domain-checker/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("/tmp/Domains.XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = FormatOf("s3://bucket/path/list.csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = FormatOf("list.ods")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = CodecFor(Format("ods"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestCSVCodec(t *testing.T) {
	data := []byte("\xEF\xBB\xBFDomain,.com,.net\nfoo,,Registered\nbar\n")

	g, err := CSVCodec{}.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Grid{
		{"Domain", ".com", ".net"},
		{"foo", "", "Registered"},
		{"bar", "", ""},
	}, g)

	g[1][1] = "Not Registered"
	out, err := CSVCodec{}.Encode(data, g)
	require.NoError(t, err)
	assert.Equal(t, "\xEF\xBB\xBFDomain,.com,.net\nfoo,Not Registered,Registered\nbar,,\n", string(out))
}

func TestCSVCodec_Invalid(t *testing.T) {
	_, err := CSVCodec{}.Decode([]byte("a,\"b\n\"c,d"))
	assert.ErrorIs(t, err, reconcile.ErrMalformedInput)

	_, err = XLSXCodec{}.Decode([]byte("not a workbook"))
	assert.ErrorIs(t, err, reconcile.ErrMalformedInput)
}

// workbook builds an xlsx file with a styled header and a second sheet.
func workbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Domain", ".com", "net"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"foo", nil, "Registered"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"bar"}))

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "A1", "C1", style))

	_, err = f.NewSheet("Notes")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Notes", "A1", "do not touch"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestXLSXCodec_RoundTrip(t *testing.T) {
	data := workbook(t)

	g, err := XLSXCodec{}.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Grid{
		{"Domain", ".com", "net"},
		{"foo", "", "Registered"},
		{"bar", "", ""},
	}, g)

	g[1][1] = "Not Registered"
	g[2][2] = "Registered"

	out, err := XLSXCodec{}.Encode(data, g)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytesReader(out))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Sheet1", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Not Registered", v)

	v, err = f.GetCellValue("Sheet1", "C3")
	require.NoError(t, err)
	assert.Equal(t, "Registered", v)

	v, err = f.GetCellValue("Notes", "A1")
	require.NoError(t, err)
	assert.Equal(t, "do not touch", v)

	styleID, err := f.GetCellStyle("Sheet1", "B1")
	require.NoError(t, err)
	assert.NotZero(t, styleID)
}

func TestXLSXCodec_NewWorkbook(t *testing.T) {
	out, err := XLSXCodec{}.Encode(nil, Grid{{"Domain", ".io"}, {"foo", "Registered"}})
	require.NoError(t, err)

	g, err := XLSXCodec{}.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, Grid{{"Domain", ".io"}, {"foo", "Registered"}}, g)
}

func TestXLSXCodec_Garbage(t *testing.T) {
	_, err := XLSXCodec{}.Decode([]byte("not a zip"))
	assert.Error(t, err)
}
