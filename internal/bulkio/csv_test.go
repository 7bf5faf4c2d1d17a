package bulkio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine_QuotedCommasAndDoubledQuotes(t *testing.T) {
	fields := splitLine(`"Serum, 30ml","He said ""wow""",10`)
	require.Len(t, fields, 3)
	assert.Equal(t, "Serum, 30ml", fields[0])
	assert.Equal(t, `He said "wow"`, fields[1])
	assert.Equal(t, "10", fields[2])
}

func TestParseCSV_HeaderNormalizationAndBlankLines(t *testing.T) {
	data := []byte("\uFEFFProduct Name,unit price,Qty\r\nSerum,9.99,3\n\nCream,12,0\n")

	rows, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Serum", rows[0][KeyName])
	assert.Equal(t, "9.99", rows[0][KeyPrice])
	assert.Equal(t, "3", rows[0][KeyStock])
	assert.Equal(t, "Cream", rows[1][KeyName])
}

func TestParseCSV_ShortRowsLeaveKeysUnset(t *testing.T) {
	rows, err := ParseCSV([]byte("Name,Price,Stock\nSerum,9.99\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	_, ok := rows[0][KeyStock]
	assert.False(t, ok)
}

func TestParseCSV_EmptySheet(t *testing.T) {
	_, err := ParseCSV([]byte(""))
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestWriteCSV_BOMAndQuoting(t *testing.T) {
	out := string(WriteCSV([]string{"Name", "Price"}, [][]string{{`He said "hi"`, "9.99"}}))

	assert.True(t, strings.HasPrefix(out, "\uFEFF"))
	lines := strings.Split(strings.TrimPrefix(out, "\uFEFF"), "\n")
	assert.Equal(t, `"Name","Price"`, lines[0])
	assert.Equal(t, `"He said ""hi""","9.99"`, lines[1])
}

func TestCSV_RoundTrip(t *testing.T) {
	out := WriteCSV([]string{"Name", "Description"}, [][]string{
		{"Serum, 30ml", `the "best" one`},
	})

	rows, err := ParseCSV(out)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Serum, 30ml", rows[0][KeyName])
	assert.Equal(t, `the "best" one`, rows[0][KeyDescription])
}
