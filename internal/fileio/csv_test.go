package fileio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAnyMaps_CSV(t *testing.T) {
	csvBody := "Product Name,Price\n41901-2,12.5\nقهوة عربية,36.5\n,\n653D-2,8\n"

	rows, err := ReadAnyMaps(strings.NewReader(csvBody), "catalog.csv", 1)
	require.NoError(t, err)
	require.Len(t, rows, 3) // the all-empty row is skipped

	assert.Equal(t, "41901-2", rows[0]["Product Name"])
	assert.Equal(t, "قهوة عربية", rows[1]["Product Name"])
	assert.Equal(t, "8", rows[2]["Price"])
}

func TestReadAnyMaps_HeaderRowOffset(t *testing.T) {
	csvBody := "exported 2026-01-12,\nName,Qty\ntile,4\n"

	rows, err := ReadAnyMaps(strings.NewReader(csvBody), "export.csv", 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "tile", rows[0]["Name"])
	assert.Equal(t, "4", rows[0]["Qty"])
}

func TestReadAnyMaps_UnsupportedExtension(t *testing.T) {
	_, err := ReadAnyMaps(strings.NewReader("x"), "catalog.pdf", 1)
	assert.Error(t, err)
}

func TestPickHeader_FillsEmptyCells(t *testing.T) {
	h := pickHeader([][]string{{"Name", "", "Qty"}}, 1)
	assert.Equal(t, []string{"Name", "Column 2", "Qty"}, h)
}
