package export

import (
	"bytes"
	"testing"
	"time"

	"go-firestore-catalog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestWriteProducts(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	products := []model.Product{
		{Id: "p1", Name: "Dell XPS 13", Category: model.CategoryLaptops, Specs: []string{"RAM: 16GB", "SSD: 512GB"}, Featured: true, CreatedAt: created, UpdatedAt: created},
		{Id: "p2", Name: "Logitech Mouse", Category: model.CategoryAccessories, CreatedAt: created, UpdatedAt: created},
	}
	stats := map[string]model.ReviewStats{"p1": {Count: 2, AverageRating: 4.5}}

	var buf bytes.Buffer
	require.NoError(t, WriteProducts(&buf, products, stats))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, ProductsSheet, sheet.Name)
	require.Len(t, sheet.Rows, 3)

	header := sheet.Rows[0]
	require.Len(t, header.Cells, len(ProductHeaders))
	for i, h := range ProductHeaders {
		assert.Equal(t, h, header.Cells[i].String())
	}

	first := sheet.Rows[1].Cells
	assert.Equal(t, "p1", first[0].String())
	assert.Equal(t, "Dell XPS 13", first[1].String())
	assert.Equal(t, "RAM: 16GB\nSSD: 512GB", first[4].String())
	assert.True(t, first[6].Bool())
	count, err := first[7].Int()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	rating, err := first[8].Float()
	require.NoError(t, err)
	assert.Equal(t, 4.5, rating)
	assert.Equal(t, "2024-05-01 10:30:00", first[9].String())

	second := sheet.Rows[2].Cells
	assert.Equal(t, "p2", second[0].String())
	zero, err := second[7].Int()
	require.NoError(t, err)
	assert.Equal(t, 0, zero)
}

func TestWriteProducts_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProducts(&buf, nil, nil))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, file.Sheets[0].Rows, 1)
}
