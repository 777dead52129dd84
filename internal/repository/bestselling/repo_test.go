package bestselling

import (
	"testing"

	"go-firestore-catalog/internal/model"
	"go-firestore-catalog/internal/utils"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
)

func TestPatchUpdates(t *testing.T) {
	sales, revenue := 120, 35999.5

	cases := map[string]struct {
		patch model.BestSellingPatch
		want  []firestore.Update
	}{
		"empty": {
			patch: model.BestSellingPatch{},
			want:  []firestore.Update{},
		},
		"numbers": {
			patch: model.BestSellingPatch{Sales: &sales, Revenue: &revenue},
			want: []firestore.Update{
				{Path: SalesFieldPath, Value: 120},
				{Path: RevenueFieldPath, Value: 35999.5},
			},
		},
		"every field": {
			patch: model.BestSellingPatch{
				ProductId: utils.StringToPointer("p2"),
				Sales:     &sales,
				Revenue:   &revenue,
				Period:    utils.StringToPointer("2024-Q1"),
			},
			want: []firestore.Update{
				{Path: ProductIdFieldPath, Value: "p2"},
				{Path: SalesFieldPath, Value: 120},
				{Path: RevenueFieldPath, Value: 35999.5},
				{Path: PeriodFieldPath, Value: "2024-Q1"},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, PatchUpdates(tc.patch))
		})
	}
}
