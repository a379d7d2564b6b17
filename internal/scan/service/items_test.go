package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-scan-service/internal/scan/model"
)

func TestNormalizeItems(t *testing.T) {
	catalog := []string{"41901-2", "653D-2"}

	tests := []struct {
		name       string
		raw        []model.RawItem
		candidates []string
		want       []model.NormalizedItem
	}{
		{
			name:       "ocr noise snaps back to catalog spelling",
			raw:        []model.RawItem{{ProductName: "4l90l-2", Quantity: 1.0, UnitPrice: 5.0, TotalAmount: 5.0}},
			candidates: catalog,
			want:       []model.NormalizedItem{{ProductName: "41901-2", Quantity: 1, UnitPrice: 5, TotalAmount: 5}},
		},
		{
			name:       "missing total derived from qty times price",
			raw:        []model.RawItem{{ProductName: "41901-2", Quantity: 3.0, UnitPrice: 10.0, TotalAmount: 0.0}},
			candidates: catalog,
			want:       []model.NormalizedItem{{ProductName: "41901-2", Quantity: 3, UnitPrice: 10, TotalAmount: 30}},
		},
		{
			name:       "present total is kept even when inconsistent",
			raw:        []model.RawItem{{ProductName: "41901-2", Quantity: 2.0, UnitPrice: 10.0, TotalAmount: 25.0}},
			candidates: catalog,
			want:       []model.NormalizedItem{{ProductName: "41901-2", Quantity: 2, UnitPrice: 10, TotalAmount: 25}},
		},
		{
			name:       "derived total rounds to three decimals",
			raw:        []model.RawItem{{ProductName: "41901-2", Quantity: 3.0, UnitPrice: 0.3333, TotalAmount: nil}},
			candidates: catalog,
			want:       []model.NormalizedItem{{ProductName: "41901-2", Quantity: 3, UnitPrice: 0.3333, TotalAmount: 1}},
		},
		{
			name:       "zero quantity row dropped",
			raw:        []model.RawItem{{ProductName: "41901-2", Quantity: 0.0, UnitPrice: 10.0, TotalAmount: 0.0}},
			candidates: catalog,
			want:       []model.NormalizedItem{},
		},
		{
			name:       "empty name row dropped",
			raw:        []model.RawItem{{ProductName: "   ", Quantity: 2.0, UnitPrice: 10.0, TotalAmount: 20.0}},
			candidates: catalog,
			want:       []model.NormalizedItem{},
		},
		{
			name:       "below threshold keeps the raw name",
			raw:        []model.RawItem{{ProductName: "ceramic tile", Quantity: 1.0, UnitPrice: 2.0, TotalAmount: 2.0}},
			candidates: catalog,
			want:       []model.NormalizedItem{{ProductName: "ceramic tile", Quantity: 1, UnitPrice: 2, TotalAmount: 2}},
		},
		{
			name:       "no candidates keeps the raw name",
			raw:        []model.RawItem{{ProductName: "4l90l-2", Quantity: 1.0, UnitPrice: 2.0, TotalAmount: 2.0}},
			candidates: nil,
			want:       []model.NormalizedItem{{ProductName: "4l90l-2", Quantity: 1, UnitPrice: 2, TotalAmount: 2}},
		},
		{
			name: "string fields parsed flexibly",
			raw: []model.RawItem{
				{ProductName: "41901-2", Quantity: "٣", UnitPrice: "1,000.5", TotalAmount: ""},
			},
			candidates: catalog,
			want:       []model.NormalizedItem{{ProductName: "41901-2", Quantity: 3, UnitPrice: 1000.5, TotalAmount: 3001.5}},
		},
		{
			name: "input order preserved after drops",
			raw: []model.RawItem{
				{ProductName: "653D-2", Quantity: 1.0, UnitPrice: 1.0, TotalAmount: 1.0},
				{ProductName: "", Quantity: 9.0, UnitPrice: 9.0, TotalAmount: 9.0},
				{ProductName: "41901-2", Quantity: 2.0, UnitPrice: 2.0, TotalAmount: 4.0},
			},
			candidates: catalog,
			want: []model.NormalizedItem{
				{ProductName: "653D-2", Quantity: 1, UnitPrice: 1, TotalAmount: 1},
				{ProductName: "41901-2", Quantity: 2, UnitPrice: 2, TotalAmount: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeItems(tt.raw, tt.candidates))
		})
	}
}

func TestBestCandidate_TiesResolveToListOrder(t *testing.T) {
	// both candidates fold to the same normalized form, so they score equally
	best, score := BestCandidate("ab-1", []string{"AB-1", "ab1"})
	assert.Equal(t, "AB-1", best)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScanInvoice_EndToEnd(t *testing.T) {
	req := model.ScanRequest{
		Items: []model.RawItem{
			{ProductName: "Ly-159-2", Quantity: "2", UnitPrice: "15.000", TotalAmount: ""},
		},
		SaleDate:          "26-02-20",
		CandidateProducts: []string{"Ly-159-2"},
	}

	res := ScanInvoice(req)

	require.Len(t, res.Items, 1)
	assert.Equal(t, model.NormalizedItem{
		ProductName: "Ly-159-2",
		Quantity:    2,
		UnitPrice:   15,
		TotalAmount: 30,
	}, res.Items[0])
	assert.Equal(t, "2020-02-26", res.SaleDate)
}
