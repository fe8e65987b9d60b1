package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineEmissions(t *testing.T) {
	tests := []struct {
		name     string
		activity float64
		factor   float64
		want     float64
	}{
		{
			name:     "natural gas reference value",
			activity: 100,
			factor:   2.01,
			want:     201,
		},
		{
			name:     "fractional activity",
			activity: 12.5,
			factor:   0.453,
			want:     5.6625,
		},
		{
			name:     "zero activity yields zero",
			activity: 0,
			factor:   2.01,
			want:     0,
		},
		{
			name:     "zero factor yields zero",
			activity: 100,
			factor:   0,
			want:     0,
		},
		{
			name:     "both zero yields zero",
			activity: 0,
			factor:   0,
			want:     0,
		},
		{
			name:     "NaN activity yields zero",
			activity: math.NaN(),
			factor:   2.01,
			want:     0,
		},
		{
			name:     "infinite factor yields zero",
			activity: 100,
			factor:   math.Inf(1),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineEmissions(tt.activity, tt.factor)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestScopeTotal(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    float64
	}{
		{
			name:    "nil list totals zero",
			entries: nil,
			want:    0,
		},
		{
			name:    "empty list totals zero",
			entries: []Entry{},
			want:    0,
		},
		{
			name: "single entry",
			entries: []Entry{
				{ActivityData: 100, EmissionFactor: 2.01},
			},
			want: 201,
		},
		{
			name: "multiple entries sum without rounding",
			entries: []Entry{
				{ActivityData: 100, EmissionFactor: 2.01},
				{ActivityData: 250, EmissionFactor: 0.453},
				{ActivityData: 3, EmissionFactor: 31.1},
			},
			want: 201 + 113.25 + 93.3,
		},
		{
			name: "incomplete draft entry contributes zero",
			entries: []Entry{
				{ActivityData: 100, EmissionFactor: 2.01},
				{ActivityData: 500}, // factor not captured yet
			},
			want: 201,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScopeTotal(tt.entries), 1e-9)
		})
	}
}

func TestScopeTotal_MatchesLineSum(t *testing.T) {
	entries := []Entry{
		{ActivityData: 1234.5, EmissionFactor: 0.171},
		{ActivityData: 0.003, EmissionFactor: 2088},
		{ActivityData: 99999, EmissionFactor: 0.011},
	}

	var want float64
	for _, e := range entries {
		want += LineEmissions(e.ActivityData, e.EmissionFactor)
	}

	assert.Equal(t, want, ScopeTotal(entries))
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name string
		data Data
		want Totals
	}{
		{
			name: "empty data",
			data: Data{},
			want: Totals{},
		},
		{
			name: "scope1 only reference scenario",
			data: Data{
				Scope1: []Entry{
					{Scope: Scope1, Category: "stationaryCombustion", Source: "naturalGas",
						ActivityData: 100, Unit: "m3", EmissionFactor: 2.01},
				},
			},
			want: Totals{Scope1: 201, Total: 201},
		},
		{
			name: "all scopes populated",
			data: Data{
				Scope1: []Entry{{ActivityData: 100, EmissionFactor: 2.01}},
				Scope2: []Entry{{ActivityData: 1000, EmissionFactor: 0.453}},
				Scope3: []Entry{{ActivityData: 2, EmissionFactor: 31.1}},
			},
			want: Totals{Scope1: 201, Scope2: 453, Scope3: 62.2, Total: 201 + 453 + 62.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.data)
			assert.InDelta(t, tt.want.Scope1, got.Scope1, 1e-9)
			assert.InDelta(t, tt.want.Scope2, got.Scope2, 1e-9)
			assert.InDelta(t, tt.want.Scope3, got.Scope3, 1e-9)
			assert.InDelta(t, tt.want.Total, got.Total, 1e-9)
		})
	}
}

func TestComputeTotals_Additive(t *testing.T) {
	data := Data{
		Scope1: []Entry{{ActivityData: 17.3, EmissionFactor: 2.68}},
		Scope2: []Entry{
			{ActivityData: 840, EmissionFactor: 0.453},
			{ActivityData: 120, EmissionFactor: 0.27},
		},
		Scope3: []Entry{{ActivityData: 4200, EmissionFactor: 0.195}},
	}

	got := ComputeTotals(data)

	// Total is the exact sum of the scope fields, not a re-rounded figure.
	assert.Equal(t, got.Scope1+got.Scope2+got.Scope3, got.Total)
}

func BenchmarkComputeTotals(b *testing.B) {
	entries := make([]Entry, 100)
	for i := range entries {
		entries[i] = Entry{ActivityData: float64(i + 1), EmissionFactor: 0.453}
	}
	data := Data{Scope1: entries, Scope2: entries, Scope3: entries}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ComputeTotals(data)
	}
}
