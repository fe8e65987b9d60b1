package equivalency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/catalog"
)

// testFactors mirrors the multipliers shipped in the reference dataset.
func testFactors() Factors {
	return Factors{
		PassengerVehiclesPerYear: 0.000217,
		TreesNeeded:              0.0165,
		HomesEnergyUse:           0.000131,
		SmartphoneCharges:        121.643,
		MilesOnFlight:            2.481,
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		totalKg float64
		factors Factors
		want    Result
	}{
		{
			name:    "one tonne reference values",
			totalKg: 1000,
			factors: testFactors(),
			want: Result{
				Cars:        0.217,
				Trees:       17, // ceil(1000 * 0.0165) = ceil(16.5)
				Homes:       0.131,
				Smartphones: 121643,
				FlightMiles: 2481,
			},
		},
		{
			name:    "discrete categories round up",
			totalKg: 10,
			factors: testFactors(),
			want: Result{
				Cars:        0.00217,
				Trees:       1, // ceil(0.165)
				Homes:       0.00131,
				Smartphones: 1217, // ceil(1216.43)
				FlightMiles: 25,   // ceil(24.81)
			},
		},
		{
			name:    "zero total yields zero result",
			totalKg: 0,
			factors: testFactors(),
			want:    Result{},
		},
		{
			name:    "negative total yields zero result",
			totalKg: -50,
			factors: testFactors(),
			want:    Result{},
		},
		{
			name:    "NaN total yields zero result",
			totalKg: math.NaN(),
			factors: testFactors(),
			want:    Result{},
		},
		{
			name:    "zero factors yield zero result",
			totalKg: 1000,
			factors: Factors{},
			want:    Result{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.totalKg, tt.factors)
			assert.InDelta(t, tt.want.Cars, got.Cars, 1e-9)
			assert.Equal(t, tt.want.Trees, got.Trees)
			assert.InDelta(t, tt.want.Homes, got.Homes, 1e-9)
			assert.Equal(t, tt.want.Smartphones, got.Smartphones)
			assert.Equal(t, tt.want.FlightMiles, got.FlightMiles)
		})
	}
}

func TestConvert_Monotonic(t *testing.T) {
	factors := testFactors()
	small := Convert(500, factors)
	large := Convert(5000, factors)

	assert.LessOrEqual(t, small.Cars, large.Cars)
	assert.LessOrEqual(t, small.Trees, large.Trees)
	assert.LessOrEqual(t, small.Homes, large.Homes)
	assert.LessOrEqual(t, small.Smartphones, large.Smartphones)
	assert.LessOrEqual(t, small.FlightMiles, large.FlightMiles)
}

func TestFactorsFromCatalog(t *testing.T) {
	m := map[string]catalog.EquivalencyFactor{
		KeyPassengerVehicles: {Factor: 0.000217},
		KeyTreesNeeded:       {Factor: 0.0165},
		KeySmartphoneCharges: {Factor: 121.643},
	}

	got := FactorsFromCatalog(m)

	assert.InDelta(t, 0.000217, got.PassengerVehiclesPerYear, 1e-12)
	assert.InDelta(t, 0.0165, got.TreesNeeded, 1e-12)
	assert.InDelta(t, 121.643, got.SmartphoneCharges, 1e-9)
	// Absent names leave the multiplier at zero.
	assert.Zero(t, got.HomesEnergyUse)
	assert.Zero(t, got.MilesOnFlight)
}

func TestFactorsFromCatalog_Nil(t *testing.T) {
	got := FactorsFromCatalog(nil)
	require.Equal(t, Factors{}, got)
}

func BenchmarkConvert(b *testing.B) {
	factors := testFactors()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Convert(1234.5, factors)
	}
}
