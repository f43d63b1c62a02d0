package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatisticalInefficiencyDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"empty", nil},
		{"single", []float64{1.0}},
		{"pair", []float64{1.0, 2.0}},
		{"constant", []float64{3.0, 3.0, 3.0, 3.0, 3.0}},
		{"negative accumulation floors at one", []float64{5, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 1.0, StatisticalInefficiency(tt.values))
		})
	}
}

func TestStatisticalInefficiencyWhiteNoise(t *testing.T) {
	g := StatisticalInefficiency(whiteNoise(2000, 1))
	assert.GreaterOrEqual(t, g, 1.0)
	assert.Less(t, g, 1.3, "white noise should be close to uncorrelated")
}

func TestStatisticalInefficiencyMA1(t *testing.T) {
	// MA(1) with theta=0.35 has lag-one autocorrelation ~0.31, so the
	// expected inefficiency is near 1 + 2*0.31 = 1.62.
	g := StatisticalInefficiency(ma1Series(4001, 0.35, 7))
	assert.Greater(t, g, 1.3)
	assert.Less(t, g, 2.0)
}

func TestStatisticalInefficiencyBlockCorrelated(t *testing.T) {
	g := StatisticalInefficiency(blockSeries(2000, 10, 11))
	assert.Greater(t, g, 5.0, "repeating each value 10 times should give g near 10")
	assert.Less(t, g, 20.0)
}

func TestSubsampleIndicesConservative(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		g        float64
		expected []int
	}{
		{"g below one clamps to stride one", 4, 0.5, []int{0, 1, 2, 3}},
		{"unit stride", 4, 1.0, []int{0, 1, 2, 3}},
		{"fractional g rounds stride up", 7, 1.1, []int{0, 2, 4, 6}},
		{"integral g", 7, 2.0, []int{0, 2, 4, 6}},
		{"stride three", 7, 2.5, []int{0, 3, 6}},
		{"empty", 0, 2.0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SubsampleIndices(tt.n, tt.g, true))
		})
	}
}

func TestSubsampleIndicesNonConservative(t *testing.T) {
	// g=1 keeps everything.
	assert.Equal(t, []int{0, 1, 2, 3}, SubsampleIndices(4, 1.0, false))

	// g=2 keeps floor(10/2)=5 samples at even spacing.
	assert.Equal(t, []int{0, 2, 4, 6, 8}, SubsampleIndices(10, 2.0, false))

	// Real-valued spacing: floor(9/1.5)=6 samples at round(i*1.5).
	assert.Equal(t, []int{0, 2, 3, 5, 6, 8}, SubsampleIndices(9, 1.5, false))
}

func TestSubsampleIndicesBenchmarkCount(t *testing.T) {
	// The deterministic reference behavior: 4001 rows with g in (1,2] keep
	// exactly 2001 rows under conservative striding.
	idx := SubsampleIndices(4001, 1.0559, true)
	assert.Len(t, idx, 2001)
}
