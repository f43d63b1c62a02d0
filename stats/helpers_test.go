package stats

// Deterministic fixtures: an explicit LCG keeps test data identical across
// Go releases, unlike math/rand.

type lcg struct{ state uint64 }

func newLCG(seed uint64) *lcg {
	return &lcg{state: seed}
}

// next returns a uniform value in [-0.5, 0.5).
func (r *lcg) next() float64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return float64(r.state>>11)/(1<<53) - 0.5
}

// whiteNoise returns n uncorrelated samples.
func whiteNoise(n int, seed uint64) []float64 {
	r := newLCG(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = r.next()
	}
	return out
}

// ma1Series returns an MA(1) process v[i] = w[i] + theta*w[i-1] with
// lag-one autocorrelation theta/(1+theta^2) and no correlation beyond.
func ma1Series(n int, theta float64, seed uint64) []float64 {
	r := newLCG(seed)
	out := make([]float64, n)
	prev := 0.0
	for i := range out {
		w := r.next()
		out[i] = w + theta*prev
		prev = w
	}
	return out
}

// blockSeries repeats each noise value block times, giving a strongly
// correlated series with inefficiency near block.
func blockSeries(n, block int, seed uint64) []float64 {
	r := newLCG(seed)
	out := make([]float64, n)
	v := r.next()
	for i := range out {
		if i%block == 0 {
			v = r.next()
		}
		out[i] = v
	}
	return out
}
