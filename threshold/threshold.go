// Package threshold computes the minimum number of anchored reads a bin
// needs before it is reported, by comparing the observed bin pileup with a
// Poisson background at a given false discovery tolerance.
package threshold

import (
	"math"

	"github.com/grailbio/mobel/config"
)

// EffectiveLength returns the number of coordinates a chromosome of
// genomeLen spans once split into overlapping bins.
func EffectiveLength(genomeLen, binSize, binOverlap float64) float64 {
	return genomeLen * binSize / binOverlap
}

// Lambda returns the expected number of reads per bin.
func Lambda(reads, effLen, binSize float64) float64 {
	return reads * binSize / effLen
}

// UpperTail returns P(X > k) for X ~ Poisson(lambda), for k = 1..n.
func UpperTail(lambda float64, n int) []float64 {
	tail := make([]float64, n)
	if lambda <= 0 {
		return tail
	}
	logLambda := math.Log(lambda)
	cdf := math.Exp(-lambda)
	for k := 1; k <= n; k++ {
		lg, _ := math.Lgamma(float64(k + 1))
		cdf += math.Exp(float64(k)*logLambda - lambda - lg)
		tail[k-1] = math.Max(0, 1-cdf)
	}
	return tail
}

// Table returns the histogram of bin sizes: out[i] is the number of bins
// holding i+1 reads. Bins with n or more reads, and empty bins, are left
// out.
func Table(positions map[string][]string, n int) []float64 {
	out := make([]float64, n)
	for _, ids := range positions {
		if c := len(ids); c > 0 && c < n {
			out[c-1]++
		}
	}
	return out
}

// Cumsum returns the running sums of v.
func Cumsum(v []float64) []float64 {
	out := make([]float64, len(v))
	var s float64
	for i, x := range v {
		s += x
		out[i] = s
	}
	return out
}

// Threshold returns the smallest read count k, in 1..opts.PoissonSize, at
// which the expected number of background bins with more than k reads,
// relative to the observed bins with at most k reads, falls under
// opts.FalseDiscoveryTolerance. It returns 0 when no k qualifies.
func Threshold(reads, chromosomeSize float64, positions map[string][]string, opts config.Opts) int {
	n := opts.PoissonSize
	effLen := EffectiveLength(chromosomeSize, float64(opts.BinSize), float64(opts.BinOverlap))
	tail := UpperTail(Lambda(reads, effLen, float64(opts.BinSize)), n)
	observed := Cumsum(Table(positions, n))
	for i := 0; i < n; i++ {
		if observed[i] == 0 {
			continue
		}
		if tail[i]*chromosomeSize/observed[i] < opts.FalseDiscoveryTolerance {
			return i + 1
		}
	}
	return 0
}
