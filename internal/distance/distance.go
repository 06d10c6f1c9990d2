// Package distance implements the weighted Damerau-Levenshtein distance used
// by the lookup engine: an unweighted integer
// algorithm when no keyboard layout is loaded, and a keyboard-weighted
// variant with a doubled internal threshold when one is.
package distance

import (
	"math"

	"github.com/eskriett/strmet"
	"symspell/internal/keyboard"
)

// Exceeded is the sentinel returned when the true distance is greater than
// the requested max.
const Exceeded = -1

// Distance computes the unweighted Damerau-Levenshtein distance between a
// and b, delegating to eskriett/strmet for the actual DP.
func Distance(a, b string, max int) int {
	if a == b {
		return 0
	}

	ar, br := []rune(a), []rune(b)
	if len(ar) == 0 {
		if len(br) > max {
			return Exceeded
		}
		return len(br)
	}
	if len(br) == 0 {
		if len(ar) > max {
			return Exceeded
		}
		return len(ar)
	}
	if absInt(len(ar)-len(br)) > max {
		return Exceeded
	}

	return strmet.DamerauLevenshtein(a, b, max)
}

// WeightedDistance computes a keyboard-weighted Damerau-Levenshtein distance.
// If matrix is nil it falls back to Distance. Otherwise it runs the DP with
// an internal threshold of 2*max (since substitutions can cost as little as
// 0.5) and reports ceil(weighted) capped at max.
func WeightedDistance(a, b string, max int, matrix *keyboard.Matrix) int {
	if matrix == nil {
		return Distance(a, b, max)
	}

	if a == b {
		return 0
	}

	ar, br := []rune(a), []rune(b)
	n, m := len(ar), len(br)

	if n == 0 {
		if m > max {
			return Exceeded
		}
		return m
	}
	if m == 0 {
		if n > max {
			return Exceeded
		}
		return n
	}
	if absInt(n-m) > max {
		return Exceeded
	}

	maxPrime := float64(2 * max)

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 0; i <= n; i++ {
		dp[i][0] = float64(i)
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = float64(j)
	}

	for i := 1; i <= n; i++ {
		rowMin := math.Inf(1)
		for j := 1; j <= m; j++ {
			subCost := substitutionCost(ar[i-1], br[j-1], matrix)

			val := minf(
				dp[i-1][j]+1.0,
				dp[i][j-1]+1.0,
				dp[i-1][j-1]+subCost,
			)

			if i > 1 && j > 1 && ar[i-1] == br[j-2] && ar[i-2] == br[j-1] {
				val = math.Min(val, dp[i-2][j-2]+1.0)
			}

			dp[i][j] = val
			if val < rowMin {
				rowMin = val
			}
		}
		if rowMin > maxPrime {
			return Exceeded
		}
	}

	weighted := dp[n][m]
	if weighted > maxPrime {
		return Exceeded
	}

	result := int(math.Ceil(weighted))
	if result > max {
		result = max
	}
	return result
}

// substitutionCost maps keyboard layout distance onto substitution cost.
func substitutionCost(a, b rune, matrix *keyboard.Matrix) float64 {
	if a == b {
		return 0.0
	}
	if !isLowerASCII(a) || !isLowerASCII(b) {
		return 1.0
	}

	switch matrix.Distance(byte(a), byte(b)) {
	case 0:
		return 0.0
	case 1:
		return 0.5
	case 2:
		return 0.75
	default:
		return 1.0
	}
}

func isLowerASCII(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minf(values ...float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
