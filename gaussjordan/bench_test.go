package gaussjordan_test

import (
	"testing"

	"github.com/velikanov/matinv/gaussjordan"
	"github.com/velikanov/matinv/matrix"
)

// benchMatrix builds a deterministic diagonally dominant matrix of
// order n for benchmarking.
func benchMatrix(b *testing.B, n int) *matrix.Dense {
	b.Helper()

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				rows[i][j] = float64(n + 1)
			} else {
				rows[i][j] = float64((i+j)%3) - 1
			}
		}
	}
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		b.Fatalf("benchMatrix(%d): %v", n, err)
	}

	return d
}

func benchmarkInvert(b *testing.B, n int) {
	a := benchMatrix(b, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gaussjordan.Invert(a, nil); err != nil {
			b.Fatalf("Invert: %v", err)
		}
	}
}

func BenchmarkInvert_2(b *testing.B)  { benchmarkInvert(b, 2) }
func BenchmarkInvert_10(b *testing.B) { benchmarkInvert(b, 10) }

func BenchmarkDet_10(b *testing.B) {
	a := benchMatrix(b, 10)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gaussjordan.Det(a, nil); err != nil {
			b.Fatalf("Det: %v", err)
		}
	}
}

func BenchmarkReplay_10(b *testing.B) {
	a := benchMatrix(b, 10)
	res, err := gaussjordan.Invert(a, nil)
	if err != nil {
		b.Fatalf("Invert: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gaussjordan.Replay(a, res.Log); err != nil {
			b.Fatalf("Replay: %v", err)
		}
	}
}
