package linear

import (
	"math/rand/v2"
	"testing"

	"github.com/YuminosukeSato/linreg/dataset"
)

// createBenchmarkData はベンチマーク用のデータを生成する
func createBenchmarkData(rows, cols int) dataset.Dataset {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewPCG(42, 42))

	data := make([][]float64, rows)
	for i := range data {
		row := make([]float64, cols+1)
		sum := 1.0 // 切片
		for j := 0; j < cols; j++ {
			row[j] = rng.Float64()*2.0 - 1.0
			sum += row[j] * float64(j+1) * 0.5
		}
		// 小さなノイズを追加
		row[cols] = sum + (rng.Float64()-0.5)*0.1
		data[i] = row
	}
	return dataset.MustNew(data)
}

func BenchmarkLinearRegressionFit(b *testing.B) {
	sizes := []struct {
		name string
		rows int
		cols int
	}{
		{"Small_100x10", 100, 10},
		{"Medium_1000x10", 1000, 10},
		{"Large_10000x20", 10000, 20},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			ds := createBenchmarkData(size.rows, size.cols)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := NewLinearRegression().Fit(ds); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSimpleLinearRegressionFit(b *testing.B) {
	ds := createBenchmarkData(10000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := NewSimpleLinearRegression().Fit(ds); err != nil {
			b.Fatal(err)
		}
	}
}
