package vectorizer

import "gonum.org/v1/gonum/mat"

// Dense copies a count matrix into a gonum dense matrix. It returns nil
// when the matrix has no rows or no columns, since gonum does not allow
// zero-sized matrices.
func Dense(matrix [][]int) *mat.Dense {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil
	}
	rows, cols := len(matrix), len(matrix[0])
	data := make([]float64, 0, rows*cols)
	for _, row := range matrix {
		for _, c := range row {
			data = append(data, float64(c))
		}
	}
	return mat.NewDense(rows, cols, data)
}

// ColumnTotals sums every column of the matrix. width is the vocabulary
// size and is needed when the matrix has no rows.
func ColumnTotals(matrix [][]int, width int) []int {
	totals := make([]int, width)
	for _, row := range matrix {
		for j, c := range row {
			totals[j] += c
		}
	}
	return totals
}

// DocumentFrequencies counts, per column, the rows with a non-zero count.
func DocumentFrequencies(matrix [][]int, width int) []int {
	df := make([]int, width)
	for _, row := range matrix {
		for j, c := range row {
			if c > 0 {
				df[j]++
			}
		}
	}
	return df
}
