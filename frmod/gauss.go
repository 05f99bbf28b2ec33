package frmod

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// cloneRows deep-copies a row list of the given width, padding missing
// rows with zeros.
func cloneRows(a [][]fr.Element, rows, cols int) [][]fr.Element {
	out := make([][]fr.Element, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]fr.Element, cols)
		if i < len(a) {
			copy(out[i], a[i])
		}
	}
	return out
}

// rowBasis row-reduces a and returns the nonzero rows: a basis of the
// row space in echelon form.
func rowBasis(a [][]fr.Element, cols int) [][]fr.Element {
	m := cloneRows(a, len(a), cols)
	r := 0
	for c := 0; c < cols && r < len(m); c++ {
		pivot := -1
		for i := r; i < len(m); i++ {
			if !m[i][c].IsZero() {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m[r], m[pivot] = m[pivot], m[r]
		var inv fr.Element
		inv.Inverse(&m[r][c])
		for j := c; j < cols; j++ {
			m[r][j].Mul(&m[r][j], &inv)
		}
		var t fr.Element
		for i := 0; i < len(m); i++ {
			if i == r || m[i][c].IsZero() {
				continue
			}
			f := m[i][c]
			for j := c; j < cols; j++ {
				t.Mul(&f, &m[r][j])
				m[i][j].Sub(&m[i][j], &t)
			}
		}
		r++
	}
	return m[:r]
}

// leftNullspace returns a basis of {x : x*A = 0} for A with the given
// shape, as rows of length rows.
func leftNullspace(a [][]fr.Element, rows, cols int) [][]fr.Element {
	// Row-reduce [A | I]; rows whose A-part vanishes record their
	// identity-part as a dependency among the original rows.
	aug := make([][]fr.Element, rows)
	for i := 0; i < rows; i++ {
		aug[i] = make([]fr.Element, cols+rows)
		if i < len(a) {
			copy(aug[i], a[i])
		}
		aug[i][cols+i].SetOne()
	}
	r := 0
	for c := 0; c < cols && r < rows; c++ {
		pivot := -1
		for i := r; i < rows; i++ {
			if !aug[i][c].IsZero() {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		aug[r], aug[pivot] = aug[pivot], aug[r]
		var inv, t fr.Element
		inv.Inverse(&aug[r][c])
		for j := 0; j < cols+rows; j++ {
			aug[r][j].Mul(&aug[r][j], &inv)
		}
		for i := 0; i < rows; i++ {
			if i == r || aug[i][c].IsZero() {
				continue
			}
			f := aug[i][c]
			for j := 0; j < cols+rows; j++ {
				t.Mul(&f, &aug[r][j])
				aug[i][j].Sub(&aug[i][j], &t)
			}
		}
		r++
	}
	var out [][]fr.Element
	for i := r; i < rows; i++ {
		out = append(out, append([]fr.Element(nil), aug[i][cols:]...))
	}
	return out
}

// solveLeft finds x with x*A = b, if any.
func solveLeft(a [][]fr.Element, rows, cols int, b []fr.Element) ([]fr.Element, bool) {
	// Solve A^T y = b^T by elimination on the augmented transpose.
	aug := make([][]fr.Element, cols)
	for j := 0; j < cols; j++ {
		aug[j] = make([]fr.Element, rows+1)
		for i := 0; i < rows; i++ {
			if i < len(a) {
				aug[j][i] = a[i][j]
			}
		}
		aug[j][rows] = b[j]
	}
	r := 0
	pivotCol := make([]int, 0, rows)
	for c := 0; c < rows && r < cols; c++ {
		pivot := -1
		for i := r; i < cols; i++ {
			if !aug[i][c].IsZero() {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		aug[r], aug[pivot] = aug[pivot], aug[r]
		var inv, t fr.Element
		inv.Inverse(&aug[r][c])
		for j := 0; j <= rows; j++ {
			aug[r][j].Mul(&aug[r][j], &inv)
		}
		for i := 0; i < cols; i++ {
			if i == r || aug[i][c].IsZero() {
				continue
			}
			f := aug[i][c]
			for j := 0; j <= rows; j++ {
				t.Mul(&f, &aug[r][j])
				aug[i][j].Sub(&aug[i][j], &t)
			}
		}
		pivotCol = append(pivotCol, c)
		r++
	}
	// Inconsistent if a zero row has a nonzero augment.
	for i := r; i < cols; i++ {
		if !aug[i][rows].IsZero() {
			return nil, false
		}
	}
	x := make([]fr.Element, rows)
	for i, c := range pivotCol {
		x[c] = aug[i][rows]
	}
	return x, true
}

// invert returns the inverse of a square matrix, or false if singular.
func invert(a [][]fr.Element, n int) ([][]fr.Element, bool) {
	aug := make([][]fr.Element, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]fr.Element, 2*n)
		copy(aug[i], a[i])
		aug[i][n+i].SetOne()
	}
	for c := 0; c < n; c++ {
		pivot := -1
		for i := c; i < n; i++ {
			if !aug[i][c].IsZero() {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			return nil, false
		}
		aug[c], aug[pivot] = aug[pivot], aug[c]
		var inv, t fr.Element
		inv.Inverse(&aug[c][c])
		for j := 0; j < 2*n; j++ {
			aug[c][j].Mul(&aug[c][j], &inv)
		}
		for i := 0; i < n; i++ {
			if i == c || aug[i][c].IsZero() {
				continue
			}
			f := aug[i][c]
			for j := 0; j < 2*n; j++ {
				t.Mul(&f, &aug[c][j])
				aug[i][j].Sub(&aug[i][j], &t)
			}
		}
	}
	out := make([][]fr.Element, n)
	for i := 0; i < n; i++ {
		out[i] = append([]fr.Element(nil), aug[i][n:]...)
	}
	return out, true
}
