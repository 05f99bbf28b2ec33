package zmod

import "math/big"

// mat is a dense integer matrix, stored by rows.
type mat [][]*big.Int

func newMat(r, c int) mat {
	m := make(mat, r)
	for i := range m {
		m[i] = make([]*big.Int, c)
		for j := range m[i] {
			m[i][j] = new(big.Int)
		}
	}
	return m
}

func eye(n int) mat {
	m := newMat(n, n)
	for i := 0; i < n; i++ {
		m[i][i].SetInt64(1)
	}
	return m
}

func cloneMat(a mat) mat {
	out := make(mat, len(a))
	for i, row := range a {
		out[i] = cloneVec(row)
	}
	return out
}

func cloneVec(v []*big.Int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Set(x)
	}
	return out
}

func zeroVec(n int) []*big.Int {
	v := make([]*big.Int, n)
	for i := range v {
		v[i] = new(big.Int)
	}
	return v
}

// vecMat returns x*A for a row vector x. cols is the width of A, needed
// when A has no rows.
func vecMat(x []*big.Int, a mat, cols int) []*big.Int {
	out := zeroVec(cols)
	var t big.Int
	for i, xi := range x {
		if xi.Sign() == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			t.Mul(xi, a[i][j])
			out[j].Add(out[j], &t)
		}
	}
	return out
}

func addVec(a, b []*big.Int) []*big.Int {
	out := make([]*big.Int, len(a))
	for i := range a {
		out[i] = new(big.Int).Add(a[i], b[i])
	}
	return out
}

func negVec(a []*big.Int) []*big.Int {
	out := make([]*big.Int, len(a))
	for i := range a {
		out[i] = new(big.Int).Neg(a[i])
	}
	return out
}

func scaleVec(k *big.Int, a []*big.Int) []*big.Int {
	out := make([]*big.Int, len(a))
	for i := range a {
		out[i] = new(big.Int).Mul(k, a[i])
	}
	return out
}

func isZeroVec(a []*big.Int) bool {
	for _, x := range a {
		if x.Sign() != 0 {
			return false
		}
	}
	return true
}

// stack returns the matrix with the rows of a followed by the rows of b.
// Both must have width cols.
func stack(a, b mat) mat {
	out := make(mat, 0, len(a)+len(b))
	out = append(out, cloneMat(a)...)
	out = append(out, cloneMat(b)...)
	return out
}

// smith is a Smith normal form: U*A*V = D with U, V unimodular and D
// diagonal, d[0] | d[1] | ... with zeros trailing. Vinv is V^-1, used
// to read generators of the transformed basis in original coordinates.
type smith struct {
	rows, cols int
	d          []*big.Int // length min(rows, cols)
	rank       int
	U          mat // rows x rows
	V          mat // cols x cols
	Vinv       mat // cols x cols
}

// snf computes the Smith normal form of a with full transforms.
func snf(a mat, cols int) *smith {
	rows := len(a)
	d := cloneMat(a)
	s := &smith{
		rows: rows, cols: cols,
		U: eye(rows), V: eye(cols), Vinv: eye(cols),
	}

	rowSwap := func(i, j int) {
		d[i], d[j] = d[j], d[i]
		s.U[i], s.U[j] = s.U[j], s.U[i]
	}
	colSwap := func(i, j int) {
		for t := 0; t < rows; t++ {
			d[t][i], d[t][j] = d[t][j], d[t][i]
		}
		for t := 0; t < cols; t++ {
			s.V[t][i], s.V[t][j] = s.V[t][j], s.V[t][i]
		}
		s.Vinv[i], s.Vinv[j] = s.Vinv[j], s.Vinv[i]
	}
	// row i -= q * row t
	rowSub := func(i, t int, q *big.Int) {
		var tmp big.Int
		for j := 0; j < cols; j++ {
			tmp.Mul(q, d[t][j])
			d[i][j].Sub(d[i][j], &tmp)
		}
		for j := 0; j < rows; j++ {
			tmp.Mul(q, s.U[t][j])
			s.U[i][j].Sub(s.U[i][j], &tmp)
		}
	}
	// col i -= q * col t
	colSub := func(i, t int, q *big.Int) {
		var tmp big.Int
		for j := 0; j < rows; j++ {
			tmp.Mul(q, d[j][t])
			d[j][i].Sub(d[j][i], &tmp)
		}
		for j := 0; j < cols; j++ {
			tmp.Mul(q, s.V[j][t])
			s.V[j][i].Sub(s.V[j][i], &tmp)
		}
		var tmp2 big.Int
		for j := 0; j < cols; j++ {
			tmp2.Mul(q, s.Vinv[i][j])
			s.Vinv[t][j].Add(s.Vinv[t][j], &tmp2)
		}
	}
	rowNeg := func(i int) {
		for j := 0; j < cols; j++ {
			d[i][j].Neg(d[i][j])
		}
		for j := 0; j < rows; j++ {
			s.U[i][j].Neg(s.U[i][j])
		}
	}

	n := rows
	if cols < n {
		n = cols
	}

	for {
		restart := false
		for t := 0; t < n; t++ {
			// Pivot selection: smallest nonzero absolute value in
			// the remaining block.
			pi, pj := -1, -1
			var best big.Int
			for i := t; i < rows; i++ {
				for j := t; j < cols; j++ {
					if d[i][j].Sign() == 0 {
						continue
					}
					var abs big.Int
					abs.Abs(d[i][j])
					if pi < 0 || abs.Cmp(&best) < 0 {
						pi, pj = i, j
						best.Set(&abs)
					}
				}
			}
			if pi < 0 {
				break
			}
			if pi != t {
				rowSwap(pi, t)
			}
			if pj != t {
				colSwap(pj, t)
			}
			// Clear row t and column t.
			for {
				done := true
				for i := t + 1; i < rows; i++ {
					if d[i][t].Sign() == 0 {
						continue
					}
					var q big.Int
					q.Quo(d[i][t], d[t][t])
					rowSub(i, t, &q)
					if d[i][t].Sign() != 0 {
						rowSwap(i, t)
						done = false
					}
				}
				for j := t + 1; j < cols; j++ {
					if d[t][j].Sign() == 0 {
						continue
					}
					var q big.Int
					q.Quo(d[t][j], d[t][t])
					colSub(j, t, &q)
					if d[t][j].Sign() != 0 {
						colSwap(j, t)
						done = false
					}
				}
				if done {
					break
				}
			}
			if d[t][t].Sign() < 0 {
				rowNeg(t)
			}
		}
		// Enforce the divisibility chain; a violation is fixed by
		// folding the offending column in and re-eliminating.
		fixed := true
		var r big.Int
		for t := 0; t+1 < n && fixed; t++ {
			if d[t][t].Sign() == 0 {
				continue
			}
			if d[t+1][t+1].Sign() == 0 {
				continue
			}
			r.Mod(d[t+1][t+1], d[t][t])
			if r.Sign() != 0 {
				one := big.NewInt(-1)
				colSub(t, t+1, one) // col t += col t+1
				fixed = false
				restart = true
			}
		}
		if !restart {
			break
		}
	}

	s.d = make([]*big.Int, n)
	for t := 0; t < n; t++ {
		s.d[t] = new(big.Int).Set(d[t][t])
		if s.d[t].Sign() != 0 {
			s.rank = t + 1
		}
	}
	return s
}

// leftKernel returns a generating set for {x : x*A = 0} as rows.
func leftKernel(a mat, cols int) mat {
	s := snf(a, cols)
	var out mat
	for i := s.rank; i < s.rows; i++ {
		out = append(out, cloneVec(s.U[i]))
	}
	return out
}

// solveLeft finds x with x*A = b, if any.
func solveLeft(a mat, cols int, b []*big.Int) ([]*big.Int, bool) {
	s := snf(a, cols)
	c := vecMat(b, s.V, cols)
	y := zeroVec(s.rows)
	var q, r big.Int
	for i := 0; i < cols; i++ {
		if i < len(s.d) && s.d[i].Sign() != 0 {
			q.QuoRem(c[i], s.d[i], &r)
			if r.Sign() != 0 {
				return nil, false
			}
			if i < s.rows {
				y[i].Set(&q)
			} else if q.Sign() != 0 {
				return nil, false
			}
		} else if c[i].Sign() != 0 {
			return nil, false
		}
	}
	return vecMat(y, s.U, s.rows), true
}
