package FEM1D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// GaussRule is a fixed Gauss-Legendre quadrature on [-1,1]. An n point
// rule integrates polynomials up to degree 2n-1 exactly; the weights
// sum to 2, the length of the reference interval. Immutable after
// construction.
type GaussRule struct {
	R, W []float64
}

// NewGaussRule computes the n point rule by Golub-Welsch: the points
// are the eigenvalues of the symmetric tridiagonal Jacobi matrix of
// the Legendre recurrence, and each weight is the squared first
// component of the matching eigenvector scaled by the zeroth moment
// of the weight function.
func NewGaussRule(n int) (q *GaussRule, err error) {
	if n < 1 {
		err = fmt.Errorf("quadrature rule size %d, need at least one point", n)
		return
	}
	if n == 1 {
		q = &GaussRule{R: []float64{0}, W: []float64{2}}
		return
	}
	JJ := mat.NewSymDense(n, nil)
	for i := 0; i < n-1; i++ {
		ip1 := float64(i + 1)
		JJ.SetSym(i, i+1, ip1/math.Sqrt(4.*ip1*ip1-1.))
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	q = &GaussRule{
		R: eig.Values(nil),
		W: make([]float64, n),
	}
	VV := mat.NewDense(n, n, nil)
	eig.VectorsTo(VV)
	for j := 0; j < n; j++ {
		v := VV.At(0, j)
		q.W[j] = 2. * v * v
	}
	return
}

// Len returns the number of quadrature points.
func (q *GaussRule) Len() int {
	return len(q.R)
}

// Degree returns the highest polynomial degree the rule integrates
// exactly.
func (q *GaussRule) Degree() int {
	return 2*len(q.R) - 1
}
