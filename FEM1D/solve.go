package FEM1D

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Solve factorizes the finalized system and returns the nodal
// solution D with K*D = F. The constrained system is symmetric
// positive definite by construction, so Cholesky is used; a failed
// factorization reports the system as singular and nothing is
// retried.
func Solve(sys *System) (D *mat.VecDense, err error) {
	if sys.KC == nil {
		err = fmt.Errorf("system not finalized, call EndAssembly before Solve")
		return
	}
	var (
		n  = sys.NDOF
		KS = mat.NewSymDense(n, nil)
	)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			KS.SetSym(i, j, sys.KC.At(i, j))
		}
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(KS); !ok {
		err = fmt.Errorf("global stiffness matrix is singular or not positive definite")
		return
	}
	D = mat.NewVecDense(n, nil)
	if err = chol.SolveVecTo(D, sys.F); err != nil {
		return
	}
	return
}
