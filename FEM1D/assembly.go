package FEM1D

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ProblemType selects the boundary condition pairing of the bar.
type ProblemType int

const (
	// TwoDirichlet prescribes the displacement at both ends.
	TwoDirichlet ProblemType = iota + 1
	// DirichletNeumann prescribes the displacement on the left and an
	// applied traction on the right.
	DirichletNeumann
)

func (p ProblemType) String() string {
	switch p {
	case TwoDirichlet:
		return "TwoDirichlet"
	case DirichletNeumann:
		return "DirichletNeumann"
	}
	return fmt.Sprintf("ProblemType(%d)", int(p))
}

// Assembler computes and scatters element stiffness and load
// contributions for the elastostatic bar E*u'' + FBar*x = 0 on
// [Mesh.XMin, Mesh.XMax]. It also evaluates the matching closed-form
// exact solution for the error norm, so solve-time and error-time
// interpolation share one basis and one quadrature table.
type Assembler struct {
	Mesh    *Mesh
	Basis   *LagrangeBasis
	Quad    *GaussRule
	Problem ProblemType
	E       float64 // elastic modulus
	FBar    float64 // body load coefficient, f(x) = FBar*x
	HFlux   float64 // applied traction at the right end (DirichletNeumann)
}

func NewAssembler(msh *Mesh, basis *LagrangeBasis, quad *GaussRule,
	problem ProblemType, E, fbar, hflux float64) (a *Assembler, err error) {
	if problem != TwoDirichlet && problem != DirichletNeumann {
		err = fmt.Errorf("problem number should be 1 or 2, got %d", int(problem))
		return
	}
	if msh.Order != basis.Order {
		err = fmt.Errorf("mesh order %d does not match basis order %d", msh.Order, basis.Order)
		return
	}
	if E <= 0 {
		err = fmt.Errorf("elastic modulus must be positive, got %g", E)
		return
	}
	// The stiffness integrand is polynomial of degree 2*Order-2, the
	// load integrand of degree Order+1 (linear body load). A rule that
	// cannot integrate both exactly corrupts the system silently, so
	// reject it up front.
	need := 2*basis.Order - 2
	if basis.Order+1 > need {
		need = basis.Order + 1
	}
	if quad.Degree() < need {
		err = fmt.Errorf("%d point quadrature is exact to degree %d, need degree %d for order %d elements",
			quad.Len(), quad.Degree(), need, basis.Order)
		return
	}
	a = &Assembler{
		Mesh:    msh,
		Basis:   basis,
		Quad:    quad,
		Problem: problem,
		E:       E,
		FBar:    fbar,
		HFlux:   hflux,
	}
	return
}

// ElementMatrices computes the dense local stiffness matrix and load
// vector of element k by quadrature over the reference interval. The
// h/2 factor on the load is the Jacobian of the affine map, the 2/h
// factor on the stiffness is its squared inverse from the two x
// derivatives. For DirichletNeumann the element touching the right
// boundary picks up the traction directly on its right vertex entry,
// the boundary term of the weak form.
func (a *Assembler) ElementMatrices(k int) (Klocal *mat.Dense, Flocal *mat.VecDense, err error) {
	var (
		np   = a.Basis.Np()
		dofs = a.Mesh.ElemDofs(k)
		he   float64
		N    = make([]float64, np)
		dN   = make([]float64, np)
	)
	if he, err = a.Mesh.ElemLength(k); err != nil {
		return
	}
	Klocal = mat.NewDense(np, np, nil)
	Flocal = mat.NewVecDense(np, nil)
	for q, rq := range a.Quad.R {
		wq := a.Quad.W[q]
		var xq float64
		for B := 0; B < np; B++ {
			N[B] = a.Basis.BasisValue(B, rq)
			dN[B] = a.Basis.BasisGradient(B, rq)
			xq += a.Mesh.NodeX[dofs[B]] * N[B]
		}
		fq := a.FBar * xq
		for A := 0; A < np; A++ {
			Flocal.SetVec(A, Flocal.AtVec(A)+0.5*he*N[A]*wq*fq)
			for B := 0; B < np; B++ {
				Klocal.Set(A, B, Klocal.At(A, B)+2./he*a.E*dN[A]*dN[B]*wq)
			}
		}
	}
	if a.Problem == DirichletNeumann && a.Mesh.OnRightBoundary(a.Mesh.NodeX[dofs[1]]) {
		Flocal.SetVec(1, Flocal.AtVec(1)+a.HFlux)
	}
	return
}

// Assemble opens a fresh assembly cycle on sys and scatters every
// element's local pair into the global system. Constraints are applied
// by the caller before EndAssembly.
func (a *Assembler) Assemble(sys *System) (err error) {
	var (
		Klocal *mat.Dense
		Flocal *mat.VecDense
	)
	sys.BeginAssembly()
	for k := 0; k < a.Mesh.K; k++ {
		if Klocal, Flocal, err = a.ElementMatrices(k); err != nil {
			return
		}
		dofs := a.Mesh.ElemDofs(k)
		for A, ga := range dofs {
			sys.AddLoad(ga, Flocal.AtVec(A))
			for B, gb := range dofs {
				sys.Add(ga, gb, Klocal.At(A, B))
			}
		}
	}
	return
}

// BoundaryValues builds the Dirichlet constraint map for the active
// problem variant: the left end is always prescribed, the right end
// only when both ends are Dirichlet. Interior DOFs never appear.
func (a *Assembler) BoundaryValues(g1, g2 float64) (boundaryValues map[int]float64) {
	boundaryValues = make(map[int]float64)
	for g, x := range a.Mesh.NodeX {
		if a.Mesh.OnLeftBoundary(x) {
			boundaryValues[g] = g1
		}
		if a.Mesh.OnRightBoundary(x) && a.Problem == TwoDirichlet {
			boundaryValues[g] = g2
		}
	}
	return
}
