package FEM1D

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// System owns the global stiffness matrix and load vector for one
// assemble/constrain/solve cycle. During assembly the matrix lives in
// DOK form so shared entries accumulate additively as elements
// scatter; EndAssembly freezes it into CSR form for the solver.
// BeginAssembly reinitializes everything, so a System can be reused
// across solves.
type System struct {
	NDOF int
	K    *sparse.DOK
	F    *mat.VecDense
	KC   *sparse.CSR // frozen matrix, nil until EndAssembly
}

func NewSystem(ndof int) (s *System) {
	s = &System{NDOF: ndof}
	s.BeginAssembly()
	return
}

// BeginAssembly wipes any previous cycle's state and opens a fresh
// scatter target.
func (s *System) BeginAssembly() {
	s.K = sparse.NewDOK(s.NDOF, s.NDOF)
	s.F = mat.NewVecDense(s.NDOF, nil)
	s.KC = nil
}

// EndAssembly freezes the stiffness matrix. No further scatter or
// constraint application is allowed afterwards.
func (s *System) EndAssembly() {
	s.KC = s.K.ToCSR()
}

// Add accumulates one stiffness entry. Entries shared between
// adjacent elements sum up across scatter calls.
func (s *System) Add(i, j int, v float64) {
	s.K.Set(i, j, s.K.At(i, j)+v)
}

// AddLoad accumulates one load vector entry.
func (s *System) AddLoad(i int, v float64) {
	s.F.SetVec(i, s.F.AtVec(i)+v)
}

// ApplyDirichlet enforces the constraint map by elimination: for each
// constrained DOF j with prescribed value g, every other equation i
// moves its coupling through column j to the right hand side
// (F[i] -= K[i][j]*g) and drops the column, then row j becomes the
// identity equation with F[j] = g. The matrix stays symmetric and is
// not resized.
func (s *System) ApplyDirichlet(boundaryValues map[int]float64) (err error) {
	if s.KC != nil {
		err = fmt.Errorf("assembly already finalized, constraints must be applied before EndAssembly")
		return
	}
	for j, g := range boundaryValues {
		if j < 0 || j >= s.NDOF {
			err = fmt.Errorf("constrained DOF %d out of range, system has %d DOFs", j, s.NDOF)
			return
		}
		for i := 0; i < s.NDOF; i++ {
			if i == j {
				continue
			}
			if c := s.K.At(i, j); c != 0 {
				s.F.SetVec(i, s.F.AtVec(i)-c*g)
				s.K.Set(i, j, 0)
			}
		}
		for jj := 0; jj < s.NDOF; jj++ {
			if s.K.At(j, jj) != 0 {
				s.K.Set(j, jj, 0)
			}
		}
		s.K.Set(j, j, 1)
		s.F.SetVec(j, g)
	}
	return
}
