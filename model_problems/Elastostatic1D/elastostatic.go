package Elastostatic1D

import (
	"fmt"

	"github.com/notargets/elastobar/FEM1D"
	"gonum.org/v1/gonum/mat"
)

// Elastostatic is the 1D bar model problem: E*u'' + FBar*x = 0 on
// [0, XMax] with u(0) = G1 and either u(XMax) = G2 (TwoDirichlet) or
// an applied traction HFlux at XMax (DirichletNeumann). The defaults
// describe a short stiff bar with a matching closed-form displacement.
type Elastostatic struct {
	// Input parameters
	XMax, G1, G2     float64
	E, FBar, HFlux   float64
	Order, K, NQuad  int
	Problem          FEM1D.ProblemType

	// Discretization, built by Setup
	Mesh      *FEM1D.Mesh
	Basis     *FEM1D.LagrangeBasis
	Quad      *FEM1D.GaussRule
	Assembler *FEM1D.Assembler
	Sys       *FEM1D.System

	// Results, produced by Run
	D  *mat.VecDense // nodal solution
	L2 float64       // L2 norm of the error vs the exact displacement
}

// NewElastostatic returns the model problem with the default case
// constants. Callers may override any input field before Setup.
func NewElastostatic(order, K int, problem FEM1D.ProblemType) *Elastostatic {
	return &Elastostatic{
		XMax:    0.1,
		G1:      0,
		G2:      0.001,
		E:       1.e11,
		FBar:    1.e11,
		HFlux:   1.e10,
		Order:   order,
		K:       K,
		NQuad:   3,
		Problem: problem,
	}
}

// Setup validates the inputs and builds the mesh, basis, quadrature
// rule, assembler and global system. Configuration errors surface
// here, before any element work starts.
func (c *Elastostatic) Setup() (err error) {
	if c.Mesh, err = FEM1D.SimpleMesh1D(0, c.XMax, c.K, c.Order); err != nil {
		return
	}
	if c.Basis, err = FEM1D.NewLagrangeBasis(c.Order); err != nil {
		return
	}
	if c.Quad, err = FEM1D.NewGaussRule(c.NQuad); err != nil {
		return
	}
	if c.Assembler, err = FEM1D.NewAssembler(c.Mesh, c.Basis, c.Quad,
		c.Problem, c.E, c.FBar, c.HFlux); err != nil {
		return
	}
	c.Sys = FEM1D.NewSystem(c.Mesh.NDOF())
	return
}

// Run executes the one-shot pipeline: assemble, constrain, solve,
// error norm. It runs to completion or fails outright.
func (c *Elastostatic) Run() (err error) {
	if c.Assembler == nil {
		err = fmt.Errorf("model not set up, call Setup before Run")
		return
	}
	fmt.Printf("   Number of active elems:       %d\n", c.K)
	fmt.Printf("   Number of degrees of freedom: %d\n", c.Mesh.NDOF())
	if err = c.Assembler.Assemble(c.Sys); err != nil {
		return
	}
	if err = c.Sys.ApplyDirichlet(c.Assembler.BoundaryValues(c.G1, c.G2)); err != nil {
		return
	}
	c.Sys.EndAssembly()
	if c.D, err = FEM1D.Solve(c.Sys); err != nil {
		return
	}
	if c.L2, err = c.Assembler.L2Error(c.D, c.G1, c.G2); err != nil {
		return
	}
	fmt.Printf("   L2 norm of the error:         %g\n", c.L2)
	return
}

// WriteVTK writes the solved displacement field. An empty filename
// picks the conventional "Order<p>_Problem<v>.vtk" name.
func (c *Elastostatic) WriteVTK(filename string) (err error) {
	if c.D == nil {
		err = fmt.Errorf("no solution to write, call Run first")
		return
	}
	if filename == "" {
		filename = fmt.Sprintf("Order%d_Problem%d.vtk", c.Order, int(c.Problem))
	}
	return FEM1D.WriteVTK(filename, c.Mesh, c.D)
}
