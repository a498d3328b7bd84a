package FEM1D

import (
	"fmt"

	"github.com/notargets/elastobar/utils"
)

// Mesh is a uniform subdivision of [XMin,XMax] into K elements, each
// carrying Order+1 Lagrange nodes. Global DOFs are numbered left to
// right, one scalar unknown per node, so element k owns globals
// k*Order..(k+1)*Order and shares its vertices with its neighbors.
// The local ordering within an element is vertex-first to match the
// reference basis: local 0 = left vertex, local 1 = right vertex,
// locals 2.. = interior nodes left to right.
type Mesh struct {
	K, Order   int
	XMin, XMax float64
	NodeX      []float64 // x-coordinate per global DOF
	elemDofs   [][]int   // local-to-global map per element
}

// SimpleMesh1D builds the uniform mesh and finalizes DOF numbering and
// the coordinate table. The tables are read-only thereafter.
func SimpleMesh1D(xmin, xmax float64, K, order int) (msh *Mesh, err error) {
	if K < 1 {
		err = fmt.Errorf("element count %d, need at least one element", K)
		return
	}
	if order < 1 || order > MaxOrder {
		err = fmt.Errorf("unsupported element order %d, supported orders are 1..%d", order, MaxOrder)
		return
	}
	if xmax <= xmin {
		err = fmt.Errorf("degenerate domain [%g,%g]", xmin, xmax)
		return
	}
	var (
		nn = K*order + 1
	)
	msh = &Mesh{
		K:        K,
		Order:    order,
		XMin:     xmin,
		XMax:     xmax,
		NodeX:    make([]float64, nn),
		elemDofs: make([][]int, K),
	}
	for g := 0; g < nn; g++ {
		msh.NodeX[g] = xmin + (xmax-xmin)*float64(g)/float64(K*order)
	}
	for k := 0; k < K; k++ {
		dofs := make([]int, order+1)
		base := k * order
		dofs[0] = base
		dofs[1] = base + order
		for j := 2; j <= order; j++ {
			dofs[j] = base + j - 1
		}
		msh.elemDofs[k] = dofs
	}
	return
}

// NDOF returns the total number of global degrees of freedom.
func (msh *Mesh) NDOF() int {
	return msh.K*msh.Order + 1
}

// ElemDofs returns the local-to-global DOF map of element k, indexed
// by local node number.
func (msh *Mesh) ElemDofs(k int) []int {
	return msh.elemDofs[k]
}

// ElemLength returns h_e for element k, the distance between its two
// vertex nodes. A non-positive length means the coordinate table is
// corrupted and assembly must not proceed.
func (msh *Mesh) ElemLength(k int) (he float64, err error) {
	dofs := msh.elemDofs[k]
	he = msh.NodeX[dofs[1]] - msh.NodeX[dofs[0]]
	if he <= 0 {
		err = fmt.Errorf("degenerate element %d with length %g", k, he)
	}
	return
}

// OnLeftBoundary reports whether x sits on the domain's left endpoint.
// Comparison is tolerance based, scaled by the domain span; on the
// unperturbed affine meshes this package generates it agrees with an
// exact match.
func (msh *Mesh) OnLeftBoundary(x float64) bool {
	return withinNodeTol(x, msh.XMin, msh.XMax-msh.XMin)
}

// OnRightBoundary reports whether x sits on the domain's right
// endpoint.
func (msh *Mesh) OnRightBoundary(x float64) bool {
	return withinNodeTol(x, msh.XMax, msh.XMax-msh.XMin)
}

func withinNodeTol(x, target, span float64) bool {
	d := x - target
	if d < 0 {
		d = -d
	}
	return d <= utils.NODETOL*span
}
