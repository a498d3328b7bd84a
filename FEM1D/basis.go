package FEM1D

import (
	"fmt"
)

// MaxOrder is the highest supported Lagrange basis order.
const MaxOrder = 3

// LagrangeBasis is the nodal Lagrange basis of a single element on the
// bi-unit reference interval [-1,1]. The node layout is vertex-first:
// node 0 at -1, node 1 at +1, nodes 2..Order spaced evenly across the
// interior. Immutable after construction.
type LagrangeBasis struct {
	Order int
	R     []float64 // reference coordinate per local node
}

func NewLagrangeBasis(order int) (lb *LagrangeBasis, err error) {
	if order < 1 || order > MaxOrder {
		err = fmt.Errorf("unsupported basis order %d, supported orders are 1..%d", order, MaxOrder)
		return
	}
	lb = &LagrangeBasis{
		Order: order,
		R:     make([]float64, order+1),
	}
	for j := range lb.R {
		lb.R[j], _ = ReferenceCoordinate(j, order)
	}
	return
}

// ReferenceCoordinate maps a local node index to its position on the
// reference interval, vertex-first ordering.
func ReferenceCoordinate(localNode, order int) (r float64, err error) {
	switch {
	case localNode == 0:
		r = -1
	case localNode == 1:
		r = 1
	case localNode <= order:
		r = -1 + 2.*float64(localNode-1)/float64(order)
	default:
		err = fmt.Errorf("local node %d out of range, an order %d element has %d nodes",
			localNode, order, order+1)
	}
	return
}

// Np returns the number of nodes (and basis functions) per element.
func (lb *LagrangeBasis) Np() int {
	return lb.Order + 1
}

// BasisValue evaluates basis function A at reference coordinate r:
// the product over all other nodes of (r-r_i)/(r_A-r_i). Each function
// is one at its own node, zero at every other node, and the set sums
// to one everywhere on the interval.
func (lb *LagrangeBasis) BasisValue(A int, r float64) (value float64) {
	value = 1
	for i, ri := range lb.R {
		if i == A {
			continue
		}
		value *= (r - ri) / (lb.R[A] - ri)
	}
	return
}

// BasisGradient evaluates d/dr of basis function A at r. The
// derivative of the Lagrange product is the sum over the other nodes
// of the numerator product with that node's factor omitted, over the
// full denominator. The closed form keeps the stiffness integrand free
// of differencing error.
func (lb *LagrangeBasis) BasisGradient(A int, r float64) (value float64) {
	var denom float64 = 1
	for i, ri := range lb.R {
		if i != A {
			denom *= lb.R[A] - ri
		}
	}
	for m := range lb.R {
		if m == A {
			continue
		}
		term := 1.0
		for i, ri := range lb.R {
			if i == A || i == m {
				continue
			}
			term *= r - ri
		}
		value += term
	}
	value /= denom
	return
}
