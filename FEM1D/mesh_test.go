package FEM1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleMesh1D(t *testing.T) {
	{
		msh, err := SimpleMesh1D(0, 0.1, 10, 2)
		assert.NoError(t, err)
		assert.Equal(t, 21, msh.NDOF())
		// vertex-first local ordering: left, right, interior
		assert.Equal(t, []int{0, 2, 1}, msh.ElemDofs(0))
		assert.Equal(t, []int{18, 20, 19}, msh.ElemDofs(9))
		assert.Equal(t, 0., msh.NodeX[0])
		assert.Equal(t, 0.1, msh.NodeX[20])
		assert.InDelta(t, 0.005, msh.NodeX[1], 1.e-15)
		he, err := msh.ElemLength(0)
		assert.NoError(t, err)
		assert.InDelta(t, 0.01, he, 1.e-15)
	}
	{
		// local interior nodes line up with the reference layout
		msh, err := SimpleMesh1D(0, 0.3, 1, 3)
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 3, 1, 2}, msh.ElemDofs(0))
		assert.InDelta(t, 0.1, msh.NodeX[1], 1.e-15)
		assert.InDelta(t, 0.2, msh.NodeX[2], 1.e-15)
	}
	{
		_, err := SimpleMesh1D(0, 1, 0, 1)
		assert.Error(t, err)
		_, err = SimpleMesh1D(0, 1, 10, 4)
		assert.Error(t, err)
		_, err = SimpleMesh1D(1, 1, 10, 1)
		assert.Error(t, err)
		_, err = SimpleMesh1D(1, 0, 10, 1)
		assert.Error(t, err)
	}
}

func TestBoundaryDetection(t *testing.T) {
	msh, err := SimpleMesh1D(0, 0.1, 10, 1)
	assert.NoError(t, err)
	assert.True(t, msh.OnLeftBoundary(msh.NodeX[0]))
	assert.True(t, msh.OnRightBoundary(msh.NodeX[10]))
	for g := 1; g < 10; g++ {
		assert.False(t, msh.OnLeftBoundary(msh.NodeX[g]))
		assert.False(t, msh.OnRightBoundary(msh.NodeX[g]))
	}
	// tolerance comparison absorbs roundoff-scale perturbation
	assert.True(t, msh.OnRightBoundary(0.1+1.e-17))
}

func TestDegenerateElement(t *testing.T) {
	msh, err := SimpleMesh1D(0, 1, 4, 1)
	assert.NoError(t, err)
	msh.NodeX[2] = msh.NodeX[1] // collapse element 1
	_, err = msh.ElemLength(1)
	assert.Error(t, err)
	msh.NodeX[2] = 0.1 // invert it
	_, err = msh.ElemLength(1)
	assert.Error(t, err)
	_, err = msh.ElemLength(0)
	assert.NoError(t, err)
}
