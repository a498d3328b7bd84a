package Elastostatic1D

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notargets/elastobar/FEM1D"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	c := NewElastostatic(2, 10, FEM1D.TwoDirichlet)
	assert.Equal(t, 0.1, c.XMax)
	assert.Equal(t, 0., c.G1)
	assert.Equal(t, 0.001, c.G2)
	assert.Equal(t, 1.e11, c.E)
	assert.Equal(t, 1.e11, c.FBar)
	assert.Equal(t, 1.e10, c.HFlux)
	assert.Equal(t, 3, c.NQuad)
}

func TestRunAllOrdersAndVariants(t *testing.T) {
	var (
		bounds = []float64{0, 1.e-5, 1.e-6, 1.e-9} // indexed by order
	)
	for _, problem := range []FEM1D.ProblemType{FEM1D.TwoDirichlet, FEM1D.DirichletNeumann} {
		for order := 1; order <= 3; order++ {
			c := NewElastostatic(order, 10, problem)
			assert.NoError(t, c.Setup())
			assert.NoError(t, c.Run())
			assert.NotNil(t, c.D)
			assert.True(t, c.L2 < bounds[order],
				"order %d problem %v: l2 = %v", order, problem, c.L2)
			// left end is clamped in both variants
			assert.Equal(t, c.G1, c.D.AtVec(0))
		}
	}
}

func TestSetupRejectsBadConfig(t *testing.T) {
	{
		c := NewElastostatic(1, 10, FEM1D.ProblemType(3))
		assert.Error(t, c.Setup())
	}
	{
		c := NewElastostatic(4, 10, FEM1D.TwoDirichlet)
		assert.Error(t, c.Setup())
	}
	{
		c := NewElastostatic(1, 0, FEM1D.TwoDirichlet)
		assert.Error(t, c.Setup())
	}
	{
		c := NewElastostatic(3, 10, FEM1D.TwoDirichlet)
		c.NQuad = 1 // cannot integrate cubic stiffness terms
		assert.Error(t, c.Setup())
	}
	{
		c := NewElastostatic(1, 10, FEM1D.TwoDirichlet)
		assert.Error(t, c.Run()) // Run before Setup
	}
}

func TestWriteVTK(t *testing.T) {
	c := NewElastostatic(1, 10, FEM1D.TwoDirichlet)
	assert.Error(t, c.WriteVTK("")) // nothing solved yet
	assert.NoError(t, c.Setup())
	assert.NoError(t, c.Run())

	fn := filepath.Join(t.TempDir(), "bar.vtk")
	assert.NoError(t, c.WriteVTK(fn))

	f, err := os.Open(fn)
	assert.NoError(t, err)
	defer f.Close()
	var (
		lines   []string
		scanner = bufio.NewScanner(f)
	)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	assert.Equal(t, "# vtk DataFile Version 3.0", lines[0])
	assert.Equal(t, "ASCII", lines[2])
	// 11 points, 10 line cells, 11 scalars
	assert.Equal(t, "POINTS 11 double", lines[4])
	assert.Equal(t, "CELLS 10 30", lines[16])
	var nScalars int
	for i, line := range lines {
		if strings.HasPrefix(line, "LOOKUP_TABLE") {
			nScalars = len(lines) - i - 1
		}
	}
	assert.Equal(t, 11, nScalars)
}
