package FEM1D

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// WriteVTK writes the nodal solution over the line mesh as a
// legacy-ASCII VTK unstructured grid, one VTK_LINE cell per node
// interval. Global DOF numbering is left to right, so cells connect
// consecutive DOFs.
func WriteVTK(filename string, msh *Mesh, D *mat.VecDense) (err error) {
	var (
		f  *os.File
		nn = msh.NDOF()
	)
	if D.Len() != nn {
		err = fmt.Errorf("solution length %d does not match %d mesh DOFs", D.Len(), nn)
		return
	}
	if f, err = os.Create(filename); err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "# vtk DataFile Version 3.0\n")
	fmt.Fprintf(f, "Elastostatic bar displacement\n")
	fmt.Fprintf(f, "ASCII\n")
	fmt.Fprintf(f, "DATASET UNSTRUCTURED_GRID\n")
	fmt.Fprintf(f, "POINTS %d double\n", nn)
	for g := 0; g < nn; g++ {
		fmt.Fprintf(f, "%.16g 0 0\n", msh.NodeX[g])
	}
	fmt.Fprintf(f, "CELLS %d %d\n", nn-1, 3*(nn-1))
	for g := 0; g < nn-1; g++ {
		fmt.Fprintf(f, "2 %d %d\n", g, g+1)
	}
	fmt.Fprintf(f, "CELL_TYPES %d\n", nn-1)
	for g := 0; g < nn-1; g++ {
		fmt.Fprintf(f, "3\n")
	}
	fmt.Fprintf(f, "POINT_DATA %d\n", nn)
	fmt.Fprintf(f, "SCALARS u double 1\n")
	fmt.Fprintf(f, "LOOKUP_TABLE default\n")
	for g := 0; g < nn; g++ {
		fmt.Fprintf(f, "%.16g\n", D.AtVec(g))
	}
	return
}
