/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/notargets/elastobar/FEM1D"
	"github.com/notargets/elastobar/InputParameters"
	"github.com/notargets/elastobar/model_problems/Elastostatic1D"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// BarCmd represents the bar command
var BarCmd = &cobra.Command{
	Use:   "bar",
	Short: "One dimensional elastostatic bar solution",
	Long: `
Assembles and solves the elastostatic bar with Lagrange elements, then
reports the L2 norm of the error against the exact displacement,

elastobar bar -n 2 -k 10 -p 1`,
	Run: func(cmd *cobra.Command, args []string) {
		mb := &ModelBar{}
		mb.Order, _ = cmd.Flags().GetInt("order")
		mb.K, _ = cmd.Flags().GetInt("elements")
		p, _ := cmd.Flags().GetInt("problem")
		mb.Problem = FEM1D.ProblemType(p)
		mb.CaseFile, _ = cmd.Flags().GetString("caseFile")
		mb.VTKFile, _ = cmd.Flags().GetString("vtk")
		mb.WriteVTK, _ = cmd.Flags().GetBool("writeVTK")
		mb.Profile, _ = cmd.Flags().GetBool("profile")
		RunBar(mb)
	},
}

func init() {
	rootCmd.AddCommand(BarCmd)
	BarCmd.Flags().IntP("order", "n", 1, "polynomial order of the Lagrange basis, 1-3")
	BarCmd.Flags().IntP("elements", "k", 10, "number of elements in the bar")
	BarCmd.Flags().IntP("problem", "p", 1, "problem variant: 1 = two Dirichlet ends, 2 = Dirichlet + Neumann")
	BarCmd.Flags().String("caseFile", "", "YAML case file overriding the default bar constants")
	BarCmd.Flags().String("vtk", "", "VTK output file name, default Order<n>_Problem<p>.vtk")
	BarCmd.Flags().Bool("writeVTK", false, "write the nodal solution to a VTK file")
	BarCmd.Flags().Bool("profile", false, "write a CPU profile of the solve")
}

type ModelBar struct {
	Order, K int
	Problem  FEM1D.ProblemType
	CaseFile string
	VTKFile  string
	WriteVTK bool
	Profile  bool
}

func RunBar(mb *ModelBar) {
	var (
		err error
	)
	if mb.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	c := Elastostatic1D.NewElastostatic(mb.Order, mb.K, mb.Problem)
	if mb.CaseFile != "" {
		applyCaseFile(mb.CaseFile, c)
	}
	if err = c.Setup(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err = c.Run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if mb.WriteVTK || mb.VTKFile != "" {
		if err = c.WriteVTK(mb.VTKFile); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
}

func applyCaseFile(filename string, c *Elastostatic1D.Elastostatic) {
	var (
		bp   = &InputParameters.BarParameters{}
		data []byte
		err  error
	)
	if data, err = ioutil.ReadFile(filename); err != nil {
		fmt.Printf("unable to read case file [%s]: %v\n", filename, err)
		os.Exit(1)
	}
	if err = bp.Parse(data); err != nil {
		fmt.Printf("unable to parse case file [%s]: %v\n", filename, err)
		os.Exit(1)
	}
	bp.Print()
	if bp.PolynomialOrder != 0 {
		c.Order = bp.PolynomialOrder
	}
	if bp.ElementCount != 0 {
		c.K = bp.ElementCount
	}
	if bp.Problem != 0 {
		c.Problem = FEM1D.ProblemType(bp.Problem)
	}
	if bp.QuadraturePoints != 0 {
		c.NQuad = bp.QuadraturePoints
	}
	if bp.DomainLength != 0 {
		c.XMax = bp.DomainLength
	}
	if bp.ElasticModulus != 0 {
		c.E = bp.ElasticModulus
	}
	if bp.BodyLoadCoefficient != 0 {
		c.FBar = bp.BodyLoadCoefficient
	}
	if bp.AppliedTraction != 0 {
		c.HFlux = bp.AppliedTraction
	}
	if bp.LeftDisplacement != 0 {
		c.G1 = bp.LeftDisplacement
	}
	if bp.RightDisplacement != 0 {
		c.G2 = bp.RightDisplacement
	}
}
