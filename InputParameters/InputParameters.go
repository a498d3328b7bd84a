package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file
type BarParameters struct {
	Title               string  `yaml:"Title"`
	PolynomialOrder     int     `yaml:"PolynomialOrder"`
	ElementCount        int     `yaml:"ElementCount"`
	Problem             int     `yaml:"Problem"` // 1 = two Dirichlet ends, 2 = Dirichlet + Neumann
	QuadraturePoints    int     `yaml:"QuadraturePoints"`
	DomainLength        float64 `yaml:"DomainLength"`
	LeftDisplacement    float64 `yaml:"LeftDisplacement"`
	RightDisplacement   float64 `yaml:"RightDisplacement"`
	ElasticModulus      float64 `yaml:"ElasticModulus"`
	BodyLoadCoefficient float64 `yaml:"BodyLoadCoefficient"`
	AppliedTraction     float64 `yaml:"AppliedTraction"`
}

func (bp *BarParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

func (bp *BarParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", bp.Title)
	fmt.Printf("[%d]\t\t\t= Polynomial Order\n", bp.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t= Element Count\n", bp.ElementCount)
	fmt.Printf("[%d]\t\t\t= Problem\n", bp.Problem)
	fmt.Printf("[%d]\t\t\t= Quadrature Points\n", bp.QuadraturePoints)
	fmt.Printf("%8.5f\t\t= Domain Length\n", bp.DomainLength)
	fmt.Printf("%8.5f\t\t= Left Displacement\n", bp.LeftDisplacement)
	fmt.Printf("%8.5f\t\t= Right Displacement\n", bp.RightDisplacement)
	fmt.Printf("%8.5g\t\t= Elastic Modulus\n", bp.ElasticModulus)
	fmt.Printf("%8.5g\t\t= Body Load Coefficient\n", bp.BodyLoadCoefficient)
	fmt.Printf("%8.5g\t\t= Applied Traction\n", bp.AppliedTraction)
}
