package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var (
		data = `
Title: "Bar, quadratic elements"
PolynomialOrder: 2
ElementCount: 20
Problem: 2
QuadraturePoints: 3
DomainLength: 0.1
LeftDisplacement: 0
RightDisplacement: 0.001
ElasticModulus: 1.e11
BodyLoadCoefficient: 1.e11
AppliedTraction: 1.e10
`
		bp = &BarParameters{}
	)
	assert.NoError(t, bp.Parse([]byte(data)))
	assert.Equal(t, "Bar, quadratic elements", bp.Title)
	assert.Equal(t, 2, bp.PolynomialOrder)
	assert.Equal(t, 20, bp.ElementCount)
	assert.Equal(t, 2, bp.Problem)
	assert.Equal(t, 0.1, bp.DomainLength)
	assert.Equal(t, 0.001, bp.RightDisplacement)
	assert.Equal(t, 1.e11, bp.ElasticModulus)
	assert.Equal(t, 1.e10, bp.AppliedTraction)

	assert.Error(t, bp.Parse([]byte("Title: [")))
}
