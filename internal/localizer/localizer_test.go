package localizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtguard/debtguard/pkg/models"
)

const source = `package demo;

public class Calculator {
    private int total;

    public int add(int a, int b) {
        int sum = a + b;
        return sum;
    }
}
`

func TestLocateExact(t *testing.T) {
	unit := &models.SourceUnit{
		Kind: models.UnitMethod,
		Name: "add",
		Code: "public int add(int a, int b) {\n        int sum = a + b;\n        return sum;\n    }",
	}

	loc := Locate(unit, source)
	require.Empty(t, loc.Err)
	assert.False(t, loc.Approximate)
	assert.Equal(t, 6, loc.StartLine)
	assert.Equal(t, 9, loc.EndLine)
}

func TestLocateExactClass(t *testing.T) {
	unit := &models.SourceUnit{
		Kind: models.UnitClass,
		Name: "Calculator",
		Code: "public class Calculator {\n}",
	}

	loc := Locate(unit, source)
	require.Empty(t, loc.Err)
	assert.Equal(t, 3, loc.StartLine)
}

func TestLocateApproximateMethod(t *testing.T) {
	// Reformatted unit text: the first line no longer appears verbatim,
	// but the declaration pattern still finds the header. The estimated
	// end line extends the unit's line count past the start line.
	unit := &models.SourceUnit{
		Kind: models.UnitMethod,
		Name: "add",
		Code: "public int add(int a,int b){\nint sum=a+b;\nreturn sum;\n}",
	}

	loc := Locate(unit, source)
	require.Empty(t, loc.Err)
	assert.True(t, loc.Approximate)
	assert.Equal(t, 6, loc.StartLine)
	assert.Equal(t, 10, loc.EndLine)
}

func TestLocateMiss(t *testing.T) {
	unit := &models.SourceUnit{
		Kind:     models.UnitMethod,
		Name:     "subtract",
		FilePath: "Calculator.java",
		Code:     "public int subtract(int a, int b) {\n    return a - b;\n}",
	}

	loc := Locate(unit, source)
	assert.NotEmpty(t, loc.Err)
	assert.Zero(t, loc.StartLine)
}

func TestLocateSkipsLeadingComments(t *testing.T) {
	unit := &models.SourceUnit{
		Kind: models.UnitMethod,
		Name: "add",
		Code: "// helper\npublic int add(int a, int b) {\n}",
	}

	loc := Locate(unit, source)
	require.Empty(t, loc.Err)
	assert.Equal(t, 6, loc.StartLine)
}
