package slicer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtguard/debtguard/pkg/config"
	"github.com/debtguard/debtguard/pkg/models"
)

const calculatorSource = `public class Calculator {
    private int total;

    public int add(int a, int b) {
        int sum = a + b;
        total = sum;
        return sum;
    }

    public int getTotal() {
        return total;
    }
}
`

func newTestSlicer() *Slicer {
	return New(config.SlicerConfig{MinMethodLOC: 3, MaxClassLOC: 1000})
}

func TestSliceStructural(t *testing.T) {
	result := newTestSlicer().Slice(calculatorSource, "Calculator.java")

	assert.Equal(t, models.StrategyStructural, result.Strategy)
	require.Len(t, result.Classes, 1)
	assert.Empty(t, result.Methods)

	class := result.Classes[0]
	assert.Equal(t, models.UnitClass, class.Kind)
	assert.Equal(t, "Calculator", class.Name)
	assert.Equal(t, 2, class.Metrics.MethodCount)
	assert.Equal(t, 1, class.Metrics.FieldCount)
	assert.False(t, class.Metrics.IsAbstract)
	assert.NotEmpty(t, class.ContentHash)

	require.Len(t, class.Methods, 2)
	add := class.Methods[0]
	assert.Equal(t, "add", add.Name)
	assert.Equal(t, "Calculator", add.ParentClass)
	assert.Equal(t, 2, add.Metrics.ParameterCount)
	assert.Equal(t, 5, add.Metrics.LOC)
	assert.Equal(t, 1, add.Metrics.CyclomaticComplexity)
}

func TestSliceGetterSetterRatio(t *testing.T) {
	result := newTestSlicer().Slice(calculatorSource, "Calculator.java")

	require.Len(t, result.Classes, 1)
	// getTotal is a three-line accessor; add is not.
	assert.InDelta(t, 0.5, result.Classes[0].Metrics.GetterSetterRatio, 1e-9)
}

func TestSliceAbstractClass(t *testing.T) {
	source := `public abstract class Shape {
    public abstract double area();

    public String describe() {
        double a = area();
        return "area=" + a;
    }
}
`
	result := newTestSlicer().Slice(source, "Shape.java")

	require.Len(t, result.Classes, 1)
	assert.True(t, result.Classes[0].Metrics.IsAbstract)
}

func TestSliceDiscardsShortMethods(t *testing.T) {
	source := `public class Tiny {
    public int one() { return 1; }

    public int sum(int a, int b) {
        int s = a + b;
        return s;
    }
}
`
	result := newTestSlicer().Slice(source, "Tiny.java")

	require.Len(t, result.Classes, 1)
	class := result.Classes[0]
	// Both methods count toward the class metric, but the one-liner is
	// too small to dispatch on its own.
	assert.Equal(t, 2, class.Metrics.MethodCount)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "sum", class.Methods[0].Name)
}

func TestSliceDiscardsOversizedClass(t *testing.T) {
	s := New(config.SlicerConfig{MinMethodLOC: 3, MaxClassLOC: 5})
	result := s.Slice(calculatorSource, "Calculator.java")

	assert.Equal(t, models.StrategyStructural, result.Strategy)
	assert.Empty(t, result.Classes)
	assert.Empty(t, result.Methods)
}

func TestSliceFallbackOnBrokenSource(t *testing.T) {
	source := `public class Legacy {
    public void process() {
        int x = 0
        x +=!= broken;
    }
}
`
	result := newTestSlicer().Slice(source, "Legacy.java")

	assert.Equal(t, models.StrategyFallback, result.Strategy)
	require.Len(t, result.Classes, 1)
	assert.Equal(t, "Legacy", result.Classes[0].Name)

	require.Len(t, result.Classes[0].Methods, 1)
	assert.Equal(t, "process", result.Classes[0].Methods[0].Name)

	// The fallback scan also reports the method standalone.
	require.Len(t, result.Methods, 1)
	assert.Equal(t, "process", result.Methods[0].Name)
}

func TestSliceFallbackSkipsBareAccessorNames(t *testing.T) {
	source := `public class Holder {
    public int get() {
        int v = load();
        return v;
    }

    public void refresh() {
        int v = load();
        store(v);
    }
}
=== not java ===
`
	result := newTestSlicer().Slice(source, "Holder.java")

	assert.Equal(t, models.StrategyFallback, result.Strategy)
	require.Len(t, result.Methods, 1)
	assert.Equal(t, "refresh", result.Methods[0].Name)
}

func TestSliceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Calculator.java")
	require.NoError(t, os.WriteFile(path, []byte(calculatorSource), 0o644))

	result, err := newTestSlicer().SliceFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.FilePath)
	assert.Len(t, result.Classes, 1)
}

func TestSliceFileMissing(t *testing.T) {
	_, err := newTestSlicer().SliceFile(filepath.Join(t.TempDir(), "absent.java"))
	assert.Error(t, err)
}
