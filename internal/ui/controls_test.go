package ui

import (
	"math"
	"testing"

	"percolate/internal/core"
)

func TestAdjustedValueClampsToBounds(t *testing.T) {
	size := core.ParameterControl{Key: "n", Type: core.ParamTypeInt, Step: 10, Min: 1, Max: 600, HasMin: true, HasMax: true}
	if got, ok := adjustedValue(size, 100, 1); !ok || got != 110 {
		t.Fatalf("100+step = %v ok=%v", got, ok)
	}
	if got, ok := adjustedValue(size, 5, -1); !ok || got != 1 {
		t.Fatalf("5-step = %v ok=%v, want clamp to 1", got, ok)
	}
	if _, ok := adjustedValue(size, 1, -1); ok {
		t.Fatal("cannot decrease below the minimum")
	}
	if _, ok := adjustedValue(size, 600, 1); ok {
		t.Fatal("cannot increase above the maximum")
	}
}

func TestAdjustedValueFloatSnapsToStep(t *testing.T) {
	erosion := core.ParameterControl{Key: "p", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true}
	v := 0.58
	for i := 0; i < 10; i++ {
		next, ok := adjustedValue(erosion, v, 1)
		if !ok {
			t.Fatalf("step %d refused at %v", i, v)
		}
		v = next
	}
	if math.Abs(v-0.68) > 1e-9 {
		t.Fatalf("after ten steps value = %v, want 0.68", v)
	}
	if _, ok := adjustedValue(erosion, 1, 1); ok {
		t.Fatal("cannot exceed probability 1")
	}
	if _, ok := adjustedValue(core.ParameterControl{Type: core.ParamTypeText}, 0, 1); ok {
		t.Fatal("text parameters are not adjustable")
	}
}

func TestFormatFloat(t *testing.T) {
	if got := formatFloat(core.ParameterControl{Step: 0.01}, 0.5); got != "0.50" {
		t.Fatalf("formatFloat = %q", got)
	}
	if got := formatFloat(core.ParameterControl{Step: 0.5}, 2); got != "2.0" {
		t.Fatalf("formatFloat = %q", got)
	}
}
