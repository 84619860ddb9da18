package math3d

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector_IsOrigin(t *testing.T) {
	assert.Equal(t, Vector{0, 0, 0}, NewVector())
	assert.Equal(t, NewVector(), Vector{})
}

func TestVector_ScalarRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float32
	}{
		{"simple", 1, 2, 3},
		{"negative", -1.5, 0, 42.25},
		{"extremes", math.MaxFloat32, -math.MaxFloat32, math.SmallestNonzeroFloat32},
		{"infinities", float32(math.Inf(1)), float32(math.Inf(-1)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVectorXYZ(tt.x, tt.y, tt.z).ToArray()
			if diff := cmp.Diff([]float32{tt.x, tt.y, tt.z}, got); diff != "" {
				t.Errorf("ToArray mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVector_NaNStoredVerbatim(t *testing.T) {
	nan := float32(math.NaN())
	v := NewVectorXYZ(nan, 1, 2)

	arr := v.ToArray()
	require.Len(t, arr, 3)
	assert.True(t, math.IsNaN(float64(arr[0])))
	assert.Equal(t, float32(1), arr[1])
	assert.Equal(t, float32(2), arr[2])
}

func TestVectorFromArray(t *testing.T) {
	t.Run("length three", func(t *testing.T) {
		a := []float32{4, 5, 6}
		v, err := VectorFromArray(a)
		require.NoError(t, err)
		assert.Equal(t, float32(4), v.X)
		if diff := cmp.Diff(a, v.ToArray()); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("extra elements ignored", func(t *testing.T) {
		v, err := VectorFromArray([]float32{1, 2, 3, 4, 5})
		require.NoError(t, err)
		assert.Equal(t, NewVectorXYZ(1, 2, 3), v)
	})

	t.Run("short arrays fail", func(t *testing.T) {
		for _, a := range [][]float32{nil, {}, {1}, {1, 2}} {
			v, err := VectorFromArray(a)
			assert.ErrorIs(t, err, ErrOutOfBounds)
			assert.Equal(t, Vector{}, v)
		}
	})

	t.Run("source not aliased", func(t *testing.T) {
		a := []float32{1, 2, 3}
		v, err := VectorFromArray(a)
		require.NoError(t, err)
		a[0] = 100
		assert.Equal(t, float32(1), v.X)
	})
}

func TestVector_ToArrayReturnsIndependentSlices(t *testing.T) {
	v := NewVectorXYZ(1, 2, 3)

	first := v.ToArray()
	second := v.ToArray()
	first[0] = 99
	second[2] = -1

	assert.Equal(t, []float32{99, 2, 3}, first)
	assert.Equal(t, []float32{1, 2, -1}, second)
	assert.Equal(t, NewVectorXYZ(1, 2, 3), v)
}

func TestVector_ValueSemantics(t *testing.T) {
	a := NewVectorXYZ(1, 2, 3)
	b := a
	b.X = 7

	assert.Equal(t, float32(1), a.X)
	assert.Equal(t, [3]float32{7, 2, 3}, b.Components())
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "(1, 2.5, -3)", NewVectorXYZ(1, 2.5, -3).String())
	assert.Equal(t, "(0, 0, 0)", NewVector().String())
}

func TestParseVector(t *testing.T) {
	tests := []struct {
		in      string
		want    Vector
		wantErr error
	}{
		{in: "1,2,3", want: NewVectorXYZ(1, 2, 3)},
		{in: " (0.5, -1, 2e2) ", want: NewVectorXYZ(0.5, -1, 200)},
		{in: "1,2", wantErr: ErrParse},
		{in: "1,2,3,4", wantErr: ErrParse},
		{in: "a,b,c", wantErr: ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVector(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
