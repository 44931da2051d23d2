package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/quiver3d/pkg/scene"
)

func TestResolveDefaults(t *testing.T) {
	st, err := Overrides{}.Resolve()
	require.NoError(t, err)

	assert.Equal(t, float32(DefaultShaftWidth), st.ShaftWidth)
	assert.Equal(t, st.ShaftWidth*12, st.ConeWidth)
	assert.Equal(t, st.ConeWidth*3, st.ConeLength)
	assert.Equal(t, float32(DefaultTipFraction), st.TipFraction)
	assert.Equal(t, DefaultRingPoints, st.RingPoints)
	assert.Equal(t, TipNever, st.TipMode)
	assert.Equal(t, float32(0), st.SphereDiameter)
}

func TestResolveDependentDefaultsCascade(t *testing.T) {
	st, err := Overrides{ShaftWidth: Float32Ptr(2)}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, float32(24), st.ConeWidth)
	assert.Equal(t, float32(72), st.ConeLength)

	st, err = Overrides{ConeWidth: Float32Ptr(10)}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, float32(1), st.ShaftWidth)
	assert.Equal(t, float32(10), st.ConeWidth)
	assert.Equal(t, float32(30), st.ConeLength)
}

func TestColorDefaulting(t *testing.T) {
	c := scene.Color{0.5, 0.0, 0.25}
	st, err := Overrides{Color: ColorPtr(c)}.Resolve()
	require.NoError(t, err)

	want := scene.Color{
		1 - 0.2*(1-c[0]),
		1 - 0.2*(1-c[1]),
		1 - 0.2*(1-c[2]),
	}
	assert.Equal(t, c, st.ConeColor)
	assert.Equal(t, want, st.BaseColor)
	assert.Equal(t, want, st.TipColor)
	assert.Equal(t, want, st.RimColor)
	assert.Equal(t, want, st.SphereColor)
}

func TestColorDefaultingWhiteFallsBackToGrey(t *testing.T) {
	st, err := Overrides{Color: ColorPtr(scene.Color{1, 1, 1})}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, lightGrey, st.BaseColor)
	assert.Equal(t, lightGrey, st.TipColor)
}

func TestResolveInvalid(t *testing.T) {
	cases := []struct {
		name string
		ov   Overrides
	}{
		{"color out of range", Overrides{Color: ColorPtr(scene.Color{1.5, 0, 0})}},
		{"negative shaft width", Overrides{ShaftWidth: Float32Ptr(-1)}},
		{"negative sphere diameter", Overrides{SphereDiameter: Float32Ptr(-0.5)}},
		{"tip fraction above one", Overrides{TipFraction: Float32Ptr(1.5)}},
		{"ring points below two", Overrides{RingPoints: IntPtr(1)}},
		{"unknown tip mode", Overrides{TipMode: TipModePtr(TipMode(42))}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.ov.Resolve()
			assert.ErrorIs(t, err, ErrInvalidStyle)
		})
	}
}

func TestMergeExplicitWins(t *testing.T) {
	base := Overrides{
		Color:      ColorPtr(scene.Color{1, 0, 0}),
		ShaftWidth: Float32Ptr(1),
		RingPoints: IntPtr(20),
	}
	over := Overrides{ShaftWidth: Float32Ptr(3)}

	merged := over.Merge(base)
	require.NotNil(t, merged.ShaftWidth)
	assert.Equal(t, float32(3), *merged.ShaftWidth)
	require.NotNil(t, merged.Color)
	assert.Equal(t, scene.Color{1, 0, 0}, *merged.Color)
	require.NotNil(t, merged.RingPoints)
	assert.Equal(t, 20, *merged.RingPoints)
}
