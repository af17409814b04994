package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geodist/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWGS84_CanonicalAxes pins the reference ellipsoid constants.
func TestWGS84_CanonicalAxes(t *testing.T) {
	e := geom.WGS84()

	assert.Equal(t, 6378137.0, e.SemiMajor())
	assert.Equal(t, 6356752.314245, e.SemiMinor())
	assert.InDelta(t, 1.0/298.257223563, e.Flattening(), 1e-12)
}

// TestNewEllipsoid_Validation covers axis range and ordering checks.
func TestNewEllipsoid_Validation(t *testing.T) {
	e, err := geom.NewEllipsoid(6378137.0, 6356752.314245)
	require.NoError(t, err)
	assert.Equal(t, geom.WGS84(), e)

	_, err = geom.NewEllipsoid(0, 6356752.0)
	assert.ErrorIs(t, err, geom.ErrInvalidRadius)

	_, err = geom.NewEllipsoid(6378137.0, -1)
	assert.ErrorIs(t, err, geom.ErrInvalidRadius)

	_, err = geom.NewEllipsoid(6378137.0, math.NaN())
	assert.ErrorIs(t, err, geom.ErrInvalidRadius)

	_, err = geom.NewEllipsoid(6356752.0, 6378137.0)
	assert.ErrorIs(t, err, geom.ErrInvalidEllipsoid, "polar axis above equatorial axis is rejected")
}

// TestNewEllipsoid_SphereIsLegal verifies a == b constructs with zero
// flattening.
func TestNewEllipsoid_SphereIsLegal(t *testing.T) {
	e, err := geom.NewEllipsoid(6371000.0, 6371000.0)
	require.NoError(t, err)
	assert.Zero(t, e.Flattening())
	assert.Equal(t, 6371000.0, e.MeanRadius())
}

// TestEllipsoid_MeanRadius pins the (2a + b) / 3 convention on WGS84.
func TestEllipsoid_MeanRadius(t *testing.T) {
	assert.InDelta(t, 6371008.7714, geom.WGS84().MeanRadius(), 1e-3)
}
