package geodesic

import (
	"math"

	"github.com/katalvlaran/geodist/geom"
)

const (
	// vincentyTolerance is the convergence threshold for the longitude
	// iteration, in radians.
	vincentyTolerance = 1e-12
	// vincentyMaxIterations bounds the iteration; near-antipodal pairs that
	// still have not converged switch to the Lambert fallback.
	vincentyMaxIterations = 100
)

// DistanceOnEllipsoid returns the geodesic distance in meters between a and
// b on ellipsoid e, via Vincenty's inverse method. The zero Ellipsoid is
// treated as WGS84. Near-antipodal pairs where Vincenty does not converge
// are resolved with Lambert's flattening-corrected approximation, so the
// kernel never fails.
func DistanceOnEllipsoid(e geom.Ellipsoid, a, b geom.Point) float64 {
	return WithBearingsOnEllipsoid(e, a, b).DistanceMeters
}

// WithBearingsOnEllipsoid returns the ellipsoidal geodesic distance between
// a and b together with the departure and arrival azimuths. Coincident
// points yield a zero Result.
func WithBearingsOnEllipsoid(e geom.Ellipsoid, a, b geom.Point) Result {
	if a == b {
		return Result{}
	}
	if e == (geom.Ellipsoid{}) {
		e = geom.WGS84()
	}

	if r, ok := vincentyInverse(e, a, b); ok {
		return r
	}

	return lambertInverse(e, a, b)
}

// vincentyInverse runs the classic Vincenty inverse iteration. ok is false
// when the longitude iteration did not converge within the bound.
func vincentyInverse(e geom.Ellipsoid, a, b geom.Point) (Result, bool) {
	major, minor := e.SemiMajor(), e.SemiMinor()
	f := e.Flattening()

	lon1, lon2 := a.Lon()*degToRad, b.Lon()*degToRad
	u1 := math.Atan((1.0 - f) * math.Tan(a.Lat()*degToRad))
	u2 := math.Atan((1.0 - f) * math.Tan(b.Lat()*degToRad))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	l := lon2 - lon1
	lambda := l

	var sinLambda, cosLambda, sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64
	converged := false
	for i := 0; i < vincentyMaxIterations; i++ {
		sinLambda, cosLambda = math.Sincos(lambda)
		sinSigma = math.Hypot(
			cosU2*sinLambda,
			cosU1*sinU2-sinU1*cosU2*cosLambda)
		if sinSigma == 0 {
			// Same position after reduction to the auxiliary sphere.
			return Result{}, true
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1.0 - sinAlpha*sinAlpha
		if cosSqAlpha == 0 {
			// Equatorial line.
			cos2SigmaM = 0
		} else {
			cos2SigmaM = cosSigma - 2.0*sinU1*sinU2/cosSqAlpha
		}

		c := f / 16.0 * cosSqAlpha * (4.0 + f*(4.0-3.0*cosSqAlpha))
		prev := lambda
		lambda = l + (1.0-c)*f*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1.0+2.0*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda-prev) < vincentyTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return Result{}, false
	}

	uSq := cosSqAlpha * (major*major - minor*minor) / (minor * minor)
	bigA := 1.0 + uSq/16384.0*(4096.0+uSq*(-768.0+uSq*(320.0-175.0*uSq)))
	bigB := uSq / 1024.0 * (256.0 + uSq*(-128.0+uSq*(74.0-47.0*uSq)))
	deltaSigma := bigB * sinSigma * (cos2SigmaM + bigB/4.0*
		(cosSigma*(-1.0+2.0*cos2SigmaM*cos2SigmaM)-
			bigB/6.0*cos2SigmaM*(-3.0+4.0*sinSigma*sinSigma)*(-3.0+4.0*cos2SigmaM*cos2SigmaM)))

	alpha1 := math.Atan2(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
	alpha2 := math.Atan2(cosU1*sinLambda, -sinU1*cosU2+cosU1*sinU2*cosLambda)

	return Result{
		DistanceMeters:    minor * bigA * (sigma - deltaSigma),
		InitialBearingDeg: normalizeBearingDeg(alpha1 * radToDeg),
		FinalBearingDeg:   normalizeBearingDeg(alpha2 * radToDeg),
	}, true
}

// lambertInverse approximates the geodesic with Lambert's formula on reduced
// latitudes. Accuracy is on the order of 10 m, which only ever applies to the
// narrow near-antipodal band where Vincenty diverges.
func lambertInverse(e geom.Ellipsoid, a, b geom.Point) Result {
	f := e.Flattening()

	beta1 := math.Atan((1.0 - f) * math.Tan(a.Lat()*degToRad))
	beta2 := math.Atan((1.0 - f) * math.Tan(b.Lat()*degToRad))
	lon1, lon2 := a.Lon()*degToRad, b.Lon()*degToRad

	sigma := centralAngle(beta1, lon1, beta2, lon2)
	sinSigma := math.Sin(sigma)

	p := (beta1 + beta2) / 2.0
	q := (beta2 - beta1) / 2.0
	sinP, cosP := math.Sincos(p)
	sinQ, cosQ := math.Sincos(q)
	sinHalf, cosHalf := math.Sincos(sigma / 2.0)

	var x, y float64
	if cosHalf != 0 {
		x = (sigma - sinSigma) * sinP * sinP * cosQ * cosQ / (cosHalf * cosHalf)
	}
	if sinHalf != 0 {
		y = (sigma + sinSigma) * cosP * cosP * sinQ * sinQ / (sinHalf * sinHalf)
	}

	return Result{
		DistanceMeters:    e.SemiMajor() * (sigma - f/2.0*(x+y)),
		InitialBearingDeg: initialBearingDeg(beta1, lon1, beta2, lon2),
		FinalBearingDeg:   normalizeBearingDeg(initialBearingDeg(beta2, lon2, beta1, lon1) + 180.0),
	}
}
