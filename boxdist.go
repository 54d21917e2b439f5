// Package boxdist computes the distance from a point to an axis-aligned box,
// both on a flat plane and on the surface of a sphere.
package boxdist

import "math"

// EarthRadius is the mean radius of the Earth in meters.
const EarthRadius = 6371008.8

const radians = math.Pi / 180

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PlanarBoxDist returns the squared Euclidean distance from the point x,y to
// the nearest point on or in the box. Points on or inside the box are zero.
// The squared distance orders the same as the true distance, without the
// square root. Use PlanarBoxDistance for the distance in the input units.
//
// The box is expected to have minx <= maxx and miny <= maxy. Otherwise the
// point is clamped to min first, then to max.
func PlanarBoxDist(x, y, minx, miny, maxx, maxy float64) float64 {
	dx := x - clamp(x, minx, maxx)
	dy := y - clamp(y, miny, maxy)
	return dx*dx + dy*dy
}

// PlanarBoxDistance returns the Euclidean distance from the point x,y to the
// nearest point on or in the box.
func PlanarBoxDistance(x, y, minx, miny, maxx, maxy float64) float64 {
	return math.Sqrt(PlanarBoxDist(x, y, minx, miny, maxx, maxy))
}

// GeodeticBoxDist returns the great-circle distance in meters from the point
// lon,lat to a longitude/latitude envelope. All inputs are degrees.
//
// The target is found by clamping longitude and latitude independently,
// which is exact for points due north, south, east or west of the box and an
// approximation near the corners. A point on or inside the box is exactly
// zero. Boxes that cross the antimeridian are not supported.
func GeodeticBoxDist(lon, lat, minx, miny, maxx, maxy float64) float64 {
	clon := clamp(lon, minx, maxx)
	clat := clamp(lat, miny, maxy)
	if clon == lon && clat == lat {
		return 0
	}
	return Haversine(lat, lon, clat, clon)
}

// Haversine returns the great-circle distance in meters between two points
// in degrees, on a sphere of EarthRadius.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := (lat2 - lat1) * radians
	dlon := (lon2 - lon1) * radians
	slat := math.Sin(dlat / 2)
	slon := math.Sin(dlon / 2)
	a := slat*slat +
		math.Cos(lat1*radians)*math.Cos(lat2*radians)*slon*slon
	return 2 * EarthRadius * math.Asin(math.Min(1, math.Sqrt(a)))
}
