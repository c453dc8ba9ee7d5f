// Package geo provides great-circle distance math for city coordinates.
package geo

import "math"

// earthRadiusM is the mean Earth radius in meters.
const earthRadiusM = 6371000.0

// DistanceM returns the haversine distance in meters between two
// latitude/longitude pairs given in degrees.
func DistanceM(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lng2 - lng1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
