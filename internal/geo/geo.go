// Package geo holds the great-circle math shared by every "nearby" query.
package geo

import "math"

const earthRadiusKm = 6371.0

// Point is a WGS84 coordinate pair in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// DistanceKm returns the haversine distance between two points in
// kilometers.
func DistanceKm(a, b Point) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// Round1 rounds a distance to one decimal place for API responses.
func Round1(km float64) float64 {
	return math.Round(km*10) / 10
}

// Within pairs a candidate with its computed distance from the query center.
type Within[T any] struct {
	Item       T
	DistanceKm float64
}

// FilterWithinRadius keeps the candidates that lie within radiusKm of
// center, boundary inclusive. The coord accessor reports each candidate's
// position; returning ok=false excludes the candidate outright, which is how
// records with missing coordinates are dropped before any distance math.
func FilterWithinRadius[T any](items []T, center Point, radiusKm float64, coord func(T) (Point, bool)) []Within[T] {
	result := make([]Within[T], 0, len(items))
	for _, item := range items {
		p, ok := coord(item)
		if !ok {
			continue
		}
		d := DistanceKm(center, p)
		if d <= radiusKm {
			result = append(result, Within[T]{Item: item, DistanceKm: d})
		}
	}
	return result
}
