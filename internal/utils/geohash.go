package utils

import (
	"github.com/mmcloughlin/geohash"
)

const (
	// RideGeohashPrecision is stored with every ride that has origin coordinates
	RideGeohashPrecision uint = 7
	// NearSearchPrecision is the cell size used for "near" ride searches (about 5km)
	NearSearchPrecision uint = 5
)

// EncodeCoordinates converts a latitude/longitude pair to a geohash string
func EncodeCoordinates(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}

// NearCells returns the cell containing the point plus its eight neighbours,
// so a search does not miss origins sitting just across a cell boundary.
func NearCells(latitude, longitude float64, precision uint) []string {
	center := EncodeCoordinates(latitude, longitude, precision)
	cells := make([]string, 0, 9)
	cells = append(cells, center)
	return append(cells, GetNeighbors(center)...)
}

// ValidCoordinates checks latitude and longitude ranges
func ValidCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
