// Package entity contains the core business objects of the project.
package entity

// Coordinate is an immutable geographic position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
