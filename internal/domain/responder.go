package domain

// Vehicle represents the vehicle capability of a responder.
type Vehicle string

// Responder - struct representing a volunteer candidate for pickup
// and delivery. DistanceKm and Workload are static attributes of the
// pool record; the scoring engine reads them as-is.
type Responder struct {
	ID         int64
	Name       string
	DistanceKm float64
	Workload   int
	Vehicle    Vehicle
	Rating     float64
}
