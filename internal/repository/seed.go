package repository

import "bloomnet-dispatch/internal/domain"

// SeedDonations returns the demo donations loaded at system start.
func SeedDonations() []domain.Donation {
	return []domain.Donation{
		{
			ID: 1, Name: "Vegetable Biryani", Category: domain.CategoryCooked,
			Quantity: "50", Unit: "Plates", PackType: "Bulk Pack",
			ExpiryHours: 2, Status: domain.StatusFresh, SafetyScore: 95,
			Donor: "Delhi Community Kitchen", Location: "Connaught Place, Delhi",
			Lat: 30.735, Lon: 76.775,
		},
		{
			ID: 2, Name: "Fresh Bread Loaves", Category: domain.CategoryBakery,
			Quantity: "30", Unit: "Packs", PackType: "Family Pack",
			ExpiryHours: 6, Status: domain.StatusFresh, SafetyScore: 90,
			Donor: "Sunrise Bakery", Location: "Karol Bagh, Delhi",
			Lat: 30.750, Lon: 76.800,
		},
		{
			ID: 3, Name: "Rice & Dal", Category: domain.CategoryCooked,
			Quantity: "100", Unit: "Plates", PackType: "Bulk Pack",
			ExpiryHours: 1, Status: domain.StatusShareSoon, SafetyScore: 75,
			Donor: "Golden Temple Langar", Location: "Amritsar, Punjab (Disaster Zone)",
			Lat: 30.720, Lon: 76.760,
		},
	}
}

// SeedResponders returns the demo volunteer pool. List order matters:
// scoring ties resolve to the earliest-listed responder.
func SeedResponders() []domain.Responder {
	return []domain.Responder{
		{ID: 1, Name: "Raj Kumar", DistanceKm: 2.5, Workload: 2, Vehicle: domain.VehicleBike, Rating: 4.8},
		{ID: 2, Name: "Priya Sharma", DistanceKm: 4.2, Workload: 1, Vehicle: domain.VehicleCar, Rating: 4.9},
		{ID: 3, Name: "Amit Singh", DistanceKm: 1.8, Workload: 3, Vehicle: domain.VehicleVan, Rating: 4.7},
	}
}
