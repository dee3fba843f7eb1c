package domain

type (
	// FoodCategory represents the category of a donated food item.
	FoodCategory string
	// FreshnessStatus represents the derived freshness of a donation.
	FreshnessStatus string
)

// Donation represents a posted surplus-food record eligible for pickup.
type Donation struct {
	ID          int64
	Name        string
	Category    FoodCategory
	Quantity    string
	Unit        string
	PackType    string
	Donor       string
	Location    string
	Lat         float64
	Lon         float64
	ExpiryHours int
	Status      FreshnessStatus
	SafetyScore int
	Claimed     bool
	Responder   *Responder
}

// DonationDraft carries the attributes a donor submits. Fields left
// zero are filled with defaults before the donation is created.
type DonationDraft struct {
	Name        string
	Category    FoodCategory
	Quantity    string
	Unit        string
	PackType    string
	Donor       string
	Location    string
	Lat         float64
	Lon         float64
	ExpiryHours int
}
