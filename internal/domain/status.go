package domain

// List of possible food categories
const (
	CategoryCooked   FoodCategory = "Cooked"
	CategoryBakery   FoodCategory = "Bakery"
	CategoryProduce  FoodCategory = "Produce"
	CategoryPackaged FoodCategory = "Packaged"
)

// List of possible freshness statuses
const (
	StatusFresh     FreshnessStatus = "Fresh"
	StatusShareSoon FreshnessStatus = "Share Soon"
)

// List of possible responder vehicles
const (
	VehicleBike Vehicle = "Bike"
	VehicleCar  Vehicle = "Car"
	VehicleVan  Vehicle = "Van"
)

var allowedCategories = [...]FoodCategory{
	CategoryCooked, CategoryBakery, CategoryProduce, CategoryPackaged,
}

var allowedVehicles = [...]Vehicle{
	VehicleBike, VehicleCar, VehicleVan,
}

// Valid checks if the FoodCategory is valid
func (c FoodCategory) Valid() bool {
	for _, v := range allowedCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Valid checks if the Vehicle is valid
func (t Vehicle) Valid() bool {
	for _, v := range allowedVehicles {
		if t == v {
			return true
		}
	}
	return false
}
