package handlers

import (
	"time"

	"bloomnet-dispatch/internal/domain"
)

type donationDTO struct {
	ID            int64                  `json:"id"`
	Name          string                 `json:"name"`
	Category      domain.FoodCategory    `json:"category"`
	Quantity      string                 `json:"quantity"`
	Unit          string                 `json:"unit"`
	PackType      string                 `json:"pack_type"`
	Donor         string                 `json:"donor"`
	Location      string                 `json:"location"`
	Lat           float64                `json:"lat"`
	Lon           float64                `json:"lon"`
	ExpiryHours   int                    `json:"expiry_hours"`
	Status        domain.FreshnessStatus `json:"status"`
	SafetyScore   int                    `json:"safety_score"`
	Claimed       bool                   `json:"claimed"`
	Responder     *responderDTO          `json:"responder,omitempty"`
	HubDistanceKm *float64               `json:"hub_distance_km,omitempty"`
}

type createDonationRequest struct {
	Name        string              `json:"name"`
	Category    domain.FoodCategory `json:"category,omitempty"`
	Quantity    string              `json:"quantity"`
	Unit        string              `json:"unit,omitempty"`
	PackType    string              `json:"pack_type,omitempty"`
	Donor       string              `json:"donor,omitempty"`
	Location    string              `json:"location,omitempty"`
	Lat         float64             `json:"lat,omitempty"`
	Lon         float64             `json:"lon,omitempty"`
	ExpiryHours int                 `json:"expiry_hours"`
}

type responderDTO struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	DistanceKm float64        `json:"distance_km"`
	Workload   int            `json:"workload"`
	Vehicle    domain.Vehicle `json:"vehicle"`
	Rating     float64        `json:"rating"`
}

type createResponderRequest struct {
	Name       string         `json:"name"`
	DistanceKm float64        `json:"distance_km"`
	Workload   int            `json:"workload"`
	Vehicle    domain.Vehicle `json:"vehicle,omitempty"`
	Rating     float64        `json:"rating"`
}

type notificationDTO struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type droneStatusDTO struct {
	ShowDroneInterface bool `json:"show_drone_interface"`
}
