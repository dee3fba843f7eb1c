package handlers

import (
	"bloomnet-dispatch/internal/domain"
	"bloomnet-dispatch/internal/service/dispatch"
)

func toResponderDTO(r domain.Responder) responderDTO {
	return responderDTO{
		ID:         r.ID,
		Name:       r.Name,
		DistanceKm: r.DistanceKm,
		Workload:   r.Workload,
		Vehicle:    r.Vehicle,
		Rating:     r.Rating,
	}
}

func toDonationDTO(d domain.Donation) donationDTO {
	dto := donationDTO{
		ID:          d.ID,
		Name:        d.Name,
		Category:    d.Category,
		Quantity:    d.Quantity,
		Unit:        d.Unit,
		PackType:    d.PackType,
		Donor:       d.Donor,
		Location:    d.Location,
		Lat:         d.Lat,
		Lon:         d.Lon,
		ExpiryHours: d.ExpiryHours,
		Status:      d.Status,
		SafetyScore: d.SafetyScore,
		Claimed:     d.Claimed,
	}
	if d.Responder != nil {
		r := toResponderDTO(*d.Responder)
		dto.Responder = &r
	}
	return dto
}

func toDonationViewDTO(v dispatch.DonationView) donationDTO {
	dto := toDonationDTO(v.Donation)
	km := v.HubDistanceKm
	dto.HubDistanceKm = &km
	return dto
}

func toNotificationDTO(n domain.Notification) notificationDTO {
	return notificationDTO{
		ID:        n.ID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
}
