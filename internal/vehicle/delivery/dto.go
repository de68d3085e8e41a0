package delivery

import "github.com/ridepark/vehicle-rental/internal/models"

type CreateVehicleDTO struct {
	VehicleName        string  `json:"vehicle_name"`
	RegistrationNumber string  `json:"registration_number"`
	Type               string  `json:"type"`
	DailyRentPrice     float64 `json:"daily_rent_price"`
}

type VehicleResponse struct {
	ID                 int                       `json:"id"`
	VehicleName        string                    `json:"vehicle_name"`
	RegistrationNumber string                    `json:"registration_number"`
	Type               string                    `json:"type"`
	DailyRentPrice     float64                   `json:"daily_rent_price"`
	AvailabilityStatus models.AvailabilityStatus `json:"availability_status"`
}

func NewVehicleResponse(vehicle models.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                 vehicle.ID,
		VehicleName:        vehicle.VehicleName,
		RegistrationNumber: vehicle.RegistrationNumber,
		Type:               vehicle.Type,
		DailyRentPrice:     vehicle.DailyRentPrice,
		AvailabilityStatus: vehicle.AvailabilityStatus,
	}
}

func NewVehicleList(vehicles []models.Vehicle) []VehicleResponse {
	list := make([]VehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		list = append(list, NewVehicleResponse(vehicle))
	}

	return list
}
