package models

type AvailabilityStatus string

const (
	VehicleAvailable   AvailabilityStatus = "available"
	VehicleUnavailable AvailabilityStatus = "unavailable"
)

type Vehicle struct {
	ID                 int                `db:"id"`
	VehicleName        string             `db:"vehicle_name"`
	RegistrationNumber string             `db:"registration_number"`
	Type               string             `db:"type"`
	DailyRentPrice     float64            `db:"daily_rent_price"`
	AvailabilityStatus AvailabilityStatus `db:"availability_status"`
}

// VehicleInfo is the display projection merged into a freshly created
// booking (name and daily price only).
type VehicleInfo struct {
	VehicleName    string  `db:"vehicle_name"`
	DailyRentPrice float64 `db:"daily_rent_price"`
}
