package models

import "time"

type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCancelled BookingStatus = "cancelled"
	BookingReturned  BookingStatus = "returned"
)

type Booking struct {
	ID            int           `db:"id"`
	CustomerID    int           `db:"customer_id"`
	VehicleID     int           `db:"vehicle_id"`
	RentStartDate time.Time     `db:"rent_start_date"`
	RentEndDate   time.Time     `db:"rent_end_date"`
	TotalPrice    float64       `db:"total_price"`
	Status        BookingStatus `db:"status"`
}

// CustomerInfo is joined into admin booking listings only.
type CustomerInfo struct {
	Name  string `db:"customer_name"`
	Email string `db:"customer_email"`
}

// VehicleSummary is the vehicle projection joined into booking
// listings. Type is filled for customer listings only.
type VehicleSummary struct {
	VehicleName        string `db:"vehicle_name"`
	RegistrationNumber string `db:"registration_number"`
	Type               string `db:"vehicle_type"`
}

// BookingDetails is a booking row joined with its display projections.
// Customer is nil for customer-scoped listings.
type BookingDetails struct {
	Booking
	Customer *CustomerInfo
	Vehicle  VehicleSummary
}
