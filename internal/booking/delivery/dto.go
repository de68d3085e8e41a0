package delivery

import (
	"time"

	"github.com/ridepark/vehicle-rental/internal/models"
)

type CreateBookingDTO struct {
	CustomerID    int       `json:"customer_id"`
	VehicleID     int       `json:"vehicle_id"`
	RentStartDate time.Time `json:"rent_start_date"`
	RentEndDate   time.Time `json:"rent_end_date"`
}

type UpdateBookingDTO struct {
	Status string `json:"status"`
}

type BookingResponse struct {
	ID            int                  `json:"id"`
	CustomerID    int                  `json:"customer_id"`
	VehicleID     int                  `json:"vehicle_id"`
	RentStartDate time.Time            `json:"rent_start_date"`
	RentEndDate   time.Time            `json:"rent_end_date"`
	TotalPrice    float64              `json:"total_price"`
	Status        models.BookingStatus `json:"status"`
}

func NewBookingResponse(booking models.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID,
		CustomerID:    booking.CustomerID,
		VehicleID:     booking.VehicleID,
		RentStartDate: booking.RentStartDate,
		RentEndDate:   booking.RentEndDate,
		TotalPrice:    booking.TotalPrice,
		Status:        booking.Status,
	}
}

type VehicleInfoDTO struct {
	VehicleName    string  `json:"vehicle_name"`
	DailyRentPrice float64 `json:"daily_rent_price"`
}

type CreateBookingResponse struct {
	BookingResponse
	Vehicle VehicleInfoDTO `json:"vehicle"`
}

func NewCreateBookingResponse(booking models.Booking, info models.VehicleInfo) CreateBookingResponse {
	return CreateBookingResponse{
		BookingResponse: NewBookingResponse(booking),
		Vehicle: VehicleInfoDTO{
			VehicleName:    info.VehicleName,
			DailyRentPrice: info.DailyRentPrice,
		},
	}
}

type CustomerDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AdminVehicleDTO struct {
	VehicleName        string `json:"vehicle_name"`
	RegistrationNumber string `json:"registration_number"`
}

// AdminBookingItem is a listing row for admins: full booking joined
// with customer and vehicle details.
type AdminBookingItem struct {
	BookingResponse
	Customer CustomerDTO     `json:"customer"`
	Vehicle  AdminVehicleDTO `json:"vehicle"`
}

type CustomerVehicleDTO struct {
	VehicleName        string `json:"vehicle_name"`
	RegistrationNumber string `json:"registration_number"`
	Type               string `json:"type"`
}

// CustomerBookingItem is a listing row for customers: own bookings
// only, reduced vehicle projection and no customer details.
type CustomerBookingItem struct {
	ID            int                  `json:"id"`
	VehicleID     int                  `json:"vehicle_id"`
	RentStartDate time.Time            `json:"rent_start_date"`
	RentEndDate   time.Time            `json:"rent_end_date"`
	TotalPrice    float64              `json:"total_price"`
	Status        models.BookingStatus `json:"status"`
	Vehicle       CustomerVehicleDTO   `json:"vehicle"`
}

func NewAdminBookingList(details []models.BookingDetails) []AdminBookingItem {
	items := make([]AdminBookingItem, 0, len(details))
	for _, d := range details {
		item := AdminBookingItem{
			BookingResponse: NewBookingResponse(d.Booking),
			Vehicle: AdminVehicleDTO{
				VehicleName:        d.Vehicle.VehicleName,
				RegistrationNumber: d.Vehicle.RegistrationNumber,
			},
		}
		if d.Customer != nil {
			item.Customer = CustomerDTO{
				Name:  d.Customer.Name,
				Email: d.Customer.Email,
			}
		}
		items = append(items, item)
	}

	return items
}

func NewCustomerBookingList(details []models.BookingDetails) []CustomerBookingItem {
	items := make([]CustomerBookingItem, 0, len(details))
	for _, d := range details {
		items = append(items, CustomerBookingItem{
			ID:            d.ID,
			VehicleID:     d.VehicleID,
			RentStartDate: d.RentStartDate,
			RentEndDate:   d.RentEndDate,
			TotalPrice:    d.TotalPrice,
			Status:        d.Status,
			Vehicle: CustomerVehicleDTO{
				VehicleName:        d.Vehicle.VehicleName,
				RegistrationNumber: d.Vehicle.RegistrationNumber,
				Type:               d.Vehicle.Type,
			},
		})
	}

	return items
}

type VehicleAvailabilityDTO struct {
	AvailabilityStatus models.AvailabilityStatus `json:"availability_status"`
}

// ReturnBookingResponse is the admin update response: the vehicle
// availability is reported inline as released.
type ReturnBookingResponse struct {
	BookingResponse
	Vehicle VehicleAvailabilityDTO `json:"vehicle"`
}

func NewReturnBookingResponse(booking models.Booking) ReturnBookingResponse {
	return ReturnBookingResponse{
		BookingResponse: NewBookingResponse(booking),
		Vehicle: VehicleAvailabilityDTO{
			AvailabilityStatus: models.VehicleAvailable,
		},
	}
}
