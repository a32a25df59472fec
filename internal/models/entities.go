package models

import (
	"time"
)

// TravelClass is one of the four cabin classes, each with independent
// pricing and seat inventory.
type TravelClass string

const (
	ClassEconomy  TravelClass = "economy"
	ClassPremium  TravelClass = "premium"
	ClassBusiness TravelClass = "business"
	ClassFirst    TravelClass = "first"
)

// TravelClasses lists the cabin classes in ascending fare order.
var TravelClasses = []TravelClass{ClassEconomy, ClassPremium, ClassBusiness, ClassFirst}

// Booking status values shared by flight, hotel and cab bookings.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Airport is a static reference entry, looked up by IATA code.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// PriceByClass holds a fare for each travel class.
type PriceByClass struct {
	Economy  int64 `json:"economy"`
	Premium  int64 `json:"premium"`
	Business int64 `json:"business"`
	First    int64 `json:"first"`
}

// For returns the fare for the given class.
func (p PriceByClass) For(class TravelClass) int64 {
	switch class {
	case ClassPremium:
		return p.Premium
	case ClassBusiness:
		return p.Business
	case ClassFirst:
		return p.First
	default:
		return p.Economy
	}
}

// SeatsByClass holds an available-seat count for each travel class.
type SeatsByClass struct {
	Economy  int `json:"economy"`
	Premium  int `json:"premium"`
	Business int `json:"business"`
	First    int `json:"first"`
}

// Flight is a synthetic listing generated per search. Not persisted.
type Flight struct {
	ID             string       `json:"id"`
	FlightNumber   string       `json:"flight_number"`
	Airline        string       `json:"airline"`
	Origin         Airport      `json:"origin"`
	Destination    Airport      `json:"destination"`
	DepartureTime  time.Time    `json:"departure_time"`
	ArrivalTime    time.Time    `json:"arrival_time"`
	Duration       string       `json:"duration"`
	Price          PriceByClass `json:"price"`
	Aircraft       string       `json:"aircraft"`
	Stops          int          `json:"stops"`
	AvailableSeats SeatsByClass `json:"available_seats"`
}

// Seat is one cell of a generated seat map. Selection is session-local.
type Seat struct {
	ID          string      `json:"id"`
	SeatNumber  string      `json:"seat_number"`
	Class       TravelClass `json:"class"`
	IsAvailable bool        `json:"is_available"`
	Price       int64       `json:"price"`
}

// Passenger holds the personal and travel-document fields collected by the
// booking form.
type Passenger struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	PassportNumber string `json:"passport_number,omitempty"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

// Infant travels on an adult's lap and references that adult by id.
// The link is non-owning.
type Infant struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	ParentID    string `json:"parent_id"`
}

// Booking is created when the booking form is submitted and becomes
// confirmed after payment. Once confirmed it is never mutated.
type Booking struct {
	ID               string      `json:"id"`
	BookingReference string      `json:"booking_reference"`
	Flight           Flight      `json:"flight"`
	Passengers       []Passenger `json:"passengers"`
	Infants          []Infant    `json:"infants"`
	Seats            []Seat      `json:"seats"`
	TotalAmount      int64       `json:"total_amount"`
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}

// Hotel is a static-ish catalog entry keyed by destination city code.
type Hotel struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Address             string      `json:"address"`
	City                string      `json:"city"`
	Rating              float64     `json:"rating"`
	Amenities           []string    `json:"amenities"`
	Description         string      `json:"description"`
	DistanceFromAirport int         `json:"distance_from_airport_km"`
	DistanceFromCity    int         `json:"distance_from_city_km"`
	Rooms               []HotelRoom `json:"rooms"`
	ReviewCount         int         `json:"review_count"`
	ReviewRating        float64     `json:"review_rating"`
}

// HotelRoom is a pricing variant nested under a Hotel.
type HotelRoom struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	MaxOccupancy  int      `json:"max_occupancy"`
	Amenities     []string `json:"amenities"`
	PricePerNight int64    `json:"price_per_night"`
	Available     bool     `json:"available"`
	Size          string   `json:"size"`
}

// HotelBooking pairs a hotel room with stay dates and guest details.
type HotelBooking struct {
	ID           string    `json:"id"`
	Hotel        Hotel     `json:"hotel"`
	Room         HotelRoom `json:"room"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	Nights       int       `json:"nights"`
	Guests       int       `json:"guests"`
	TotalAmount  int64     `json:"total_amount"`
	Status       string    `json:"status"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	GuestPhone   string    `json:"guest_phone"`
}

// CabService is a catalog entry for ground transport.
type CabService struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	PricePerKm  int64    `json:"price_per_km"`
	BasePrice   int64    `json:"base_price"`
	Rating      float64  `json:"rating"`
}

// CabBooking is a ride reservation with an estimated distance and fare.
type CabBooking struct {
	ID                string     `json:"id"`
	Service           CabService `json:"service"`
	PickupLocation    string     `json:"pickup_location"`
	DropLocation      string     `json:"drop_location"`
	PickupDateTime    string     `json:"pickup_datetime"`
	DistanceKm        int        `json:"distance_km"`
	EstimatedDuration string     `json:"estimated_duration"`
	TotalAmount       int64      `json:"total_amount"`
	Status            string     `json:"status"`
	PassengerName     string     `json:"passenger_name"`
	PassengerPhone    string     `json:"passenger_phone"`
	Passengers        int        `json:"passengers"`
	BookingType       string     `json:"booking_type"`
}

// TravelPackage bundles a confirmed flight booking with optional hotel and
// cab bookings at an aggregate discount versus booking separately.
type TravelPackage struct {
	ID          string        `json:"id"`
	Flight      Booking       `json:"flight_booking"`
	Hotel       *HotelBooking `json:"hotel_booking,omitempty"`
	Cabs        []CabBooking  `json:"cab_bookings,omitempty"`
	TotalAmount int64         `json:"total_amount"`
	Savings     int64         `json:"savings"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// User is the session-facing account profile. It never carries credentials.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
}

// StoredUser is the credential record kept in the users list. The password
// is stored as a SHA-256 hex digest.
type StoredUser struct {
	User
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// SearchFilters captures the flight search form.
type SearchFilters struct {
	Origin        string      `json:"origin"`
	Destination   string      `json:"destination"`
	DepartureDate string      `json:"departure_date"`
	ReturnDate    string      `json:"return_date,omitempty"`
	Passengers    int         `json:"passengers"`
	Infants       int         `json:"infants"`
	TravelClass   TravelClass `json:"travel_class"`
	TripType      string      `json:"trip_type"`
}
