package models

// SignUpRequest registers a new account.
type SignUpRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	DateOfBirth     string `json:"date_of_birth"`
}

// SignInRequest authenticates an existing account.
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse is returned by sign-in and sign-up.
type SessionResponse struct {
	SessionToken string `json:"session_token"`
	User         User   `json:"user"`
}

// SearchRequest starts a flight search for the session.
type SearchRequest struct {
	Origin        string      `json:"origin" binding:"required"`
	Destination   string      `json:"destination" binding:"required"`
	DepartureDate string      `json:"departure_date" binding:"required"`
	ReturnDate    string      `json:"return_date"`
	Passengers    int         `json:"passengers" binding:"required"`
	Infants       int         `json:"infants"`
	TravelClass   TravelClass `json:"travel_class"`
	TripType      string      `json:"trip_type"`
}

// SearchResponse carries the generated listings.
type SearchResponse struct {
	Flights []Flight `json:"flights"`
	Count   int      `json:"count"`
}

// SelectFlightRequest picks one listing from the current results.
type SelectFlightRequest struct {
	FlightID string `json:"flight_id" binding:"required"`
}

// SelectSeatsRequest records the seats chosen on the seat map.
type SelectSeatsRequest struct {
	SeatIDs []string `json:"seat_ids" binding:"required"`
}

// SetViewRequest moves the session to another screen of the flow.
type SetViewRequest struct {
	View string `json:"view" binding:"required"`
}

// PassengerInput is one passenger row of the booking form.
type PassengerInput struct {
	Title          string `json:"title" binding:"required"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	DateOfBirth    string `json:"date_of_birth" binding:"required"`
	PassportNumber string `json:"passport_number"`
	Email          string `json:"email" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
}

// InfantInput is one infant row of the booking form. ParentIndex points at
// the accompanying adult by position in the passengers list.
type InfantInput struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
	ParentIndex int    `json:"parent_index"`
}

// CreateBookingRequest submits the booking form.
type CreateBookingRequest struct {
	Passengers []PassengerInput `json:"passengers" binding:"required"`
	Infants    []InfantInput    `json:"infants"`
	Contact    ContactInput     `json:"contact"`
}

// ContactInput is the contact block of the booking form.
type ContactInput struct {
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	EmergencyName    string `json:"emergency_name"`
	EmergencyPhone   string `json:"emergency_phone"`
	EmergencyRelated string `json:"emergency_relationship"`
}

// PaymentRequest submits the payment form. Method-specific fields are
// validated by the booking service, not the binding layer.
type PaymentRequest struct {
	Method      string `json:"method" binding:"required"`
	CardNumber  string `json:"card_number"`
	CardHolder  string `json:"card_holder"`
	Expiry      string `json:"expiry"`
	CVV         string `json:"cvv"`
	UPIID       string `json:"upi_id"`
	Bank        string `json:"bank"`
	BillingName string `json:"billing_name"`
}

// HotelBookingRequest books a room for the stay.
type HotelBookingRequest struct {
	HotelID      string `json:"hotel_id" binding:"required"`
	RoomID       string `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	Guests       int    `json:"guests" binding:"required"`
	GuestName    string `json:"guest_name" binding:"required"`
	GuestEmail   string `json:"guest_email" binding:"required"`
	GuestPhone   string `json:"guest_phone" binding:"required"`
}

// CabEstimateRequest asks for a fare estimate before booking.
type CabEstimateRequest struct {
	ServiceID      string `json:"service_id" binding:"required"`
	PickupLocation string `json:"pickup_location" binding:"required"`
	DropLocation   string `json:"drop_location" binding:"required"`
}

// CabEstimateResponse is the simulated distance, duration and fare.
type CabEstimateResponse struct {
	DistanceKm        int    `json:"distance_km"`
	EstimatedDuration string `json:"estimated_duration"`
	TotalAmount       int64  `json:"total_amount"`
}

// CabBookingRequest books a ride.
type CabBookingRequest struct {
	ServiceID      string `json:"service_id" binding:"required"`
	PickupLocation string `json:"pickup_location" binding:"required"`
	DropLocation   string `json:"drop_location" binding:"required"`
	PickupDateTime string `json:"pickup_datetime" binding:"required"`
	PassengerName  string `json:"passenger_name" binding:"required"`
	PassengerPhone string `json:"passenger_phone" binding:"required"`
	Passengers     int    `json:"passengers"`
	BookingType    string `json:"booking_type"`
}

// FlightStatus is the flattened projection served by the proxy endpoint.
type FlightStatus struct {
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flight_number"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Status        string `json:"status"`
}
