package models

type Trip struct {
	ID             int64  `json:"id"`
	RouteID        int64  `json:"route_id"`
	ShuttleID      int64  `json:"shuttle_id"`
	TripDate       string `json:"trip_date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	AvailableSeats int    `json:"available_seats"`
}

// TripDetail is the read-model projection for a single trip: shuttle number,
// route endpoints and fare joined in, plus the caller's booking id when the
// caller already booked this trip. It has no bearing on the booking
// transaction itself.
type TripDetail struct {
	ID             int64  `json:"id"`
	ShuttleID      int64  `json:"shuttle_id"`
	ShuttleNumber  string `json:"shuttle_number"`
	StartLocation  string `json:"start_location"`
	EndLocation    string `json:"end_location"`
	Fare           int64  `json:"fare"`
	TripDate       string `json:"trip_date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	AvailableSeats int    `json:"available_seats"`
	BookingID      *int64 `json:"booking_id,omitempty"`
}
