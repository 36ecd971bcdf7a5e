package models

// Route joins two campus stops at a fixed fare (minor units).
type Route struct {
	ID            int64  `json:"id"`
	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`
	Fare          int64  `json:"fare"`
}

type Shuttle struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
}
