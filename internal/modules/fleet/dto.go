package fleet

import "fleetrental/internal/domain"

type TrailerRequest struct {
	Name               string   `json:"name" validate:"required"`
	IPAddress          string   `json:"ip_address" validate:"required,ip"`
	SerialNumber       string   `json:"serial_number" validate:"required"`
	RegistrationNumber string   `json:"registration_number" validate:"required"`
	OperatorPhone      string   `json:"operator_phone"`
	LocationLink       string   `json:"location_link" validate:"omitempty,url"`
	Notes              string   `json:"notes"`
	Latitude           *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude          *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Status             string   `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
}

// TrailerDetail is the detail-view payload: the trailer, its service
// record and its audit trail.
type TrailerDetail struct {
	Trailer          domain.Trailer          `json:"trailer"`
	ServiceHistories []domain.ServiceHistory `json:"service_histories"`
	Logs             []domain.TrailerLog     `json:"logs"`
}
