package domain

import "time"

type TrailerStatus string

const (
	TrailerActive      TrailerStatus = "active"
	TrailerInactive    TrailerStatus = "inactive"
	TrailerMaintenance TrailerStatus = "maintenance"
)

type Trailer struct {
	ID                 int64         `json:"id" gorm:"primaryKey"`
	Name               string        `json:"name" gorm:"size:100;not null" validate:"required"`
	IPAddress          string        `json:"ip_address" gorm:"size:45;not null" validate:"required,ip"`
	SerialNumber       string        `json:"serial_number" gorm:"size:100;uniqueIndex;not null" validate:"required"`
	RegistrationNumber string        `json:"registration_number" gorm:"size:20" validate:"required"`
	OperatorPhone      string        `json:"operator_phone" gorm:"size:20"`
	LocationLink       string        `json:"location_link,omitempty" gorm:"type:text"`
	Notes              string        `json:"notes,omitempty" gorm:"type:text"`
	Latitude           *float64      `json:"latitude,omitempty"`
	Longitude          *float64      `json:"longitude,omitempty"`
	Status             TrailerStatus `json:"status" gorm:"size:20;default:active"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (Trailer) TableName() string { return "trailers" }

// TrailerLogEvent tags the kind of change an audit row records.
type TrailerLogEvent string

const (
	EventAdded        TrailerLogEvent = "added"
	EventEdited       TrailerLogEvent = "edited"
	EventDeleted      TrailerLogEvent = "deleted"
	EventStatusChange TrailerLogEvent = "status_change"
	EventPing         TrailerLogEvent = "ping"
)

// TrailerLog is an append-only audit row. TrailerID is nullable so the
// row survives deletion of the trailer it describes.
type TrailerLog struct {
	ID        int64           `json:"id" gorm:"primaryKey"`
	Timestamp time.Time       `json:"timestamp" gorm:"autoCreateTime"`
	TrailerID *int64          `json:"trailer_id,omitempty" gorm:"index"`
	EventType TrailerLogEvent `json:"event_type" gorm:"size:20;index"`
	Message   string          `json:"message" gorm:"type:text"`
}

func (TrailerLog) TableName() string { return "trailer_logs" }

type ServiceHistory struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	TrailerID   int64     `json:"trailer_id" gorm:"index;not null"`
	ServiceDate time.Time `json:"service_date" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Cost        float64   `json:"cost"`

	Trailer *Trailer `json:"trailer,omitempty" gorm:"foreignKey:TrailerID;constraint:OnDelete:CASCADE"`
}

func (ServiceHistory) TableName() string { return "service_histories" }
