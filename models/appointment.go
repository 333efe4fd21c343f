package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a booked (or requested) slot. Appointments are never
// deleted: cancellation is a status transition, which frees the slot for
// re-booking on the next occupancy read.
type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	ClientID        string            `bson:"client_id" json:"clientId"`
	ClientName      string            `bson:"client_name" json:"clientName"` // denormalized for display and prompt context
	Service         string            `bson:"service" json:"service"`
	StylePreference string            `bson:"style_preference,omitempty" json:"stylePreference,omitempty"`
	Date            string            `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time            string            `bson:"time" json:"time"` // "HH:mm"
	Price           float64           `bson:"price" json:"price"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	CreatedAt       time.Time         `bson:"created_at" json:"createdAt"`
}

// StartsAt resolves the appointment's date+time in the given location.
// Returns the zero time if either field is unparsable.
func (a Appointment) StartsAt(loc *time.Location) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
