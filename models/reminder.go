package models

// ReminderPayload is the asynq task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ClientName    string `json:"clientName"`
	Service       string `json:"service"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
