// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Chat endpoints.
	ChatMessage gin.HandlerFunc
	ChatAccept  gin.HandlerFunc
	ChatReset   gin.HandlerFunc

	// Appointment endpoints.
	ListAppointments        gin.HandlerFunc
	CreateAppointment       gin.HandlerFunc
	UpdateAppointmentStatus gin.HandlerFunc

	// Service catalog endpoints.
	ListServices  gin.HandlerFunc
	CreateService gin.HandlerFunc
	DeleteService gin.HandlerFunc

	// Settings endpoints.
	GetSettings    gin.HandlerFunc
	UpdateSettings gin.HandlerFunc

	// Client endpoints.
	ListClients  gin.HandlerFunc
	CreateClient gin.HandlerFunc

	// Transaction endpoints.
	ListTransactions  gin.HandlerFunc
	CreateTransaction gin.HandlerFunc
}
