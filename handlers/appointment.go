// File: handlers/appointment.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	appointmentRepo "barberpro/database/repository/appointment"
	clientRepo "barberpro/database/repository/client"
	"barberpro/models"
	"barberpro/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the calendar surface: listing, manual entry
// and status transitions. Appointments are never deleted.
type AppointmentHandler struct {
	Repo    appointmentRepo.AppointmentRepository
	Clients clientRepo.ClientRepository
	Logger  *zap.Logger
}

func NewAppointmentHandler(repo appointmentRepo.AppointmentRepository, clients clientRepo.ClientRepository, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo, Clients: clients, Logger: logger}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	apts, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, apts)
}

type createAppointmentRequest struct {
	ClientID        string  `json:"clientId"`
	ClientName      string  `json:"clientName" binding:"required"`
	Service         string  `json:"service" binding:"required"`
	StylePreference string  `json:"stylePreference"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	Price           float64 `json:"price"`
}

// Create handles manual entry from the calendar screen. Manual entries are
// made by the barber, so they start CONFIRMED.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid appointment", err.Error())
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", req.Date)
		return
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid time", req.Time)
		return
	}

	apt := models.Appointment{
		ClientID:        req.ClientID,
		ClientName:      req.ClientName,
		Service:         req.Service,
		StylePreference: req.StylePreference,
		Date:            req.Date,
		Time:            req.Time,
		Price:           req.Price,
		Status:          models.StatusConfirmed,
	}
	id, err := h.Repo.Create(c.Request.Context(), apt)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create appointment", err.Error())
		return
	}
	apt.ID = id
	c.JSON(http.StatusCreated, apt)
}

type updateStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required"`
}

// UpdateStatus transitions an appointment. Cancelling frees the slot on the
// next occupancy read while the record itself persists.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status update", err.Error())
		return
	}
	if !models.ValidStatus(req.Status) {
		utils.JSONError(c, http.StatusBadRequest, "Unknown status", string(req.Status))
		return
	}

	ctx := c.Request.Context()
	if err := h.Repo.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update status", err.Error())
		return
	}

	// Completing a cut counts as a visit in the client book. Placeholder
	// clients from the chat flows have no book entry, so a miss is fine.
	if req.Status == models.StatusCompleted && h.Clients != nil {
		if apt, err := h.Repo.GetByID(ctx, id); err == nil && apt.ClientID != "" {
			if err := h.Clients.RecordVisit(ctx, apt.ClientID, apt.Date); err != nil {
				h.Logger.Debug("appointment: no client book entry to update",
					zap.String("client", apt.ClientID), zap.Error(err))
			}
		}
	}

	h.Logger.Info("appointment status updated", zap.String("id", id), zap.String("status", string(req.Status)))
	c.Status(http.StatusNoContent)
}
