// File: handlers/client.go
package handlers

import (
	"net/http"

	clientRepo "barberpro/database/repository/client"
	"barberpro/models"
	"barberpro/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler exposes the client book.
type ClientHandler struct {
	Repo clientRepo.ClientRepository
}

func NewClientHandler(repo clientRepo.ClientRepository) *ClientHandler {
	return &ClientHandler{Repo: repo}
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list clients", err.Error())
		return
	}
	c.JSON(http.StatusOK, clients)
}

type createClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid client", err.Error())
		return
	}

	client := models.Client{Name: req.Name, Phone: req.Phone, Notes: req.Notes}
	id, err := h.Repo.Create(c.Request.Context(), client)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create client", err.Error())
		return
	}
	client.ID = id
	c.JSON(http.StatusCreated, client)
}
