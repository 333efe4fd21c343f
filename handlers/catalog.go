// File: handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"

	catalogRepo "barberpro/database/repository/catalog"
	"barberpro/models"
	"barberpro/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogHandler manages the shop's service list from the settings screen.
type CatalogHandler struct {
	Repo catalogRepo.ServiceCatalogRepository
}

func NewCatalogHandler(repo catalogRepo.ServiceCatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

type createServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"min=0"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,gt=0"`
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req createServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service", err.Error())
		return
	}

	svc := models.ServiceItem{
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}
	id, err := h.Repo.Create(c.Request.Context(), svc)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create service", err.Error())
		return
	}
	svc.ID = id
	c.JSON(http.StatusCreated, svc)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete service", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
