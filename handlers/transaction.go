// File: handlers/transaction.go
package handlers

import (
	"net/http"

	transactionRepo "barberpro/database/repository/transaction"
	"barberpro/models"
	"barberpro/utils"

	"github.com/gin-gonic/gin"
)

// TransactionHandler exposes the plain income/expense ledger.
type TransactionHandler struct {
	Repo transactionRepo.TransactionRepository
}

func NewTransactionHandler(repo transactionRepo.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{Repo: repo}
}

func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list transactions", err.Error())
		return
	}
	c.JSON(http.StatusOK, txs)
}

type createTransactionRequest struct {
	Date        string                 `json:"date" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Amount      float64                `json:"amount" binding:"required,gt=0"`
	Type        models.TransactionType `json:"type" binding:"required"`
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid transaction", err.Error())
		return
	}
	if req.Type != models.TransactionIncome && req.Type != models.TransactionExpense {
		utils.JSONError(c, http.StatusBadRequest, "Unknown transaction type", string(req.Type))
		return
	}

	tx := models.Transaction{
		Date:        req.Date,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
	}
	id, err := h.Repo.Create(c.Request.Context(), tx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create transaction", err.Error())
		return
	}
	tx.ID = id
	c.JSON(http.StatusCreated, tx)
}
