// File: handlers/chat.go
package handlers

import (
	"errors"
	"net/http"

	catalogRepo "barberpro/database/repository/catalog"
	"barberpro/models"
	"barberpro/services/assistant"
	"barberpro/services/booking"
	"barberpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational booking surface: one endpoint for
// both the guest self-service chat and the admin paste-and-suggest chat,
// distinguished by mode.
type ChatHandler struct {
	Sessions *assistant.SessionManager
	Commits  *booking.CommitService
	Catalog  catalogRepo.ServiceCatalogRepository
	Logger   *zap.Logger
}

func NewChatHandler(sessions *assistant.SessionManager, commits *booking.CommitService, catalog catalogRepo.ServiceCatalogRepository, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Sessions: sessions, Commits: commits, Catalog: catalog, Logger: logger}
}

type chatMessageRequest struct {
	Text string          `json:"text"`
	Mode models.ChatMode `json:"mode"`
}

func parseMode(m models.ChatMode) (models.ChatMode, bool) {
	switch m {
	case "", models.ModeGuest:
		return models.ModeGuest, true
	case models.ModeAdminAssist:
		return models.ModeAdminAssist, true
	}
	return "", false
}

// HandleMessage runs one conversation turn. The accept/send controls stay
// disabled client-side while this request is in flight, so a session never
// has two overlapping resolutions.
func (h *ChatHandler) HandleMessage(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}
	mode, ok := parseMode(req.Mode)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat mode", string(req.Mode))
		return
	}

	msg, err := h.Sessions.HandleMessage(c.Request.Context(), sessionID, req.Text, mode)
	if err != nil {
		if errors.Is(err, assistant.ErrStaleResolution) {
			c.JSON(http.StatusConflict, gin.H{"error": "conversation was reset, message discarded"})
			return
		}
		h.Logger.Error("chat: failed to handle message", zap.String("session", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
		return
	}
	if msg == nil {
		// Empty input is a no-op, not an error.
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, msg)
}

type acceptRequest struct {
	Mode models.ChatMode `json:"mode"`
}

// Accept commits the session's live proposal. Only a complete proposal can
// be accepted; each successful accept creates exactly one appointment, so
// the client disables the button after the first success.
func (h *ChatHandler) Accept(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var req acceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid accept request", err.Error())
		return
	}
	mode, ok := parseMode(req.Mode)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat mode", string(req.Mode))
		return
	}

	ctx := c.Request.Context()
	proposal, err := h.Sessions.LatestProposal(ctx, sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load conversation", err.Error())
		return
	}
	if proposal == nil || !proposal.IsComplete {
		c.JSON(http.StatusConflict, gin.H{"error": "no complete proposal to accept"})
		return
	}

	catalog, err := h.Catalog.GetAll(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load service catalog", err.Error())
		return
	}

	apt, err := h.Commits.Commit(ctx, proposal, catalog, mode)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidProposal) {
			c.JSON(http.StatusConflict, gin.H{"error": "proposal is not complete"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to commit booking", err.Error())
		return
	}

	note := "Request sent! Your appointment is pending confirmation by the barbershop."
	if mode == models.ModeAdminAssist {
		note = "Done! Scheduled and confirmed " + apt.ClientName + " for " + apt.Date + " at " + apt.Time + "."
	}
	if err := h.Sessions.AppendAssistantNote(ctx, sessionID, note); err != nil {
		h.Logger.Warn("chat: failed to append confirmation note", zap.Error(err))
	}

	c.JSON(http.StatusCreated, apt)
}

// Reset clears the conversation; any in-flight resolution for the old
// conversation will be discarded on arrival.
func (h *ChatHandler) Reset(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Sessions.ResetConversation(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset conversation", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
