package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/PaynestHQ/paynest-mobile/utils"
)

// WSHandler pushes account events (verification succeeded, new login) to any
// connected device of the same user, so a second device refreshes its state
// without polling.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 64 * 1024

	// Keep-Alive configuration (critical for cloud hosting)
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		userID, _ := s.Get("user_id")
		if id, ok := userID.(string); ok {
			utils.LogWebSocket("disconnected", id)
		}
	})

	m.HandleError(func(s *melody.Session, err error) {
		utils.SafeError("WebSocket error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request. The token travels as a query parameter
// because mobile websocket clients cannot set headers reliably.
func (h *WSHandler) HandleWS(c *gin.Context) {
	userID, err := utils.ParseAccessToken(c.Query("token"))
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid or expired token"})
		return
	}

	if err := h.M.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
		"user_id": userID,
	}); err != nil {
		utils.SafeError("Failed to upgrade websocket: %v", err)
		return
	}

	utils.LogWebSocket("connected", userID)
}

// NotifyUser sends an event to every session belonging to the given user.
func (h *WSHandler) NotifyUser(userID string, eventType string, detail string) {
	msg, err := json.Marshal(map[string]string{
		"type":   eventType,
		"detail": detail,
	})
	if err != nil {
		return
	}

	err = h.M.BroadcastFilter(msg, func(q *melody.Session) bool {
		id, exists := q.Get("user_id")
		return exists && id == userID
	})

	if err != nil {
		utils.SafeWarn("Error broadcasting to user %s: %v", userID, err)
	}
}
