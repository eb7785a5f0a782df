package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"aestheti-qr-server/entities"
	"aestheti-qr-server/repositories"
	"aestheti-qr-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Websocket message envelopes
type incomingMessage struct {
	Type string `json:"type"` // ping
}

type eventMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

var pongPayload = []byte(`{"type":"pong"}`)

// WSHandler manages the library live feed: a browser session connects
// once per account and receives qrcode.created events as codes are
// saved.
type WSHandler struct {
	mgr      *ws.Manager
	accounts repositories.AccountRepository
}

func NewWSHandler(mgr *ws.Manager, accounts repositories.AccountRepository) *WSHandler {
	return &WSHandler{mgr: mgr, accounts: accounts}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleLibraryWS upgrades to websocket and holds the session open.
// GET /ws?userId=<account_id>
func (h *WSHandler) HandleLibraryWS(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user id"})
		return
	}

	exists, err := h.accounts.Exists(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify account"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	h.mgr.Register(userID, conn)
	log.Printf("library session connected: %s", userID)

	defer func() {
		h.mgr.Unregister(userID, conn)
		log.Printf("library session disconnected: %s", userID)
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return
			}
			log.Printf("websocket read error for %s: %v", userID, err)
			return
		}

		var msg incomingMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		if msg.Type == "ping" {
			// reply through the manager so the pong cannot race a
			// qrcode.created push on the same connection
			if err := h.mgr.Send(userID, pongPayload); err != nil {
				log.Printf("websocket write error for %s: %v", userID, err)
				return
			}
		}
	}
}

// GetConnectedAccounts handles GET /api/qrcode/connected
func (h *WSHandler) GetConnectedAccounts(c *gin.Context) {
	ids := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{
		"accounts": ids,
		"count":    len(ids),
	})
}

// QRCodeCreated pushes a saved code to the owner's live session, if
// one exists. Delivery failures never fail the originating request.
func (h *WSHandler) QRCodeCreated(code *entities.QRCode) {
	if !h.mgr.IsConnected(code.UserID) {
		return
	}
	payload, err := json.Marshal(eventMessage{Type: "qrcode.created", Data: code})
	if err != nil {
		log.Printf("failed to marshal qrcode event: %v", err)
		return
	}
	if err := h.mgr.Send(code.UserID, payload); err != nil {
		log.Printf("failed to push qrcode event to %s: %v", code.UserID, err)
	}
}
