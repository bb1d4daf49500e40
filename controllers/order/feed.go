package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/aquibk580/Shark-Electronics-Backend/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is pushed to connected admin dashboards when orders are created or
// their status changes.
type Event struct {
	Type  string        `json:"type"`
	Order *models.Order `json:"order"`
}

// Hub fans order events out to connected websocket clients. Constructed once
// in main and shared by the payment and order handlers.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		logger:  logger,
	}
}

// GET /order/ws
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Block until the client goes away; inbound messages are ignored.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}

func (h *Hub) Broadcast(event Event) {
	if h == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Warn("dropping order feed client", zap.Error(err))
			client.Close()
			delete(h.clients, client)
		}
	}
}
