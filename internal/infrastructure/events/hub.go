package events

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/skillsmatrix/backend/internal/domain/ports"
)

// Client é uma conexão websocket autenticada
type Client struct {
	conn   *websocket.Conn
	userID string
	role   string
}

// Hub distribui eventos de auditoria para os painéis conectados.
// Implementa ports.EventPublisher.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	logger     ports.Logger
	mu         sync.Mutex
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// A origem é validada pelo middleware de CORS da API
		return true
	},
}

// NewHub cria um novo Hub
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run processa registros, desconexões e broadcasts. Deve rodar em uma
// goroutine própria durante toda a vida do processo.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("websocket client connected", "userId", client.userID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.conn.Close()
			}
			h.mu.Unlock()
			h.logger.Debug("websocket client disconnected", "userId", client.userID)

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
					h.logger.Warn("websocket write failed", "userId", client.userID, "error", err)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish envia o evento para todos os clientes conectados sem
// bloquear o chamador
func (h *Hub) Publish(event []byte) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("websocket broadcast buffer full, dropping event")
	}
}

// ServeWS promove a requisição HTTP a uma conexão websocket. Espera o
// usuário autenticado nas chaves de contexto do middleware de auth.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		conn:   conn,
		userID: c.GetString("userId"),
		role:   c.GetString("userRole"),
	}

	h.register <- client

	// Leitura apenas para detectar a desconexão do cliente
	go func() {
		defer func() {
			h.unregister <- client
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}
