package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"blackjack/config"
	"blackjack/events"
	"blackjack/server/connection"
	serverevents "blackjack/server/events"
	"blackjack/server/handlers"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Server represents the WebSocket server. Each connected client gets its own
// single-player blackjack session.
type Server struct {
	cfg        *config.Config
	connMgr    *connection.Manager
	cmdRouter  *handlers.CommandRouter
	dispatcher *serverevents.Dispatcher
	logger     *log.Logger
}

// NewServer creates a new blackjack WebSocket server
func NewServer(cfg *config.Config, logger *log.Logger) *Server {
	connMgr := connection.NewManager()
	dispatcher := serverevents.NewDispatcher(connMgr, logger)
	cmdRouter := handlers.NewCommandRouter(cfg, events.NewInMemoryEventStore(), dispatcher, logger)

	return &Server{
		cfg:        cfg,
		connMgr:    connMgr,
		cmdRouter:  cmdRouter,
		dispatcher: dispatcher,
		logger:     logger.WithPrefix("server"),
	}
}

// Start begins the server on the configured address
func (s *Server) Start() error {
	// Start connection manager in its own goroutine
	go s.connMgr.Start()

	http.HandleFunc("/ws", s.handleWebSocket)

	s.logger.Info("starting server", "addr", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, nil)
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade to WebSocket", "err", err)
		return
	}

	client := &connection.Client{
		ID:   uuid.NewString(),
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	s.logger.Info("client connected", "remote", r.RemoteAddr, "client", client.ID)

	// Register with connection manager
	s.connMgr.Register <- client
	s.cmdRouter.Attach(client)

	// Handle reading and writing in separate goroutines
	go s.readPump(client)
	go s.writePump(client)
}

// readPump reads messages from the WebSocket connection
func (s *Server) readPump(client *connection.Client) {
	defer func() {
		s.cmdRouter.Detach(client)
		s.connMgr.Unregister <- client
		client.Conn.Close()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Error("read error", "client", client.ID, "err", err)
			}
			break
		}

		if err := s.cmdRouter.HandleCommand(client, message); err != nil {
			s.logger.Warn("failed to handle command", "client", client.ID, "err", err)
		}
	}
}

// writePump sends messages to the WebSocket connection
func (s *Server) writePump(client *connection.Client) {
	defer func() {
		client.Conn.Close()
	}()

	for {
		message, ok := <-client.Send
		if !ok {
			// Channel closed
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			s.logger.Error("write error", "client", client.ID, "err", err)
			return
		}
	}
}
