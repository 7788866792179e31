package ws

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Hulupeep/mbot-ruvector/internal/config"
)

type Server struct {
	config          *config.Config
	broadcaster     *Broadcaster
	sourceName      string
	frontendDir     string
	dev             bool
	embeddedHandler http.Handler
	startedAt       time.Time
}

func NewServer(cfg *config.Config, broadcaster *Broadcaster, sourceName, frontendDir string, dev bool, embeddedHandler http.Handler) *Server {
	return &Server{
		config:          cfg,
		broadcaster:     broadcaster,
		sourceName:      sourceName,
		frontendDir:     frontendDir,
		dev:             dev,
		embeddedHandler: embeddedHandler,
		startedAt:       time.Now(),
	}
}

func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/config", s.handleConfig)

	if s.dev {
		log.Printf("Serving frontend from filesystem: %s", s.frontendDir)
		mux.Handle("/", http.FileServer(http.Dir(s.frontendDir)))
	} else if s.embeddedHandler != nil {
		log.Println("Serving embedded frontend")
		mux.Handle("/", s.embeddedHandler)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: s.checkOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	c := s.broadcaster.AddClient(conn)
	log.Printf("viewer connected: %s (%s)", c.id, r.RemoteAddr)

	go func() {
		defer func() {
			s.broadcaster.RemoveClient(c)
			log.Printf("viewer disconnected: %s", c.id)
		}()
		s.readLoop(c, conn)
	}()
}

// readLoop drains inbound control messages until the transport closes. A
// malformed payload is logged and discarded; it never tears down the
// session or affects other viewers.
func (s *Server) readLoop(c *client, conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		msg, err := parseControl(data)
		if err != nil {
			log.Printf("viewer %s sent malformed control message, discarding: %v", c.id, err)
			continue
		}

		// Control messages are reserved for future manual-control
		// features; today they are informational only.
		log.Printf("viewer %s control message: type=%q %s", c.id, msg.Type, msg.raw)
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	snap := s.broadcaster.Latest()
	if snap == nil {
		http.Error(w, "no snapshot yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"source":       s.sourceName,
		"tickInterval": s.config.Loop.TickInterval.String(),
	})
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}

	host := parsed.Host
	if host == "" {
		return false
	}

	if host == r.Host {
		return true
	}

	if strings.HasPrefix(host, "localhost:") || host == "localhost" {
		return true
	}
	if strings.HasPrefix(host, "127.0.0.1:") || host == "127.0.0.1" {
		return true
	}
	// url.Parse keeps the brackets on a bare IPv6 host.
	if strings.HasPrefix(host, "[::1]:") || host == "[::1]" || host == "::1" {
		return true
	}

	return false
}

func ListenAndServe(host string, port int, mux *http.ServeMux) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	log.Printf("Server listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
