package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// handleWS streams every new snapshot to the client as a JSON text
// message. The client never needs to send anything; reads only serve
// to notice the close.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("server: websocket upgrade from %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()

	s.metrics.WSConnected()
	defer s.metrics.WSDisconnected()

	log := s.log.With("client", clientKey(r))
	log.Debug("server: websocket connected")

	snaps, cancel := s.state.Subscribe()
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(2 * s.cfg.PingInterval))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(2 * s.cfg.PingInterval))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(s.cfg.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			log.Debug("server: websocket closed by client")
			return
		case snap, ok := <-snaps:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := conn.WriteJSON(snap); err != nil {
				log.Debug("server: websocket write: %v", err)
				return
			}
		case <-ping.C:
			deadline := time.Now().Add(s.cfg.WriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				log.Debug("server: websocket ping: %v", err)
				return
			}
		}
	}
}
