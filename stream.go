package main

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	logger "github.com/sirupsen/logrus"
)

// streamHub fans telemetry snapshots out to every connected dashboard.
// Writes are serialized under the hub lock so a tick and an override
// never interleave on the same connection.
type streamHub struct {
	lock     sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func newStreamHub() *streamHub {
	h := streamHub{}
	h.clients = make(map[*websocket.Conn]bool)
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	return &h
}

func (h *streamHub) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		logger.Errorf("Websocket upgrade failed [%v]", err)
		return
	}

	h.lock.Lock()
	h.clients[conn] = true
	h.lock.Unlock()
	logger.Infof("Dashboard client connected [%v]", conn.RemoteAddr())

	// drain the connection so close frames are seen; the dashboard
	// never sends data
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(conn)
				return
			}
		}
	}()
}

func (h *streamHub) drop(conn *websocket.Conn) {
	h.lock.Lock()
	delete(h.clients, conn)
	h.lock.Unlock()
	_ = conn.Close()
}

func (h *streamHub) ClientCount() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.clients)
}

func (h *streamHub) Broadcast(v interface{}) {
	js, err := json.Marshal(v)
	if err != nil {
		logger.Errorf("JSON error [%v]", err)
		return
	}

	var dead []*websocket.Conn

	h.lock.Lock()
	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(time.Second * 5))
		if err := conn.WriteMessage(websocket.TextMessage, js); err != nil {
			logger.Infof("Dropping dashboard client [%v]", err)
			delete(h.clients, conn)
			dead = append(dead, conn)
		}
	}
	h.lock.Unlock()

	for _, conn := range dead {
		_ = conn.Close()
	}
}
