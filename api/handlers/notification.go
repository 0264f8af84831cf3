package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/linesmerrill/emergency-dashboard/viewmodels"
)

const writeWait = 10 * time.Second

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// NotificationHub keeps the open dashboard tabs (connection id -> conn) and
// pushes events to all of them
type NotificationHub struct {
	clients map[string]*websocket.Conn
	mutex   sync.Mutex
	closed  bool
}

// NewNotificationHub returns an empty hub
func NewNotificationHub() *NotificationHub {
	return &NotificationHub{clients: make(map[string]*websocket.Conn)}
}

// ServeHTTP upgrades the request and holds the connection until the browser goes away
func (h *NotificationHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("websocket upgrade error", "error", err)
		return
	}

	id := uuid.New().String()
	h.mutex.Lock()
	if h.closed {
		h.mutex.Unlock()
		conn.Close()
		return
	}
	h.clients[id] = conn
	h.mutex.Unlock()
	zap.S().Debugw("dashboard connected to /ws/notifications", "connection", id)

	// the page never sends anything; reading only notices the disconnect
	for {
		if _, _, err := conn.NextReader(); err != nil {
			break
		}
	}
	h.remove(id)
	zap.S().Debugw("dashboard disconnected from /ws/notifications", "connection", id)
}

// Broadcast sends an event to every connected page and reports how many got it
func (h *NotificationHub) Broadcast(event string, data interface{}) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	sent := 0
	for id, conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := conn.WriteJSON(map[string]interface{}{
			"event": event,
			"data":  data,
		})
		if err != nil {
			zap.S().Warnw("error broadcasting event", "event", event, "connection", id, "error", err)
			delete(h.clients, id)
			conn.Close()
			continue
		}
		sent++
	}
	return sent
}

// Clients returns the number of connected pages
func (h *NotificationHub) Clients() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Close disconnects every page and refuses new ones
func (h *NotificationHub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.closed = true
	for id, conn := range h.clients {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(time.Second))
		conn.Close()
		delete(h.clients, id)
	}
}

func (h *NotificationHub) remove(id string) {
	h.mutex.Lock()
	conn, ok := h.clients[id]
	delete(h.clients, id)
	h.mutex.Unlock()
	if ok {
		conn.Close()
	}
}

// Notification serves the notification inbox
type Notification struct {
	pages
	VM *viewmodels.Notifications
}

// NotificationsHandler shows every notification and the unread count
func (n Notification) NotificationsHandler(w http.ResponseWriter, r *http.Request) {
	inbox, err := n.VM.Inbox(r.Context())
	if err != nil {
		n.fail(w, r, err, "Notifications", "", nil)
		return
	}
	n.render(w, http.StatusOK, "notifications", n.page(r, "Notifications", inbox))
}

// MarkReadHandler marks one notification read
func (n Notification) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := n.VM.MarkRead(r.Context(), mux.Vars(r)["notification_id"]); err != nil {
		n.fail(w, r, err, "Notifications", "", nil)
		return
	}
	redirect(w, r, "/notifications", "read")
}

// MarkAllReadHandler marks every notification read
func (n Notification) MarkAllReadHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := n.VM.MarkAllRead(r.Context()); err != nil {
		n.fail(w, r, err, "Notifications", "", nil)
		return
	}
	redirect(w, r, "/notifications", "all_read")
}
