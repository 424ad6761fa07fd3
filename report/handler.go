//go:build !js

package report

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Handler accepts a websocket per page and stores every record the page
// sends. Malformed messages are logged and skipped.
type Handler struct {
	Store  *Store
	Logger *slog.Logger

	upgrader websocket.Upgrader
}

func NewHandler(store *Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Store:  store,
		Logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Logger.Warn("report upgrade", "err", err)
		return
	}
	defer conn.Close()

	for {
		typ, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.Logger.Debug("report connection closed", "err", err)
			}
			return
		}
		if typ != websocket.BinaryMessage {
			continue
		}
		rec, err := Decode(data)
		if err != nil {
			h.Logger.Warn("bad report", "err", err)
			continue
		}
		h.Logger.Info("report", "session", rec.Session, "type", rec.Type, "url", rec.URL,
			"loaded", rec.Loaded, "pending", rec.Pending)
		if h.Store == nil {
			continue
		}
		if _, err := h.Store.Put(rec); err != nil {
			h.Logger.Error("store report", "err", err)
		}
	}
}
