package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/aerovlm/sweep"
)

// Websocket message types.
const (
	MsgProgress = "progress"
	MsgDone     = "done"
	MsgError    = "error"
)

// WSMessage is every frame sent on /ws/sweep.
type WSMessage struct {
	Type     string          `json:"type"`
	Progress *sweep.Progress `json:"progress,omitempty"`
	Sweep    *SweepResponse  `json:"sweep,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// SweepWS handles GET /ws/sweep. The client sends one SweepRequest, then
// receives a progress frame per sample and a final done or error frame.
// Closing the connection cancels the sweep.
func (h *handlers) SweepWS(upgrader websocket.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.log.WithError(err).Warn("server: websocket upgrade failed")
			return
		}
		defer conn.Close()

		var req SweepRequest
		if err = conn.ReadJSON(&req); err != nil {
			_ = conn.WriteJSON(WSMessage{Type: MsgError, Error: "invalid request payload"})
			return
		}

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()
		go func() {
			for {
				if _, _, err := conn.NextReader(); err != nil {
					cancel()
					return
				}
			}
		}()

		// progress runs on the sweep collector goroutine; it is the only
		// writer until Run returns.
		progress := func(p sweep.Progress) {
			if err := conn.WriteJSON(WSMessage{Type: MsgProgress, Progress: &p}); err != nil {
				cancel()
			}
		}
		resp, err := h.runSweep(ctx, req, progress)
		if err != nil {
			h.log.WithError(err).Debug("server: websocket sweep failed")
			_ = conn.WriteJSON(WSMessage{Type: MsgError, Error: err.Error()})
			return
		}
		_ = conn.WriteJSON(WSMessage{Type: MsgDone, Sweep: resp})
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}
}
