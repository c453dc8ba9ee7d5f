package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler returns an HTTP handler that streams hub messages to the
// client until it disconnects. Filters come from ?types=a,b,c.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming not supported", http.StatusInternalServerError)
			return
		}

		var msgTypes []string
		if filterParam := r.URL.Query().Get("types"); filterParam != "" {
			msgTypes = strings.Split(filterParam, ",")
		}

		client := hub.Register(msgTypes)
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", msgTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"total_clients", hub.ClientCount())
		}()

		// First frame confirms the subscription and echoes the filters
		hello := Message{
			ID:        client.ID,
			Type:      MessageTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   msgTypes,
			},
		}
		if out, err := FormatMessage(hello); err == nil {
			if _, err := w.Write(out); err != nil {
				return
			}
			flusher.Flush()
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case msg, ok := <-client.Messages:
				if !ok {
					// Hub is shutting down
					return
				}

				out, err := FormatMessage(msg)
				if err != nil {
					slog.Error(LogMsgWriteError, "error", err)
					continue
				}
				if _, err := w.Write(out); err != nil {
					slog.Warn(LogMsgWriteError, "error", err)
					return
				}
				flusher.Flush()

			case <-ticker.C:
				keepalive := Message{
					Type:      MessageTypeKeepalive,
					Timestamp: time.Now().Unix(),
				}
				out, _ := FormatMessage(keepalive)
				if _, err := w.Write(out); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
