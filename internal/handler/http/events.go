package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/asistapp/attendance-backend-go/internal/handler/http/response"
	"github.com/asistapp/attendance-backend-go/internal/pkg/jwt"
	"github.com/asistapp/attendance-backend-go/internal/pkg/sse"
	scansvc "github.com/asistapp/attendance-backend-go/internal/service/scan"
	"github.com/go-chi/jwtauth/v5"
)

type EventsHandler interface {
	GetSSEToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventsHandlerImpl struct {
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewEventsHandler(hub *sse.Hub, jwtService jwt.Service) EventsHandler {
	return &eventsHandlerImpl{
		hub:        hub,
		jwtService: jwtService,
	}
}

// GetSSEToken issues a short-lived token for the stream endpoint.
// EventSource cannot send an Authorization header, so the stream
// authenticates with this token in the query string instead.
func (h *eventsHandlerImpl) GetSSEToken(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": expiresIn,
	})
}

// Stream handles the SSE connection for live attendance updates.
func (h *eventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	if _, err := h.jwtService.ValidateSSEToken(tokenStr); err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(scansvc.TopicAttendance)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
