package delivery

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/legalmate/internal/ai"
)

// base64 photos make chat bodies large.
const maxChatBody = 15 << 20

type ChatHandler struct {
	assistant ai.Assistant
	log       *logger.ZapLogger
}

func NewChatHandler(assistant ai.Assistant, log *logger.ZapLogger) *ChatHandler {
	return &ChatHandler{assistant: assistant, log: log}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ai.ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error(), "Invalid request")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required", "Invalid request")
		return
	}

	resp, err := h.assistant.Reply(r.Context(), req)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "chat reply failed, request " + RequestID(r.Context()),
			Service: "delivery",
			Error:   err,
		})
		writeError(w, http.StatusBadGateway, err.Error(), "Failed to process request")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
