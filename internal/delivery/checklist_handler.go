package delivery

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/legalmate/internal/checklist"
)

type ChecklistHandler struct {
	svc ChecklistGenerator
	log *logger.ZapLogger
}

func NewChecklistHandler(svc ChecklistGenerator, log *logger.ZapLogger) *ChecklistHandler {
	return &ChecklistHandler{svc: svc, log: log}
}

type checklistResponse struct {
	checklist.Checklist
	Groups []checklist.TimeframeGroup `json:"groups"`
}

// Generate answers with the validated checklist plus the items grouped by
// timeframe for display.
func (h *ChecklistHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transcription string `json:"transcription"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error(), "Invalid request")
		return
	}
	if strings.TrimSpace(req.Transcription) == "" {
		writeError(w, http.StatusBadRequest, "transcription is required", "Invalid request")
		return
	}

	out, err := h.svc.Generate(r.Context(), req.Transcription)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "checklist generation failed, request " + RequestID(r.Context()),
			Service: "delivery",
			Error:   err,
		})
		writeError(w, http.StatusBadGateway, err.Error(), "Failed to generate checklist")
		return
	}

	writeJSON(w, http.StatusOK, checklistResponse{
		Checklist: out,
		Groups:    checklist.GroupByTimeframe(out),
	})
}
