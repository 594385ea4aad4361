package delivery

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Vovarama1992/go-utils/logger"
)

const maxAudioUpload = 25 << 20

type TranscribeHandler struct {
	svc Transcriber
	log *logger.ZapLogger
}

func NewTranscribeHandler(svc Transcriber, log *logger.ZapLogger) *TranscribeHandler {
	return &TranscribeHandler{svc: svc, log: log}
}

// Transcribe spools the multipart "file" field to a temp file, which is
// removed once the provider has answered.
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAudioUpload+(1<<20))
	if err := r.ParseMultipartForm(maxAudioUpload); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid multipart", Service: "delivery", Error: err})
		writeError(w, http.StatusBadRequest, "invalid multipart: "+err.Error(), "Invalid request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file: "+err.Error(), "Invalid request")
		return
	}
	defer file.Close()
	if header.Size == 0 {
		writeError(w, http.StatusBadRequest, "file is empty", "Invalid request")
		return
	}

	tmp, err := os.CreateTemp("", "recording-*"+filepath.Ext(header.Filename))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), "Failed to store upload")
		return
	}
	defer os.Remove(tmp.Name())

	_, copyErr := io.Copy(tmp, file)
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		writeError(w, http.StatusInternalServerError, "failed to store upload", "Failed to store upload")
		return
	}

	text, err := h.svc.Transcribe(r.Context(), tmp.Name())
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "transcription failed, request " + RequestID(r.Context()),
			Service: "delivery",
			Error:   err,
		})
		writeError(w, http.StatusBadGateway, err.Error(), "Failed to transcribe audio")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
