package utils

import (
	"encoding/json"
	"net/http"

	"github.com/tshrrx/chatty-bot/internal/models"
)

// WriteSSE frames one stream event as `data: <JSON>` followed by a blank line
// and flushes, so the caller sees each fragment as soon as it is produced.
func WriteSSE(w http.ResponseWriter, ev models.StreamEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	if _, err := w.Write([]byte("data: ")); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if _, err := w.Write([]byte("\n\n")); err != nil {
		return err
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	return nil
}
