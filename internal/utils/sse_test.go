package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tshrrx/chatty-bot/internal/models"
)

func TestWriteSSEText(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteSSE(rec, models.StreamEvent{Text: "Hello"})
	require.NoError(t, err)

	assert.Equal(t, "data: {\"text\":\"Hello\"}\n\n", rec.Body.String())
	assert.True(t, rec.Flushed)
}

func TestWriteSSEDone(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteSSE(rec, models.StreamEvent{Done: true})
	require.NoError(t, err)

	assert.Equal(t, "data: {\"done\":true}\n\n", rec.Body.String())
}

func TestWriteSSEError(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteSSE(rec, models.StreamEvent{Error: "Backend streaming error: boom"})
	require.NoError(t, err)

	assert.Equal(t, "data: {\"error\":\"Backend streaming error: boom\"}\n\n", rec.Body.String())
}

func TestWriteSSESequence(t *testing.T) {
	rec := httptest.NewRecorder()

	for _, ev := range []models.StreamEvent{{Text: "Hi"}, {Text: " there"}, {Done: true}} {
		require.NoError(t, WriteSSE(rec, ev))
	}

	want := "data: {\"text\":\"Hi\"}\n\n" +
		"data: {\"text\":\" there\"}\n\n" +
		"data: {\"done\":true}\n\n"
	assert.Equal(t, want, rec.Body.String())
}
