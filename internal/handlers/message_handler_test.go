package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outflo/outflo-backend/internal/handlers"
	"github.com/outflo/outflo-backend/internal/services"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func setupMessageRouter(gen services.TextGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewMessageHandler(services.NewMessageService(gen))

	r := gin.New()
	r.POST("/api/v1/messages/generate-message", handler.GenerateMessage)
	return r
}

func messagePayload() gin.H {
	return gin.H{
		"name":         "Jane Doe",
		"job_title":    "Head of Growth",
		"company_name": "Acme Corp",
		"location":     "Berlin, Germany",
		"summary":      "10 years in B2B SaaS",
	}
}

func TestGenerateMessageSuccess(t *testing.T) {
	r := setupMessageRouter(&stubGenerator{text: "Hi Jane!"})

	w := doJSON(t, r, http.MethodPost, "/api/v1/messages/generate-message", messagePayload())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hi Jane!")
}

func TestGenerateMessageValidation(t *testing.T) {
	r := setupMessageRouter(&stubGenerator{text: "unused"})

	for _, missing := range []string{"name", "job_title", "company_name", "location", "summary"} {
		t.Run("missing "+missing, func(t *testing.T) {
			payload := messagePayload()
			delete(payload, missing)

			w := doJSON(t, r, http.MethodPost, "/api/v1/messages/generate-message", payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGenerateMessageUpstreamFailure(t *testing.T) {
	r := setupMessageRouter(&stubGenerator{err: errors.New("quota exceeded")})

	w := doJSON(t, r, http.MethodPost, "/api/v1/messages/generate-message", messagePayload())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate message")
}
