// internal/services/stylist_service_test.go
package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleeffc/sunflowerbeach/internal/models"
	"github.com/Aleeffc/sunflowerbeach/internal/store"
)

type stubGenerator struct {
	reply string
	err   error

	gotPrompt  string
	gotHistory []models.ChatMessage
	gotMessage string
}

func (g *stubGenerator) Generate(_ context.Context, systemPrompt string, history []models.ChatMessage, message string) (string, error) {
	g.gotPrompt = systemPrompt
	g.gotHistory = history
	g.gotMessage = message
	return g.reply, g.err
}

type blockingGenerator struct {
	started chan struct{}
	release chan struct{}
}

func (g *blockingGenerator) Generate(context.Context, string, []models.ChatMessage, string) (string, error) {
	g.started <- struct{}{}
	<-g.release
	return "pronto!", nil
}

func TestTranscriptSeedsGreeting(t *testing.T) {
	svc := NewStylistService(store.NewSeeded(), nil, 0)

	transcript := svc.Transcript("client-1")
	require.Len(t, transcript, 1)
	assert.Equal(t, models.ChatRoleModel, transcript[0].Role)
	assert.Equal(t, GreetingText, transcript[0].Text)
}

func TestSendWithoutGenerator(t *testing.T) {
	svc := NewStylistService(store.NewSeeded(), nil, 0)

	transcript, err := svc.Send("client-1", "Oi!")
	require.NoError(t, err)

	// Greeting, user turn, fixed apology. No network was involved.
	require.Len(t, transcript, 3)
	assert.Equal(t, "Oi!", transcript[1].Text)
	assert.Equal(t, models.ChatRoleUser, transcript[1].Role)
	assert.Equal(t, NotConfiguredReply, transcript[2].Text)
	assert.Equal(t, models.ChatRoleModel, transcript[2].Role)
}

func TestSendPassesHistoryWithoutCurrentMessage(t *testing.T) {
	gen := &stubGenerator{reply: "Recomendo o Biquíni Sunflower Gold! 🌻"}
	svc := NewStylistService(store.NewSeeded(), gen, 0)

	transcript, err := svc.Send("client-1", "Quero um biquíni amarelo")
	require.NoError(t, err)

	assert.Equal(t, "Quero um biquíni amarelo", gen.gotMessage)
	require.Len(t, gen.gotHistory, 1, "history holds only the turns before this message")
	assert.Equal(t, GreetingText, gen.gotHistory[0].Text)

	require.Len(t, transcript, 3)
	assert.Equal(t, gen.reply, transcript[2].Text)
}

func TestSendSystemPromptCarriesCatalog(t *testing.T) {
	st := store.NewSeeded()
	gen := &stubGenerator{reply: "ok"}
	svc := NewStylistService(st, gen, 0)

	_, err := svc.Send("client-1", "oi")
	require.NoError(t, err)

	assert.Contains(t, gen.gotPrompt, "Sunny")
	for _, p := range st.Products() {
		assert.Contains(t, gen.gotPrompt, p.Name)
	}
}

func TestSystemPromptRebuiltOnCatalogChange(t *testing.T) {
	st := store.NewSeeded()
	gen := &stubGenerator{reply: "ok"}
	svc := NewStylistService(st, gen, 0)

	_, err := svc.Send("client-1", "oi")
	require.NoError(t, err)
	assert.NotContains(t, gen.gotPrompt, "Canga Novíssima")

	st.AddProduct(models.Product{ID: "prod-x", Name: "Canga Novíssima", Price: 50, Category: models.CategoryCoverUps, VendorID: "vendor-1"})

	_, err = svc.Send("client-1", "e agora?")
	require.NoError(t, err)
	assert.Contains(t, gen.gotPrompt, "Canga Novíssima")
}

func TestSendGenerationError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}
	svc := NewStylistService(store.NewSeeded(), gen, 0)

	transcript, err := svc.Send("client-1", "oi")
	require.NoError(t, err, "transport failures never surface as errors")
	assert.Equal(t, TransportErrReply, transcript[len(transcript)-1].Text)
}

func TestSendEmptyReply(t *testing.T) {
	gen := &stubGenerator{reply: "   \n"}
	svc := NewStylistService(store.NewSeeded(), gen, 0)

	transcript, err := svc.Send("client-1", "oi")
	require.NoError(t, err)
	assert.Equal(t, EmptyReply, transcript[len(transcript)-1].Text)
}

func TestSendRejectsSecondInFlightRequest(t *testing.T) {
	gen := &blockingGenerator{
		started: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	svc := NewStylistService(store.NewSeeded(), gen, time.Minute)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Send("client-1", "primeira")
		done <- err
	}()

	<-gen.started

	_, err := svc.Send("client-1", "segunda")
	assert.ErrorIs(t, err, ErrReplyPending)

	close(gen.release)
	require.NoError(t, <-done)

	// Once the reply lands the user can send again.
	_, err = svc.Send("client-1", "terceira")
	assert.NoError(t, err)
}
