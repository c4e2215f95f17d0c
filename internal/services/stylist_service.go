// internal/services/stylist_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Aleeffc/sunflowerbeach/internal/models"
	"github.com/Aleeffc/sunflowerbeach/internal/store"
)

// ErrReplyPending rejects a second send while one request is outstanding.
// At most one stylist call is in flight per user.
var ErrReplyPending = errors.New("a stylist reply is already pending")

// Fixed user-facing strings of the Sunny persona. The façade never surfaces
// a raw error; every failure becomes one of these transcript turns.
const (
	GreetingText = "Olá! Sou a Sunny, sua consultora de estilo da Sunflower Beach. 🌻 Está procurando o look perfeito para alguma ocasião especial?"

	NotConfiguredReply = "Desculpe, o serviço de IA não está configurado corretamente (Chave de API ausente)."
	TransportErrReply  = "Ops, tive um pequeno problema técnico devido à maresia! Tente novamente em instantes."
	EmptyReply         = "Desculpe, não consegui pensar em uma resposta agora. Pode tentar novamente?"
)

// Generator produces one model reply for the accumulated transcript plus a
// new user message. The Gemini client implements it; tests use stubs.
type Generator interface {
	Generate(ctx context.Context, systemPrompt string, history []models.ChatMessage, message string) (string, error)
}

// StylistService keeps per-user transcripts and proxies user turns to the
// generative model behind a fixed persona prompt.
type StylistService struct {
	store   *store.Store
	gen     Generator // nil when no credential is configured
	timeout time.Duration

	mu   sync.Mutex
	busy map[string]bool

	promptMu      sync.Mutex
	promptVersion uint64
	prompt        string
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

func NewStylistService(st *store.Store, gen Generator, timeout time.Duration) *StylistService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &StylistService{
		store:   st,
		gen:     gen,
		timeout: timeout,
		busy:    make(map[string]bool),
	}
}

// Transcript returns the user's transcript, seeded with Sunny's greeting.
func (s *StylistService) Transcript(userID string) []models.ChatMessage {
	return s.store.Transcript(userID, models.ChatMessage{
		Role: models.ChatRoleModel,
		Text: GreetingText,
	})
}

// Send appends the user turn, asks the model for a reply and appends it.
// Failures downgrade to fixed apology turns; nothing propagates past here.
// The call runs on its own context: once started it always completes and its
// result is always applied.
func (s *StylistService) Send(userID, message string) ([]models.ChatMessage, error) {
	if !s.acquire(userID) {
		return nil, ErrReplyPending
	}
	defer s.release(userID)

	history := s.Transcript(userID)
	s.store.AppendTurn(userID, models.ChatMessage{Role: models.ChatRoleUser, Text: message})

	reply := s.generateReply(history, message)
	s.store.AppendTurn(userID, models.ChatMessage{Role: models.ChatRoleModel, Text: reply})

	return s.Transcript(userID), nil
}

func (s *StylistService) generateReply(history []models.ChatMessage, message string) string {
	if s.gen == nil {
		// Misconfiguration short-circuits before any network attempt.
		return NotConfiguredReply
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	reply, err := s.gen.Generate(ctx, s.systemPrompt(), history, message)
	if err != nil {
		logrus.WithError(err).Error("stylist generation failed")
		return TransportErrReply
	}
	if strings.TrimSpace(reply) == "" {
		return EmptyReply
	}
	return reply
}

// systemPrompt is the Sunny persona plus the catalog serialized as a bullet
// list. Rebuilt only when the catalog changes.
func (s *StylistService) systemPrompt() string {
	s.promptMu.Lock()
	defer s.promptMu.Unlock()

	version := s.store.CatalogVersion()
	if s.prompt != "" && version == s.promptVersion {
		return s.prompt
	}

	var catalog strings.Builder
	for _, p := range s.store.Products() {
		fmt.Fprintf(&catalog, "- ID: %s, Nome: %s, Categoria: %s, Preço: R$ %.2f, Descrição: %s\n",
			p.ID, p.Name, p.Category, p.Price, p.Description)
	}

	s.promptVersion = version
	s.prompt = fmt.Sprintf(`
Você é a "Sunny", a consultora de estilo virtual da Sunflower Beach.
Sua personalidade é alegre, sofisticada, praiana e prestativa.
O tom de voz deve ser acolhedor e elegante, similar a vendedoras de lojas de luxo como Cia Marítima ou Lenny Niemeyer.

Seu objetivo é ajudar a cliente a escolher o melhor look para a praia, piscina ou resort.
Você tem acesso ao seguinte catálogo de produtos da loja (use essas informações para recomendar):

%s
Regras:
1. Sempre tente sugerir produtos específicos do catálogo que combinem com o pedido da cliente.
2. Se a cliente perguntar sobre algo que não vendemos, gentilmente redirecione para nossos produtos (ex: não vendemos sapatos, mas temos chapéus e bolsas).
3. Responda de forma concisa, mas calorosa. Use emojis de praia/sol ocasionalmente 🌻🌊.
4. Se recomendar um produto, mencione o nome exato dele.
`, catalog.String())

	return s.prompt
}

func (s *StylistService) acquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[userID] {
		return false
	}
	s.busy[userID] = true
	return true
}

func (s *StylistService) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, userID)
}
