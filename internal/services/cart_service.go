// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Aleeffc/sunflowerbeach/internal/config"
	"github.com/Aleeffc/sunflowerbeach/internal/models"
	"github.com/Aleeffc/sunflowerbeach/internal/store"
)

var ErrCartEmpty = errors.New("cart is empty")

type CartService struct {
	store *store.Store
	cfg   *config.Config
}

type CartSummary struct {
	Items []models.CartItem `json:"items"`
	Count int               `json:"count"`
	Total float64           `json:"total"`
}

// CheckoutLink is the one-way hand-off to WhatsApp. The storefront opens the
// URL in a new tab; no order state exists after that.
type CheckoutLink struct {
	URL     string  `json:"url"`
	Message string  `json:"message"`
	Total   float64 `json:"total"`
}

func NewCartService(st *store.Store, cfg *config.Config) *CartService {
	return &CartService{store: st, cfg: cfg}
}

// Add puts one more unit of the product in the caller's bag.
func (s *CartService) Add(userID, productID string) (CartSummary, error) {
	product, err := s.store.ProductByID(productID)
	if err != nil {
		return CartSummary{}, err
	}
	return summarize(s.store.CartAdd(userID, product)), nil
}

// Remove deletes the whole line regardless of quantity.
func (s *CartService) Remove(userID, productID string) (CartSummary, error) {
	if err := s.store.CartRemove(userID, productID); err != nil {
		return CartSummary{}, err
	}
	return summarize(s.store.Cart(userID)), nil
}

func (s *CartService) Summary(userID string) CartSummary {
	return summarize(s.store.Cart(userID))
}

// Checkout renders the order as a WhatsApp message and wraps it in a wa.me
// deep link. The cart is left intact; the conversation takes over from here.
func (s *CartService) Checkout(userID string) (CheckoutLink, error) {
	summary := s.Summary(userID)
	if len(summary.Items) == 0 {
		return CheckoutLink{}, ErrCartEmpty
	}

	var b strings.Builder
	b.WriteString("*Olá! Gostaria de finalizar meu pedido na Sunflower Beach.*\n\n")
	b.WriteString("*Itens do Pedido:*\n")
	for _, item := range summary.Items {
		fmt.Fprintf(&b, "• %dx %s - R$ %.2f\n", item.Quantity, item.Name, item.Subtotal())
	}
	fmt.Fprintf(&b, "\n*Total: R$ %.2f*", summary.Total)
	b.WriteString("\n\nAguardo instruções para pagamento e entrega! 🌻")
	message := b.String()

	link := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + s.cfg.Checkout.WhatsAppNumber,
		RawQuery: url.Values{"text": {message}}.Encode(),
	}

	return CheckoutLink{
		URL:     link.String(),
		Message: message,
		Total:   summary.Total,
	}, nil
}

func summarize(items []models.CartItem) CartSummary {
	summary := CartSummary{Items: items}
	for _, item := range items {
		summary.Count += item.Quantity
		summary.Total += item.Subtotal()
	}
	return summary
}
