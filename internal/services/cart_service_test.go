// internal/services/cart_service_test.go
package services

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleeffc/sunflowerbeach/internal/store"
)

func TestCartAddAndSummary(t *testing.T) {
	st := store.NewSeeded()
	svc := NewCartService(st, testConfig())

	summary, err := svc.Add("client-1", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.InDelta(t, 289.90, summary.Total, 0.001)

	summary, err = svc.Add("client-1", "1")
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.Items[0].Quantity)
	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 579.80, summary.Total, 0.001)

	_, err = svc.Add("client-1", "missing")
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestCartRemove(t *testing.T) {
	st := store.NewSeeded()
	svc := NewCartService(st, testConfig())

	_, err := svc.Add("client-1", "1")
	require.NoError(t, err)
	_, err = svc.Add("client-1", "1")
	require.NoError(t, err)

	summary, err := svc.Remove("client-1", "1")
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.Total)

	_, err = svc.Remove("client-1", "1")
	assert.ErrorIs(t, err, store.ErrCartItemMissing)
}

func TestCheckoutMessage(t *testing.T) {
	st := store.NewSeeded()
	svc := NewCartService(st, testConfig())

	_, err := svc.Add("client-1", "1")
	require.NoError(t, err)
	_, err = svc.Add("client-1", "1")
	require.NoError(t, err)
	_, err = svc.Add("client-1", "5")
	require.NoError(t, err)

	link, err := svc.Checkout("client-1")
	require.NoError(t, err)

	expected := "*Olá! Gostaria de finalizar meu pedido na Sunflower Beach.*\n\n" +
		"*Itens do Pedido:*\n" +
		"• 2x Biquíni Sunflower Gold - R$ 579.80\n" +
		"• 1x Chapéu Palha Jeri - R$ 189.00\n" +
		"\n*Total: R$ 768.80*" +
		"\n\nAguardo instruções para pagamento e entrega! 🌻"
	assert.Equal(t, expected, link.Message)
	assert.InDelta(t, 768.80, link.Total, 0.001)

	parsed, err := url.Parse(link.URL)
	require.NoError(t, err)
	assert.Equal(t, "https", parsed.Scheme)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/5571991370781", parsed.Path)
	assert.Equal(t, expected, parsed.Query().Get("text"))
}

func TestCheckoutLeavesCartIntact(t *testing.T) {
	st := store.NewSeeded()
	svc := NewCartService(st, testConfig())

	_, err := svc.Add("client-1", "1")
	require.NoError(t, err)

	_, err = svc.Checkout("client-1")
	require.NoError(t, err)

	assert.Len(t, svc.Summary("client-1").Items, 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	st := store.NewSeeded()
	svc := NewCartService(st, testConfig())

	_, err := svc.Checkout("client-1")
	assert.ErrorIs(t, err, ErrCartEmpty)
}
