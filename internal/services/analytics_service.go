// internal/services/analytics_service.go
package services

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/Aleeffc/sunflowerbeach/internal/models"
	"github.com/Aleeffc/sunflowerbeach/internal/store"
)

const mockTransactionCount = 20

// statusPool weights Aprovado 3:1:1 against Pendente and Cancelado.
var statusPool = []models.TransactionStatus{
	models.TransactionStatusApproved,
	models.TransactionStatusPending,
	models.TransactionStatusApproved,
	models.TransactionStatusCanceled,
	models.TransactionStatusApproved,
}

// AnalyticsService synthesizes the dashboard's report data from the current
// product list. The output is explicitly mock content, stable per catalog
// snapshot: it is memoized on the store's catalog version and regenerated
// only when products change.
type AnalyticsService struct {
	store *store.Store
	rng   *rand.Rand
	now   func() time.Time

	mu            sync.Mutex
	cachedVersion uint64
	cached        []models.Transaction
}

type VendorReport struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ActiveAds  int     `json:"active_ads"`
	SalesCount int     `json:"sales_count"`
	Revenue    float64 `json:"revenue"`
}

type DaySales struct {
	Day   string  `json:"day"`
	Sales float64 `json:"sales"`
}

type DashboardStats struct {
	TotalRevenue float64 `json:"total_revenue"`
	ItemsSold    int     `json:"items_sold"`
	ActiveAds    int     `json:"active_ads"`
	// ApprovalRate and WeeklyPerformance are static placeholder content,
	// not derived from the transaction list. Pending product-owner
	// confirmation before they become real metrics.
	ApprovalRate      float64    `json:"approval_rate"`
	WeeklyPerformance []DaySales `json:"weekly_performance"`
}

// NewAnalyticsService builds the generator. rng is injectable so tests can
// assert exact generated transaction sets; pass nil for a time-seeded source.
func NewAnalyticsService(st *store.Store, rng *rand.Rand) *AnalyticsService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AnalyticsService{
		store: st,
		rng:   rng,
		now:   time.Now,
	}
}

// Transactions returns the session's synthetic transaction list, newest id
// first. Regenerated only when the catalog version moves.
func (s *AnalyticsService) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.store.CatalogVersion()
	if s.cached != nil && version == s.cachedVersion {
		return append([]models.Transaction(nil), s.cached...)
	}

	products := s.store.Products()
	transactions := make([]models.Transaction, 0, mockTransactionCount)
	for i := 0; i < mockTransactionCount; i++ {
		if len(products) == 0 {
			break
		}
		product := products[s.rng.Intn(len(products))]
		age := time.Duration(s.rng.Int63n(1_000_000_000)) * time.Millisecond

		transactions = append(transactions, models.Transaction{
			ID:          fmt.Sprintf("TRX-%d", 9000+i),
			ProductID:   product.ID,
			ProductName: product.Name,
			VendorID:    product.VendorID,
			Amount:      product.Price,
			Date:        s.now().Add(-age).Format("02/01/2006"),
			Status:      statusPool[s.rng.Intn(len(statusPool))],
		})
	}

	// Newest first
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].ID > transactions[j].ID
	})

	s.cachedVersion = version
	s.cached = transactions
	return append([]models.Transaction(nil), s.cached...)
}

// TransactionsFor filters the session's transactions by the caller's reach:
// admins see everything, vendors only their own sales.
func (s *AnalyticsService) TransactionsFor(userID string) ([]models.Transaction, error) {
	user, err := s.store.UserByID(userID)
	if err != nil {
		return nil, err
	}

	all := s.Transactions()
	if models.Authorize(user.Role, models.CapabilityViewAllReports) {
		return all, nil
	}

	mine := make([]models.Transaction, 0, len(all))
	for _, trx := range all {
		if trx.VendorID == user.ID {
			mine = append(mine, trx)
		}
	}
	return mine, nil
}

// Stats aggregates the caller's approved sales plus the static placeholder
// metrics shown on the dashboard cards.
func (s *AnalyticsService) Stats(userID string) (DashboardStats, error) {
	user, err := s.store.UserByID(userID)
	if err != nil {
		return DashboardStats{}, err
	}

	activeAds := 0
	seeAll := models.Authorize(user.Role, models.CapabilityViewAllReports)
	for _, p := range s.store.Products() {
		if seeAll || p.VendorID == user.ID {
			activeAds++
		}
	}

	stats := DashboardStats{
		ActiveAds:    activeAds,
		ApprovalRate: 98,
		WeeklyPerformance: []DaySales{
			{Day: "Seg", Sales: 2400},
			{Day: "Ter", Sales: 1800},
			{Day: "Qua", Sales: 3200},
			{Day: "Qui", Sales: 2900},
			{Day: "Sex", Sales: 4500},
			{Day: "Sáb", Sales: 5800},
			{Day: "Dom", Sales: 5100},
		},
	}

	transactions, err := s.TransactionsFor(userID)
	if err != nil {
		return DashboardStats{}, err
	}
	for _, trx := range transactions {
		if trx.Status == models.TransactionStatusApproved {
			stats.TotalRevenue += trx.Amount
			stats.ItemsSold++
		}
	}
	return stats, nil
}

// VendorReports rolls up approved sales per approved vendor. A vendor's row
// never includes another vendor's transactions.
func (s *AnalyticsService) VendorReports() []VendorReport {
	transactions := s.Transactions()
	products := s.store.Products()

	var reports []VendorReport
	for _, user := range s.store.Users() {
		if user.Role != models.RoleVendor || !user.IsApproved {
			continue
		}

		report := VendorReport{ID: user.ID, Name: user.Name}
		for _, p := range products {
			if p.VendorID == user.ID {
				report.ActiveAds++
			}
		}
		for _, trx := range transactions {
			if trx.VendorID == user.ID && trx.Status == models.TransactionStatusApproved {
				report.SalesCount++
				report.Revenue += trx.Amount
			}
		}
		reports = append(reports, report)
	}
	return reports
}

// GlobalTotals sums approved revenue and sale counts over every vendor id in
// the transaction list.
func (s *AnalyticsService) GlobalTotals() (revenue float64, salesCount int) {
	for _, trx := range s.Transactions() {
		if trx.Status == models.TransactionStatusApproved {
			revenue += trx.Amount
			salesCount++
		}
	}
	return revenue, salesCount
}
