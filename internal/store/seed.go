// internal/store/seed.go
package store

import "github.com/Aleeffc/sunflowerbeach/internal/models"

// DefaultSiteSettings is the stock storefront customization.
var DefaultSiteSettings = models.SiteSettings{
	HeroImage:            "https://images.unsplash.com/photo-1598312320868-b2262f54422f?q=80&w=2070&auto=format&fit=crop",
	HeroTitle:            "Axé & Sol",
	HeroSubtitle:         "A energia vibrante da Bahia em cada detalhe do seu verão.",
	BottomBannerImage:    "https://images.unsplash.com/photo-1565626424178-269d05cc7087?q=80&w=2574&auto=format&fit=crop",
	BottomBannerTitle:    "\"Onde o sol beija o mar\"",
	BottomBannerSubtitle: "Lifestyle Sunflower Beach",
}

func initialUsers() []models.User {
	return []models.User{
		{
			ID:         "admin-1",
			Name:       "Adim",
			Password:   "0906",
			Role:       models.RoleAdmin,
			IsApproved: true,
		},
		{
			ID:         "vendor-1",
			Name:       "Maria Moda Praia",
			Password:   "123",
			Role:       models.RoleVendor,
			IsApproved: true,
		},
	}
}

func initialProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Biquíni Sunflower Gold",
			Price:       289.90,
			Category:    models.CategoryBikinis,
			Image:       "https://images.unsplash.com/photo-1532453288672-3a27e9be9efd?q=80&w=1000&auto=format&fit=crop",
			Description: "Conjunto clássico com estampa exclusiva de girassóis e acabamento em ouro velho.",
			IsNew:       true,
			VendorID:    "admin-1",
			Sizes:       []string{"P", "M", "G"},
			Colors:      []string{"Amarelo Ouro", "Preto"},
			Material:    "Lycra Biodegradável UV50+",
		},
		{
			ID:          "2",
			Name:        "Maiô Engana Mamãe Noir",
			Price:       349.00,
			Category:    models.CategoryOnePiece,
			Image:       "https://images.unsplash.com/photo-1574365576393-1c1efdf84161?q=80&w=1000&auto=format&fit=crop",
			Description: "Elegância e sofisticação em um design recortado que valoriza a silhueta.",
			VendorID:    "admin-1",
			Sizes:       []string{"P", "M", "G", "GG"},
			Colors:      []string{"Preto", "Branco"},
			Material:    "Poliamida Premium",
		},
		{
			ID:          "3",
			Name:        "Saída de Praia Linho",
			Price:       420.00,
			Category:    models.CategoryCoverUps,
			Image:       "https://images.unsplash.com/photo-1516762689617-e1cffcef479d?q=80&w=1000&auto=format&fit=crop",
			Description: "Tecido leve e respirável, perfeito para o pôr do sol à beira-mar.",
			IsNew:       true,
			VendorID:    "vendor-1",
			Sizes:       []string{"Único"},
			Colors:      []string{"Off-White", "Areia"},
			Material:    "100% Linho",
		},
		{
			ID:          "4",
			Name:        "Biquíni Ocean Blue",
			Price:       259.90,
			Category:    models.CategoryBikinis,
			Image:       "https://images.unsplash.com/photo-1624224971170-2f84fed5eb5e?q=80&w=1000&auto=format&fit=crop",
			Description: "O clássico cortininha em um tom de azul profundo inspirado no mar do Rio Vermelho.",
			VendorID:    "admin-1",
			Sizes:       []string{"PP", "P", "M"},
			Colors:      []string{"Azul Royal", "Azul Marinho"},
			Material:    "Lycra com textura",
		},
		{
			ID:          "5",
			Name:        "Chapéu Palha Jeri",
			Price:       189.00,
			Category:    models.CategoryAccessories,
			Image:       "https://images.unsplash.com/photo-1521335629791-ce4aec6c1d01?q=80&w=1000&auto=format&fit=crop",
			Description: "Proteção e estilo. Feito à mão por artesãos locais.",
			VendorID:    "vendor-1",
			Sizes:       []string{"Único (Ajustável)"},
			Colors:      []string{"Palha Natural"},
			Material:    "Palha Carnaúba",
		},
		{
			ID:          "6",
			Name:        "Maiô Decote Tropical",
			Price:       319.90,
			Category:    models.CategoryOnePiece,
			Image:       "https://images.unsplash.com/photo-1582639510494-c80b5de9f148?q=80&w=1000&auto=format&fit=crop",
			Description: "Estampa de folhagens vibrantes. Versátil para usar como body no Pelourinho.",
			VendorID:    "admin-1",
			Sizes:       []string{"M", "G", "GG"},
			Colors:      []string{"Verde Folha", "Azul Turquesa"},
			Material:    "Elastano e Poliéster Reciclado",
		},
		{
			ID:          "7",
			Name:        "Canga Pareô Floral",
			Price:       149.90,
			Category:    models.CategoryCoverUps,
			Image:       "https://images.unsplash.com/photo-1551855753-42243a606249?q=80&w=1000&auto=format&fit=crop",
			Description: "Estampa vibrante que combina com diversos biquínis da coleção.",
			VendorID:    "vendor-1",
			Sizes:       []string{"1,40m x 1,00m"},
			Colors:      []string{"Floral Laranja", "Floral Rosa"},
			Material:    "Viscose",
		},
		{
			ID:          "8",
			Name:        "Bolsa de Praia Ratan",
			Price:       299.00,
			Category:    models.CategoryAccessories,
			Image:       "https://images.unsplash.com/photo-1544816155-12df9643f363?q=80&w=1000&auto=format&fit=crop",
			Description: "Espaçosa e resistente, cabe tudo o que você precisa para um dia de sol.",
			IsNew:       true,
			VendorID:    "admin-1",
			Sizes:       []string{"Grande"},
			Colors:      []string{"Natural"},
			Material:    "Ratan e Couro Vegano",
		},
		{
			ID:          "9",
			Name:        "Biquíni Hot Pants Rust",
			Price:       299.90,
			Category:    models.CategoryBikinis,
			Image:       "https://images.unsplash.com/photo-1575425186775-b8de9a427e67?q=80&w=1000&auto=format&fit=crop",
			Description: "Cintura alta para maior conforto e estilo retrô chic em tons terrosos.",
			VendorID:    "admin-1",
			Sizes:       []string{"P", "M", "G", "GG"},
			Colors:      []string{"Ferrugem", "Terracota"},
			Material:    "Lycra Premium",
		},
	}
}

// Seed loads the fixture users, catalog and default settings. Called once at
// startup; state accumulated afterwards is lost on restart.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = s.users[:0]
	for _, u := range initialUsers() {
		seeded := u
		s.users = append(s.users, &seeded)
	}

	s.products = s.products[:0]
	for _, p := range initialProducts() {
		seeded := p
		s.products = append(s.products, &seeded)
	}
	s.catalogVersion++

	s.settings = DefaultSiteSettings
}

// NewSeeded is the common startup path: an empty store loaded with fixtures.
func NewSeeded() *Store {
	s := New()
	s.Seed()
	return s
}
