package mockapi

import (
	"fmt"
	"time"

	"github.com/Liban-hassan-noor/eastlify-client/internal/auth"
	"github.com/Liban-hassan-noor/eastlify-client/internal/domain"
)

// SeedPassword is the password of every seeded demo account.
const SeedPassword = "eastlify-demo"

// Categories offered in the marketplace UI.
var Categories = []string{
	"Textiles",
	"Electronics",
	"Cosmetics",
	"Shoes",
	"Islamic Wear",
	"Wholesale",
}

// Streets of the Eastleigh shopping district.
var Streets = []string{
	"First Avenue",
	"Second Avenue",
	"Garage",
	"Yusuf Haji",
	"Bangledesh",
	"Eastleigh Mall",
	"Business Bay",
}

type seedShop struct {
	ownerName  string
	ownerEmail string
	shop       domain.Shop
	products   []domain.Product
}

// Seed loads the demo dataset: three shops with owners and a few products
// each. Every owner signs in with SeedPassword.
func (s *Server) Seed() error {
	hash, err := auth.HashPassword(SeedPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	created := time.Date(2023, time.November, 1, 9, 0, 0, 0, time.UTC)

	seeds := []seedShop{
		{
			ownerName:  "Abdullahi Mohamed",
			ownerEmail: "abdullahi@eastlify.so",
			shop: domain.Shop{
				ID:          "shop-alamin",
				Name:        "Al-Amin Textiles",
				Description: "Best Somali diracs, baatis, and premium fabrics. Wholesale and retail available.",
				Street:      "First Avenue",
				Phone:       "+254700000001",
				Categories:  []string{"Textiles", "Islamic Wear"},
				Rating:      4.5,
				TotalCalls:  145,
				Orders:      23,
				Sales:       85000,
			},
			products: []domain.Product{
				{ID: "prod-dirac-set", Name: "Dirac Set", Description: "Three-piece dirac with garbasaar and googaro", Price: 4500, Category: "Textiles", Stock: 20, InStock: true},
				{ID: "prod-baati", Name: "Baati", Description: "Soft cotton house dress", Price: 1200, CompareAtPrice: 1500, Category: "Textiles", Stock: 50, InStock: true},
			},
		},
		{
			ownerName:  "Hassan Kulmiye",
			ownerEmail: "hassan@eastlify.so",
			shop: domain.Shop{
				ID:          "shop-digital",
				Name:        "Digital World Islii",
				Description: "Latest iPhones, Samsungs, laptops and accessories. Best prices in Nairobi.",
				Street:      "Garage",
				Phone:       "+254700000002",
				Categories:  []string{"Electronics"},
				Rating:      4.8,
				TotalCalls:  210,
				Orders:      45,
				Sales:       420000,
			},
			products: []domain.Product{
				{ID: "prod-iphone", Name: "iPhone 13 Pro", Price: 120000, Category: "Electronics", Stock: 4, InStock: true},
				{ID: "prod-charger", Name: "Samsung Charger", Price: 2500, Category: "Electronics", Stock: 100, InStock: true},
			},
		},
		{
			ownerName:  "Amina Warsame",
			ownerEmail: "amina@eastlify.so",
			shop: domain.Shop{
				ID:          "shop-madina",
				Name:        "Madina Scents",
				Description: "Authentic Arabian perfumes and beauty products.",
				Street:      "Eastleigh Mall",
				Phone:       "+254700000003",
				Categories:  []string{"Cosmetics"},
				Rating:      4.2,
				TotalCalls:  56,
				Orders:      12,
				Sales:       35000,
			},
			products: []domain.Product{
				{ID: "prod-oud", Name: "Royal Oud", Description: "Concentrated oud oil, 12ml", Price: 3000, Category: "Cosmetics", Stock: 15, InStock: true},
			},
		},
	}

	for i, seed := range seeds {
		userID := fmt.Sprintf("user-seed-%d", i+1)
		seed.shop.Owner = userID
		seed.shop.CreatedAt = created

		user := domain.User{
			ID:    userID,
			Name:  seed.ownerName,
			Email: seed.ownerEmail,
			Phone: seed.shop.Phone,
		}
		if err := s.data.createUser(user, hash, seed.shop); err != nil {
			return fmt.Errorf("seed %s: %w", seed.shop.Name, err)
		}

		for _, p := range seed.products {
			p.Shop = seed.shop.ID
			p.CreatedAt = created
			s.data.createProduct(p)
		}
	}

	s.logger.Info("seeded demo dataset", "shops", len(seeds))
	return nil
}
