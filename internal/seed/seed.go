package seed

import (
	"context"
	"fmt"

	"retify/internal/domain"
	identityrepo "retify/internal/repository/identity"

	"golang.org/x/crypto/bcrypt"
)

// Properties returns the sample property listings.
func Properties() []domain.Listing {
	return []domain.Listing{
		{
			ID:          1,
			Title:       "Luxury Apartment in Bandra",
			Location:    "Bandra West, Mumbai",
			Price:       45000,
			Image:       "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?auto=format&fit=crop&w=2070&q=80",
			Type:        "Apartment",
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        1200,
			Featured:    true,
			Description: "A luxurious 3BHK apartment in the heart of Bandra with modern amenities and great connectivity.",
		},
		{
			ID:          2,
			Title:       "Modern Villa in Whitefield",
			Location:    "Whitefield, Bangalore",
			Price:       75000,
			Image:       "https://images.unsplash.com/photo-1613977257363-707ba9348227?auto=format&fit=crop&w=2070&q=80",
			Type:        "Villa",
			Bedrooms:    4,
			Bathrooms:   3,
			Area:        2200,
			Featured:    true,
			Description: "Spacious villa with garden and modern amenities in Whitefield.",
		},
	}
}

// Electronics returns the sample electronics listings.
func Electronics() []domain.Listing {
	return []domain.Listing{
		{
			ID:          1,
			Title:       "MacBook Pro 16-inch",
			Brand:       "Apple",
			Price:       12000,
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=2070&q=80",
			Category:    "Laptop",
			Specs:       []string{"16GB RAM", "1TB SSD", "M1 Chip"},
			Rating:      4.8,
			Featured:    true,
			Description: "Powerful MacBook Pro for professional work and creative tasks.",
		},
		{
			ID:          2,
			Title:       "Sony A7III Camera",
			Brand:       "Sony",
			Price:       8000,
			Image:       "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?auto=format&fit=crop&w=2070&q=80",
			Category:    "Camera",
			Specs:       []string{"24.2MP", "4K Video", "Full Frame"},
			Rating:      4.6,
			Featured:    true,
			Description: "Professional full-frame mirrorless camera for photography enthusiasts.",
		},
	}
}

// Vehicles returns the sample vehicle listings.
func Vehicles() []domain.Listing {
	return []domain.Listing{
		{
			ID:          1,
			Title:       "Yamaha MT-15",
			Brand:       "Yamaha",
			Price:       3000,
			Image:       "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?auto=format&fit=crop&w=2064&q=80",
			Category:    "Bike",
			Specs:       []string{"155cc", "40kmpl", "Sports"},
			Rating:      4.7,
			Featured:    true,
			Description: "Sporty bike with great performance and mileage.",
		},
		{
			ID:          2,
			Title:       "Hyundai Creta",
			Brand:       "Hyundai",
			Price:       15000,
			Image:       "https://images.unsplash.com/photo-1621330396140-8dff8d8c0415?auto=format&fit=crop&w=2080&q=80",
			Category:    "Car",
			Specs:       []string{"Petrol", "5 Seater", "SUV"},
			Rating:      4.4,
			Description: "Comfortable SUV for family trips and daily commute.",
		},
	}
}

// Apply inserts the demo account for manual testing. The password is hashed
// at startup so no plaintext secret lives in the repository.
func Apply(ctx context.Context, identities identityrepo.Repository) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	_, err = identities.Create(ctx, domain.User{
		Email:        "admin@retify.com",
		PasswordHash: string(hashed),
		Name:         "Admin User",
		Phone:        "+91 9876543210",
	})
	if err != nil {
		return fmt.Errorf("create demo account: %w", err)
	}
	return nil
}
