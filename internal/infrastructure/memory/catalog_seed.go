package memory

import (
	"github.com/baechuer/grandveggie/internal/application/catalog"
	"github.com/baechuer/grandveggie/internal/domain"
)

// DefaultCatalog is the restaurant content served by the public pages and
// the admin dashboard.
func DefaultCatalog() catalog.Content {
	return catalog.Content{
		Hero: domain.HeroContent{
			Headline: "Where every ingredient tells a story",
			Subtext:  "Experience the art of clean eating with chef-curated organic dishes sourced from local farms",
			Image:    "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=1920&q=80",
			CTAText:  "Explore Our Menus",
		},
		Restaurant: domain.RestaurantInfo{
			Name:  "Grand Veggie",
			Phone: "+1 (555) 123-4567",
			Email: "hello@grandveggie.com",
		},
		Brand: domain.BrandContent{
			Philosophy: domain.Philosophy{
				Headline: "Clean Food. Real Ingredients. No Compromise.",
				Pillars: []domain.Pillar{
					{
						Title:       "Organic Sourcing",
						Description: "We partner with local organic farms within 100 miles to ensure the freshest produce reaches your plate within 24 hours of harvest.",
					},
					{
						Title:       "Farm-to-Table",
						Description: "Our direct relationships with farmers eliminate middlemen, ensuring fair prices for growers and the highest quality for you.",
					},
					{
						Title:       "No Preservatives",
						Description: "Every dish is prepared fresh daily. No artificial additives, no shortcuts, no compromises on quality.",
					},
					{
						Title:       "Chef Curated",
						Description: "Our Michelin-trained chefs craft each menu item with intention, balancing nutrition and exceptional flavor.",
					},
				},
			},
			Stats: domain.BrandStats{
				OrganicIngredients: "100%",
				LocalFarms:         "25+",
				YearsExperience:    "15",
				HappyGuests:        "50K+",
			},
		},
		Dishes:       defaultDishes(),
		Reservations: defaultReservations(),
	}
}

func defaultDishes() []domain.Dish {
	return []domain.Dish{
		{
			ID:          "1",
			Name:        "Tuscan Harvest Bowl",
			Category:    domain.CategoryBowl,
			Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800&q=80",
			Description: "Ancient grains, roasted vegetables, tahini drizzle, and fresh herbs",
			Price:       18,
			Calories:    520,
			Tags:        []string{"GF", "Vegan"},
		},
		{
			ID:          "2",
			Name:        "Mediterranean Greens",
			Category:    domain.CategorySalad,
			Image:       "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=800&q=80",
			Description: "Baby kale, cucumber, tomatoes, olives, feta, lemon vinaigrette",
			Price:       16,
			Calories:    340,
			Tags:        []string{"GF", "Vegetarian"},
		},
		{
			ID:          "3",
			Name:        "Golden Glow Detox",
			Category:    domain.CategoryDetox,
			Image:       "https://images.unsplash.com/photo-1610970881699-44a5587cabec?w=800&q=80",
			Description: "Turmeric quinoa, golden beets, citrus segments, ginger dressing",
			Price:       20,
			Calories:    380,
			Tags:        []string{"GF", "Vegan", "Detox"},
		},
		{
			ID:          "4",
			Name:        "Forest Mushroom Risotto",
			Category:    domain.CategoryMain,
			Image:       "https://images.unsplash.com/photo-1476124369491-e7addf5db371?w=800&q=80",
			Description: "Wild mushrooms, arborio rice, truffle oil, parmesan crisp",
			Price:       24,
			Calories:    580,
			Tags:        []string{"GF", "Vegetarian"},
		},
		{
			ID:          "5",
			Name:        "Ocean's Bounty Poke",
			Category:    domain.CategoryBowl,
			Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800&q=80",
			Description: "Sustainably caught tuna, avocado, edamame, pickled ginger",
			Price:       22,
			Calories:    450,
			Tags:        []string{"GF", "Dairy-Free"},
		},
		{
			ID:          "6",
			Name:        "Roasted Root Symphony",
			Category:    domain.CategoryVegan,
			Image:       "https://images.unsplash.com/photo-1543339308-43e59d6b73a6?w=800&q=80",
			Description: "Seasonal root vegetables, herb-roasted, cashew cream",
			Price:       19,
			Calories:    420,
			Tags:        []string{"GF", "Vegan"},
		},
		{
			ID:          "7",
			Name:        "Citrus & Avocado Zen",
			Category:    domain.CategorySalad,
			Image:       "https://images.unsplash.com/photo-1505253716362-afaea1d3d1af?w=800&q=80",
			Description: "Grapefruit, orange, avocado, watercress, citrus vinaigrette",
			Price:       15,
			Calories:    290,
			Tags:        []string{"GF", "Vegan"},
		},
		{
			ID:          "8",
			Name:        "Green Vitality Bowl",
			Category:    domain.CategoryBowl,
			Image:       "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?w=800&q=80",
			Description: "Spinach, kale, green apple, walnuts, hemp seeds, matcha dressing",
			Price:       17,
			Calories:    360,
			Tags:        []string{"GF", "Vegan", "Detox"},
		},
	}
}

func defaultReservations() []domain.Reservation {
	return []domain.Reservation{
		{
			ID:              "res-1",
			Name:            "Sarah Johnson",
			Email:           "sarah.j@email.com",
			Phone:           "+1 555-0123",
			Date:            "2025-02-15",
			Time:            "19:00",
			Guests:          4,
			Status:          domain.StatusConfirmed,
			SpecialRequests: "Window table preferred",
			CreatedAt:       "2025-02-10T10:30:00Z",
		},
		{
			ID:        "res-2",
			Name:      "Michael Chen",
			Email:     "m.chen@email.com",
			Phone:     "+1 555-0456",
			Date:      "2025-02-16",
			Time:      "20:00",
			Guests:    2,
			Status:    domain.StatusPending,
			CreatedAt: "2025-02-11T14:20:00Z",
		},
		{
			ID:              "res-3",
			Name:            "Emma Williams",
			Email:           "emma.w@email.com",
			Phone:           "+1 555-0789",
			Date:            "2025-02-14",
			Time:            "18:30",
			Guests:          6,
			Status:          domain.StatusConfirmed,
			SpecialRequests: "Celebration dinner - birthday cake",
			CreatedAt:       "2025-02-09T09:15:00Z",
		},
	}
}
