package catalog

import (
	"strings"

	"github.com/baechuer/grandveggie/internal/domain"
)

// AllCategories is the pseudo category that disables category filtering.
const AllCategories = "All"

// SearchDishes matches query case-insensitively against name or category.
// An empty query returns every dish in catalog order.
func (s *Service) SearchDishes(query string) []domain.Dish {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Dish, 0, len(s.content.Dishes))
	for _, d := range s.content.Dishes {
		if q == "" ||
			strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(string(d.Category)), q) {
			out = append(out, copyDish(d))
		}
	}
	return out
}

// DishesByCategory filters on an exact category. "" and "All" return everything.
func (s *Service) DishesByCategory(category string) []domain.Dish {
	out := make([]domain.Dish, 0, len(s.content.Dishes))
	for _, d := range s.content.Dishes {
		if category == "" || category == AllCategories || string(d.Category) == category {
			out = append(out, copyDish(d))
		}
	}
	return out
}

// Categories lists "All" followed by each category in first-seen order.
func (s *Service) Categories() []string {
	out := []string{AllCategories}
	seen := map[domain.DishCategory]bool{}
	for _, d := range s.content.Dishes {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, string(d.Category))
		}
	}
	return out
}

// FilterMenu applies the search query and then the category filter, the way
// the menu gallery combines its search box and category tabs.
func (s *Service) FilterMenu(query, category string) []domain.Dish {
	dishes := s.SearchDishes(query)
	if category == "" || category == AllCategories {
		return dishes
	}
	out := dishes[:0]
	for _, d := range dishes {
		if string(d.Category) == category {
			out = append(out, d)
		}
	}
	return out
}

func (s *Service) GetDish(id string) (domain.Dish, error) {
	for _, d := range s.content.Dishes {
		if d.ID == id {
			return copyDish(d), nil
		}
	}
	return domain.Dish{}, domain.ErrDishNotFound()
}

func copyDish(d domain.Dish) domain.Dish {
	if d.Tags != nil {
		d.Tags = append([]string(nil), d.Tags...)
	}
	return d
}
