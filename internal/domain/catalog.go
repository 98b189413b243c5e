package domain

type DishCategory string

const (
	CategorySalad DishCategory = "Salad"
	CategoryBowl  DishCategory = "Bowl"
	CategoryVegan DishCategory = "Vegan"
	CategoryDetox DishCategory = "Detox"
	CategoryMain  DishCategory = "Main"
)

type Dish struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    DishCategory `json:"category"`
	Image       string       `json:"image"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Calories    int          `json:"calories,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
}

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

func IsValidReservationStatus(s string) bool {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

type Reservation struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	Guests          int               `json:"guests"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
	Status          ReservationStatus `json:"status"`
	CreatedAt       string            `json:"createdAt"`
}

type HeroContent struct {
	Headline string `json:"headline"`
	Subtext  string `json:"subtext"`
	Image    string `json:"image"`
	CTAText  string `json:"ctaText"`
}

// RestaurantInfo is the contact block shown in the admin settings.
type RestaurantInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Pillar struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Philosophy struct {
	Headline string   `json:"headline"`
	Pillars  []Pillar `json:"pillars"`
}

type BrandStats struct {
	OrganicIngredients string `json:"organicIngredients"`
	LocalFarms         string `json:"localFarms"`
	YearsExperience    string `json:"yearsExperience"`
	HappyGuests        string `json:"happyGuests"`
}

type BrandContent struct {
	Philosophy Philosophy `json:"philosophy"`
	Stats      BrandStats `json:"stats"`
}

// DashboardStat is one tile on the admin dashboard. Value is a number or a
// preformatted string.
type DashboardStat struct {
	Label  string `json:"label"`
	Value  any    `json:"value"`
	Change string `json:"change"`
}
