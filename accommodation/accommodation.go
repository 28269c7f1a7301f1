package accommodation

// Type classifies the resort's bookable resources.
type Type string

const (
	TypeRoom       Type = "room"
	TypePool       Type = "pool"
	TypeRestaurant Type = "restaurant"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeRoom, TypePool, TypeRestaurant:
		return Type(s), nil
	}
	return "", ErrInvalidType
}

type Accommodation struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          Type    `json:"type"`
	Description   string  `json:"description"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"pricePerNight"`
	Active        bool    `json:"active"`
}
