package convo

import "time"

// Category selects which contextual instruction block is injected into the
// generation prompt. Button tokens are stored as-is; anything outside the
// known set falls back to the general block at compose time.
type Category string

const (
	CategoryDestinations Category = "destinos"
	CategoryGastronomy   Category = "gastronomia"
	CategoryActivities   Category = "actividades"
	CategoryGeneral      Category = "general"
)

// Session captures the per-user conversation state. The only attribute that
// survives between messages is the currently selected category.
type Session struct {
	UserID    int64     `json:"userId"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}
