package domain

import "time"

// ItemTemplate is the immutable definition of a collectible. Templates are
// created by admin tooling and are read-only to this engine.
type ItemTemplate struct {
	ID         int       `json:"template_id" db:"template_id"`
	Name       string    `json:"name" db:"name"`
	Rarity     Rarity    `json:"rarity" db:"rarity"`
	Collection string    `json:"collection" db:"collection"`
	ImageURL   string    `json:"image_url" db:"image_url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
