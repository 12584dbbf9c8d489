package domain

import "time"

// OwnedInstance is a concrete item bound to exactly one account at a time.
// Ownership is reassigned on marketplace purchase, never duplicated.
// Locked instances cannot be listed or transferred.
type OwnedInstance struct {
	ID         string    `json:"instance_id" db:"instance_id"`
	TemplateID int       `json:"template_id" db:"template_id"`
	AccountID  string    `json:"account_id" db:"account_id"`
	Locked     bool      `json:"locked" db:"locked"`
	AcquiredAt time.Time `json:"acquired_at" db:"acquired_at"`

	// Template metadata, populated on reads that join item_templates.
	Template *ItemTemplate `json:"template,omitempty"`
}
