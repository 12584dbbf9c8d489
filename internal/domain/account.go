package domain

import "time"

// Account holds a user's ruby balance. Accounts are provisioned by the
// surrounding platform; this engine only debits and credits them.
type Account struct {
	ID        string    `json:"account_id" db:"account_id"`
	Username  string    `json:"username" db:"username"`
	Balance   int64     `json:"balance" db:"balance"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
