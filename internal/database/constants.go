package database

import "time"

// Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections kept warm in the pool
	DefaultMinConnections = 2

	// DefaultPingTimeout bounds the startup connectivity check
	DefaultPingTimeout = 5 * time.Second
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString  = "failed to parse connection string"
	ErrMsgFailedToCreatePool       = "failed to create connection pool"
	ErrMsgFailedToPingDatabase     = "failed to ping database"
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
)

// Log Messages
const (
	LogMsgConnected = "Connected to the database"
)
