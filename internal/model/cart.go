package model

const (
	CartOpen   = 0
	CartClosed = 1
)

// Cart represents a shopping cart owned by a user. Closed is an integer
// flag (0 = open, nonzero = closed) and CreationTime is epoch millis,
// both kept as-is from the legacy schema.
type Cart struct {
	ID           int   `json:"id"`
	UserID       int   `json:"user_id" binding:"required"`
	CreationTime int64 `json:"creation_time"`
	Closed       int   `json:"closed"`
}

// CartPeriodFilter contains the parameters of the by-user-and-period query.
type CartPeriodFilter struct {
	UserID   int
	TimeDown int64
	TimeUp   int64
}
