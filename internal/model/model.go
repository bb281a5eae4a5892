package model

type UserStatus string

const (
	Pending UserStatus = "pending"
	Paid    UserStatus = "paid"
)

// User is a persisted user record. Amount is kept in cents.
type User struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     UserStatus
	Date       string
}

// UserRow is a row of the dashboard users listing.
type UserRow struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Account is the subset of a users row needed to sign in.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
