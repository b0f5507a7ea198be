package repository

import "time"

// JSON tags on the read models match the wire format the storefront
// already consumes: "format" for the formats column, "time" for
// delivery_time, "reviews" for reviews_count, "author"/"product"/
// "helpful"/"date" on reviews.

// Product is the catalog read model. The description column is stored
// but not part of listings.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        int     `json:"price"`
	Complexity   string  `json:"complexity"`
	Formats      string  `json:"format"`
	DeliveryTime string  `json:"time"`
	Color        string  `json:"color"`
	InStock      bool    `json:"in_stock"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviews"`
}

// Order is the order read model, including its items.
type Order struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"order_number"`
	Status          string      `json:"status"`
	DeliveryService string      `json:"delivery_service"`
	Total           int         `json:"total"`
	ClientName      string      `json:"client_name"`
	TrackingNumber  *string     `json:"tracking_number"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `json:"items"`
}

// OrderItem is a captured line of an order: the product name and price
// at purchase time, immutable after creation.
type OrderItem struct {
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
	Price int    `json:"price"`
}

// User is the profile read model. The credential never leaves the
// repository except through UserCredentials for login.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone"`
	City      *string   `json:"city"`
	Company   *string   `json:"company"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCredentials carries the stored password hash for login checks.
type UserCredentials struct {
	ID           int64
	Name         string
	Email        string
	Role         string
	PasswordHash string
}

// Review is the review read model.
type Review struct {
	ID           int64     `json:"id"`
	AuthorName   string    `json:"author"`
	City         string    `json:"city"`
	Rating       int       `json:"rating"`
	Text         string    `json:"text"`
	ProductName  string    `json:"product"`
	Status       string    `json:"status"`
	HelpfulCount int       `json:"helpful"`
	CreatedAt    time.Time `json:"date"`
}
