package models

// Order is the persisted record of a completed checkout. It is created once
// when a payment session is reconciled and never mutated afterwards. ID is
// the payment session ID.
type Order struct {
	ID       string      `json:"id" firestore:"id"`
	UserID   string      `json:"userId" firestore:"userId"`
	Total    float64     `json:"total" firestore:"total"`
	Customer string      `json:"customer" firestore:"customer"`
	Email    string      `json:"email" firestore:"email"`
	Items    []OrderItem `json:"items" firestore:"items"`
	Date     string      `json:"date" firestore:"date"`
}

// OrderItem is one purchased line, priced in major currency units.
type OrderItem struct {
	Name     string  `json:"name" firestore:"name"`
	Quantity int     `json:"quantity" firestore:"quantity"`
	Price    float64 `json:"price" firestore:"price"`
	Image    string  `json:"image" firestore:"image"`
}
