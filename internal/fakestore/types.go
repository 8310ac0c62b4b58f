package fakestore

// Product is a single catalog entry as returned by the API.
// Products are immutable once fetched; the client never writes them back.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating is the aggregate review score of a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// User is the profile record for an account.
type User struct {
	ID       int    `json:"id"`
	Name     Name   `json:"name"`
	Username string `json:"username"`
}

// Name is the structured first/last name of a user.
type Name struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Cart is a read-only list of line items owned by a user.
type Cart struct {
	ID       int        `json:"id"`
	UserID   int        `json:"userId"`
	Products []CartItem `json:"products"`
}

// CartItem is a (product, quantity) pair within a cart.
type CartItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Credentials is the username/password pair sent to the login endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
