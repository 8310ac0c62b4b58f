package ui

// Messages emitted by page components for the top-level router.

// LoginSubmitMsg carries the credential pair entered on the login page.
type LoginSubmitMsg struct {
	Username string
	Password string
}

// ProductSelectedMsg asks the router to open the detail view for a product.
type ProductSelectedMsg struct {
	ID int
}

// BackMsg asks the router to return to the catalog view.
type BackMsg struct{}
