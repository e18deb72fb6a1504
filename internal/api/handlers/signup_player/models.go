package signup_player

// SignupPlayerRequest HTTP request model
type SignupPlayerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
