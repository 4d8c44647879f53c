package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// registerRequest carries a new account. Password is capped at 72 bytes so a
// too-long password is a validation error instead of a bcrypt failure.
type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// taskRequest is shared by create and update: both accept title and
// description only. Owner and id are never part of the payload.
type taskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// --- Response types ---

// userResponse deliberately has no password field.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type taskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
}

type statusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
