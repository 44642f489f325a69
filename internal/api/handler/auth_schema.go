package handler

// msgBadRequest is returned on malformed or invalid request payloads. The
// wire contract is localized, matching the error handler's messages.
const msgBadRequest = "Некорректные данные запроса"

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userInfo is the public projection of a user. The password never appears in
// any response.
type userInfo struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type loginResponse struct {
	User  userInfo `json:"user"`
	Token string   `json:"token"`
}

type verifyResponse struct {
	User userInfo `json:"user"`
}
