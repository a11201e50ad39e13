package models

// MessageResponse is the uniform success envelope returned by write
// endpoints (register, create/delete reservation, contact).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform failure envelope. Handlers never put
// anything beyond a short human-readable message here; raw storage or
// driver internals must not leak to clients.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned by a successful login: the signed bearer token
// and the username it was issued for. The client keeps both locally and
// discards them on logout; the server holds no session state.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
