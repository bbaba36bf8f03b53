package http

type Response struct {
	Response string `json:"response"`
}

// ErrorResponse mirrors the shape callers have always received:
// {"detail": {"message": "..."}}.
type ErrorResponse struct {
	Detail ErrorDetail `json:"detail"`
}

type ErrorDetail struct {
	Message string `json:"message"`
}
