package http

type Request struct {
	Question string `json:"question"`
}
