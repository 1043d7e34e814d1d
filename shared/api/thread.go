package api

// ThreadResponse is the full body of GET /v1/threads/{threadId}.
type ThreadResponse struct {
	Status string     `json:"status"`
	Data   ThreadData `json:"data"`
}
