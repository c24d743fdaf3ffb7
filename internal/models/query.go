package models

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Query string `json:"query" validate:"required"`
}

// QueryResponse echoes the question alongside the generated answer.
type QueryResponse struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}
