package dto

type QueryRequest struct {
	Query    string `json:"query"`
	Property string `json:"property"`
}

type AnswerResponse struct {
	Answer string `json:"answer"`
}
