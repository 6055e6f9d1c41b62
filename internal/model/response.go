package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}

type RootResponse struct {
	Name      string   `json:"name"`
	OK        bool     `json:"ok"`
	Docs      string   `json:"docs"`
	Endpoints []string `json:"endpoints"`
}
