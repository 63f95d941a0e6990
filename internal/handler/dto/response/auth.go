package response

type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
