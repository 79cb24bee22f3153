package response

type Response struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
