package request

type IntegrationEndpointRequest struct {
	URL    string `json:"url" binding:"omitempty,url"`
	APIKey string `json:"apiKey"`
}

type IntegrationsRequest struct {
	UptimeKuma IntegrationEndpointRequest `json:"uptimeKuma"`
	Authentik  IntegrationEndpointRequest `json:"authentik"`
}
