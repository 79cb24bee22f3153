package model

type IntegrationEndpoint struct {
	URL    string `json:"url"`
	APIKey string `json:"apiKey"`
}

func (e IntegrationEndpoint) Configured() bool {
	return e.URL != "" && e.APIKey != ""
}

type Integrations struct {
	UptimeKuma IntegrationEndpoint `json:"uptimeKuma"`
	Authentik  IntegrationEndpoint `json:"authentik"`
}
