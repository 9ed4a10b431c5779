package config

// Connection details of the public temperature application.
// They are compiled in; nothing is read from the environment.
const (
	DefaultBaseURL     = "wss://websocket-integration-drogue-dev.apps.wonderful.iot-playground.org"
	DefaultApplication = "drogue-public-temperature"
	DefaultUsername    = "jbtrystram"
	DefaultAPIKey      = "put-your-secret-api-key-here"
)

// Endpoint holds everything needed to open the integration websocket.
type Endpoint struct {
	BaseURL     string
	Application string
	Username    string
	APIKey      string
}

func Load() Endpoint {
	return Endpoint{
		BaseURL:     DefaultBaseURL,
		Application: DefaultApplication,
		Username:    DefaultUsername,
		APIKey:      DefaultAPIKey,
	}
}
