package fiber

// BrokerConfigResponse represents the broker settings for dashboards
// @Description Broker connection settings
type BrokerConfigResponse struct {
	Host     string `json:"host" example:"mqtt.swedeniot.se"`
	Port     int    `json:"port" example:"9001"`
	Protocol string `json:"protocol" example:"wss"`
	Path     string `json:"path" example:"/ws"`
	UseSSL   bool   `json:"useSSL" example:"true"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
}
