package domain

// BrokerSettings is what a browser dashboard needs to open its own MQTT
// connection to the broker the relay listens on.
type BrokerSettings struct {
	Host     string
	Port     int
	Protocol string
	Path     string
	UseSSL   bool
	Username string
	Password string
	Topic    string
}
