package config

// Config holds runtime settings for the forum CLI.
type Config struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	DatabasePath       string `json:"database_path"`
	LogLevel           string `json:"log_level"`
}

// LoadDefaults sets local mode with the database next to the binary.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = ""
	c.DatabasePath = "forum.db"
	c.LogLevel = "info"
}

// RemoteEnabled reports whether a backend address is configured.
func (c *Config) RemoteEnabled() bool {
	return c.ServerEndpointAddr != ""
}

// LoadConfig applies defaults, then the JSON file, then flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
