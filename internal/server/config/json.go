package config

import (
	"github.com/dmitrijs2005/gophforum/internal/flagx"
	"github.com/dmitrijs2005/gophforum/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Durations accept
// both "15m" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	MonitorAddr                  string         `json:"monitor_addr"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	S3PublicBaseURL              string         `json:"s3_public_base_url"`
	HousekeepingSchedule         string         `json:"housekeeping_schedule"`
	LogLevel                     string         `json:"log_level"`
}

func toJson(c *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC:             c.EndpointAddrGRPC,
		MonitorAddr:                  c.MonitorAddr,
		DatabaseDSN:                  c.DatabaseDSN,
		SecretKey:                    c.SecretKey,
		AccessTokenValidityDuration:  timex.Duration{Duration: c.AccessTokenValidityDuration},
		RefreshTokenValidityDuration: timex.Duration{Duration: c.RefreshTokenValidityDuration},
		S3RootUser:                   c.S3RootUser,
		S3RootPassword:               c.S3RootPassword,
		S3Bucket:                     c.S3Bucket,
		S3Region:                     c.S3Region,
		S3BaseEndpoint:               c.S3BaseEndpoint,
		S3PublicBaseURL:              c.S3PublicBaseURL,
		HousekeepingSchedule:         c.HousekeepingSchedule,
		LogLevel:                     c.LogLevel,
	}
}

// parseJson overlays config with the file named by -c/-config. Keys absent
// from the file keep their current values.
func parseJson(config *Config) error {
	return loadJson(config, flagx.JsonConfigFlags())
}

func loadJson(config *Config, path string) error {
	c := toJson(config)
	if err := flagx.LoadJSON(path, c); err != nil {
		return err
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.MonitorAddr = c.MonitorAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.S3PublicBaseURL = c.S3PublicBaseURL
	config.HousekeepingSchedule = c.HousekeepingSchedule
	config.LogLevel = c.LogLevel
	return nil
}
