package config

import "github.com/dmitrijs2005/gophforum/internal/flagx"

// parseJson overlays cfg with the file named by -c/-config. Keys absent from
// the file keep their current values.
func parseJson(cfg *Config) error {
	return flagx.LoadJSON(flagx.JsonConfigFlags(), cfg)
}
