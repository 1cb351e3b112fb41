// Package config loads runtime settings of the forum CLI.
//
// Sources, later ones win:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c or -config.
//  3. Command-line flags.
//
// Flags
//
//	-a string   host:port of the forum backend; empty runs in local mode
//	-d string   path of the local SQLite database
//	-l string   log level (debug, info, warn, error)
//
// JSON
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "forum.db",
//	  "log_level": "info"
//	}
package config
