// Package config provides thread-safe property management with layered
// sources: TOML, YAML or JSON files, environment variables, command-line
// arguments, and registered defaults, applied with configurable precedence.
//
// Properties are read either raw (Get), decoded into structs (Scan), or as
// variant cells from the value package (Property). The typed getters
// (String, Int64, Bool, Duration, BigDecimal, ...) convert through those
// cells and expand ${name} references against other properties and the
// environment.
//
// Quick Start:
//
//	type Settings struct {
//	    Server struct {
//	        Host string `toml:"host"`
//	        Port int    `toml:"port"`
//	    } `toml:"server"`
//	    URL string `toml:"url"`
//	}
//
//	defaults := Settings{URL: "http://${server.host}:${server.port}/"}
//	defaults.Server.Host = "localhost"
//	defaults.Server.Port = 8080
//
//	cfg, err := config.Quick(defaults, "MYAPP_", "app.toml")
//	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
//	    log.Fatal(err)
//	}
//
//	url, _ := cfg.String("url") // "http://localhost:8080/"
//
// Default Precedence (highest to lowest):
//  1. Command-line arguments (--server.port=9090)
//  2. Environment variables (MYAPP_SERVER_PORT=9090)
//  3. Configuration file (app.toml)
//  4. Default values
//
// Environment and command-line text is typed on load: "true", "false" and
// canonical integers and floats become bool, int64 and float64.
//
// DiscoverFile and Builder.WithFileDiscovery locate a config file from a
// flag, an environment variable or the usual XDG directories.
//
// SecurityOptions bound which files are read: relative paths climbing out
// of the working directory, oversized files and files owned by another user
// can each be refused.
//
// All operations are safe for concurrent use.
package config
