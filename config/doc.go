// Package config provides the contracts shared by every configuration source.
//
// The package uses an interface-based design with four extension points:
//   - Parser: decodes raw bytes of one format into a value.Value tree
//   - DataFetcher: retrieves raw config data (file, inline text)
//   - Validator: validates a decoded struct
//   - Defaulter: applies default values before validation
//
// # Decoding
//
// Decode copies a value.Value tree into a Go struct using mapstructure and the
// `conf` struct tag. Populate runs Decode followed by the Defaulter and
// Validator hooks; Provider adds fetching, parsing and path navigation.
//
// # Path Navigation
//
// Provider accepts a path that targets a section of the document. Paths use
// colon (:) as the separator:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	"database:connection"       -> config["database"]["connection"]
//	""                          -> entire document
//
// # Example
//
//	type APIConfig struct {
//	    Timeout int    `conf:"timeout"`
//	    BaseURL string `conf:"base_url"`
//	}
//
//	provider := config.Provider(&APIConfig{}, "services:api")
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
package config
