// Package schema describes the settings a program accepts.
//
// A Schema lists one Field per setting. Each field declares its key in the
// configuration file, its command-line names, its shape (Kind and Type), where
// it may be supplied (Availability), how repeated list values combine
// (MultiValue) and an optional default.
//
// Schemas are plain values and are usually written as literals:
//
//	s := schema.Schema{
//	    Fields: []schema.Field{
//	        {Key: "port", Short: "p", Type: schema.Int, Default: 8080},
//	        {Key: "debug", Kind: schema.Boolean},
//	        {Key: "database_url", Availability: schema.ConfigOnly},
//	        {Key: "commands", Kind: schema.List, Availability: schema.CliOnly, Positional: true},
//	    },
//	}
//
// FromStruct builds the same description from `conf` and `help` struct tags.
// Validate rejects inconsistent schemas with ErrSchemaViolation.
package schema
