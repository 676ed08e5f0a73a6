// Package validation provides input validation for imbikit configuration
// and for consuming services.
//
// It supports struct tag validation (using the validator library) and
// programmatic validation with error collection. Configuration structs in
// the settings package use the struct tag path.
//
// # Struct Tag Validation
//
//	type Section struct {
//	    Port int `mapstructure:"port" validate:"gte=1,lte=65535"`
//	}
//	err := validation.Struct(section)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name)
//	err := v.Err()
package validation
