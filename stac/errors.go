package stac

import (
	"errors"
	"fmt"
)

// ExtensionTypeError reports an extension applied to an object kind it does
// not support.
type ExtensionTypeError struct {
	// Extension is the short extension name, e.g. "datacube".
	Extension string
	// Type is the Go type of the rejected object.
	Type string
}

func (e *ExtensionTypeError) Error() string {
	return fmt.Sprintf("stac: %s extension does not apply to type %s", e.Extension, e.Type)
}

// ExtensionNotImplementedError reports an object that does not declare an
// extension's schema URI in stac_extensions.
type ExtensionNotImplementedError struct {
	SchemaURI string
	// Object identifies the host, by id or asset href.
	Object string
}

func (e *ExtensionNotImplementedError) Error() string {
	return fmt.Sprintf("stac: object %q does not implement extension %s", e.Object, e.SchemaURI)
}

// ErrNoValidator is returned by Validate when no Validator is registered.
var ErrNoValidator = errors.New("stac: no validator registered")
