package stac

import (
	"context"
	"sync"
)

// Validator checks a STAC document against its schemas. Implementations
// typically resolve the core schema for kind plus each declared extension
// schema URI. None ships with this module; register one with SetValidator.
type Validator interface {
	Validate(ctx context.Context, kind ObjectKind, doc map[string]any, schemaURIs []string) error
}

var (
	validatorMu sync.RWMutex
	validator   Validator
)

// SetValidator installs v as the process-wide validator. Passing nil removes
// the current one.
func SetValidator(v Validator) {
	validatorMu.Lock()
	defer validatorMu.Unlock()
	validator = v
}

func currentValidator() Validator {
	validatorMu.RLock()
	defer validatorMu.RUnlock()
	return validator
}

func validateObject(ctx context.Context, obj Object, kind ObjectKind, schemaURIs []string) error {
	v := currentValidator()
	if v == nil {
		return ErrNoValidator
	}
	doc, err := toMap(obj)
	if err != nil {
		return err
	}
	return v.Validate(ctx, kind, doc, schemaURIs)
}
