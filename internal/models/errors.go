package models

import "errors"

// ErrUnknownModel reports a model name absent from the catalog.
var ErrUnknownModel = errors.New("models: unknown model")
