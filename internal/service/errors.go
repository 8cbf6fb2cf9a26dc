package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks input errors so handlers can map them to 400s.
var ErrValidation = errors.New("invalid input")

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidation, err)
}
