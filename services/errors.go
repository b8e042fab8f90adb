package services

import (
	"errors"

	"github.com/AGTechathon/Agriminds/pkg/apperr"
	"github.com/AGTechathon/Agriminds/utils"
)

// notFoundOr turns a missing row into NotFound(msg) and anything else into a server error.
func notFoundOr(err error, msg string) error {
	if apperr.Is(err, apperr.NotFound) {
		return apperr.NewNotFound(msg)
	}
	return apperr.Internal(err)
}

// passthrough keeps errors that are already classified and wraps the rest.
func passthrough(err error) error {
	var ae *apperr.Error
	if err == nil || errors.As(err, &ae) {
		return err
	}
	return apperr.Internal(err)
}

// uploadErr reports a rejected upload as the client's mistake.
func uploadErr(err error, field string) error {
	switch {
	case errors.Is(err, utils.ErrNotAnImage):
		return apperr.NewInvalidInput(field + ": not a supported image")
	case errors.Is(err, utils.ErrImageTooLarge):
		return apperr.NewInvalidInput(field + ": image too large")
	}
	return apperr.Internal(err)
}
