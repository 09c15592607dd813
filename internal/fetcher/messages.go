package fetcher

import (
	"errors"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
	"github.com/CJWorkbench/googlesheets/internal/google"
)

// validationMessage maps a parameter problem to its user-facing
// message. Parameter checks happen before any network call.
func validationMessage(params domain.Params) domain.Message {
	if params.File == nil {
		return domain.Trans("error.params.noFile", "Please choose a file")
	}
	return domain.Trans("error.params.badFile",
		"This file cannot be fetched. Please choose a different file.")
}

// errorMessage maps a fetch error to exactly one stable user-facing
// message. Message IDs and wording follow the host's catalogue.
func errorMessage(err error) domain.Message {
	err = google.WrapError(err)

	switch {
	case errors.Is(err, domain.ErrAuthInvalid):
		return domain.Trans("error.http.status401",
			"Invalid credentials. Please reconnect to Google Drive.")
	case errors.Is(err, domain.ErrForbidden):
		return domain.Trans("error.http.status403",
			"You chose a file your logged-in user cannot access. "+
				"Please reconnect to Google Drive or choose a different file.")
	case errors.Is(err, domain.ErrNotFound):
		return domain.Trans("error.http.status404",
			"File not found. Please choose a different file.")
	case errors.Is(err, domain.ErrRateLimited):
		return domain.Trans("error.http.status429",
			"Google is limiting requests. Please wait a minute and try again.")
	case errors.Is(err, domain.ErrBadFormat):
		return domain.Trans("error.response.badFormat",
			"Google returned data in a format this step does not understand. "+
				"Please try again.")
	case google.IsTransport(err):
		return domain.Trans("error.http.transport",
			"Could not connect to Google. Please check your network and try again.")
	default:
		return domain.TransArgs("error.http.general",
			"Error fetching data from Google: {error}",
			map[string]any{"error": err.Error()})
	}
}
