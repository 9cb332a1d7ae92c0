package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_JSON_PARSE   = "json"
	TYPE_REQUEST_PREP = "request-prep"
	TYPE_IO           = "io"
	TYPE_HTTP_STATUS  = "not-ok-http-status"
	TYPE_API_RESULT   = "api-result"
	TYPE_INVALID_DATA = "invalid-data"
)

type ApiError struct {
	Stage          string
	Type           string
	Action         string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	// ResultMessage is the "result_message" reported by ActiveCampaign
	// when a request is rejected with result_code=0.
	ResultMessage string
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else if e.ResultMessage != "" {
		err = e.ResultMessage
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"ActiveCampaign action '%s' failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Action, e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

func (e *ApiError) Unwrap() error {
	return e.SourceErr
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false for any
// ApiError that is not the exact same pointer.
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}

// IsType reports whether err is an *ApiError of the given type.
func IsType(err error, errType string) bool {
	var apiErr *ApiError
	return errors.As(err, &apiErr) && apiErr.Type == errType
}
