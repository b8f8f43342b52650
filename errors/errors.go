package errors

import (
	"errors"
	"net/http"
)

var (
	NotFound            = HttpError{http.StatusNotFound, errors.New("not found")}
	BadRequest          = HttpError{http.StatusBadRequest, errors.New("bad request")}
	Unauthorized        = HttpError{http.StatusUnauthorized, errors.New("unauthorized")}
	InternalServerError = HttpError{http.StatusInternalServerError, errors.New("internal server error")}
)

type HttpError struct {
	Code int
	Err  error
}

func (h HttpError) Unwrap() error {
	return h.Err
}

func (h HttpError) Error() string {
	return h.Err.Error()
}

// WithMessage returns a copy of the error which reports msg to the client
// while still matching the original with errors.Is.
func (h HttpError) WithMessage(msg string) HttpError {
	return HttpError{Code: h.Code, Err: &messageError{msg: msg, err: h}}
}

type messageError struct {
	msg string
	err error
}

func (m *messageError) Error() string {
	return m.msg
}

func (m *messageError) Unwrap() error {
	return m.err
}
