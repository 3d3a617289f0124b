package exceptions

import (
	"abdm-link-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

// ErrorKind classifies every error surfaced by the service. Callers switch on
// it instead of probing concrete error types.
type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION_ERROR"
	KindRemoteAPI  ErrorKind = "REMOTE_API_ERROR"
	KindInternal   ErrorKind = "INTERNAL_SERVER_ERROR"
)

type CustomError struct {
	StatusCode       int        `json:"status_code"`
	Success          bool       `json:"success"`
	Kind             ErrorKind  `json:"kind,omitempty"`
	ClientMessage    string     `json:"message"`
	TransactionState string     `json:"transaction_state,omitempty"`
	DevMessage       string     `json:"dev_message,omitempty"`
	Locations        []Location `json:"locations,omitempty"`
	Err              error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError wraps err into a CustomError of the given kind. When err
// already is a CustomError the caller location is appended to its trail.
func BuildNewCustomError(err error, kind ErrorKind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)

	var existing *CustomError
	if errors.As(err, &existing) {
		locations := append([]Location{location}, existing.Locations...)
		return &CustomError{
			StatusCode:       statusCode,
			Kind:             kind,
			ClientMessage:    clientMessage,
			TransactionState: existing.TransactionState,
			DevMessage:       fmt.Sprintf("%s: %s", devMessage, existing.DevMessage),
			Locations:        locations,
			Err:              err,
		}
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
		Err:           err,
	}
}

// WithTransactionState returns a copy of e whose messages carry the redacted
// transaction state. e itself is left untouched.
func (e *CustomError) WithTransactionState(state string) *CustomError {
	enriched := *e
	enriched.Locations = append([]Location{getLocation(2)}, e.Locations...)
	enriched.TransactionState = state
	enriched.ClientMessage = fmt.Sprintf("%s [transactionState=%s]", e.ClientMessage, state)
	enriched.DevMessage = fmt.Sprintf("%s [transactionState=%s]", e.DevMessage, state)
	enriched.Err = e
	return &enriched
}

// KindOf reports the kind of err, treating anything that is not a
// CustomError as internal.
func KindOf(err error) ErrorKind {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.Kind != "" {
		return customErr.Kind
	}
	return KindInternal
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
