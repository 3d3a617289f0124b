package exceptions

import (
	"abdm-link-service/internal/pkg/constvars"
	"context"
	"errors"
	"fmt"
)

var (
	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, FormatAllValidationErrors(err), constvars.ErrDevValidationFailed)
	}
	ErrValidationMessage = func(message string) *CustomError {
		return BuildNewCustomError(errors.New(message), KindValidation, constvars.StatusBadRequest, message, constvars.ErrDevValidationFailed)
	}
	ErrValidationPanicked = func(recovered interface{}) *CustomError {
		message := fmt.Sprint(recovered)
		return BuildNewCustomError(errors.New(message), KindValidation, constvars.StatusBadRequest, message, constvars.ErrDevValidationPanicked)
	}
	ErrTransactionValidation = func(err error) *CustomError {
		clientMessage := fmt.Sprintf(constvars.ErrClientTransactionValidation, ClientMessageOf(err))
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, clientMessage, constvars.ErrDevValidationFailed)
	}
	ErrCareContextLinkInProgress = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusConflict, constvars.ErrClientCareContextLinkInProgress, constvars.ErrDevSagaLockHeld)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// ABDM gateway
	ErrRemoteAPI = func(err error, step string, statusCode int, message string) *CustomError {
		return BuildNewCustomError(err, KindRemoteAPI, statusCode, fmt.Sprintf(constvars.ErrClientAbdmGatewayFailure, step, message), fmt.Sprintf(constvars.ErrDevAbdmNonSuccessStatus, step, statusCode))
	}
	ErrDecodeResponse = func(err error, step string) *CustomError {
		return BuildNewCustomError(err, KindRemoteAPI, constvars.StatusBadGateway, fmt.Sprintf(constvars.ErrClientAbdmGatewayFailure, step, "malformed response"), fmt.Sprintf(constvars.ErrDevAbdmDecodeResponse, step))
	}
	ErrSendHTTPRequest = func(err error, step string) *CustomError {
		return BuildNewCustomError(err, KindRemoteAPI, constvars.StatusBadGateway, fmt.Sprintf(constvars.ErrClientAbdmGatewayFailure, step, "gateway unreachable"), constvars.ErrDevSendHTTPRequest)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrRateLimitWait = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevAbdmRateLimitWait)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// Mongo DB
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrLinkTransactionNotFound = func(err error, transactionID string) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusNotFound, constvars.ErrClientLinkTransactionNotFound, fmt.Sprintf(constvars.ErrDevLinkTransactionNotFound, transactionID))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevServerProcess)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
)

// ErrFromContext maps a finished context into the internal error kind.
func ErrFromContext(err error) *CustomError {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrServerDeadlineExceeded(err)
	}
	return ErrServerProcess(err)
}

func ClientMessageOf(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	if err == nil {
		return constvars.ErrDevInvalidInput
	}
	return err.Error()
}
