package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"notblank":        "must not be blank",
	"patient_uuid":    "must be 32 or 36 hexadecimal characters once hyphens are removed",
	"hyphenated_uuid": "must be a 36 character hyphenated UUID",
	"min":             "must be at least %s long",
	"oneof":           "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInternalServerError           = "internal server error"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientRequestIsRequired             = "request body is required"
	ErrClientTransactionValidation         = "transaction validation failed: %s"
	ErrClientCareContextLinkInProgress     = "a link transaction for this appointment is already in progress"
	ErrClientAbdmGatewayFailure            = "health information exchange rejected the %s step: %s"
	ErrClientLinkTransactionNotFound       = "link transaction not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput                  = "invalid input"
	ErrDevValidationFailed              = "validation failed"
	ErrDevValidationPanicked            = "validation panicked"
	ErrDevCannotParseJSON               = "cannot parse JSON"
	ErrDevCannotMarshalJSON             = "cannot marshal JSON"
	ErrDevCreateHTTPRequest             = "failed to create HTTP request"
	ErrDevSendHTTPRequest               = "failed to send HTTP request"
	ErrDevServerProcess                 = "server failed to process the request"
	ErrDevServerDeadlineExceeded        = "server deadline exceeded"
	ErrDevMissingRequestID              = "request id missing from context"
	ErrDevAbdmNonSuccessStatus          = "abdm %s step returned status %d"
	ErrDevAbdmDecodeResponse            = "failed to decode abdm %s step response"
	ErrDevAbdmRateLimitWait             = "failed waiting for abdm rate limiter"
	ErrDevSagaLockHeld                  = "care context lock already held"
	ErrDevRedisSetData                  = "failed to set data to redis"
	ErrDevRedisDeleteData               = "failed to delete data from redis"
	ErrDevRedisUnlock                   = "failed to release redis lock"
	ErrDevDBFailedToInsertDocument      = "failed to insert document"
	ErrDevDBFailedToFindDocument        = "failed to find document"
	ErrDevRabbitMQPublishMessage        = "failed to publish message to queue %s"
	ErrDevLinkTransactionNotFound       = "link transaction %s not found"
	ErrDevUnsupportedSagaRequestVariant = "unsupported saga request variant %T"
)
