package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	URLParamTransactionID = "transaction_id"
)

const (
	RedactionMaskCharacter = '*'
	RedactionVisiblePrefix = 2
	RedactionVisibleSuffix = 2
	RedactionNullValue     = "null"
)

const (
	AppointmentTimeLayout       = "03:04 PM"
	AppointmentDateOnlyLayout   = "2006-01-02"
	AppointmentNoSecondsLayout  = "2006-01-02T15:04Z07:00"
	AppointmentTimeRangeFormat  = "%s - %s"
	AppointmentInvalidStartTime = "Invalid start time"
	AppointmentInvalidEndTime   = "Invalid end time"
	AppointmentInvalidDateRange = "Invalid date range"
)
