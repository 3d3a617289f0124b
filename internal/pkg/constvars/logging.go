package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingTransactionIDKey      = "transaction_id"
	LoggingTransactionStateKey   = "transaction_state"
	LoggingAppointmentRefKey     = "appointment_reference"
	LoggingCareContextRefKey     = "care_context_reference"
	LoggingAbdmStepKey           = "abdm_step"
	LoggingAbdmURLKey            = "abdm_url"
	LoggingHealthRecordCountKey  = "health_record_count"
	LoggingLinkedKey             = "linked"
	LoggingLinkReasonKey         = "link_reason"
	LoggingErrorKindKey          = "error_kind"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingEndpointKey           = "endpoint"
	LoggingMethodKey             = "method"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingSuccessKey            = "success"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueNameKey          = "queue_name"
)
