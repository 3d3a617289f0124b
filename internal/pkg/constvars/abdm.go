package constvars

const (
	AbdmPathCreateCareContext  = "/abdm-flows/create-carecontext"
	AbdmPathUpdateVisitRecords = "/abdm-flows/update-visit-records"
	AbdmPathLinkCareContext    = "/abdm-flows/link-carecontext"
)

const (
	AbdmStepCreateCareContext  = "create-carecontext"
	AbdmStepUpdateVisitRecords = "update-visit-records"
	AbdmStepLinkCareContext    = "link-carecontext"
)

const (
	AbdmAuthModeDemographics = "DEMOGRAPHICS"
)

// Outcome reasons reported by a finished link transaction.
const (
	LinkReasonLinked                 = "LINKED"
	LinkReasonNoHealthRecords        = "NO_HEALTH_RECORDS"
	LinkReasonVisitRecordsNotUpdated = "VISIT_RECORDS_NOT_UPDATED"
	LinkReasonLinkNotConfirmed       = "LINK_NOT_CONFIRMED"
	LinkReasonFailed                 = "FAILED"
)

const (
	RedisKeyCareContextLockFormat = "abdm:care-context-lock:%s:%s"

	RedisDeleteIfValueMissing  int64 = -1
	RedisDeleteIfValueMismatch int64 = 0
	RedisDeleteIfValueDeleted  int64 = 1
)

const (
	MongoCollectionLinkTransactions = "link_transactions"
)

const (
	ReconciliationEventSagaFailed = "care_context_link_failed"
)
