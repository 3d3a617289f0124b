package constvars

const (
	ResponseUnknown = "unknown"

	CareContextLinkedSuccessMessage    = "care context linked successfully"
	CareContextNotLinkedSuccessMessage = "care context created but not linked"
	LinkTransactionFoundSuccessMessage = "link transaction found"
)
