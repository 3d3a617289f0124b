package responses

import "time"

type CareContextResult struct {
	CareContextReference string `json:"careContextReference"`
	RequestID            string `json:"requestId"`
}

type CareContextLink struct {
	TransactionID    string `json:"transaction_id"`
	Linked           bool   `json:"linked"`
	Reason           string `json:"reason"`
	TransactionState string `json:"transaction_state"`
}

type LinkTransaction struct {
	TransactionID       string     `json:"transaction_id"`
	PatientReference    string     `json:"patient_reference"`
	AppointmentRef      string     `json:"appointment_reference"`
	CareContextRef      string     `json:"care_context_reference"`
	CareContextCreated  bool       `json:"care_context_created"`
	VisitRecordsUpdated bool       `json:"visit_records_updated"`
	CareContextLinked   bool       `json:"care_context_linked"`
	Stage               string     `json:"stage"`
	Reason              string     `json:"reason"`
	FailedStep          string     `json:"failed_step,omitempty"`
	ErrorKind           string     `json:"error_kind,omitempty"`
	ErrorMessage        string     `json:"error_message,omitempty"`
	TransactionState    string     `json:"transaction_state"`
	StartedAt           time.Time  `json:"started_at"`
	FinishedAt          *time.Time `json:"finished_at,omitempty"`
}
