package models

import "time"

// LinkTransaction is the ledger record written when a care context link
// transaction reaches its terminal outcome. Identifiers are stored redacted.
type LinkTransaction struct {
	TransactionID       string     `bson:"_id" json:"transaction_id"`
	RequestID           string     `bson:"request_id" json:"request_id"`
	PatientReference    string     `bson:"patient_reference" json:"patient_reference"`
	AppointmentRef      string     `bson:"appointment_reference" json:"appointment_reference"`
	CareContextRef      string     `bson:"care_context_reference" json:"care_context_reference"`
	CareContextCreated  bool       `bson:"care_context_created" json:"care_context_created"`
	VisitRecordsUpdated bool       `bson:"visit_records_updated" json:"visit_records_updated"`
	CareContextLinked   bool       `bson:"care_context_linked" json:"care_context_linked"`
	Stage               string     `bson:"stage" json:"stage"`
	Reason              string     `bson:"reason" json:"reason"`
	FailedStep          string     `bson:"failed_step,omitempty" json:"failed_step,omitempty"`
	ErrorKind           string     `bson:"error_kind,omitempty" json:"error_kind,omitempty"`
	ErrorMessage        string     `bson:"error_message,omitempty" json:"error_message,omitempty"`
	TransactionState    string     `bson:"transaction_state" json:"transaction_state"`
	StartedAt           time.Time  `bson:"started_at" json:"started_at"`
	FinishedAt          *time.Time `bson:"finished_at,omitempty" json:"finished_at,omitempty"`
}

// ReconciliationEvent is published for every transaction that failed after
// the exchange already holds a care context for it.
type ReconciliationEvent struct {
	Event            string    `json:"event"`
	TransactionID    string    `json:"transaction_id"`
	RequestID        string    `json:"request_id"`
	FailedStep       string    `json:"failed_step"`
	ErrorKind        string    `json:"error_kind"`
	ErrorMessage     string    `json:"error_message"`
	TransactionState string    `json:"transaction_state"`
	OccurredAt       time.Time `json:"occurred_at"`
}
