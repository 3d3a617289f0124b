package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateTransactionID() string {
	return uuid.NewString()
}

func GenerateAppointmentReference() string {
	return uuid.NewString()
}
