package utils

import (
	"abdm-link-service/internal/pkg/constvars"
	"abdm-link-service/internal/pkg/dto/requests"
	"abdm-link-service/internal/pkg/exceptions"
	"fmt"
)

// ValidateSagaRequest applies the field rules of whichever request shape it
// receives. Every failure, including a panic raised by a rule, comes back as
// a validation-kind CustomError.
func ValidateSagaRequest(request requests.SagaRequest) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = exceptions.ErrValidationPanicked(recovered)
		}
	}()

	switch r := request.(type) {
	case nil:
		return exceptions.ErrValidationMessage(constvars.ErrClientRequestIsRequired)
	case *requests.LinkCareContextRequest:
		if r == nil {
			return exceptions.ErrValidationMessage(constvars.ErrClientRequestIsRequired)
		}
	case *requests.CareContextRequest:
		if r == nil {
			return exceptions.ErrValidationMessage(constvars.ErrClientRequestIsRequired)
		}
	case *requests.VisitRecordsUpdateRequest:
		if r == nil {
			return exceptions.ErrValidationMessage(constvars.ErrClientRequestIsRequired)
		}
	case *requests.LinkCareContextFinalRequest:
		if r == nil {
			return exceptions.ErrValidationMessage(constvars.ErrClientRequestIsRequired)
		}
	default:
		return exceptions.ErrValidationMessage(fmt.Sprintf(constvars.ErrDevUnsupportedSagaRequestVariant, request))
	}

	if err := ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
