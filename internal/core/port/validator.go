package port

import "estate-service/internal/core/domain"

// PropertyValidatorPort enforces the property schema before any write
// reaches storage. Violations come back as *domain.ValidationError with one
// entry per offending field.
type PropertyValidatorPort interface {
	ValidateDraft(draft domain.PropertyDraft) error
}
