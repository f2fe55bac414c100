// Package models defines the core data structures for ScholarDraft.
//
// It includes the Draft Request record consumed by one generation attempt
// and the API response envelope shared across handlers.
package models

import "errors"

// Intent selects the phrasing emphasis of the drafted email. It is embedded
// verbatim in the composed prompt and never changes control flow.
type Intent string

const (
	// IntentInquiry asks about a paper, topic, or opportunity.
	IntentInquiry Intent = "Inquiry"
	// IntentSubmission accompanies a manuscript submission.
	IntentSubmission Intent = "Submission"
	// IntentThankYou expresses gratitude.
	IntentThankYou Intent = "Thank You"
	// IntentCollaborationRequest proposes joint work.
	IntentCollaborationRequest Intent = "Collaboration Request"
	// IntentFollowUp follows up on a previous email.
	IntentFollowUp Intent = "Follow-up"
	// IntentGeneral covers everything else.
	IntentGeneral Intent = "General"
)

// DefaultRecipient substitutes for an empty recipient name.
const DefaultRecipient = "Colleague"

// Validation constants for input validation
const (
	// MaxCoreMessageLength defines the maximum allowed length for the core message
	MaxCoreMessageLength = 4096
	// MaxOptionalFieldLength defines the maximum allowed length for optional fields
	MaxOptionalFieldLength = 1024
)

// Error variables for better error handling and testability
var (
	ErrEmptyCoreMessage     = errors.New("core message is required")
	ErrCoreMessageTooLong   = errors.New("core message exceeds maximum length")
	ErrMissingIntent        = errors.New("intent is required")
	ErrInvalidIntent        = errors.New("invalid intent")
	ErrOptionalFieldTooLong = errors.New("optional field exceeds maximum length")
)

// Intents returns the fixed enumerated set in display order.
func Intents() []Intent {
	return []Intent{
		IntentInquiry,
		IntentSubmission,
		IntentThankYou,
		IntentCollaborationRequest,
		IntentFollowUp,
		IntentGeneral,
	}
}

// IsValidIntent checks if the given intent is a member of the fixed set.
func IsValidIntent(i Intent) bool {
	switch i {
	case IntentInquiry, IntentSubmission, IntentThankYou,
		IntentCollaborationRequest, IntentFollowUp, IntentGeneral:
		return true
	default:
		return false
	}
}

// DraftRequest is the transient record of user-supplied fields for one
// generation attempt. It is created per trigger action, consumed once by
// the composer, and discarded after the generation call returns.
type DraftRequest struct {
	CoreMessage   string `json:"core_message"`
	Intent        Intent `json:"intent"`
	RecipientName string `json:"recipient_name,omitempty"`
	ContextDetail string `json:"context_detail,omitempty"`
	OtherInfo     string `json:"other_info,omitempty"`
}

// Validate checks the required-field invariants before a generation attempt.
// Optional fields may be empty; empty means the corresponding prompt line is
// omitted, never included blank.
func (r *DraftRequest) Validate() error {
	if r.CoreMessage == "" {
		return ErrEmptyCoreMessage
	}
	if len(r.CoreMessage) > MaxCoreMessageLength {
		return ErrCoreMessageTooLong
	}
	if r.Intent == "" {
		return ErrMissingIntent
	}
	if !IsValidIntent(r.Intent) {
		return ErrInvalidIntent
	}
	for _, field := range []string{r.RecipientName, r.ContextDetail, r.OtherInfo} {
		if len(field) > MaxOptionalFieldLength {
			return ErrOptionalFieldTooLong
		}
	}
	return nil
}

// FieldLabels carries the intent-specific labels the form surface shows for
// the two optional detail fields. Label-only: storage and composition are
// identical regardless of intent.
type FieldLabels struct {
	ContextDetail string `json:"context_detail_label"`
	OtherInfo     string `json:"other_info_label"`
}

// LabelsFor returns the field labels for the given intent.
func LabelsFor(i Intent) FieldLabels {
	labels := FieldLabels{
		ContextDetail: "Relevant Paper/Manuscript Title:",
		OtherInfo:     "Other Specific Information:",
	}
	switch i {
	case IntentInquiry:
		labels.OtherInfo = "Specific topic of inquiry:"
	case IntentSubmission:
		labels.ContextDetail = "Your Manuscript Title:"
		labels.OtherInfo = "Name of Journal/Conference:"
	case IntentThankYou:
		labels.OtherInfo = "Reason for thanks (e.g., their helpful advice):"
	case IntentCollaborationRequest:
		labels.OtherInfo = "Specific area/topic of collaboration:"
	case IntentFollowUp:
		labels.ContextDetail = "Date of Previous Email (e.g., 2024-05-15):"
		labels.OtherInfo = "Subject of previous email:"
	}
	return labels
}

// API Response types for consistent JSON responses

// APIStatus represents the status of an API response.
type APIStatus string

const (
	// APIStatusOK indicates an API request completed successfully.
	APIStatusOK APIStatus = "ok"
	// APIStatusError indicates an API request failed with an error.
	APIStatusError APIStatus = "error"
)

// APIResponse represents a standard API response with a status and optional data.
type APIResponse struct {
	Status  string      `json:"status"`            // status of the API response
	Message string      `json:"message,omitempty"` // optional message for error responses or additional info
	Result  interface{} `json:"result,omitempty"`  // optional result data for successful responses
}

// APIResponseBuilder provides a fluent interface for building API responses.
type APIResponseBuilder struct {
	response APIResponse
}

// NewAPIResponseBuilder creates a new APIResponseBuilder instance.
func NewAPIResponseBuilder() *APIResponseBuilder {
	return &APIResponseBuilder{response: APIResponse{}}
}

// WithStatus sets the status of the API response.
func (b *APIResponseBuilder) WithStatus(status APIStatus) *APIResponseBuilder {
	b.response.Status = string(status)
	return b
}

// WithMessage sets the message of the API response.
func (b *APIResponseBuilder) WithMessage(message string) *APIResponseBuilder {
	b.response.Message = message
	return b
}

// WithResult sets the result data of the API response.
func (b *APIResponseBuilder) WithResult(result interface{}) *APIResponseBuilder {
	b.response.Result = result
	return b
}

// Build constructs and returns the final APIResponse.
func (b *APIResponseBuilder) Build() APIResponse {
	return b.response
}

// Success creates a successful API response with optional result data.
func Success(result interface{}) APIResponse {
	return NewAPIResponseBuilder().
		WithStatus(APIStatusOK).
		WithResult(result).
		Build()
}

// SuccessWithMessage creates a successful API response with a message and optional result data.
func SuccessWithMessage(message string, result interface{}) APIResponse {
	return NewAPIResponseBuilder().
		WithStatus(APIStatusOK).
		WithMessage(message).
		WithResult(result).
		Build()
}

// Error creates an error API response with a message.
func Error(message string) APIResponse {
	return NewAPIResponseBuilder().
		WithStatus(APIStatusError).
		WithMessage(message).
		Build()
}
