// Package composer builds the instruction prompt sent to the generation
// service. Composition is pure and deterministic: the same Draft Request
// always yields a byte-identical prompt, and empty optional fields omit
// their line entirely.
package composer

import (
	"strings"

	"github.com/scholarmail/ScholarDraft/internal/models"
)

// SystemPrompt is the fixed system-turn content sent with every request.
const SystemPrompt = "You are a helpful academic email drafting assistant."

const preamble = "Draft a professional academic email with the following details:"

const closing = `Please structure the email appropriately with a subject line, salutation, body, and closing.
Ensure the tone is professional and academic.`

// Compose maps a Draft Request to the user-turn instruction string.
//
// It performs no validation beyond the recipient default: required-field
// presence is the calling boundary's responsibility, and the intent is
// embedded verbatim as an opaque label.
func Compose(req models.DraftRequest) string {
	recipient := req.RecipientName
	if recipient == "" {
		recipient = models.DefaultRecipient
	}

	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\n")
	b.WriteString("Recipient Name: ")
	b.WriteString(recipient)
	b.WriteString("\n")
	b.WriteString("Email Intent: ")
	b.WriteString(string(req.Intent))
	b.WriteString("\n")
	b.WriteString("Core Message/Key Points: ")
	b.WriteString(req.CoreMessage)
	b.WriteString("\n")
	if req.ContextDetail != "" {
		b.WriteString("Relevant Paper/Manuscript Details: ")
		b.WriteString(req.ContextDetail)
		b.WriteString("\n")
	}
	if req.OtherInfo != "" {
		b.WriteString("Other Specific Information: ")
		b.WriteString(req.OtherInfo)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(closing)
	return b.String()
}
