package services

import (
	"fmt"

	"github.com/outflo/outflo-backend/internal/models"
)

// BuildOutreachPrompt renders the deterministic generation prompt for one
// message request. The wording is part of the product behavior; change it
// deliberately.
func BuildOutreachPrompt(input *models.MessageRequest) string {
	return fmt.Sprintf(`Generate a concise and professional LinkedIn outreach message for %s, who is a %s at %s in %s. Their background summary is: "%s". The message should introduce and promote OutFlo — a tool that helps automate outreach to drive more meetings and increase sales. Aim to personalize the message and make it feel conversational.

Return only the message as plain text, without any JSON or formatting.`,
		input.Name, input.JobTitle, input.CompanyName, input.Location, input.Summary)
}
