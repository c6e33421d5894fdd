package models

// MessageRequest describes the person a personalized outreach message is
// generated for. Nothing here is persisted.
type MessageRequest struct {
	Name        string `json:"name" binding:"required" example:"Jane Doe"`
	JobTitle    string `json:"job_title" binding:"required" example:"Head of Growth"`
	CompanyName string `json:"company_name" binding:"required" example:"Acme Corp"`
	Location    string `json:"location" binding:"required" example:"Berlin, Germany"`
	Summary     string `json:"summary" binding:"required" example:"10 years in B2B SaaS growth"`
}

// MessageResponse carries the generated outreach text.
type MessageResponse struct {
	Message string `json:"message"`
}
