package contact

// Submission is a contact form payload. Name, email and message are
// required; everything else is optional context from the form.
type Submission struct {
	Name    string `form:"name" json:"name" validate:"required,min=2,max=100"`
	Email   string `form:"email" json:"email" validate:"required,email"`
	Phone   string `form:"phone" json:"phone" validate:"omitempty,max=30"`
	Company string `form:"company" json:"company" validate:"omitempty,max=100"`
	Service string `form:"service" json:"service" validate:"omitempty,max=100"`
	Budget  string `form:"budget" json:"budget" validate:"omitempty,max=50"`
	Message string `form:"message" json:"message" validate:"required,min=10,max=5000"`
}

// Attachment is an uploaded file forwarded with the notification email.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}
