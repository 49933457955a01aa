package db_models

// EmailTemplate holds content-managed subject/body pairs for outgoing mail.
// The certificate mailer falls back to built-in templates when the named row
// is missing.
type EmailTemplate struct {
	BaseModel
	Name    string `gorm:"uniqueIndex"`
	Subject string
	Body    string
}
