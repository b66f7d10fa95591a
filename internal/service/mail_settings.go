package service

// MailSettings are the addresses used when composing emails
type MailSettings struct {
	From     string
	Operator string
	SiteURL  string
}
