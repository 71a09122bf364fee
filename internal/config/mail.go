package config

const (
	envSMTPHost         = "SMTP_HOST"
	envSMTPPort         = "SMTP_PORT"
	envSMTPUser         = "SMTP_USER"
	envSMTPPassword     = "SMTP_PASSWORD"
	envContactRecipient = "CONTACT_RECIPIENT"

	defaultSMTPPort = "587"
)

// MailConfig controls the SMTP relay behind the contact form. Contact
// delivery is disabled when Host or Recipient is empty.
type MailConfig struct {
	Host      string
	Port      string
	User      string
	Password  string
	Recipient string
}

// Enabled reports whether the contact form can deliver mail.
func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.Recipient != ""
}

func loadMail() MailConfig {
	return MailConfig{
		Host:      envOrDefault(envSMTPHost, ""),
		Port:      envOrDefault(envSMTPPort, defaultSMTPPort),
		User:      envOrDefault(envSMTPUser, ""),
		Password:  envOrDefault(envSMTPPassword, ""),
		Recipient: envOrDefault(envContactRecipient, ""),
	}
}
