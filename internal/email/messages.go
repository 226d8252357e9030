package email

import "fmt"

const verificationSubject = "Verification in Axas Sharing"

// VerificationEmail - письмо с кодом подтверждения
func VerificationEmail(to, code string) *Email {
	return &Email{
		To:      []string{to},
		Subject: verificationSubject,
		Body:    fmt.Sprintf("Your verification code is %s", code),
	}
}
