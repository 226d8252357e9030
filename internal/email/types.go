package email

// Email - простое текстовое письмо
type Email struct {
	To      []string
	Subject string
	Body    string
}
