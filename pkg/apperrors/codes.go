package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Общие коды ошибок
const (
	// Системные и неизвестные ошибки
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Общие ошибки бизнес-логики
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeLimitExceeded    ErrorCode = "LIMIT_EXCEEDED"

	// Аутентификация и авторизация
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeTokenMissing ErrorCode = "TOKEN_MISSING"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired ErrorCode = "TOKEN_EXPIRED"

	// Коды подтверждения
	CodeNoCodeIssued    ErrorCode = "CODE_NOT_ISSUED"
	CodeCodeMismatch    ErrorCode = "CODE_MISMATCH"
	CodeCodeAlreadyUsed ErrorCode = "CODE_ALREADY_USED"
	CodeCodeExpired     ErrorCode = "CODE_EXPIRED"
)

// Заголовки ответов, общие для нескольких ошибок
const (
	MessageAuthorizationDenied = "Authorization denied"
	MessageEntityNotFound      = "Entity not found"
	MessageValidationFailed    = "Validation failed"
	MessageInternalError       = "Internal server error"
	MessageForbidden           = "Access denied"
	MessageTooManyRequests     = "Too many requests"
	MessageProviderFailed      = "Delivery provider failed"
)

// Пути в запросе, на которые ссылается source ошибки
const (
	PathBody    = "$.body"
	PathQuery   = "$.query"
	PathURL     = "$.url"
	PathHeaders = "$.headers"
)
