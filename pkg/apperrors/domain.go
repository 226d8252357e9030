package apperrors

import "net/http"

func authError(code ErrorCode, number int, message, source, path, description string) *AppError {
	return New(code, "auth", MessageAuthorizationDenied, http.StatusUnauthorized).
		WithItem(number, message, source, path).
		WithDescription(description)
}

// --- Коды подтверждения ---

var ErrNoCodeIssued = authError(CodeNoCodeIssued, 1,
	"Verification code not created", "tel", PathBody,
	"На указанный телефон не отправлялся код подтверждения")

var ErrCodeMismatch = authError(CodeCodeMismatch, 2,
	"Verification code dont match", "tel", PathBody,
	"Код подтверждения не совпадает")

var ErrCodeAlreadyUsed = authError(CodeCodeAlreadyUsed, 3,
	"Verification code already used", "tel", PathBody,
	"Код подтверждения уже использован")

var ErrCodeExpired = authError(CodeCodeExpired, 3,
	"Verification code expired", "tel", PathBody,
	"Время жизни кода подтверждения истекло")

// ErrTooManyCodes - превышен лимит выдачи кодов на один адресат
var ErrTooManyCodes = New(CodeLimitExceeded, "verification", MessageTooManyRequests, http.StatusTooManyRequests).
	WithItem(4, "Verification code requested too often", "tel", PathBody).
	WithDescription("Код подтверждения запрашивался слишком часто, попробуйте позже")

// --- Токены ---

var ErrTokenMissing = authError(CodeTokenMissing, 1,
	"Authorization token required", "Authorization", PathHeaders,
	"Требуется авторизация")

var ErrInvalidToken = authError(CodeInvalidToken, 2,
	"Authorization token not found", "Authorization", PathHeaders,
	"Токен авторизации не найден")

var ErrTokenExpired = authError(CodeTokenExpired, 3,
	"Authorization token expired", "Authorization", PathHeaders,
	"Срок действия токена истек")

// --- Квартиры и бронирования ---

var ErrFlatNotFound = NewNotFoundError("flat_id", "Комната не найдена")

var ErrFlatForbidden = NewForbiddenError("flat_id", "Flat belongs to another user", "Квартира принадлежит другому пользователю")

var ErrNotificationNotFound = NewNotFoundError("notification_id", "Уведомление не найдено")

var ErrUserNotFound = NewNotFoundError("user_id", "Пользователь не найден")

// --- Файлы ---

var ErrFileRequired = NewBadRequestError("image", PathBody, "Image file is required")

var ErrInvalidFileType = New(CodeValidationFailed, "validation", MessageValidationFailed, http.StatusUnsupportedMediaType).
	WithItem(1, "Only image/* uploads are allowed", "image", PathBody).
	WithDescription("Недопустимый тип файла")

var ErrFileTooLarge = New(CodeLimitExceeded, "validation", MessageValidationFailed, http.StatusRequestEntityTooLarge).
	WithItem(1, "File size exceeds the allowed limit", "image", PathBody).
	WithDescription("Файл слишком большой")
