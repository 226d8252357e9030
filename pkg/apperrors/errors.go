package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"sort"

	"axas_backend/pkg/envelope"
)

// AppError - основная структура ошибки приложения
type AppError struct {
	Code        ErrorCode
	Domain      string
	Message     string
	Items       []envelope.Error
	Description string
	Details     interface{}
	Err         error
	HTTPCode    int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New - базовый конструктор
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap - оборачивает существующую ошибку в AppError
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithItem добавляет элемент в список errors конверта
func (e *AppError) WithItem(number int, message, source, path string) *AppError {
	e.Items = append(e.Items, envelope.Error{
		Code:    number,
		Message: message,
		Source:  source,
		Path:    path,
	})
	return e
}

// WithDescription задает локализованное описание
func (e *AppError) WithDescription(description string) *AppError {
	e.Description = description
	return e
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// Number возвращает числовой код первого элемента errors (0, если элементов нет)
func (e *AppError) Number() int {
	if len(e.Items) == 0 {
		return 0
	}
	return e.Items[0].Code
}

// Envelope переводит ошибку в конверт ответа
func (e *AppError) Envelope() envelope.Envelope {
	// копия: предопределенные ошибки разделяются между запросами
	items := append([]envelope.Error(nil), e.Items...)
	if len(items) > 0 && e.Details != nil {
		items[0].Additional = e.Details
	}
	return envelope.New(e.HTTPCode, nil, e.Message, items, e.Description)
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// --- ОБЩИЕ ХЕЛПЕРЫ ---

// InternalError оборачивает неизвестную системную ошибку
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", MessageInternalError, http.StatusInternalServerError).
		WithItem(1, "Unexpected server error", "server", "").
		WithDescription("Внутренняя ошибка сервера")
}

// PersistenceError - ошибка сохранения, транзакция к этому моменту уже откачена
func PersistenceError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "persistence", MessageInternalError, http.StatusInternalServerError).
		WithItem(1, "Failed to persist changes", "database", "").
		WithDescription("Не удалось сохранить изменения")
}

// ValidationError создает ошибку валидации, по одному элементу на поле
func ValidationError(fields map[string]string, path string) *AppError {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	appErr := New(CodeValidationFailed, "validation", MessageValidationFailed, http.StatusBadRequest).
		WithDescription("Некорректные данные запроса")
	for _, name := range names {
		appErr.WithItem(1, fields[name], name, path)
	}
	return appErr
}

// NewBadRequestError создает ошибку 400 для одного поля
func NewBadRequestError(source, path, message string) *AppError {
	return ValidationError(map[string]string{source: message}, path)
}

// NewForbiddenError создает ошибку доступа
func NewForbiddenError(source, message, description string) *AppError {
	return New(CodeForbidden, "auth", MessageForbidden, http.StatusForbidden).
		WithItem(1, message, source, PathURL).
		WithDescription(description)
}

// NewNotFoundError создает ошибку 404 для сущности из URL
func NewNotFoundError(source, description string) *AppError {
	return New(CodeNotFound, "resource", MessageEntityNotFound, http.StatusNotFound).
		WithItem(1, MessageEntityNotFound, source, PathURL).
		WithDescription(description)
}

// ExternalServiceError оборачивает отказ SMS/email провайдера
func ExternalServiceError(err error, provider string) *AppError {
	return Wrap(err, CodeExternalServiceError, provider, MessageProviderFailed, http.StatusBadGateway).
		WithItem(1, "Failed to deliver verification code", provider, "").
		WithDescription("Не удалось отправить код подтверждения")
}

// ErrAlreadyExists - фабрика для нарушения уникальности (409)
func ErrAlreadyExists(err error, source string) *AppError {
	return Wrap(err, CodeAlreadyExists, "persistence", "Conflict", http.StatusConflict).
		WithItem(1, "Resource already exists", source, PathBody).
		WithDescription("Запись уже существует")
}
