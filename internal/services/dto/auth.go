package dto

// TelRequest - запрос кода подтверждения на телефон или email
type TelRequest struct {
	Tel string `json:"tel" validate:"required,tel"`
}

// IssueCodeResponse - выданный код (эхо, как в мобильном клиенте)
type IssueCodeResponse struct {
	Code string `json:"code"`
}

// SiwTelRequest - вход по телефону и коду; также используется для смены телефона
type SiwTelRequest struct {
	Tel  string `json:"tel" validate:"required,tel"`
	Code string `json:"code" validate:"required,code4"`
}

// DeviceInfo - данные устройства из заголовков запроса входа
type DeviceInfo struct {
	FirebaseID          *string
	UserAgent           *string
	EnableNotifications bool
}

type TokenView struct {
	Value    string `json:"value"`
	ExpireAt int64  `json:"expire_at"`
}

type TokensView struct {
	Access  TokenView `json:"access"`
	Refresh TokenView `json:"refresh"`
}

// SignInResponse - ответ /siw/tel/
type SignInResponse struct {
	User   *ProfileView `json:"user"`
	Tokens TokensView   `json:"tokens"`
}
