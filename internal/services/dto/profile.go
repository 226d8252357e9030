package dto

// ProfileView - профиль пользователя
type ProfileView struct {
	ID             uint    `json:"id"`
	Tel            *string `json:"tel"`
	Avatar         *string `json:"avatar"`
	Name           *string `json:"name"`
	Surname        *string `json:"surname"`
	Patronymic     *string `json:"patronymic"`
	PassportIssued *string `json:"passport_issued"`
	IssueDate      *string `json:"issue_date"`
	DepartmentCode *string `json:"department_code"`
	PassportSeries *string `json:"passport_series"`
	PassportNum    *string `json:"passport_num"`
	Gender         *string `json:"gender"`
	Birthdate      *string `json:"birthdate"`
	Birthplace     *string `json:"birthplace"`
	PassportPhoto  *string `json:"passport_photo"`
}

// ProfilePatch - частичное обновление профиля.
// Ключ со значением null очищает поле, отсутствующий ключ поле не трогает.
type ProfilePatch map[string]interface{}
