package models

import "time"

type User struct {
	ID         uint      `gorm:"primaryKey"`
	CreatedAt  time.Time `gorm:"not null"`
	IsAdmin    bool      `gorm:"not null;default:false"`
	ReferrerID *uint     `gorm:"index"`

	Tel           *string `gorm:"index"`
	Avatar        *string
	PassportPhoto *string

	Name           *string
	Surname        *string
	Patronymic     *string
	PassportIssued *string
	IssueDate      *string
	DepartmentCode *string
	PassportSeries *string
	PassportNum    *string
	Gender         *string
	Birthdate      *string
	Birthplace     *string

	// Relations
	Referrer   *User       `gorm:"foreignKey:ReferrerID"`
	Devices    []Device    `gorm:"foreignKey:UserID"`
	TokenPairs []TokenPair `gorm:"foreignKey:UserID"`
}

// ProfileFields - поля профиля, доступные для редактирования
var ProfileFields = []string{
	"name",
	"passport_issued",
	"issue_date",
	"department_code",
	"passport_series",
	"passport_num",
	"surname",
	"patronymic",
	"gender",
	"birthdate",
	"birthplace",
}

// ProfileField возвращает указатель на поле профиля по его json-имени
func (u *User) ProfileField(name string) (**string, bool) {
	switch name {
	case "name":
		return &u.Name, true
	case "passport_issued":
		return &u.PassportIssued, true
	case "issue_date":
		return &u.IssueDate, true
	case "department_code":
		return &u.DepartmentCode, true
	case "passport_series":
		return &u.PassportSeries, true
	case "passport_num":
		return &u.PassportNum, true
	case "surname":
		return &u.Surname, true
	case "patronymic":
		return &u.Patronymic, true
	case "gender":
		return &u.Gender, true
	case "birthdate":
		return &u.Birthdate, true
	case "birthplace":
		return &u.Birthplace, true
	}
	return nil, false
}
