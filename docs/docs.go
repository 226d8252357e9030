// Package docs - описание API для swagger UI (/swagger/index.html).
// Обновляется вместе с аннотациями обработчиков в internal/handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Проверка доступности",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/tels/verify/": {
            "post": {
                "description": "Отправляет 4-значный код по SMS (телефон) или email. Для номеров из белого списка код фиксированный.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Выдать код подтверждения",
                "parameters": [
                    {"description": "Телефон или email", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TelRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/siw/tel/": {
            "post": {
                "description": "Проверяет код, при первом входе регистрирует пользователя и выдает пару токенов",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Вход по коду подтверждения",
                "parameters": [
                    {"description": "Телефон и код", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SiwTelRequest"}},
                    {"type": "string", "description": "Firebase ID устройства", "name": "device", "in": "header"},
                    {"type": "boolean", "description": "Разрешить уведомления (по умолчанию true)", "name": "Enable-Notifications", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/settings/": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Привязывает устройство к текущему пользователю и возвращает все его устройства",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Настройки уведомлений устройства",
                "parameters": [
                    {"description": "Устройство и флаг уведомлений", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.EditSettingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/profile/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Профиль текущего пользователя",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Переданные поля заменяются (null очищает), отсутствующие остаются без изменений",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Редактировать профиль",
                "parameters": [
                    {"description": "Поля профиля", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Удалить аккаунт",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/profile/avatar/": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Загрузить аватар",
                "parameters": [
                    {"type": "file", "description": "Изображение", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/profile/passport-photo/": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Загрузить фото паспорта",
                "parameters": [
                    {"type": "file", "description": "Изображение", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/profile/tel/": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Новый номер подтверждается кодом, выданным через /tels/verify/",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Сменить телефон",
                "parameters": [
                    {"description": "Новый телефон и код", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SiwTelRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/flats/": {
            "get": {
                "description": "Фильтры удобств: 0 или пусто - без ограничения, 1 - есть, 2 - нет. search ищет по названию и адресу.",
                "produces": ["application/json"],
                "tags": ["flats"],
                "summary": "Поиск квартир",
                "parameters": [
                    {"type": "string", "description": "0/1/2", "name": "has_balcony", "in": "query"},
                    {"type": "string", "description": "0/1/2", "name": "children", "in": "query"},
                    {"type": "string", "description": "0/1/2", "name": "animals", "in": "query"},
                    {"type": "string", "description": "Подстрока названия или адреса", "name": "search", "in": "query"},
                    {"type": "integer", "description": "Страница, с 1", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Размер страницы, 0 - все; без page и page_size - все квартиры", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Все поля обязательны; price_short и price_long допускают null. has_loggia по умолчанию равен has_balcony.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["flats"],
                "summary": "Разместить квартиру",
                "parameters": [
                    {"description": "Квартира", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateFlatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/flats/me/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Те же фильтры, что и у /flats/, только по квартирам текущего пользователя",
                "produces": ["application/json"],
                "tags": ["flats"],
                "summary": "Мои квартиры",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/flats/me/rents/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["rents"],
                "summary": "Бронирования моих квартир",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/flats/{flat_id}/": {
            "get": {
                "description": "Включает статус (Free/Reserved/Rented) и ближайшее бронирование",
                "produces": ["application/json"],
                "tags": ["flats"],
                "summary": "Карточка квартиры",
                "parameters": [
                    {"type": "integer", "description": "ID квартиры", "name": "flat_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["flats"],
                "summary": "Редактировать квартиру",
                "parameters": [
                    {"type": "integer", "description": "ID квартиры", "name": "flat_id", "in": "path", "required": true},
                    {"description": "Изменяемые поля", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.EditFlatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/flats/{flat_id}/pictures/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["flats"],
                "summary": "Добавить фото квартиры",
                "parameters": [
                    {"type": "integer", "description": "ID квартиры", "name": "flat_id", "in": "path", "required": true},
                    {"type": "file", "description": "Изображение", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/flats/{flat_id}/rents/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rents"],
                "summary": "Забронировать квартиру",
                "parameters": [
                    {"type": "integer", "description": "ID квартиры", "name": "flat_id", "in": "path", "required": true},
                    {"description": "Интервал в unix-секундах", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateRentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/notifications/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Сначала новые",
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Уведомления текущего пользователя",
                "parameters": [
                    {"type": "integer", "description": "Страница, с 1", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Размер страницы, 0 - все", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/notifications/{notification_id}/read/": {
            "put": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Отметить уведомление прочитанным",
                "parameters": [
                    {"type": "integer", "description": "ID уведомления", "name": "notification_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/files/{path}": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["files"],
                "summary": "Загруженный файл",
                "parameters": [
                    {"type": "string", "description": "Ключ файла", "name": "path", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "envelope.Error": {
            "type": "object",
            "properties": {
                "additional": {},
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "path": {"type": "string"},
                "source": {"type": "string"}
            }
        },
        "envelope.Envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "description": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/envelope.Error"}},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "dto.TelRequest": {
            "type": "object",
            "required": ["tel"],
            "properties": {
                "tel": {"type": "string", "example": "79184167161"}
            }
        },
        "dto.SiwTelRequest": {
            "type": "object",
            "required": ["code", "tel"],
            "properties": {
                "code": {"type": "string", "example": "8085"},
                "tel": {"type": "string", "example": "79184167161"}
            }
        },
        "dto.EditSettingsRequest": {
            "type": "object",
            "required": ["device", "enable_notifications"],
            "properties": {
                "device": {"type": "string"},
                "enable_notifications": {"type": "boolean"}
            }
        },
        "dto.CreateRentRequest": {
            "type": "object",
            "required": ["end_at", "start_at"],
            "properties": {
                "end_at": {"type": "integer"},
                "start_at": {"type": "integer"}
            }
        },
        "dto.CreateFlatRequest": {
            "type": "object",
            "required": ["title", "room_count", "address", "lat", "lon", "area", "price_short", "price_long",
                "guest_count", "bed_count", "restroom_count", "has_balcony", "children", "animals",
                "washing_machine", "fridge", "tv", "dishwasher", "air_conditioner", "smoking", "noise", "party"],
            "properties": {
                "title": {"type": "string"},
                "room_count": {"type": "integer", "maximum": 4, "minimum": 0},
                "address": {"type": "string"},
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "area": {"type": "number"},
                "price_short": {"type": "integer", "x-nullable": true},
                "price_long": {"type": "integer", "x-nullable": true},
                "guest_count": {"type": "integer"},
                "bed_count": {"type": "integer"},
                "restroom_count": {"type": "integer"},
                "has_balcony": {"type": "boolean"},
                "has_loggia": {"type": "boolean"},
                "children": {"type": "boolean"},
                "animals": {"type": "boolean"},
                "washing_machine": {"type": "boolean"},
                "fridge": {"type": "boolean"},
                "tv": {"type": "boolean"},
                "dishwasher": {"type": "boolean"},
                "air_conditioner": {"type": "boolean"},
                "smoking": {"type": "boolean"},
                "noise": {"type": "boolean"},
                "party": {"type": "boolean"}
            }
        },
        "dto.EditFlatRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "room_count": {"type": "integer", "maximum": 4, "minimum": 0},
                "address": {"type": "string"},
                "price_short": {"type": "integer", "x-nullable": true},
                "price_long": {"type": "integer", "x-nullable": true},
                "has_balcony": {"type": "boolean"},
                "has_loggia": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Axas House API",
	Description:      "Аренда квартир: коды подтверждения, профиль, объявления и бронирования.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
