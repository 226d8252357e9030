package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ, по которому хранится *gorm.DB (пул или транзакция)
	DBContextKey = contextKey("db")

	// UserContextKey - ключ для *models.User, найденного по bearer-токену
	UserContextKey = contextKey("user")

	// TokenPairContextKey - ключ для пары токенов текущей сессии
	TokenPairContextKey = contextKey("token_pair")
)
