package middleware

import (
	"MachCatalog/internal/auth"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "user_id"

// WithAuth разбирает заголовок Authorization: Bearer <token> и при валидном
// токене кладёт идентификатор администратора в контекст запроса. Сам по себе
// запросы не отклоняет — защищённые хендлеры проверяют контекст.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
				if userID, err := auth.GetUserIDFromToken(token, []byte(secret)); err == nil {
					ctx := context.WithValue(r.Context(), userIDKey, userID)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext возвращает идентификатор администратора, если запрос
// прошёл проверку токена.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
