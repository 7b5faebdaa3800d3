package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/adesombergh/yeety-book-test-sub000/internal/api/handlers"
)

const msgMissingOwnerID = "отсутствует или некорректен заголовок X-Owner-ID"

type contextKey string

const ownerIDKey contextKey = "ownerID"

// Auth middleware для защищённых маршрутов кабинета владельца.
// Требует заголовок X-Owner-ID и кладёт его значение в контекст запроса.
// Проверка принадлежности ресторана владельцу - забота вышестоящего шлюза.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerIDStr := r.Header.Get("X-Owner-ID")
		if ownerIDStr == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingOwnerID)
			return
		}

		ownerID, err := strconv.ParseInt(ownerIDStr, 10, 64)
		if err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingOwnerID)
			return
		}

		ctx := context.WithValue(r.Context(), ownerIDKey, ownerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OwnerIDFromContext возвращает ID владельца, положенный middleware Auth
func OwnerIDFromContext(ctx context.Context) (int64, bool) {
	ownerID, ok := ctx.Value(ownerIDKey).(int64)
	return ownerID, ok
}
