package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	apperror "stockroute/internal/errors"
	"stockroute/internal/pkg/cache"
)

// RateLimiter limita cada IP a limit requisições por janela de duration, usando contadores no cache.
// O contador é incrementado antes de qualquer leitura; o primeiro incremento da janela define o TTL.
func RateLimiter(client cache.Client, limit int, duration time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			// 1. Incrementar (cria a chave com valor 1 se a janela anterior expirou)
			count, err := client.Incr(ctx, key)
			if err != nil {
				http.Error(w, apperror.NewCacheError("Falha ao incrementar contador", err).Error(), http.StatusInternalServerError)
				return
			}

			// 2. Nova janela: a chave recém-criada ainda não tem TTL
			if count == 1 {
				if err := client.Expire(ctx, key, duration); err != nil {
					// Sem TTL o contador nunca zeraria; descartamos a chave.
					_ = client.Delete(ctx, key)
					http.Error(w, apperror.NewCacheError("Falha ao iniciar janela do contador", err).Error(), http.StatusInternalServerError)
					return
				}
			}

			// 3. Verificar o limite
			if count > int64(limit) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				http.Error(w, apperror.NewTooManyRequestsError("Muitas requisições, tente novamente mais tarde.").Error(), http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
