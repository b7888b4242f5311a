package server

import (
	"context"
	"net/http"
	"strings"

	"trackflow/internal/models"
	"trackflow/internal/provision"

	"github.com/gorilla/mux"
)

// registerHookRoutes выставляет lifecycle-хуки наружу: хост дёргает их
// в фиксированных точках установки/обновления аддона.
func registerHookRoutes(r *mux.Router, prov *provision.Provisioner, sharedSecret string) {
	sub := r.PathPrefix("/hooks").Subrouter()
	sub.Use(sharedSecretAuth(sharedSecret))
	sub.HandleFunc("/before-install", runHook(prov.BeforeInstall)).Methods(http.MethodPost)
	sub.HandleFunc("/after-install", runHook(prov.AfterInstall)).Methods(http.MethodPost)
	sub.HandleFunc("/after-migrate", runHook(prov.AfterMigrate)).Methods(http.MethodPost)
}

func runHook(hook func(context.Context) (*provision.Report, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := hook(r.Context())
		if err != nil {
			// фатальный прекондишен; отчёт отдаём вместе с ошибкой
			models.WriteProblem(w, http.StatusConflict,
				"Provisioning Failed", err.Error(), map[string]any{
					"report": rep,
				})
			return
		}
		models.WriteJSON(w, http.StatusOK, rep)
	}
}

// Очень простой вариант: Authorization: Bearer <sharedSecret>
func sharedSecretAuth(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}
			const p = "Bearer "
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, p) || strings.TrimPrefix(auth, p) != secret {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
