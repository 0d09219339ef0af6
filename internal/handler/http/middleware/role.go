package middleware

import (
	"net/http"

	"github.com/careerbridge/recruit-backend-go/internal/domain/user"
	"github.com/careerbridge/recruit-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRecruiter requires recruiter role
func RequireRecruiter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrRecruiterAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrRecruiterAccessRequired)
			return
		}

		if role != string(user.RoleRecruiter) {
			response.HandleError(w, user.ErrRecruiterAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireStudent requires student role
func RequireStudent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrStudentAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrStudentAccessRequired)
			return
		}

		if role != string(user.RoleStudent) {
			response.HandleError(w, user.ErrStudentAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
