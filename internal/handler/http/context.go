package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/careerbridge/recruit-backend-go/internal/domain/user"
	"github.com/careerbridge/recruit-backend-go/internal/pkg/timeutil"
	"github.com/go-chi/jwtauth/v5"
)

// getUserIDFromContext extracts user_id from JWT context
func getUserIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if userID, ok := claims["user_id"].(string); ok {
		return userID
	}
	return ""
}

// getActorFromContext extracts the authenticated actor from JWT context
func getActorFromContext(r *http.Request) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Actor{}, user.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Actor{}, user.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return user.Actor{}, user.ErrUnknownRole
	}

	role := user.Role(roleStr)
	if !role.IsValid() {
		return user.Actor{}, user.ErrUnknownRole
	}

	return user.Actor{ID: userID, Role: role}, nil
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// getBoolQueryParam gets a bool query parameter with a default value
func getBoolQueryParam(r *http.Request, key string, defaultVal bool) bool {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	return val == "true" || val == "1"
}

// getDateRange reads from/to query parameters. The default window is today
// through thirty days out.
func getDateRange(r *http.Request) (time.Time, time.Time, bool) {
	from := timeutil.DateOnly(time.Now())
	to := from.AddDate(0, 0, 30)

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse(timeutil.DateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse(timeutil.DateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}

	return from, to, true
}
