package middleware

import (
	"net/http"

	"ime-admin-service/internal/domain/entity"
	"ime-admin-service/pkg/response"
)

// RequireRole creates a middleware that checks if the user holds any of
// the required role names. Role is read from context (set by
// AuthMiddleware from JWT claims).
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSuperAdmin is a convenience middleware for super-admin-only endpoints
func RequireSuperAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleSuperAdmin)(next)
}

// RequireAdmin allows both admin tiers
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleSuperAdmin, entity.RoleOrgAdmin)(next)
}

// RequireExaminer is a convenience middleware for examiner endpoints
func RequireExaminer(next http.Handler) http.Handler {
	return RequireRole(entity.RoleExaminer)(next)
}

// RequireAdminOrExaminer covers endpoints examiners manage themselves and
// admins manage on their behalf
func RequireAdminOrExaminer(next http.Handler) http.Handler {
	return RequireRole(entity.RoleSuperAdmin, entity.RoleOrgAdmin, entity.RoleExaminer)(next)
}
