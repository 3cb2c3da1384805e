package service

import "github.com/shopfront/storefront-api/internal/core/domain"

// Access gate predicates. Pure and total: they inspect a role and nothing
// else. Page-level guards obtain the role from the session reader first, then
// apply a predicate; redirects and denials are the guard's business.

// CanAccessDashboard reports whether the role may open the admin dashboard.
func CanAccessDashboard(role domain.Role) bool {
	return role == domain.RoleOwner || role == domain.RoleStaff
}

// CanAccessSettings reports whether the role may open store settings.
func CanAccessSettings(role domain.Role) bool {
	return role == domain.RoleOwner
}

// CanManageCatalog reports whether the role may edit pages and products.
func CanManageCatalog(role domain.Role) bool {
	return role == domain.RoleOwner || role == domain.RoleStaff
}
