package rbac

import (
	"regexp"

	"hr-admin-backend/models"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
)

// PathRule правила одного HTTP метода
type PathRule struct {
	Exact    map[string]models.RbacFunc
	Patterns []PatternRule // пути с параметрами, {id} и т.п.
}

type PatternRule struct {
	Pattern *regexp.Regexp
	Handler models.RbacFunc
}
