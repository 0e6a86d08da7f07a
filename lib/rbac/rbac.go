package rbac

import (
	"regexp"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"hr-admin-backend/models"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

var Instance Provider

func NewHandler() {
	Instance = newRbac()
}

func newRbac() *impl {
	i := &impl{
		rules:       map[HTTPMethod]*PathRule{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
	i.initRules()
	return i
}

type impl struct {
	rules       map[HTTPMethod]*PathRule
	permissions map[models.UserRole]map[models.Module][]models.Permission
}

func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	pathRule, ok := i.rules[HTTPMethod(strings.ToUpper(method))]
	if !ok {
		return nil, false
	}
	return pathRule.find(normalizePath(path))
}

// RegisterRule pattern в формате swagger: "/api/v1/hr-request/{id} [get]".
// handler nil - доступ по списку ролей
func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		return err
	}
	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	pathRule, ok := i.rules[method]
	if !ok {
		pathRule = &PathRule{Exact: map[string]models.RbacFunc{}}
		i.rules[method] = pathRule
	}
	if err = pathRule.add(path, handler); err != nil {
		return errors.Wrapf(err, "правило %v", swaggerPattern)
	}
	i.addPermission(module, permission, roles)
	return nil
}

// mustRegister правила задаются в коде, ошибка в шаблоне - ошибка сборки приложения
func (i *impl) mustRegister(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) {
	if err := i.RegisterRule(module, permission, roles, swaggerPattern, handler); err != nil {
		panic(err.Error())
	}
}

func (i *impl) addPermission(module models.Module, permission models.Permission, roles []models.UserRole) {
	for _, role := range roles {
		modules, ok := i.permissions[role]
		if !ok {
			modules = map[models.Module][]models.Permission{}
			i.permissions[role] = modules
		}
		if !slices.Contains(modules[module], permission) {
			modules[module] = append(modules[module], permission)
		}
	}
}

// GetPermissions разделы и действия роли для интерфейса
func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	return i.permissions[role]
}

func (r *PathRule) add(path string, handler models.RbacFunc) error {
	if !strings.Contains(path, "{") {
		r.Exact[path] = handler
		return nil
	}
	pattern, err := pathToRegex(path)
	if err != nil {
		return err
	}
	r.Patterns = append(r.Patterns, PatternRule{Pattern: pattern, Handler: handler})
	return nil
}

func (r *PathRule) find(path string) (models.RbacFunc, bool) {
	if handler, ok := r.Exact[path]; ok {
		return handler, true
	}
	for _, rule := range r.Patterns {
		if rule.Pattern.MatchString(path) {
			return rule.Handler, true
		}
	}
	return nil, false
}

var pathParamRegex = regexp.MustCompile(`\\\{[^}]+?\\\}`)

// pathToRegex {param} - один сегмент пути
func pathToRegex(path string) (*regexp.Regexp, error) {
	pattern := pathParamRegex.ReplaceAllString(regexp.QuoteMeta(path), `([^/]+)`)
	return regexp.Compile("^" + pattern + "$")
}

func AllowFunc() models.RbacFunc {
	return func(companyID, userID string, role models.UserRole, uri string) bool {
		return true
	}
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	allowMap := map[models.UserRole]bool{}
	for _, role := range accessRoles {
		allowMap[role] = true
	}
	return func(companyID, userID string, role models.UserRole, uri string) bool {
		return allowMap[role]
	}
}

func parseSwaggerPattern(pattern string) (path string, method HTTPMethod, err error) {
	pattern = strings.TrimSpace(pattern)
	start := strings.LastIndex(pattern, "[")
	end := strings.LastIndex(pattern, "]")
	if start == -1 || end < start {
		return "", "", errors.Errorf("не указан метод в шаблоне (%v)", pattern)
	}
	method = HTTPMethod(strings.ToUpper(strings.TrimSpace(pattern[start+1 : end])))
	if method == "" {
		return "", "", errors.Errorf("не указан метод в шаблоне (%v)", pattern)
	}
	return normalizePath(pattern[:start]), method, nil
}

func normalizePath(path string) string {
	path = "/" + strings.Trim(strings.TrimSpace(path), "/")
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	return path
}
