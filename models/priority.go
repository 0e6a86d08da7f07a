package models

import "github.com/pkg/errors"

type RequestPriority string

const (
	PriorityLow    RequestPriority = "LOW"
	PriorityMedium RequestPriority = "MEDIUM"
	PriorityHigh   RequestPriority = "HIGH"
)

// ParseRequestPriority пустое значение - MEDIUM
func ParseRequestPriority(value string) (RequestPriority, error) {
	if value == "" {
		return PriorityMedium, nil
	}
	priority := RequestPriority(normalizeCode(value))
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return priority, nil
	}
	return "", errors.Errorf("недопустимый приоритет заявки: %v", value)
}
