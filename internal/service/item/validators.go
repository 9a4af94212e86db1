package item

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidCategory(category string) bool {
	return strings.TrimSpace(category) != ""
}

func isValidCondition(condition string) bool {
	switch condition {
	case "new", "good", "fair", "poor":
		return true
	default:
		return false
	}
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "approved", "rejected", "scheduled", "reserved", "collected":
		return true
	default:
		return false
	}
}
