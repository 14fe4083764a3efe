package constants

type UserStatus string

const (
	StatusActive  UserStatus = "active"
	StatusBlocked UserStatus = "blocked"
)

// GetAllStatuses returns all available account statuses
func GetAllStatuses() []UserStatus {
	return []UserStatus{
		StatusActive,
		StatusBlocked,
	}
}

// IsValidStatus checks if a status is valid
func IsValidStatus(status UserStatus) bool {
	for _, s := range GetAllStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
