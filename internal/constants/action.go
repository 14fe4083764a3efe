package constants

type BulkAction string

const (
	ActionBlock   BulkAction = "block"
	ActionUnblock BulkAction = "unblock"
	ActionDelete  BulkAction = "delete"
)

// GetAllBulkActions returns all available bulk actions
func GetAllBulkActions() []BulkAction {
	return []BulkAction{
		ActionBlock,
		ActionUnblock,
		ActionDelete,
	}
}

// IsValidBulkAction checks if a bulk action is valid
func IsValidBulkAction(action BulkAction) bool {
	for _, a := range GetAllBulkActions() {
		if a == action {
			return true
		}
	}
	return false
}
