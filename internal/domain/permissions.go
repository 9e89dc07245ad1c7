package domain

import "slices"

const (
	PermViewUsers        = "view_users"
	PermManageUsers      = "manage_users"
	PermViewTransactions = "view_transactions"
	PermManageStaff      = "manage_staff"
	PermReplyTickets     = "reply_tickets"
	PermManageSettings   = "manage_settings"
)

// AllPermissions каталог прав, которые можно назначить роли сотрудника. Администратор получает все.
var AllPermissions = []string{
	PermViewUsers,
	PermManageUsers,
	PermViewTransactions,
	PermManageStaff,
	PermReplyTickets,
	PermManageSettings,
}

func IsKnownPermission(p string) bool {
	return slices.Contains(AllPermissions, p)
}
