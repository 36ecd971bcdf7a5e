package domain

// Roles carried by users.
const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleDriver = "driver"
)

// Ledger entry types. Only deductions exist today; top-ups would join here.
const (
	LedgerDeduct = "deduct"
)

// Identity carries the authenticated caller resolved by the auth middleware.
// The booking coordinator receives it explicitly, never from ambient state.
type Identity struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}
