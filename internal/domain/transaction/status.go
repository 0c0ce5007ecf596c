package transaction

// ===============================
// Transaction Type / Status
// ===============================

type Type string

const (
	TypeRevenue Type = "revenue"
	TypeExpense Type = "expense"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

func ValidType(t Type) bool {
	return t == TypeRevenue || t == TypeExpense
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}
