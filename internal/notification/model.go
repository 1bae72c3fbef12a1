package notification

import "time"

const (
	TypePayment     = "payment"
	TypeWorkout     = "workout"
	TypeAchievement = "achievement"
	TypeReminder    = "reminder"
	TypeSystem      = "system"
	TypeGeneral     = "general"
)

type Notification struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	Type      string    `db:"type" json:"type"`
	Read      bool      `db:"read" json:"read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func ValidType(t string) bool {
	switch t {
	case TypePayment, TypeWorkout, TypeAchievement, TypeReminder, TypeSystem, TypeGeneral:
		return true
	}
	return false
}
