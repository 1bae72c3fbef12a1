package checkin

import "time"

// CheckIn is an append-only attendance log entry. Staff make the entry
// decision at the door; recording never depends on subscription status.
type CheckIn struct {
	ID          int       `db:"id" json:"id"`
	UserID      *int      `db:"user_id" json:"user_id,omitempty"`
	WalkInName  *string   `db:"walk_in_name" json:"walk_in_name,omitempty"`
	StaffID     int       `db:"staff_id" json:"staff_id"`
	CheckedInAt time.Time `db:"checked_in_at" json:"checked_in_at"`
}

type CheckInWithNames struct {
	CheckIn
	MemberName *string `db:"member_name" json:"member_name,omitempty"`
	StaffName  string  `db:"staff_name" json:"staff_name"`
}

type RecordCheckInRequest struct {
	UserID     *int    `json:"user_id,omitempty"`
	WalkInName *string `json:"walk_in_name,omitempty"`
}

// FitnessStats are fixed-multiplier derivations of the check-in count.
// There is no independent duration or calorie tracking.
type FitnessStats struct {
	SessionCount      int     `json:"session_count"`
	EstimatedHours    float64 `json:"estimated_hours"`
	EstimatedCalories int     `json:"estimated_calories"`
	BadgeCount        int     `json:"badge_count"`
}

const (
	hoursPerSession    = 1.5
	caloriesPerSession = 500
	sessionsPerBadge   = 5
)

// DeriveStats is a pure function of the session count.
func DeriveStats(sessionCount int) FitnessStats {
	return FitnessStats{
		SessionCount:      sessionCount,
		EstimatedHours:    float64(sessionCount) * hoursPerSession,
		EstimatedCalories: sessionCount * caloriesPerSession,
		BadgeCount:        sessionCount / sessionsPerBadge,
	}
}
