package sale

import "time"

const (
	TypeSubscription = "subscription"
	TypeProduct      = "product"
)

// Sale is a staff-attributed transaction record, distinct from a raw
// payment: it captures who processed it. Walk-in buyers have no account,
// only a free-text name.
type Sale struct {
	ID            int       `db:"id" json:"id"`
	StaffID       int       `db:"staff_id" json:"staff_id"`
	ClientID      *int      `db:"client_id" json:"client_id,omitempty"`
	WalkInName    *string   `db:"walk_in_name" json:"walk_in_name,omitempty"`
	ProductName   string    `db:"product_name" json:"product_name"`
	SaleType      string    `db:"sale_type" json:"sale_type"`
	AmountCents   int64     `db:"amount_cents" json:"amount_cents"`
	PaymentMethod string    `db:"payment_method" json:"payment_method"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type SaleWithNames struct {
	Sale
	StaffName  string  `db:"staff_name" json:"staff_name"`
	ClientName *string `db:"client_name" json:"client_name,omitempty"`
}

type RecordSaleRequest struct {
	ClientID      *int    `json:"client_id,omitempty"`
	WalkInName    *string `json:"walk_in_name,omitempty"`
	ProductName   string  `json:"product_name" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,gte=1"`
	AmountCents   int64   `json:"amount_cents" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=cash ecocash swipe"`
}

// Analytics backs the manager dashboard.
type Analytics struct {
	TotalMembers      int   `db:"total_members" json:"total_members"`
	ActiveClients     int   `db:"active_clients" json:"active_clients"`
	CheckInsToday     int   `db:"check_ins_today" json:"check_ins_today"`
	SalesToday        int   `db:"sales_today" json:"sales_today"`
	RevenueTodayCents int64 `db:"revenue_today_cents" json:"revenue_today_cents"`
	RevenueMonthCents int64 `db:"revenue_month_cents" json:"revenue_month_cents"`
}
