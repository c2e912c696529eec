package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshot for command-side limit checks
type PromotionSnapshot struct {
	ID                    uuid.UUID
	Name                  string
	IsActive              bool
	UsageLimitPerCustomer int32
	TotalUsageLimit       *int64
	CurrentUsageCount     int64
}

type RedemptionRecord struct {
	BillID        uuid.UUID
	PromotionID   uuid.UUID
	CustomerID    uuid.UUID
	DiscountCents int64
	Breakdown     []byte
	CommittedAt   time.Time
}
