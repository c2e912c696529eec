package billing

// Segment is the customer classification a promotion can target. It is
// computed by the CRM from visit history and supplied with the bill; the
// engine never derives it.
type Segment string

const (
	SegmentAll      Segment = "ALL"
	SegmentNew      Segment = "NEW"
	SegmentRegular  Segment = "REGULAR"
	SegmentInactive Segment = "INACTIVE"
)

func (s Segment) String() string {
	return string(s)
}

func (s Segment) IsValid() bool {
	switch s {
	case SegmentAll, SegmentNew, SegmentRegular, SegmentInactive:
		return true
	default:
		return false
	}
}

// RefType distinguishes the two kinds of sellable line items on a salon bill.
type RefType string

const (
	RefService RefType = "service"
	RefProduct RefType = "product"
)

func (r RefType) IsValid() bool {
	return r == RefService || r == RefProduct
}
