package promotion

// Type selects the discount formula a promotion applies.
type Type string

const (
	TypeFlat       Type = "FLAT"
	TypePercentage Type = "PERCENTAGE"
	TypeCombo      Type = "COMBO"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeFlat, TypePercentage, TypeCombo:
		return true
	default:
		return false
	}
}

// TargetingType gates a promotion to a customer segment. ALL matches every
// customer; any other value requires the bill's segment to match exactly.
type TargetingType string

const (
	TargetAll      TargetingType = "ALL"
	TargetNew      TargetingType = "NEW"
	TargetRegular  TargetingType = "REGULAR"
	TargetInactive TargetingType = "INACTIVE"
)

func (t TargetingType) String() string {
	return string(t)
}

func (t TargetingType) IsValid() bool {
	switch t {
	case TargetAll, TargetNew, TargetRegular, TargetInactive:
		return true
	default:
		return false
	}
}

// ActivationMode distinguishes promotions applied silently from those that
// require the customer to present a coupon code.
type ActivationMode string

const (
	ActivationAuto   ActivationMode = "AUTO"
	ActivationCoupon ActivationMode = "COUPON"
)

func (m ActivationMode) String() string {
	return string(m)
}

func (m ActivationMode) IsValid() bool {
	return m == ActivationAuto || m == ActivationCoupon
}
