package promotion

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired          = errors.New("promotion name is required")
	ErrInvalidType           = errors.New("invalid promotion type")
	ErrInvalidTargeting      = errors.New("invalid targeting type")
	ErrInvalidActivation     = errors.New("invalid activation mode")
	ErrNegativeValue         = errors.New("discount value cannot be negative")
	ErrPercentOutOfRange     = errors.New("percentage must be between 0 and 100")
	ErrNegativeCap           = errors.New("max discount amount cannot be negative")
	ErrNegativeMinBill       = errors.New("min bill amount cannot be negative")
	ErrInvalidDateRange      = errors.New("end date must be after start date")
	ErrCouponCodeRequired    = errors.New("coupon code is required for coupon activation")
	ErrInvalidCustomerLimit  = errors.New("usage limit per customer must be at least 1")
	ErrInvalidTotalLimit     = errors.New("total usage limit must be at least 1")
	ErrComboWithoutRules     = errors.New("combo promotion requires at least one component")
	ErrComboNestedCombo      = errors.New("combo component must be flat or percentage")
)

// Component is one discount rule. FLAT and PERCENTAGE promotions carry exactly
// one component scoped to the promotion's applicable sets; a COMBO carries an
// ordered list, each with its own scope and cap.
type Component struct {
	kind       Type
	valueCents int64   // FLAT: fixed amount off
	percent    float64 // PERCENTAGE: value% off
	capCents   int64   // 0 = uncapped
	services   RefSet
	products   RefSet
}

type ComponentParams struct {
	Type       Type
	ValueCents int64
	Percent    float64
	CapCents   int64
	Services   []uuid.UUID
	Products   []uuid.UUID
}

func newComponent(p ComponentParams) (Component, error) {
	switch p.Type {
	case TypeFlat:
		if p.ValueCents < 0 {
			return Component{}, ErrNegativeValue
		}
	case TypePercentage:
		if p.Percent < 0 || p.Percent > 100 {
			return Component{}, ErrPercentOutOfRange
		}
	case TypeCombo:
		return Component{}, ErrComboNestedCombo
	default:
		return Component{}, ErrInvalidType
	}
	if p.CapCents < 0 {
		return Component{}, ErrNegativeCap
	}
	return Component{
		kind:       p.Type,
		valueCents: p.ValueCents,
		percent:    p.Percent,
		capCents:   p.CapCents,
		services:   NewRefSet(p.Services),
		products:   NewRefSet(p.Products),
	}, nil
}

func (c Component) Kind() Type          { return c.kind }
func (c Component) ValueCents() int64   { return c.valueCents }
func (c Component) Percent() float64    { return c.percent }
func (c Component) CapCents() int64     { return c.capCents }
func (c Component) Services() RefSet    { return c.services }
func (c Component) Products() RefSet    { return c.products }

// Promotion is a configured discount rule with eligibility constraints and
// usage limits. Record invariants are enforced at construction time: a
// Promotion value that exists is a valid one.
type Promotion struct {
	id               uuid.UUID
	name             string
	description      string
	promoType        Type
	components       []Component
	maxDiscountCents int64
	minBillCents     int64
	services         RefSet
	products         RefSet
	outlets          RefSet
	startDate        time.Time
	endDate          time.Time
	window           *TimeWindow
	active           bool
	targeting        TargetingType
	perCustomerLimit int32
	totalLimit       *int64
	activation       ActivationMode
	couponCode       Code
}

type Params struct {
	ID          uuid.UUID
	Name        string
	Description string
	Type        Type

	// FLAT value in minor currency units; PERCENTAGE value as percent.
	ValueCents int64
	Percent    float64

	MaxDiscountCents int64
	MinBillCents     int64

	Services []uuid.UUID
	Products []uuid.UUID
	Outlets  []uuid.UUID

	StartDate time.Time
	EndDate   time.Time
	// Both empty means no time-of-day restriction.
	StartTime string
	EndTime   string

	Active    bool
	Targeting TargetingType

	// Zero means the default of 1.
	UsageLimitPerCustomer int32
	TotalUsageLimit       *int64

	Activation ActivationMode
	CouponCode string

	// COMBO only.
	Components []ComponentParams
}

func New(p Params) (*Promotion, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrNameRequired
	}
	if !p.Type.IsValid() {
		return nil, ErrInvalidType
	}
	if !p.Targeting.IsValid() {
		return nil, ErrInvalidTargeting
	}
	if !p.Activation.IsValid() {
		return nil, ErrInvalidActivation
	}
	if p.MaxDiscountCents < 0 {
		return nil, ErrNegativeCap
	}
	if p.MinBillCents < 0 {
		return nil, ErrNegativeMinBill
	}
	if !p.EndDate.After(p.StartDate) {
		return nil, ErrInvalidDateRange
	}

	var window *TimeWindow
	switch {
	case p.StartTime == "" && p.EndTime == "":
		// no restriction
	case p.StartTime == "" || p.EndTime == "":
		return nil, ErrHalfOpenTimeWindow
	default:
		w, err := NewTimeWindow(p.StartTime, p.EndTime)
		if err != nil {
			return nil, err
		}
		window = &w
	}

	perCustomer := p.UsageLimitPerCustomer
	if perCustomer == 0 {
		perCustomer = 1
	}
	if perCustomer < 1 {
		return nil, ErrInvalidCustomerLimit
	}
	if p.TotalUsageLimit != nil && *p.TotalUsageLimit < 1 {
		return nil, ErrInvalidTotalLimit
	}

	var couponCode Code
	if p.Activation == ActivationCoupon {
		if strings.TrimSpace(p.CouponCode) == "" {
			return nil, ErrCouponCodeRequired
		}
		code, err := NewCode(p.CouponCode)
		if err != nil {
			return nil, err
		}
		couponCode = code
	}

	services := NewRefSet(p.Services)
	products := NewRefSet(p.Products)

	components, err := buildComponents(p, services, products)
	if err != nil {
		return nil, err
	}

	return &Promotion{
		id:               p.ID,
		name:             strings.TrimSpace(p.Name),
		description:      strings.TrimSpace(p.Description),
		promoType:        p.Type,
		components:       components,
		maxDiscountCents: p.MaxDiscountCents,
		minBillCents:     p.MinBillCents,
		services:         services,
		products:         products,
		outlets:          NewRefSet(p.Outlets),
		startDate:        p.StartDate,
		endDate:          p.EndDate,
		window:           window,
		active:           p.Active,
		targeting:        p.Targeting,
		perCustomerLimit: perCustomer,
		totalLimit:       p.TotalUsageLimit,
		activation:       p.Activation,
		couponCode:       couponCode,
	}, nil
}

// FLAT and PERCENTAGE normalize to a single component over the promotion's own
// applicable sets, so the calculator walks one code path for every type.
func buildComponents(p Params, services, products RefSet) ([]Component, error) {
	if p.Type != TypeCombo {
		c, err := newComponent(ComponentParams{
			Type:       p.Type,
			ValueCents: p.ValueCents,
			Percent:    p.Percent,
			CapCents:   p.MaxDiscountCents,
		})
		if err != nil {
			return nil, err
		}
		c.services = services
		c.products = products
		return []Component{c}, nil
	}

	if len(p.Components) == 0 {
		return nil, ErrComboWithoutRules
	}
	components := make([]Component, 0, len(p.Components))
	for _, cp := range p.Components {
		c, err := newComponent(cp)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, nil
}

func (p *Promotion) ID() uuid.UUID                 { return p.id }
func (p *Promotion) Name() string                  { return p.name }
func (p *Promotion) Description() string           { return p.description }
func (p *Promotion) Type() Type                    { return p.promoType }
func (p *Promotion) Components() []Component       { return p.components }
func (p *Promotion) MaxDiscountCents() int64       { return p.maxDiscountCents }
func (p *Promotion) MinBillCents() int64           { return p.minBillCents }
func (p *Promotion) Services() RefSet              { return p.services }
func (p *Promotion) Products() RefSet              { return p.products }
func (p *Promotion) Outlets() RefSet               { return p.outlets }
func (p *Promotion) StartDate() time.Time          { return p.startDate }
func (p *Promotion) EndDate() time.Time            { return p.endDate }
func (p *Promotion) Window() *TimeWindow           { return p.window }
func (p *Promotion) IsActive() bool                { return p.active }
func (p *Promotion) Targeting() TargetingType      { return p.targeting }
func (p *Promotion) UsageLimitPerCustomer() int32  { return p.perCustomerLimit }
func (p *Promotion) TotalUsageLimit() *int64       { return p.totalLimit }
func (p *Promotion) Activation() ActivationMode    { return p.activation }
func (p *Promotion) CouponCode() Code              { return p.couponCode }
