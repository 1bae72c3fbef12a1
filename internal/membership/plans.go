package membership

import "errors"

var ErrUnknownPlan = errors.New("unknown plan type")

type Plan struct {
	Type       PlanType `json:"type"`
	Name       string   `json:"name"`
	Duration   string   `json:"duration"`
	PriceCents int64    `json:"price_cents"`
	Popular    bool     `json:"popular,omitempty"`
}

// Catalog holds the purchasable plans. The set of plans is fixed; prices
// come from configuration.
type Catalog struct {
	plans []Plan
}

func NewCatalog(dailyCents, monthlyCents, trainerCents int64) *Catalog {
	return &Catalog{plans: []Plan{
		{
			Type:       PlanDaily,
			Name:       "Daily Pass",
			Duration:   "24 Hours",
			PriceCents: dailyCents,
		},
		{
			Type:       PlanMonthly,
			Name:       "Monthly Basic",
			Duration:   "1 Month",
			PriceCents: monthlyCents,
		},
		{
			Type:       PlanTrainer,
			Name:       "Monthly + Trainer",
			Duration:   "1 Month",
			PriceCents: trainerCents,
			Popular:    true,
		},
	}}
}

func (c *Catalog) Plans() []Plan {
	return c.plans
}

func (c *Catalog) Find(planType PlanType) (Plan, error) {
	for _, p := range c.plans {
		if p.Type == planType {
			return p, nil
		}
	}
	return Plan{}, ErrUnknownPlan
}
