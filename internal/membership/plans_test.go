package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Find(t *testing.T) {
	catalog := NewCatalog(250, 3000, 5000)

	daily, err := catalog.Find(PlanDaily)
	require.NoError(t, err)
	assert.Equal(t, int64(250), daily.PriceCents)
	assert.Equal(t, "Daily Pass", daily.Name)

	trainer, err := catalog.Find(PlanTrainer)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), trainer.PriceCents)
	assert.True(t, trainer.Popular)

	_, err = catalog.Find("weekly")
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

func TestCatalog_PricesAreConfigurable(t *testing.T) {
	catalog := NewCatalog(300, 3500, 6000)

	monthly, err := catalog.Find(PlanMonthly)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), monthly.PriceCents)
}

func TestCatalog_Plans(t *testing.T) {
	catalog := NewCatalog(250, 3000, 5000)
	plans := catalog.Plans()

	require.Len(t, plans, 3)
	assert.Equal(t, PlanDaily, plans[0].Type)
	assert.Equal(t, PlanMonthly, plans[1].Type)
	assert.Equal(t, PlanTrainer, plans[2].Type)
}
