package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByOrderIsStable(t *testing.T) {
	in := []Leader{
		{ID: "c", Order: 2},
		{ID: "a", Order: 1},
		{ID: "d", Order: 2},
		{ID: "b", Order: 1},
		{ID: "z", Order: 0},
	}

	got := SortByOrder(in)

	ids := make([]string, 0, len(got))
	for _, l := range got {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"z", "a", "b", "c", "d"}, ids)
	assert.Equal(t, "c", in[0].ID, "input must not be reordered")
}

func TestGroupProductionServices(t *testing.T) {
	services := []ProductionService{
		{Category: "POST-PRODUCTION", Name: "Color", Order: 2, CategoryOrder: 3},
		{Category: "PRE-PRODUCTION", Name: "Scouting", Order: 2, CategoryOrder: 1},
		{Category: "POST-PRODUCTION", Name: "Editing", Order: 1, CategoryOrder: 3},
		{Category: "PRE-PRODUCTION", Name: "Casting", Order: 1, CategoryOrder: 1, Description: "Talent"},
	}

	got := GroupProductionServices(services)

	want := []ServiceGroup{
		{Title: "PRE-PRODUCTION", CategoryOrder: 1, Services: []ServiceEntry{
			{Name: "Casting", Copy: "Talent", Order: 1},
			{Name: "Scouting", Order: 2},
		}},
		{Title: "POST-PRODUCTION", CategoryOrder: 3, Services: []ServiceEntry{
			{Name: "Editing", Order: 1},
			{Name: "Color", Order: 2},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupProductionServicesEmpty(t *testing.T) {
	got := GroupProductionServices(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFeaturesForPlan(t *testing.T) {
	features := []ConnectFeature{
		{ID: "1", PlanType: PlanPrivateOffice, Order: 1},
		{ID: "2", PlanType: PlanCoworking, Order: 2},
		{ID: "3", PlanType: PlanCoworking, Order: 1},
		{ID: "4", PlanType: "other", Order: 0},
	}

	cowork := FeaturesForPlan(features, PlanCoworking)
	require.Len(t, cowork, 2)
	assert.Equal(t, "3", cowork[0].ID)
	assert.Equal(t, "2", cowork[1].ID)

	office := FeaturesForPlan(features, PlanPrivateOffice)
	require.Len(t, office, 1)
	assert.Equal(t, "1", office[0].ID)

	assert.Empty(t, FeaturesForPlan(features, "missing"))
}

func TestHeroForPage(t *testing.T) {
	heroes := []HeroContent{
		{ID: "1", Page: "home", Title: "First"},
		{ID: "2", Page: "studios"},
		{ID: "3", Page: "home", Title: "Second"},
	}

	got := HeroForPage(heroes, "home")
	require.NotNil(t, got)
	assert.Equal(t, "First", got.Title)

	got.Title = "changed"
	assert.Equal(t, "First", heroes[0].Title)

	assert.Nil(t, HeroForPage(heroes, "blog"))
}
