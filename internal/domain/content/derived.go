package content

import (
	"cmp"
	"slices"
)

// Plan-type option ids of the connect-feature collection.
const (
	PlanCoworking     = "5383df699e111ca346fcf609db644274"
	PlanPrivateOffice = "91b893cfdb755c9b177df15917d819a7"
)

// SortByOrder returns a copy sorted ascending by order. Equal orders keep
// their arrival order.
func SortByOrder[T Ordered](items []T) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(a.SortOrder(), b.SortOrder())
	})
	return out
}

type ServiceEntry struct {
	Name  string `json:"name"`
	Copy  string `json:"copy"`
	Order int    `json:"order"`
}

type ServiceGroup struct {
	Title         string         `json:"title"`
	CategoryOrder int            `json:"categoryOrder"`
	Services      []ServiceEntry `json:"services"`
}

// GroupProductionServices buckets services by category label. A group takes
// the categoryOrder of its first service; groups and their services are
// sorted stably by their order fields.
func GroupProductionServices(services []ProductionService) []ServiceGroup {
	groups := make([]ServiceGroup, 0)
	index := make(map[string]int)

	for _, s := range services {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, ServiceGroup{
				Title:         s.Category,
				CategoryOrder: s.CategoryOrder,
				Services:      make([]ServiceEntry, 0, 1),
			})
		}
		groups[i].Services = append(groups[i].Services, ServiceEntry{
			Name:  s.Name,
			Copy:  s.Description,
			Order: s.Order,
		})
	}

	slices.SortStableFunc(groups, func(a, b ServiceGroup) int {
		return cmp.Compare(a.CategoryOrder, b.CategoryOrder)
	})
	for i := range groups {
		slices.SortStableFunc(groups[i].Services, func(a, b ServiceEntry) int {
			return cmp.Compare(a.Order, b.Order)
		})
	}
	return groups
}

// FeaturesForPlan keeps the features of one plan type, sorted by order.
func FeaturesForPlan(features []ConnectFeature, planType string) []ConnectFeature {
	out := make([]ConnectFeature, 0)
	for _, f := range features {
		if f.PlanType == planType {
			out = append(out, f)
		}
	}
	return SortByOrder(out)
}

// HeroForPage returns the first hero configured for page, or nil.
func HeroForPage(heroes []HeroContent, page string) *HeroContent {
	for i := range heroes {
		if heroes[i].Page == page {
			h := heroes[i]
			return &h
		}
	}
	return nil
}
