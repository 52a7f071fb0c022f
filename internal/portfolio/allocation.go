package portfolio

import (
	"sort"

	"patrimon/internal/models"
)

// SubcategoryGroup is one subcategory row within a category group.
// Pct is the share of the grand total, not of the category subtotal.
type SubcategoryGroup struct {
	Name   string         `json:"name"`
	Value  int64          `json:"value"`
	Pct    float64        `json:"pct"`
	Assets []models.Asset `json:"assets"`
}

// CategoryGroup aggregates all assets of one category.
type CategoryGroup struct {
	Category      models.AssetCategory `json:"category"`
	Value         int64                `json:"value"`
	Pct           float64              `json:"pct"`
	Subcategories []SubcategoryGroup   `json:"subcategories"`
}

// GroupAllocations groups assets by category and subcategory against the
// given normalizing total. Categories and subcategories without members
// are omitted rather than emitted as zero rows, and both levels are
// sorted by value descending. When total is zero every percentage is
// reported as zero so the result never carries NaN or infinities.
func GroupAllocations(assets []models.Asset, total int64) []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(models.Categories))

	for _, cat := range models.Categories {
		var catValue int64
		subOrder := make([]string, 0)
		subs := make(map[string]*SubcategoryGroup)

		for _, a := range assets {
			if a.Category != cat {
				continue
			}
			catValue += a.Value

			sub, ok := subs[a.Subcategory]
			if !ok {
				sub = &SubcategoryGroup{Name: a.Subcategory}
				subs[a.Subcategory] = sub
				subOrder = append(subOrder, a.Subcategory)
			}
			sub.Value += a.Value
			sub.Assets = append(sub.Assets, a)
		}

		if len(subs) == 0 {
			continue
		}

		group := CategoryGroup{
			Category:      cat,
			Value:         catValue,
			Pct:           pctOf(catValue, total),
			Subcategories: make([]SubcategoryGroup, 0, len(subs)),
		}
		for _, name := range subOrder {
			sub := subs[name]
			sub.Pct = pctOf(sub.Value, total)
			group.Subcategories = append(group.Subcategories, *sub)
		}
		sort.SliceStable(group.Subcategories, func(i, j int) bool {
			return group.Subcategories[i].Value > group.Subcategories[j].Value
		})

		groups = append(groups, group)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Value > groups[j].Value
	})

	return groups
}

// pctOf returns value as a percentage of total, or 0 when total is 0.
func pctOf(value, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(value) / float64(total) * 100
}
