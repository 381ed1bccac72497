package catalog

import (
	"math"
	"reflect"
	"testing"
)

func sampleCatalog() []Promotion {
	return []Promotion{
		{ID: "p1", Title: "Fone Bluetooth", Category: "eletronicos", Store: "TechShop", NewPrice: 150},
		{ID: "p2", Title: "Smart TV 50\"", Category: "eletronicos", Store: "MegaStore", NewPrice: 2200},
		{ID: "p3", Title: "Tenis Corrida", Category: "moda", Store: "TechShop", NewPrice: 180},
	}
}

func TestFilterConjunction(t *testing.T) {
	base := Promotion{ID: "x", Title: "Fone Bluetooth", Category: "eletronicos", Store: "TechShop", NewPrice: 150}
	criteria := Criteria{Text: "fone", Category: "eletronicos", Store: "techshop", MinPrice: 100, MaxPrice: 200}

	if !criteria.Matches(base) {
		t.Fatalf("base promotion should match %+v", criteria)
	}

	// Each variant fails exactly one predicate.
	failing := []struct {
		name string
		p    Promotion
	}{
		{"text", func() Promotion { p := base; p.Title = "Carregador USB"; return p }()},
		{"category", func() Promotion { p := base; p.Category = "moda"; return p }()},
		{"store", func() Promotion { p := base; p.Store = "MegaStore"; return p }()},
		{"price below", func() Promotion { p := base; p.NewPrice = 50; return p }()},
		{"price above", func() Promotion { p := base; p.NewPrice = 300; return p }()},
	}

	for _, tt := range failing {
		t.Run(tt.name, func(t *testing.T) {
			if criteria.Matches(tt.p) {
				t.Errorf("promotion failing the %s predicate must not match", tt.name)
			}
		})
	}
}

func TestFilterIdempotence(t *testing.T) {
	items := sampleCatalog()
	criterias := []Criteria{
		{},
		{Category: "eletronicos"},
		{Text: "tv", MaxPrice: 5000},
		{Store: "TECHSHOP", MinPrice: 100, MaxPrice: 200},
	}

	for _, c := range criterias {
		once := Filter(items, c)
		twice := Filter(once, c)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Filter not idempotent for %+v: %v vs %v", c, once, twice)
		}
	}
}

func TestFilterSentinels(t *testing.T) {
	items := sampleCatalog()

	if got := Filter(items, Criteria{Category: FilterAll, Store: FilterAll}); len(got) != 3 {
		t.Errorf("sentinel criteria filtered to %d items, want all 3", len(got))
	}
	if got := Filter(items, Criteria{}); len(got) != 3 {
		t.Errorf("zero criteria filtered to %d items, want all 3", len(got))
	}
}

func TestFilterTextIsCaseInsensitiveSubstring(t *testing.T) {
	items := sampleCatalog()

	got := Filter(items, Criteria{Text: "BLUE"})
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("Filter by text = %v, want only p1", got)
	}
}

func TestFilterPriceDefaults(t *testing.T) {
	items := sampleCatalog()

	// NaN bounds degrade to the unbounded range.
	got := Filter(items, Criteria{MinPrice: math.NaN(), MaxPrice: math.NaN()})
	if len(got) != 3 {
		t.Errorf("NaN price bounds filtered to %d items, want all 3", len(got))
	}

	got = Filter(items, Criteria{MaxPrice: 200})
	if len(got) != 2 {
		t.Errorf("MaxPrice=200 returned %d items, want 2", len(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	items := sampleCatalog()
	snapshot := append([]Promotion(nil), items...)

	Filter(items, Criteria{Category: "eletronicos"})

	if !reflect.DeepEqual(items, snapshot) {
		t.Error("Filter mutated its input slice")
	}
}

func TestFilterCategoryAndPriceRange(t *testing.T) {
	items := sampleCatalog()

	got := Filter(items, Criteria{Category: "eletronicos", MinPrice: 0, MaxPrice: 200})
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("Filter = %v, want exactly p1", got)
	}
}
