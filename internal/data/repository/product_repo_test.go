package repository

import (
	"strings"
	"testing"

	"marketplace-api/internal/data/entity"

	"github.com/shopspring/decimal"
)

func TestBuildProductWhere_NoFilters(t *testing.T) {
	where, args := buildProductWhere(ProductFilter{})

	if where != " WHERE p.is_active = TRUE" {
		t.Errorf("where = %q, want the bare active-only clause", where)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildProductWhere_AllFilters(t *testing.T) {
	category := "electronics"
	minPrice := decimal.NewFromInt(10)
	maxPrice := decimal.NewFromInt(100)

	where, args := buildProductWhere(ProductFilter{
		Category: &category,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Search:   "keyboard",
	})

	if !strings.HasPrefix(where, " WHERE p.is_active = TRUE") {
		t.Errorf("where = %q, must always start with the active-only clause", where)
	}
	for _, clause := range []string{
		"p.category = $1",
		"p.price >= $2",
		"p.price <= $3",
		"(p.name ILIKE $4 OR p.description ILIKE $4)",
	} {
		if !strings.Contains(where, clause) {
			t.Errorf("where = %q, missing %q", where, clause)
		}
	}

	want := []any{"electronics", "10", "100", "%keyboard%"}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %v, want %v", i, args[i], want[i])
		}
	}
}

// Placeholder numbering must stay contiguous when only some filters are
// set, or the query binds arguments to the wrong clauses.
func TestBuildProductWhere_PartialFiltersRenumber(t *testing.T) {
	maxPrice := decimal.NewFromInt(50)

	where, args := buildProductWhere(ProductFilter{
		MaxPrice: &maxPrice,
		Search:   "lamp",
	})

	if !strings.Contains(where, "p.price <= $1") {
		t.Errorf("where = %q, max price must bind $1", where)
	}
	if !strings.Contains(where, "(p.name ILIKE $2 OR p.description ILIKE $2)") {
		t.Errorf("where = %q, search must bind $2", where)
	}
	if len(args) != 2 || args[0] != "50" || args[1] != "%lamp%" {
		t.Errorf("args = %v, want [50 %%lamp%%]", args)
	}
}

func TestBuildProductWhere_EmptyCategoryIgnored(t *testing.T) {
	empty := ""
	where, args := buildProductWhere(ProductFilter{Category: &empty})

	if strings.Contains(where, "category") {
		t.Errorf("where = %q, empty category must not filter", where)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestParseDecimals(t *testing.T) {
	var p entity.Product
	weight := "1.250"

	if err := parseDecimals(&p, "19.99", &weight); err != nil {
		t.Fatalf("parseDecimals returned error: %v", err)
	}
	if !p.Price.Equal(decimal.NewFromFloat(19.99)) {
		t.Errorf("price %s, want 19.99", p.Price)
	}
	if p.Weight == nil || !p.Weight.Equal(decimal.NewFromFloat(1.25)) {
		t.Errorf("weight %v, want 1.25", p.Weight)
	}

	var q entity.Product
	if err := parseDecimals(&q, "5", nil); err != nil {
		t.Fatalf("parseDecimals returned error: %v", err)
	}
	if q.Weight != nil {
		t.Errorf("weight %v, want nil when the column is NULL", q.Weight)
	}

	var r entity.Product
	if err := parseDecimals(&r, "not-a-number", nil); err == nil {
		t.Error("parseDecimals accepted a malformed price")
	}
}

func TestDecimalPtrToString(t *testing.T) {
	if got := decimalPtrToString(nil); got != nil {
		t.Errorf("nil decimal mapped to %v, want nil", got)
	}

	d := decimal.NewFromFloat(2.5)
	got := decimalPtrToString(&d)
	if got == nil || *got != "2.5" {
		t.Errorf("decimal mapped to %v, want 2.5", got)
	}
}
