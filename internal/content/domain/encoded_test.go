package domain

import "testing"

func TestDefaultTree_DeepCopy(t *testing.T) {
	first := DefaultTree("home")
	first["hero"]["title"] = "mutated"

	second := DefaultTree("home")
	if second["hero"]["title"] != "Il tuo benessere," {
		t.Fatal("DefaultTree must return an independent copy")
	}
}

func TestDefaultTree_UnknownPage(t *testing.T) {
	if DefaultTree("blog") != nil {
		t.Fatal("expected nil tree for an unknown page")
	}
}

func TestValidPage(t *testing.T) {
	for _, page := range Pages {
		if !ValidPage(page) {
			t.Fatalf("page %q rejected", page)
		}
	}
	if ValidPage("blog") || ValidPage("") {
		t.Fatal("unknown page accepted")
	}
}

func TestParsePricingPackages(t *testing.T) {
	packages := ParsePricingPackages(`[{"name":"Promo","price":30,"unit":"seduta","features":["x"]}]`)
	if len(packages) != 1 || packages[0].Name != "Promo" || packages[0].Price != 30 {
		t.Fatalf("unexpected decode result: %+v", packages)
	}
}

func TestParsePricingPackages_FallbackOnGarbage(t *testing.T) {
	for _, raw := range []string{"", "not json", "{}", "[]"} {
		packages := ParsePricingPackages(raw)
		if len(packages) != 3 || packages[0].Name != "Seduta Singola" {
			t.Fatalf("expected shipped defaults for %q, got %+v", raw, packages)
		}
	}
}

func TestParseServiceItems_FallbackOnGarbage(t *testing.T) {
	items := ParseServiceItems("][")
	if len(items) == 0 || items[0].ID != "riabilitazione" {
		t.Fatalf("expected shipped defaults, got %+v", items)
	}
}

func TestParseFAQ(t *testing.T) {
	entries := ParseFAQ(`[{"question":"Quanto dura?","answer":"Un'ora."}]`)
	if len(entries) != 1 || entries[0].Question != "Quanto dura?" {
		t.Fatalf("unexpected decode result: %+v", entries)
	}
	if len(ParseFAQ("null")) == 0 {
		t.Fatal("expected shipped defaults for null")
	}
}

func TestParseStringList(t *testing.T) {
	zones := ParseStringList(`["Trastevere"]`, DefaultZones())
	if len(zones) != 1 || zones[0] != "Trastevere" {
		t.Fatalf("unexpected decode result: %v", zones)
	}
	if got := ParseStringList("oops", DefaultZones()); len(got) != len(DefaultZones()) {
		t.Fatalf("expected fallback list, got %v", got)
	}
}

func TestDefaultListFieldsRoundTrip(t *testing.T) {
	// The JSON-encoded list fields in the shipped tree must decode with
	// the typed helpers, not fall back.
	servizi := DefaultTree("servizi")
	if items := ParseServiceItems(servizi["services"]["items"]); len(items) != 6 {
		t.Fatalf("expected 6 shipped services, got %d", len(items))
	}
	prezzi := DefaultTree("prezzi")
	if packages := ParsePricingPackages(prezzi["packages"]["items"]); len(packages) != 3 {
		t.Fatalf("expected 3 shipped packages, got %d", len(packages))
	}
	contatti := DefaultTree("contatti")
	if methods := ParseContactMethods(contatti["methods"]["items"]); len(methods) != 3 {
		t.Fatalf("expected 3 shipped contact methods, got %d", len(methods))
	}
	if schedule := ParseSchedule(contatti["schedule"]["items"]); len(schedule) != 3 {
		t.Fatalf("expected 3 shipped schedule rows, got %d", len(schedule))
	}
}
