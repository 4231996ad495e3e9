package data

import "testing"

func TestEveryProvinceHasUniqueMunicipalities(t *testing.T) {
	names := Provinces()
	if len(names) != 5 {
		t.Fatalf("got %d provinces, want 5", len(names))
	}
	if len(municipalities) != len(names) {
		t.Fatalf("lookup has %d keys for %d provinces", len(municipalities), len(names))
	}
	for _, p := range names {
		list, ok := Municipalities(p)
		if !ok || len(list) == 0 {
			t.Errorf("%s: no municipalities", p)
			continue
		}
		seen := make(map[string]bool, len(list))
		for _, m := range list {
			if seen[m] {
				t.Errorf("%s: duplicate municipality %q", p, m)
			}
			seen[m] = true
		}
	}
}

func TestMunicipalitiesUnknownProvince(t *testing.T) {
	if _, ok := Municipalities("Atlantis"); ok {
		t.Error("unknown province resolved")
	}
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	p := Provinces()
	p[0] = "changed"
	if Provinces()[0] != "Agusan del Norte" {
		t.Error("Provinces exposed internal slice")
	}
	m, _ := Municipalities("Dinagat Island")
	m[0] = "changed"
	again, _ := Municipalities("Dinagat Island")
	if again[0] != "Basilisa" {
		t.Error("Municipalities exposed internal slice")
	}
}
