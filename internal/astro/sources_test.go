package astro

import "testing"

func TestDefaultSourceCatalog(t *testing.T) {
	catalog := DefaultSourceCatalog()
	if len(catalog.Sources) == 0 {
		t.Fatal("catalog is empty")
	}

	seen := make(map[string]bool)
	for _, s := range catalog.Sources {
		if s.Name == "" {
			t.Error("source with empty name")
		}
		if seen[s.Name] {
			t.Errorf("duplicate source %q", s.Name)
		}
		seen[s.Name] = true

		if s.RAHours < 0 || s.RAHours >= 24 {
			t.Errorf("%s: RA out of range: %v", s.Name, s.RAHours)
		}
		if s.DecDeg < -90 || s.DecDeg > 90 {
			t.Errorf("%s: Dec out of range: %v", s.Name, s.DecDeg)
		}
		if s.FluxJy <= 0 {
			t.Errorf("%s: non-positive flux: %v", s.Name, s.FluxJy)
		}
	}
}

func TestSourceCatalogLookup(t *testing.T) {
	catalog := DefaultSourceCatalog()

	casA, ok := catalog.Lookup("Cassiopeia A")
	if !ok {
		t.Fatal("Cassiopeia A not found")
	}
	if casA.DecDeg < 58 || casA.DecDeg > 60 {
		t.Errorf("Cassiopeia A Dec = %v, want ~58.8", casA.DecDeg)
	}

	if _, ok := catalog.Lookup("No Such Source"); ok {
		t.Error("lookup of unknown source succeeded")
	}
}
