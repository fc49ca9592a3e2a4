package astro

// Source represents a cataloged radio source with position and flux.
type Source struct {
	Name    string  // Common name (e.g., "Cassiopeia A")
	RAHours float64 // Right Ascension in decimal hours (J2000)
	DecDeg  float64 // Declination in degrees (J2000)
	FluxJy  float64 // Approximate flux density at 1.4 GHz in Jansky
}

// SourceCatalog holds a collection of radio sources.
type SourceCatalog struct {
	Sources []Source
}

// DefaultSourceCatalog returns a catalog of bright radio sources commonly
// used for calibration and amateur radio astronomy. Coordinates are J2000.
func DefaultSourceCatalog() SourceCatalog {
	return SourceCatalog{Sources: defaultSources}
}

// Lookup returns the catalog entry with the given name, or false if the
// name is unknown.
func (c SourceCatalog) Lookup(name string) (Source, bool) {
	for _, s := range c.Sources {
		if s.Name == name {
			return s, true
		}
	}
	return Source{}, false
}

// defaultSources lists bright sources ordered roughly by flux density.
// Flux values are indicative; Cassiopeia A in particular fades by about
// 0.5% per year.
var defaultSources = []Source{
	{"Cassiopeia A", 23.3904, 58.8079, 1560},
	{"Cygnus A", 19.9912, 40.7339, 1590},
	{"Taurus A", 5.5756, 22.0145, 875},
	{"Centaurus A", 13.4246, -43.0192, 680},
	{"Orion A", 5.5881, -5.3911, 520},
	{"Sagittarius A", 17.7611, -29.0078, 440},
	{"Virgo A", 12.5137, 12.3911, 212},
	{"3C 123", 4.6179, 29.6703, 47},
	{"Hydra A", 9.3017, -12.0956, 43},
	{"3C 273", 12.4853, 2.0524, 42},
	{"3C 295", 14.1965, 52.2025, 22},
}
