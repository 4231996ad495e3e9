// Package data holds the province and municipality lookup used by address forms.
package data

var provinces = []string{
	"Agusan del Norte",
	"Agusan del Sur",
	"Surigao del Norte",
	"Surigao del Sur",
	"Dinagat Island",
}

var municipalities = map[string][]string{
	"Agusan del Norte": {
		"Buenavista", "Butuan City", "Cabadbaran City", "Carmen", "Jabonga",
		"Kitcharao", "Las Nieves", "Magallanes", "Nasipit",
		"Remedios T. Romualdez", "Santiago", "Tubay",
	},
	"Agusan del Sur": {
		"Bayugan City", "Bunawan", "Esperanza", "La Paz", "Loreto",
		"Prosperidad", "Rosario", "San Francisco", "San Luis", "Santa Josefa",
		"Sibagat", "Talacogon", "Trento", "Veruela",
	},
	"Surigao del Norte": {
		"Alegria", "Bacuag", "Burgos", "Claver", "Dapa", "Del Carmen",
		"General Luna", "Gigaquit", "Mainit", "Malimono", "Pilar", "Placer",
		"San Benito", "San Francisco", "San Isidro", "Santa Monica", "Sison",
		"Socorro", "Surigao City", "Tagana-an", "Tubod",
	},
	"Surigao del Sur": {
		"Barobo", "Bayabas", "Bislig City", "Cagwait", "Cantilan", "Carmen",
		"Carrascal", "Cortes", "Hinatuan", "Lanuza", "Lianga", "Lingig",
		"Madrid", "Marihatag", "San Agustin", "San Miguel", "Tagbina", "Tago",
		"Tandag City",
	},
	"Dinagat Island": {
		"Basilisa", "Cagdianao", "Dinagat", "Libjo", "Loreto", "San Jose",
		"Tubajon",
	},
}

// Provinces returns the province names in display order.
func Provinces() []string {
	out := make([]string, len(provinces))
	copy(out, provinces)
	return out
}

// Municipalities returns the ordered municipalities of a province.
func Municipalities(province string) ([]string, bool) {
	list, ok := municipalities[province]
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	copy(out, list)
	return out, true
}
