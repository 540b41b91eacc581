package forecast

import "fmt"

// conditionDescriptions maps BMKG weather codes to Indonesian descriptions.
// The table mirrors the codes the public feed actually emits; codes 1 and 2
// share a description upstream, as do 95 and 97.
var conditionDescriptions = map[string]string{
	"0":  "Cerah ☀️",
	"1":  "Cerah Berawan 🌤️",
	"2":  "Cerah Berawan 🌤️",
	"3":  "Berawan ☁️",
	"4":  "Berawan Tebal ☁️",
	"5":  "Udara Kabur 🌫️",
	"10": "Asap 🌫️",
	"45": "Berkabut 🌫️",
	"60": "Hujan Ringan 🌦️",
	"61": "Hujan Sedang 🌧️",
	"63": "Hujan Lebat 🌧️",
	"80": "Hujan Lokal 🌦️",
	"95": "Hujan Petir ⛈️",
	"97": "Hujan Petir ⛈️",
}

// ConditionDescription converts a BMKG weather code to its Indonesian
// description. Codes outside the table come back as an "unknown condition"
// message carrying the raw code.
func ConditionDescription(code string) string {
	if desc, ok := conditionDescriptions[code]; ok {
		return desc
	}
	return fmt.Sprintf("Kondisi Cuaca Tidak Diketahui (Kode: %s)", code)
}
