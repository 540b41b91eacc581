package forecast

import (
	"encoding/json"
	"fmt"
)

// CodeValue holds a BMKG weather-condition code. The public feed is not
// consistent about the JSON type of this field: it arrives as a number for
// some area codes and as a string for others, so both are accepted and the
// value is kept in string form.
type CodeValue string

func (c *CodeValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = CodeValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("weather code is neither string nor number: %s", string(data))
	}
	*c = CodeValue(n.String())
	return nil
}

func (c CodeValue) String() string {
	return string(c)
}

// Location identifies the area a forecast applies to.
type Location struct {
	// Adm4 is the level-4 administrative code the forecast was requested for.
	Adm4 string `json:"adm4,omitempty"`

	// Name is the human-readable display name, e.g. "Bukit Tunggal, Kota
	// Palangkaraya". May be empty when the feed omits it.
	Name string `json:"name,omitempty"`
}

// WeatherEntry is a single forecast slot as delivered by the feed. Every
// field is optional: the upstream schema is not guaranteed, and in particular
// the temperature has been observed under several different keys. Entries
// carry no usable timestamps; their order is the only chronology available.
type WeatherEntry struct {
	// Weather is the numeric condition code (see ConditionDescription).
	Weather *CodeValue `json:"weather,omitempty"`

	// Temperature alternates, in resolution priority order.
	Temperature *float64 `json:"temperature,omitempty"`
	Temp        *float64 `json:"temp,omitempty"`
	T           *float64 `json:"t,omitempty"`
	Suhu        *float64 `json:"suhu,omitempty"`
}

// ResolveTemperature returns the first temperature present on the entry,
// trying the alternate field names in fixed order: temperature, temp, t,
// suhu. Nil when none is set.
func (e WeatherEntry) ResolveTemperature() *float64 {
	for _, v := range []*float64{e.Temperature, e.Temp, e.T, e.Suhu} {
		if v != nil {
			return v
		}
	}
	return nil
}

// Response is the normalized forecast for one area: an optional location
// block and the chronologically ordered forecast entries.
type Response struct {
	Location *Location      `json:"location,omitempty"`
	Weathers []WeatherEntry `json:"weathers,omitempty"`
}
