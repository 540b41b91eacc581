package forecast

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adipramono/ramalan-cuaca/internal/logging"
)

// Fixed fragments of the broadcast message.
const (
	msgHeader       = "*Info Cuaca BMKG* 🌤️"
	msgNoData       = "*Prakiraan Cuaca:* Data tidak tersedia"
	msgNoForecasts  = "*Prakiraan Cuaca:* Tidak ada prakiraan untuk hari ini"
	msgFormatError  = "*Prakiraan Cuaca:* Error saat memproses data"
	msgFooter       = "Sumber data: BMKG Indonesia"
	msgFetchFailure = "⚠️ Tidak dapat mengambil data cuaca dari BMKG."

	defaultLocationName = "Bukit Tunggal, Palangkaraya"
)

// Indonesian day and month names, keyed by the English names time.Format
// produces. Unmapped names pass through unchanged.
var dayNames = map[string]string{
	"Monday":    "Senin",
	"Tuesday":   "Selasa",
	"Wednesday": "Rabu",
	"Thursday":  "Kamis",
	"Friday":    "Jumat",
	"Saturday":  "Sabtu",
	"Sunday":    "Minggu",
}

var monthNames = map[string]string{
	"January":   "Januari",
	"February":  "Februari",
	"March":     "Maret",
	"April":     "April",
	"May":       "Mei",
	"June":      "Juni",
	"July":      "Juli",
	"August":    "Agustus",
	"September": "September",
	"October":   "Oktober",
	"November":  "November",
	"December":  "Desember",
}

// Formatter renders a Response into the shareable forecast message.
type Formatter struct {
	policy Policy
	logger *logging.Logger
}

// NewFormatter builds a Formatter laying the forecast out with policy. A nil
// policy falls back to DayNightPolicy.
func NewFormatter(policy Policy, logger *logging.Logger) *Formatter {
	if policy == nil {
		policy = DayNightPolicy{}
	}
	return &Formatter{policy: policy, logger: logger}
}

// WithPolicy returns a copy of the Formatter that uses p instead.
func (f *Formatter) WithPolicy(p Policy) *Formatter {
	clone := *f
	clone.policy = p
	return &clone
}

// Format renders the message for resp as of now. A nil resp yields the fixed
// fetch-failure warning. Format never panics outward: a failure while laying
// out the forecast degrades to a fixed error line, with the header, date and
// location lines intact.
func (f *Formatter) Format(resp *Response, now time.Time) string {
	if resp == nil {
		return msgFetchFailure
	}

	var b strings.Builder
	b.WriteString(msgHeader + "\n\n")
	fmt.Fprintf(&b, "*Tanggal:* %s\n", indonesianDate(now))
	fmt.Fprintf(&b, "*Lokasi:* %s\n\n", locationName(resp))
	b.WriteString(f.forecastBody(resp.Weathers, now))
	b.WriteString("\n" + msgFooter)
	return b.String()
}

// forecastBody renders the policy-selected sections, one bullet line per
// entry. A panic while laying them out is recovered and replaced with the
// fixed error line.
func (f *Formatter) forecastBody(entries []WeatherEntry, now time.Time) (body string) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Errorf("formatting weather data: %v", r)
			body = msgFormatError + "\n"
		}
	}()

	if len(entries) == 0 {
		return msgNoData + "\n"
	}

	var b strings.Builder
	rendered := false
	for _, section := range f.policy.Plan(entries, now) {
		if len(section.Lines) == 0 {
			continue
		}
		if rendered {
			b.WriteString("\n")
		}
		rendered = true
		fmt.Fprintf(&b, "*%s:*\n", section.Title)
		for _, line := range section.Lines {
			b.WriteString(renderLine(line))
		}
	}
	if !rendered {
		return msgNoForecasts + "\n"
	}
	return b.String()
}

func renderLine(line Line) string {
	condition := "Data tidak tersedia"
	if line.Code != nil {
		condition = ConditionDescription(line.Code.String())
	}
	if line.Temperature != nil {
		return fmt.Sprintf("• %02d:00 WIB: %s %s°C\n", line.Time.Hour(), condition, formatTemperature(*line.Temperature))
	}
	return fmt.Sprintf("• %02d:00 WIB: %s\n", line.Time.Hour(), condition)
}

// formatTemperature prints whole values without a trailing ".0".
func formatTemperature(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// indonesianDate renders now in "Senin, 02 Januari 2006" form.
func indonesianDate(now time.Time) string {
	day := now.Format("Monday")
	if id, ok := dayNames[day]; ok {
		day = id
	}
	month := now.Format("January")
	if id, ok := monthNames[month]; ok {
		month = id
	}
	return fmt.Sprintf("%s, %02d %s %d", day, now.Day(), month, now.Year())
}

// locationName is the display location: the response's own name when present
// and non-empty, the fixed default otherwise.
func locationName(resp *Response) string {
	if resp.Location != nil && resp.Location.Name != "" {
		return resp.Location.Name
	}
	return defaultLocationName
}
