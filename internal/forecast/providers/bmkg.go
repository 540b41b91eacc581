package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/adipramono/ramalan-cuaca/internal/forecast"
)

// DefaultBaseURL is the public BMKG forecast API.
const DefaultBaseURL = "https://api.bmkg.go.id"

// BMKGProvider implements the forecast.Client interface against the public
// BMKG hourly forecast feed.
type BMKGProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewBMKGProvider(client *http.Client, baseURL string) *BMKGProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "bmkg",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &BMKGProvider{
		name:    "bmkg",
		baseURL: baseURL,
		client:  client,
		circuit: cb,
	}
}

func (p *BMKGProvider) Name() string {
	return p.name
}

// Forecast fetches the hourly forecast for one adm4 area code.
func (p *BMKGProvider) Forecast(ctx context.Context, areaCode string) (*forecast.Response, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("adm4", areaCode)

		u := fmt.Sprintf("%s/publik/prakiraan-cuaca?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Lokasi struct {
			Adm4   string `json:"adm4"`
			Desa   string `json:"desa"`
			Kotkab string `json:"kotkab"`
		} `json:"lokasi"`
		Data []struct {
			Cuaca [][]forecast.WeatherEntry `json:"cuaca"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding forecast payload: %w", err)
	}

	out := &forecast.Response{}
	if payload.Lokasi.Adm4 != "" || payload.Lokasi.Desa != "" || payload.Lokasi.Kotkab != "" {
		out.Location = &forecast.Location{
			Adm4: payload.Lokasi.Adm4,
			Name: displayName(payload.Lokasi.Desa, payload.Lokasi.Kotkab),
		}
	}

	// The feed nests entries in per-day blocks; the message wants one
	// chronological sequence.
	for _, day := range payload.Data {
		for _, block := range day.Cuaca {
			out.Weathers = append(out.Weathers, block...)
		}
	}

	return out, nil
}

// displayName joins the village and regency names, title-casing the feed's
// ALL-CAPS spelling.
func displayName(desa, kotkab string) string {
	caser := cases.Title(language.Indonesian)

	parts := make([]string, 0, 2)
	for _, s := range []string{desa, kotkab} {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		parts = append(parts, caser.String(strings.ToLower(s)))
	}
	return strings.Join(parts, ", ")
}
