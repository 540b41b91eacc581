package forecast

import (
	"context"

	"github.com/adipramono/ramalan-cuaca/internal/logging"
)

// Client performs the single upstream round-trip for one area code.
type Client interface {
	Forecast(ctx context.Context, areaCode string) (*Response, error)
}

// Retriever fetches the forecast and absorbs transport failures: callers get
// a response or nil, never an error.
type Retriever struct {
	client   Client
	areaCode string
	logger   *logging.Logger
}

// NewRetriever wires a Retriever over client. areaCode is the default used
// when a call does not name one.
func NewRetriever(client Client, areaCode string, logger *logging.Logger) *Retriever {
	return &Retriever{client: client, areaCode: areaCode, logger: logger}
}

// Forecast performs one fetch for areaCode, empty meaning the configured
// default. Failures are logged and reported as a nil response.
func (r *Retriever) Forecast(ctx context.Context, areaCode string) *Response {
	if areaCode == "" {
		areaCode = r.areaCode
	}

	resp, err := r.client.Forecast(ctx, areaCode)
	if err != nil {
		r.logger.Errorf("fetching weather data for area code %s: %v", areaCode, err)
		return nil
	}

	r.logger.Infof("fetched weather data for area code %s", areaCode)
	return resp
}
