// Package mapview plots geolocated reports as clustered map markers.
package mapview

import (
	"context"
	"fmt"
	"net/http"
	"signalalert/model"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ErrorNotice replaces the map content when the locations feed is unavailable.
const ErrorNotice = "Impossible de charger les données de la carte."

// FitPadding is the ratio added around the markers when the view is fitted.
const FitPadding = 0.1

// Location is one entry of the locations feed.
type Location struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Type  string  `json:"type"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

type Marker struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Type  string  `json:"type"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Icon  Icon    `json:"icon"`
}

// Layer is the clustering layer markers are added to.
type Layer interface {
	AddMarker(m Marker)
	FitBounds(b Bounds)
	ShowError(notice string)
}

type Adapter struct {
	client   *http.Client
	endpoint string
	log      *zap.Logger
}

// NewAdapter reads locations from endpoint. A nil client means http.DefaultClient.
func NewAdapter(client *http.Client, endpoint string, log *zap.Logger) *Adapter {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{client: client, endpoint: endpoint, log: log}
}

// Activate fetches the locations once and feeds them to layer. Failures end
// up as the error notice on the layer; nothing is retried.
func (a *Adapter) Activate(ctx context.Context, layer Layer) {
	locations, err := a.fetch(ctx)
	if err != nil {
		a.log.Error("map locations unavailable", zap.String("endpoint", a.endpoint), zap.Error(err))
		layer.ShowError(ErrorNotice)
		return
	}
	if len(locations) == 0 {
		a.log.Debug("map locations feed is empty", zap.String("endpoint", a.endpoint))
		return
	}

	var bounds Bounds
	for _, loc := range locations {
		layer.AddMarker(Marker{
			ID:    loc.ID,
			Title: loc.Title,
			Type:  loc.Type,
			Lat:   loc.Lat,
			Lng:   loc.Lng,
			Icon:  IconFor(model.ReportType(loc.Type)),
		})
		bounds = bounds.Extend(loc.Lat, loc.Lng)
	}
	if !bounds.Empty() {
		layer.FitBounds(bounds.Pad(FitPadding))
	}
	a.log.Debug("map markers added", zap.Int("count", len(locations)))
}

func (a *Adapter) fetch(ctx context.Context) ([]Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var locations []Location
	if err := json.NewDecoder(resp.Body).Decode(&locations); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}
	return locations, nil
}
