package upstream

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

const forecastDays = 7

// OpenWeather reads the One Call endpoint.
type OpenWeather struct {
	client  *Client
	baseURL string
	apiKey  string
}

func NewOpenWeather(client *Client, baseURL, apiKey string) *OpenWeather {
	return &OpenWeather{client: client, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey}
}

type owCondition struct {
	Main string `json:"main"`
}

type oneCallResponse struct {
	TimezoneOffset int64 `json:"timezone_offset"`
	Current        *struct {
		Temp      float64       `json:"temp"`
		WindSpeed float64       `json:"wind_speed"`
		Humidity  int           `json:"humidity"`
		Weather   []owCondition `json:"weather"`
	} `json:"current"`
	Daily []struct {
		Dt   int64 `json:"dt"`
		Temp struct {
			Day float64 `json:"day"`
		} `json:"temp"`
		Weather []owCondition `json:"weather"`
	} `json:"daily"`
}

func (o *OpenWeather) Forecast(ctx context.Context, at domain.Coordinates) (*domain.Weather, error) {
	if o.apiKey == "" {
		return nil, fmt.Errorf("%s: %w", domain.FeatureWeather, ErrNotConfigured)
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	q.Set("exclude", "minutely,hourly,alerts")
	q.Set("units", "metric")
	q.Set("appid", o.apiKey)

	var resp oneCallResponse
	if err := o.client.getJSON(ctx, domain.FeatureWeather, o.baseURL+"/onecall?"+q.Encode(), &resp); err != nil {
		return nil, redactKey(err, o.apiKey)
	}
	if resp.Current == nil {
		return nil, errors.New(domain.FeatureWeather + ": missing current conditions")
	}

	w := &domain.Weather{
		Current: domain.CurrentWeather{
			Temp:      int(math.Round(resp.Current.Temp)),
			Condition: firstCondition(resp.Current.Weather),
			WindSpeed: resp.Current.WindSpeed,
			Humidity:  resp.Current.Humidity,
		},
		Forecast: []domain.DailyForecast{},
	}

	// daily[0] is today.
	for i := 1; i < len(resp.Daily) && len(w.Forecast) < forecastDays; i++ {
		d := resp.Daily[i]
		w.Forecast = append(w.Forecast, domain.DailyForecast{
			Day:       time.Unix(d.Dt+resp.TimezoneOffset, 0).UTC().Format("Mon"),
			Temp:      int(math.Round(d.Temp.Day)),
			Condition: firstCondition(d.Weather),
		})
	}
	return w, nil
}

func firstCondition(c []owCondition) string {
	if len(c) == 0 {
		return ""
	}
	return c[0].Main
}

// redactKey strips a query-string key from transport errors, which embed the URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}

// ReverseGeocoder resolves coordinates through BigDataCloud.
type ReverseGeocoder struct {
	client *Client
	url    string
}

func NewReverseGeocoder(client *Client, url string) *ReverseGeocoder {
	return &ReverseGeocoder{client: client, url: url}
}

type geocodeResponse struct {
	City        string `json:"city"`
	Locality    string `json:"locality"`
	CountryName string `json:"countryName"`
}

func (g *ReverseGeocoder) Reverse(ctx context.Context, at domain.Coordinates) (*domain.Place, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	q.Set("localityLanguage", "en")

	var resp geocodeResponse
	if err := g.client.getJSON(ctx, domain.FeatureGeocode, g.url+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &domain.Place{City: resp.City, Locality: resp.Locality, Country: resp.CountryName}, nil
}
