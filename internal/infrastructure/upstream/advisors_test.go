package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

func jsonServer(t *testing.T, handler func(t *testing.T, r *http.Request) (int, string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, body := handler(t, r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCropAdvisor_PredictCrops(t *testing.T) {
	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		assert.Equal(t, "/predict_crops", r.URL.Path)
		var body map[string]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 90.0, body["n"])
		assert.Equal(t, 6.5, body["ph"])
		assert.Equal(t, 0.0, body["rainfall"])
		return http.StatusOK, `{"predictions":[{"crop":"rice","confidence":0.91},{"crop":"maize","confidence":0.05}]}`
	})

	a := NewCropAdvisor(newTestClient(Options{}), srv.URL+"/")
	preds, err := a.PredictCrops(context.Background(), domain.SoilSample{Nitrogen: 90, Phosphorus: 42, Potassium: 43, PH: 6.5})
	require.NoError(t, err)
	require.Len(t, preds, 2)
	assert.Equal(t, "rice", preds[0].Crop)
	assert.InDelta(t, 0.91, preds[0].Confidence, 1e-9)
}

func TestCropAdvisor_PredictCropsMissing(t *testing.T) {
	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		return http.StatusOK, `{"error":"bad input"}`
	})

	a := NewCropAdvisor(newTestClient(Options{}), srv.URL)
	_, err := a.PredictCrops(context.Background(), domain.SoilSample{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad input")
}

func TestCropAdvisor_FertilizerAdvice(t *testing.T) {
	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		assert.Equal(t, "/fertilizer_advice", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "rice", body["crop"])
		return http.StatusOK, `{"advice":"Add urea"}`
	})

	a := NewCropAdvisor(newTestClient(Options{}), srv.URL)
	advice, err := a.FertilizerAdvice(context.Background(), domain.FertilizerQuery{Crop: "rice", Nitrogen: 10})
	require.NoError(t, err)
	assert.Equal(t, "Add urea", advice)
}

func TestYieldPredictor(t *testing.T) {
	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Punjab", body["state"])
		assert.Equal(t, 2.5, body["area"])
		assert.Equal(t, 2025.0, body["year"])
		return http.StatusOK, `{"predicted_production":12.5,"confidence":0.8,"monthly_forecast":[{"month":"Jan","rainfall":10,"temperature":20,"production":1}]}`
	})

	p := NewYieldPredictor(newTestClient(Options{}), srv.URL)
	f, err := p.PredictYield(context.Background(), domain.YieldQuery{State: "Punjab", AreaHa: 2.5, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 12.5, f.PredictedProduction)
	require.NotNil(t, f.Confidence)
	assert.Equal(t, 0.8, *f.Confidence)
	assert.Nil(t, f.PredictedYield)
	assert.Len(t, f.MonthlyForecast, 1)
}

func TestYieldPredictor_MissingProduction(t *testing.T) {
	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		return http.StatusOK, `{"predicted_production":"n/a"}`
	})

	p := NewYieldPredictor(newTestClient(Options{}), srv.URL)
	_, err := p.PredictYield(context.Background(), domain.YieldQuery{})
	assert.Error(t, err)

	srv2 := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		return http.StatusOK, `{}`
	})
	p = NewYieldPredictor(newTestClient(Options{}), srv2.URL)
	_, err = p.PredictYield(context.Background(), domain.YieldQuery{})
	assert.Error(t, err)
}

func TestDiseaseClassifier(t *testing.T) {
	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "leaf.png", hdr.Filename)
		assert.Equal(t, []byte{1, 2, 3}, data)
		return http.StatusOK, `{"prediction":"Leaf Blight","confidence":87.5}`
	})

	d := NewDiseaseClassifier(newTestClient(Options{}), srv.URL)
	label, err := d.Classify(context.Background(), domain.Image{Filename: "leaf.png", ContentType: "image/png", Data: []byte{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, "Leaf Blight", label.Name)
	assert.Equal(t, 87.5, label.Confidence)
}

func TestDiseaseClassifier_NoConfidence(t *testing.T) {
	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		return http.StatusOK, `{}`
	})

	d := NewDiseaseClassifier(newTestClient(Options{}), srv.URL)
	label, err := d.Classify(context.Background(), domain.Image{Data: []byte{1}})
	require.NoError(t, err)
	assert.Empty(t, label.Name)
	assert.Zero(t, label.Confidence)
}

func TestGemini_Generate(t *testing.T) {
	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.Query().Get("key"))
		var body geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 1)
		assert.Equal(t, "hello", body.Contents[0].Parts[0].Text)
		return http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"namaste"}]}}]}`
	})

	g := NewGemini(newTestClient(Options{}), srv.URL, "secret", "gemini-1.5-flash")
	text, err := g.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "namaste", text)
}

func TestGemini_Failures(t *testing.T) {
	g := NewGemini(newTestClient(Options{}), "http://unused", "", "m")
	_, err := g.Generate(context.Background(), "x")
	assert.True(t, errors.Is(err, ErrNotConfigured))

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		return http.StatusOK, `{"candidates":[]}`
	})
	obs := &observed{}
	g = NewGemini(newTestClient(Options{Observer: obs.record}), srv.URL, "k", "m").ForFeature(domain.FeatureTreatment)
	_, err = g.Generate(context.Background(), "x")
	assert.Error(t, err)
	assert.Equal(t, []string{domain.FeatureTreatment + ":success"}, obs.calls)
}

func TestOpenWeather_Forecast(t *testing.T) {
	base := time.Date(2026, 10, 12, 6, 0, 0, 0, time.UTC) // a Monday
	daily := `[`
	for i := 0; i < 8; i++ {
		if i > 0 {
			daily += ","
		}
		daily += `{"dt":` + itoa(base.AddDate(0, 0, i).Unix()) + `,"temp":{"day":` + itoa(int64(20+i)) + `.6},"weather":[{"main":"Rain"}]}`
	}
	daily += `]`

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		assert.Equal(t, "/onecall", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "12.5", q.Get("lat"))
		assert.Equal(t, "77.25", q.Get("lon"))
		assert.Equal(t, "metric", q.Get("units"))
		assert.Equal(t, "minutely,hourly,alerts", q.Get("exclude"))
		assert.Equal(t, "owkey", q.Get("appid"))
		return http.StatusOK, `{"timezone_offset":0,"current":{"temp":28.4,"wind_speed":3.2,"humidity":70,"weather":[{"main":"Clouds"}]},"daily":` + daily + `}`
	})

	o := NewOpenWeather(newTestClient(Options{}), srv.URL, "owkey")
	w, err := o.Forecast(context.Background(), domain.Coordinates{Lat: 12.5, Lon: 77.25})
	require.NoError(t, err)

	assert.Equal(t, domain.CurrentWeather{Temp: 28, Condition: "Clouds", WindSpeed: 3.2, Humidity: 70}, w.Current)
	require.Len(t, w.Forecast, 7)
	assert.Equal(t, "Tue", w.Forecast[0].Day)
	assert.Equal(t, 22, w.Forecast[0].Temp)
	assert.Equal(t, "Rain", w.Forecast[0].Condition)
	assert.Equal(t, "Mon", w.Forecast[6].Day)
}

func TestOpenWeather_Failures(t *testing.T) {
	o := NewOpenWeather(newTestClient(Options{}), "http://unused", "")
	_, err := o.Forecast(context.Background(), domain.Coordinates{})
	assert.True(t, errors.Is(err, ErrNotConfigured))

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		return http.StatusUnauthorized, `{"cod":401}`
	})
	o = NewOpenWeather(newTestClient(Options{}), srv.URL, "owkey")
	_, err = o.Forecast(context.Background(), domain.Coordinates{})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "owkey")
}

func TestRedactKey(t *testing.T) {
	err := redactKey(errors.New(`Get "http://x/onecall?appid=abc123": dial tcp`), "abc123")
	assert.NotContains(t, err.Error(), "abc123")
	assert.Contains(t, err.Error(), "REDACTED")
}

func TestReverseGeocoder(t *testing.T) {
	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, string) {
		q := r.URL.Query()
		assert.Equal(t, "12.5", q.Get("latitude"))
		assert.Equal(t, "en", q.Get("localityLanguage"))
		return http.StatusOK, `{"city":"","locality":"Hebbal","countryName":"India"}`
	})

	g := NewReverseGeocoder(newTestClient(Options{}), srv.URL)
	place, err := g.Reverse(context.Background(), domain.Coordinates{Lat: 12.5, Lon: 77})
	require.NoError(t, err)
	assert.Equal(t, "Hebbal, India", place.Label())
}

func TestElevenLabs_Synthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/text-to-speech/"+Voices["hi"], r.URL.Path)
		assert.Equal(t, "elkey", r.Header.Get("xi-api-key"))
		var body speechRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, speechModel, body.ModelID)
		assert.Equal(t, 0.5, body.VoiceSettings.Stability)
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3"))
	}))
	defer srv.Close()

	e := NewElevenLabs(newTestClient(Options{}), srv.URL, "elkey")
	speech, err := e.Synthesize(context.Background(), "namaste", "hi")
	require.NoError(t, err)
	assert.Equal(t, "audio/mpeg", speech.ContentType)
	assert.Equal(t, []byte("ID3"), speech.Audio)
}

func TestElevenLabs_NotConfigured(t *testing.T) {
	e := NewElevenLabs(newTestClient(Options{}), "http://unused", "")
	_, err := e.Synthesize(context.Background(), "x", "en")
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestVoiceFor(t *testing.T) {
	assert.Equal(t, Voices["bn"], VoiceFor("bn"))
	assert.Equal(t, Voices["en"], VoiceFor("ta"))
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
