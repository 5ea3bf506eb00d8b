package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
	"github.com/suraj-kumar23/Agrinova-Main/internal/core/ports"
)

const (
	unknownDisease       = "Unknown Disease"
	defaultConfidence    = 90
	maxTreatments        = 3
	fallbackDescription  = "Unable to fetch description."
	fallbackTreatment    = "Consult a local agricultural expert for treatment options."
	treatmentPromptShape = `Provide a concise description (1-2 sentences) of the plant disease "%s" and suggest exactly 3 bullet point treatments. Format the response as:
Description: [Your description]
Treatments:
- [Treatment 1]
- [Treatment 2]
- [Treatment 3]`
)

// AdvisoryDeps groups the third-party collaborators used by the dashboard.
type AdvisoryDeps struct {
	Crops   ports.CropAdvisor
	Yield   ports.YieldPredictor
	Disease ports.DiseaseClassifier
	Text    ports.TextGenerator
	// Treatment generates disease treatment notes; Text is used when nil.
	Treatment ports.TextGenerator
	Weather   ports.WeatherProvider
	Geo       ports.Geocoder
	Speech    ports.SpeechSynthesizer
}

// AdvisoryService performs one best-effort upstream round trip per request.
// Nothing is retried or cached.
type AdvisoryService struct {
	deps AdvisoryDeps
	log  zerolog.Logger
}

func NewAdvisoryService(deps AdvisoryDeps, log zerolog.Logger) *AdvisoryService {
	return &AdvisoryService{deps: deps, log: log}
}

func (s *AdvisoryService) RecommendCrops(ctx context.Context, sample domain.SoilSample) ([]domain.CropPrediction, error) {
	preds, err := s.deps.Crops.PredictCrops(ctx, sample)
	if err != nil {
		return nil, upstream(domain.FeatureCrops, err)
	}
	if len(preds) == 0 {
		return nil, upstream(domain.FeatureCrops, errors.New("no predictions returned"))
	}
	if len(preds) > domain.MaxCropPredictions {
		preds = preds[:domain.MaxCropPredictions]
	}
	return preds, nil
}

func (s *AdvisoryService) FertilizerAdvice(ctx context.Context, q domain.FertilizerQuery) (string, error) {
	advice, err := s.deps.Crops.FertilizerAdvice(ctx, q)
	if err != nil {
		return "", upstream(domain.FeatureFertilizer, err)
	}
	if strings.TrimSpace(advice) == "" {
		return "", upstream(domain.FeatureFertilizer, errors.New("empty advice"))
	}
	return advice, nil
}

func (s *AdvisoryService) PredictYield(ctx context.Context, in ports.YieldInput) (*domain.YieldForecast, error) {
	forecast, err := s.deps.Yield.PredictYield(ctx, in.Query)
	if err != nil {
		return nil, upstream(domain.FeatureYield, err)
	}
	if in.PricePerQuintal > 0 {
		rev := domain.EstimateRevenue(forecast.PredictedProduction, in.PricePerQuintal)
		forecast.Revenue = &rev
	}
	return forecast, nil
}

// DiagnoseDisease classifies the image, then asks the text model for a
// description and treatments. A failed treatment lookup degrades to fixed
// advice rather than failing the diagnosis.
func (s *AdvisoryService) DiagnoseDisease(ctx context.Context, img domain.Image) (*domain.Diagnosis, error) {
	label, err := s.deps.Disease.Classify(ctx, img)
	if err != nil {
		return nil, upstream(domain.FeatureDisease, err)
	}

	name := strings.TrimSpace(label.Name)
	if name == "" {
		name = unknownDisease
	}
	confidence := label.Confidence
	if confidence <= 0 {
		confidence = defaultConfidence
	}

	treatment := s.treatment(ctx, name)
	return &domain.Diagnosis{
		Disease:     name,
		Confidence:  confidence,
		Description: treatment.Description,
		Treatments:  treatment.Remedies,
	}, nil
}

func (s *AdvisoryService) treatment(ctx context.Context, disease string) domain.Treatment {
	gen := s.deps.Treatment
	if gen == nil {
		gen = s.deps.Text
	}
	text, err := gen.Generate(ctx, fmt.Sprintf(treatmentPromptShape, disease))
	if err != nil {
		s.log.Warn().Err(err).Str("disease", disease).Msg("treatment lookup failed")
		return domain.Treatment{Description: fallbackDescription, Remedies: []string{fallbackTreatment}}
	}
	return ParseTreatment(text)
}

var (
	descriptionRe = regexp.MustCompile(`(?s)Description:\s*(.*?)\s*\n\s*Treatments:`)
	bulletRe      = regexp.MustCompile(`(?m)^\s*[-*•]\s+(.+?)\s*$`)
)

// ParseTreatment extracts the description and up to three bullet treatments
// from model output shaped like the treatment prompt.
func ParseTreatment(text string) domain.Treatment {
	t := domain.Treatment{Description: "No description available."}
	if m := descriptionRe.FindStringSubmatch(text); m != nil {
		t.Description = strings.TrimSpace(m[1])
	}

	body := text
	if i := strings.Index(text, "Treatments:"); i >= 0 {
		body = text[i+len("Treatments:"):]
	}
	for _, m := range bulletRe.FindAllStringSubmatch(body, -1) {
		t.Remedies = append(t.Remedies, strings.TrimSpace(m[1]))
		if len(t.Remedies) == maxTreatments {
			break
		}
	}
	if t.Remedies == nil {
		t.Remedies = []string{}
	}
	return t
}

func (s *AdvisoryService) Ask(ctx context.Context, in ports.ChatInput) (string, error) {
	reply, err := s.deps.Text.Generate(ctx, AssistantPrompt(in.Message, in.Language))
	if err != nil {
		return "", upstream(domain.FeatureChat, err)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", upstream(domain.FeatureChat, errors.New("empty reply"))
	}
	return reply, nil
}

// AssistantPrompt wraps a farmer's question with the assistant instructions.
func AssistantPrompt(question, language string) string {
	lang := domain.LanguageName(language)
	var b strings.Builder
	b.WriteString("You are an agricultural assistant for Indian farmers. ")
	b.WriteString("Answer questions about crops, soil, irrigation, fertilizers, pests, weather and farm practices in full. ")
	b.WriteString("Politely decline topics unrelated to agriculture such as politics, entertainment or finance.\n\n")
	b.WriteString("Formatting rules:\n")
	b.WriteString("- Use **bold** for important terms and actionable advice\n")
	b.WriteString("- Use *italics* for additional suggestions or notes\n")
	b.WriteString("- Use bullet points for lists and numbers for farming procedures\n")
	fmt.Fprintf(&b, "- Always answer in **%s** using simple, village-friendly language\n\n", lang)
	fmt.Fprintf(&b, "User query: %s", strings.TrimSpace(question))
	return b.String()
}

// Weather fetches the forecast and the place name concurrently. Only the
// forecast is required; a geocoding failure yields domain.UnknownLocation.
func (s *AdvisoryService) Weather(ctx context.Context, at domain.Coordinates) (*domain.WeatherReport, error) {
	var (
		weather  *domain.Weather
		location = domain.UnknownLocation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := s.deps.Weather.Forecast(gctx, at)
		if err != nil {
			return upstream(domain.FeatureWeather, err)
		}
		weather = w
		return nil
	})
	g.Go(func() error {
		place, err := s.deps.Geo.Reverse(gctx, at)
		if err != nil {
			s.log.Warn().Err(err).Msg("reverse geocode failed")
			return nil
		}
		location = place.Label()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.WeatherReport{Location: location, Weather: *weather}, nil
}

func (s *AdvisoryService) Speak(ctx context.Context, text, language string) (*domain.Speech, error) {
	speech, err := s.deps.Speech.Synthesize(ctx, text, language)
	if err != nil {
		return nil, upstream(domain.FeatureSpeech, err)
	}
	return speech, nil
}

func upstream(feature string, err error) error {
	if errors.Is(err, domain.ErrUpstream) {
		return err
	}
	return domain.NewUpstreamError(feature, err)
}
