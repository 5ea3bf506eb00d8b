package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
	"github.com/suraj-kumar23/Agrinova-Main/internal/core/ports"
)

const maxImageBytes = 10 << 20

// AdvisoryHandler serves the dashboard features. Every route sits behind the
// Session middleware.
type AdvisoryHandler struct {
	advisory ports.AdvisoryService
}

func NewAdvisoryHandler(advisory ports.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{advisory: advisory}
}

// bindValid binds the request into dst and validates it.
func bindValid(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	return c.Validate(dst)
}

// RecommendCrops ranks crops for a soil sample.
//
// @Summary      Crop recommendation
// @Tags         advisory
// @Accept       json
// @Produce      json
// @Param        body  body      cropsRequest  true  "Soil sample"
// @Success      200   {object}  cropsResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      502   {object}  messageResponse
// @Router       /api/advisory/crops [post]
func (h *AdvisoryHandler) RecommendCrops(c echo.Context) error {
	var req cropsRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	preds, err := h.advisory.RecommendCrops(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cropsResponse{Predictions: preds})
}

// FertilizerAdvice suggests nutrients for a crop.
//
// @Summary      Fertilizer advice
// @Tags         advisory
// @Accept       json
// @Produce      json
// @Param        body  body      fertilizerRequest  true  "Crop and NPK readings"
// @Success      200   {object}  fertilizerResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      502   {object}  messageResponse
// @Router       /api/advisory/fertilizer [post]
func (h *AdvisoryHandler) FertilizerAdvice(c echo.Context) error {
	var req fertilizerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	advice, err := h.advisory.FertilizerAdvice(c.Request().Context(), domain.FertilizerQuery{
		Crop:       req.Crop,
		Nitrogen:   *req.N,
		Phosphorus: *req.P,
		Potassium:  *req.K,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fertilizerResponse{Advice: advice})
}

// PredictYield forecasts production and, given a price, revenue.
//
// @Summary      Yield prediction
// @Tags         advisory
// @Accept       json
// @Produce      json
// @Param        body  body      yieldRequest  true  "Field description"
// @Success      200   {object}  domain.YieldForecast
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      502   {object}  messageResponse
// @Router       /api/advisory/yield [post]
func (h *AdvisoryHandler) PredictYield(c echo.Context) error {
	var req yieldRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	forecast, err := h.advisory.PredictYield(c.Request().Context(), ports.YieldInput{
		Query: domain.YieldQuery{
			State:    req.State,
			District: req.District,
			Crop:     req.Crop,
			Season:   req.Season,
			AreaHa:   req.Area,
			Year:     req.Year,
		},
		PricePerQuintal: req.PricePerQuintal,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, forecast)
}

// DiagnoseDisease classifies an uploaded leaf photo.
//
// @Summary      Disease detection
// @Tags         advisory
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Leaf image"
// @Success      200    {object}  domain.Diagnosis
// @Failure      400    {object}  messageResponse
// @Failure      401    {object}  messageResponse
// @Failure      502    {object}  messageResponse
// @Router       /api/advisory/disease [post]
func (h *AdvisoryHandler) DiagnoseDisease(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return domain.NewValidationError("image is required")
	}
	if fh.Size > maxImageBytes {
		return domain.NewValidationError("image must be at most 10MB")
	}

	f, err := fh.Open()
	if err != nil {
		return domain.NewValidationError("image could not be read")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return domain.NewValidationError("image could not be read")
	}
	if len(data) == 0 {
		return domain.NewValidationError("image is required")
	}

	diagnosis, err := h.advisory.DiagnoseDisease(c.Request().Context(), domain.Image{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, diagnosis)
}

// Ask answers a farming question in the requested language.
//
// @Summary      AI assistant
// @Tags         advisory
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Question"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      502   {object}  messageResponse
// @Router       /api/advisory/chat [post]
func (h *AdvisoryHandler) Ask(c echo.Context) error {
	var req chatRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	reply, err := h.advisory.Ask(c.Request().Context(), ports.ChatInput{Message: req.Message, Language: req.Language})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}

// Weather returns current conditions and the weekly outlook.
//
// @Summary      Weather
// @Tags         advisory
// @Produce      json
// @Param        lat  query     number  true  "Latitude"
// @Param        lon  query     number  true  "Longitude"
// @Success      200  {object}  domain.WeatherReport
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      502  {object}  messageResponse
// @Router       /api/advisory/weather [get]
func (h *AdvisoryHandler) Weather(c echo.Context) error {
	var q weatherQuery
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &q.Lat).
		MustFloat64("lon", &q.Lon).
		BindError(); err != nil {
		return domain.NewValidationError("lat and lon are required numbers")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	report, err := h.advisory.Weather(c.Request().Context(), domain.Coordinates{Lat: q.Lat, Lon: q.Lon})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Speak synthesises the text as audio.
//
// @Summary      Text to speech
// @Tags         advisory
// @Accept       json
// @Produce      audio/mpeg
// @Param        body  body      speechRequest  true  "Text"
// @Success      200
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      502   {object}  messageResponse
// @Router       /api/advisory/speech [post]
func (h *AdvisoryHandler) Speak(c echo.Context) error {
	var req speechRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	speech, err := h.advisory.Speak(c.Request().Context(), req.Text, req.Language)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, speech.ContentType, speech.Audio)
}
