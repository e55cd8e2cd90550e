package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/getaroundlab/pricing/core/pricing"
	"github.com/getaroundlab/pricing/infra/metrics"
	"github.com/getaroundlab/pricing/infra/model"
)

// featurePayload mirrors pricing.FeatureRecord with pointer fields so the
// binding layer can tell a missing field from a zero value. 0 is a legal flag
// value; absence is a request shape error.
type featurePayload struct {
	ModelKey                *string  `json:"model_key" binding:"required"`
	Mileage                 *float64 `json:"mileage" binding:"required"`
	EnginePower             *float64 `json:"engine_power" binding:"required"`
	Fuel                    *string  `json:"fuel" binding:"required"`
	PaintColor              *string  `json:"paint_color" binding:"required"`
	CarType                 *string  `json:"car_type" binding:"required"`
	PrivateParkingAvailable *int     `json:"private_parking_available" binding:"required,min=0,max=1"`
	HasGPS                  *int     `json:"has_gps" binding:"required,min=0,max=1"`
	HasAirConditioning      *int     `json:"has_air_conditioning" binding:"required,min=0,max=1"`
	AutomaticCar            *int     `json:"automatic_car" binding:"required,min=0,max=1"`
	HasGetaroundConnect     *int     `json:"has_getaround_connect" binding:"required,min=0,max=1"`
	HasSpeedRegulator       *int     `json:"has_speed_regulator" binding:"required,min=0,max=1"`
	WinterTires             *int     `json:"winter_tires" binding:"required,min=0,max=1"`
}

func (p featurePayload) record() pricing.FeatureRecord {
	return pricing.FeatureRecord{
		ModelKey:                *p.ModelKey,
		Mileage:                 *p.Mileage,
		EnginePower:             *p.EnginePower,
		Fuel:                    *p.Fuel,
		PaintColor:              *p.PaintColor,
		CarType:                 *p.CarType,
		PrivateParkingAvailable: *p.PrivateParkingAvailable,
		HasGPS:                  *p.HasGPS,
		HasAirConditioning:      *p.HasAirConditioning,
		AutomaticCar:            *p.AutomaticCar,
		HasGetaroundConnect:     *p.HasGetaroundConnect,
		HasSpeedRegulator:       *p.HasSpeedRegulator,
		WinterTires:             *p.WinterTires,
	}
}

type predictRequest struct {
	Input []featurePayload `json:"input" binding:"required,min=1,dive"`
}

type predictResponse struct {
	Prediction []float64 `json:"prediction"`
}

type errorResponse struct {
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
}

func (s *Server) predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			ErrorType: "request_shape_error",
			Message:   err.Error(),
		})
		return
	}

	records := make([]pricing.FeatureRecord, len(req.Input))
	for i, p := range req.Input {
		records[i] = p.record()
	}

	start := time.Now()
	prices, err := s.handle.Predict(records)
	if err != nil {
		outcome := metrics.OutcomePredictionError
		errType := "prediction_error"
		if errors.Is(err, model.ErrModelUnavailable) {
			outcome = metrics.OutcomeModelUnavailable
			errType = "model_unavailable"
		}
		s.log.Errorf("predict failed (%d records): %v", len(records), err)
		s.recordPrediction(metrics.PredictionEvent{
			Records:  len(records),
			Outcome:  outcome,
			Duration: time.Since(start),
		})
		c.JSON(http.StatusInternalServerError, errorResponse{ErrorType: errType, Message: err.Error()})
		return
	}

	s.recordPrediction(metrics.PredictionEvent{
		Records:   len(prices),
		Outcome:   metrics.OutcomeOK,
		Duration:  time.Since(start),
		MeanPrice: mean(prices),
	})
	c.JSON(http.StatusOK, predictResponse{Prediction: prices})
}

func (s *Server) recordPrediction(ev metrics.PredictionEvent) {
	ev.Time = time.Now()
	if err := s.sink.RecordPrediction(ev); err != nil {
		s.log.Warnf("record prediction event: %v", err)
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
