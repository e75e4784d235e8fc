package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/freight-rates/backend/internal/domain"
	"github.com/pkordes/freight-rates/backend/internal/rates"
)

// ratesParams are the query parameters of GET /rates.
// Date format and location existence are checked by the service; this layer
// only guarantees that every parameter is present. Locations have no length
// cap here: an identifier that is not stored is reported as unknown.
type ratesParams struct {
	DateFrom    string `json:"date_from" validate:"required"`
	DateTo      string `json:"date_to" validate:"required"`
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
}

// ratesParamNames is the binding order; the first malformed parameter is the
// one reported.
var ratesParamNames = [...]string{"date_from", "date_to", "origin", "destination"}

// rateResponse is one element of the GET /rates response array.
// AveragePrice is serialised as null when the day is suppressed.
type rateResponse struct {
	Day          openapi_types.Date `json:"day"`
	AveragePrice *float64           `json:"average_price"`
}

// GetRates handles GET /rates.
// It returns one entry per day in [date_from, date_to], ascending.
func (s *Server) GetRates(w http.ResponseWriter, r *http.Request) {
	params, err := s.bindRatesParams(r)
	if err != nil {
		s.writeDetail(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.rates.Rates(r.Context(), domain.RateQuery{
		DateFrom:    params.DateFrom,
		DateTo:      params.DateTo,
		Origin:      params.Origin,
		Destination: params.Destination,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if s.observer != nil {
		s.observer.ObserveRates(len(result), rates.Suppressed(result))
	}
	render.JSON(w, r, ratesToResponse(result))
}

// bindRatesParams reads the query string into ratesParams and validates it.
// The returned error message is safe to show to the client.
func (s *Server) bindRatesParams(r *http.Request) (ratesParams, error) {
	var p ratesParams
	query := r.URL.Query()

	dests := [...]*string{&p.DateFrom, &p.DateTo, &p.Origin, &p.Destination}
	for i, name := range ratesParamNames {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dests[i]); err != nil {
			return ratesParams{}, fmt.Errorf("invalid query parameter %s", name)
		}
	}

	if err := s.validate.Struct(p); err != nil {
		return ratesParams{}, validationMessage(err)
	}
	return p, nil
}

// validationMessage turns validator errors into one client-facing sentence,
// e.g. "date_from is required; origin is required".
func validationMessage(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// ratesToResponse maps domain rates to the wire type. The result is never nil,
// so an empty series would still render as [] rather than null.
func ratesToResponse(in []domain.DailyRate) []rateResponse {
	out := make([]rateResponse, 0, len(in))
	for _, dr := range in {
		out = append(out, rateResponse{
			Day:          openapi_types.Date{Time: dr.Day},
			AveragePrice: dr.AveragePrice,
		})
	}
	return out
}
