package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"

	"github.com/transitkit/opendata-go/internal/api"
	"github.com/transitkit/opendata-go/pkg/transport"
)

// Finder is the part of transport.Client the handler needs
type Finder interface {
	FindLocations(ctx context.Context, q transport.LocationQuery) (<-chan transport.Result, error)
	FindConnections(ctx context.Context, q transport.ConnectionQuery) (<-chan transport.Result, error)
	FindStationboard(ctx context.Context, q transport.StationboardQuery) (<-chan transport.Result, error)
}

type TransportHandler struct {
	finder Finder
}

func NewTransportHandler(finder Finder) *TransportHandler {
	return &TransportHandler{
		finder: finder,
	}
}

// HandleRequest serves a Lambda proxy event. The resource is the last path
// segment, so both /locations and /v1/locations work.
func (h *TransportHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resource := transport.Resource(path.Base(request.Path))
	if name, ok := request.PathParameters["resource"]; ok {
		resource = transport.Resource(name)
	}

	log.Info().Str("resource", string(resource)).Str("path", request.Path).Msg("Handling Lambda request")

	return h.serve(ctx, resource, api.ParamsFromEvent(request))
}

// Routes exposes the same resources over net/http for local runs
func (h *TransportHandler) Routes() http.Handler {
	router := httprouter.New()
	for _, resource := range []transport.Resource{
		transport.ResourceLocations,
		transport.ResourceConnections,
		transport.ResourceStationboard,
	} {
		router.GET("/v1/"+string(resource), h.httpHandle(resource))
	}
	return router
}

func (h *TransportHandler) httpHandle(resource transport.Resource) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		start := time.Now()
		resp, _ := h.serve(r.Context(), resource, r.URL.Query())

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		if _, err := w.Write([]byte(resp.Body)); err != nil {
			log.Warn().Err(err).Msg("Writing response")
		}

		log.Info().
			Str("resource", string(resource)).
			Int("status", resp.StatusCode).
			Dur("elapsed", time.Since(start)).
			Msg("Handled HTTP request")
	}
}

func (h *TransportHandler) serve(ctx context.Context, resource transport.Resource, params url.Values) (events.APIGatewayProxyResponse, error) {
	results, err := h.dispatch(ctx, resource, params)
	if err != nil {
		log.Debug().Err(err).Str("resource", string(resource)).Msg("Rejected request")
		var unknown errUnknownResource
		if errors.As(err, &unknown) {
			return api.Error(err.Error(), http.StatusNotFound)
		}
		return api.Failure(err)
	}

	select {
	case result := <-results:
		if result.Err != nil {
			return api.Failure(result.Err)
		}
		return api.Payload(result.Body)
	case <-ctx.Done():
		return api.Error("request abandoned", http.StatusGatewayTimeout)
	}
}

func (h *TransportHandler) dispatch(ctx context.Context, resource transport.Resource, params url.Values) (<-chan transport.Result, error) {
	switch resource {
	case transport.ResourceLocations:
		q, err := api.ParseLocationQuery(params)
		if err != nil {
			return nil, err
		}
		return h.finder.FindLocations(ctx, q)
	case transport.ResourceConnections:
		q, err := api.ParseConnectionQuery(params)
		if err != nil {
			return nil, err
		}
		return h.finder.FindConnections(ctx, q)
	case transport.ResourceStationboard:
		q, err := api.ParseStationboardQuery(params)
		if err != nil {
			return nil, err
		}
		return h.finder.FindStationboard(ctx, q)
	default:
		return nil, errUnknownResource{resource: resource}
	}
}

type errUnknownResource struct {
	resource transport.Resource
}

func (e errUnknownResource) Error() string {
	return "unknown resource: " + string(e.resource)
}
