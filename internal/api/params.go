package api

import (
	"net/url"
	"strconv"

	"github.com/aws/aws-lambda-go/events"

	"github.com/transitkit/opendata-go/pkg/transport"
)

// ParamsFromEvent merges single and multi-value query parameters of a Lambda event
func ParamsFromEvent(request events.APIGatewayProxyRequest) url.Values {
	params := url.Values{}
	for key, values := range request.MultiValueQueryStringParameters {
		params[key] = append(params[key], values...)
	}
	for key, value := range request.QueryStringParameters {
		if _, ok := params[key]; !ok {
			params.Set(key, value)
		}
	}
	return params
}

// ParseLocationQuery reads query/type or x/y/transportations[] parameters
func ParseLocationQuery(params url.Values) (transport.LocationQuery, error) {
	var q transport.LocationQuery
	q.Query = params.Get("query")

	if raw := params.Get("type"); raw != "" {
		locationType, err := transport.ParseLocationType(raw)
		if err != nil {
			return q, transport.NewParameterError("type", err.Error())
		}
		q.Type = locationType
	}

	x, hasX := params["x"]
	y, hasY := params["y"]
	switch {
	case hasX && hasY:
		xVal, err := parseFloat("x", x[0])
		if err != nil {
			return q, err
		}
		yVal, err := parseFloat("y", y[0])
		if err != nil {
			return q, err
		}
		q.Coordinates = &transport.Coordinates{X: xVal, Y: yVal}
	case hasX:
		return q, transport.NewParameterError("y", "is required with x")
	case hasY:
		return q, transport.NewParameterError("x", "is required with y")
	}

	modes, err := parseModes(params)
	if err != nil {
		return q, err
	}
	q.Transportations = modes

	return q, nil
}

// ParseConnectionQuery reads the connections parameters; via and via[] are both accepted
func ParseConnectionQuery(params url.Values) (transport.ConnectionQuery, error) {
	q := transport.ConnectionQuery{
		From: params.Get("from"),
		To:   params.Get("to"),
		Date: params.Get("date"),
		Time: params.Get("time"),
	}
	q.Via = append(q.Via, params["via"]...)
	q.Via = append(q.Via, params["via[]"]...)

	var err error
	if q.IsArrivalTime, err = parseBool(params, "isArrivalTime"); err != nil {
		return q, err
	}
	if q.Transportations, err = parseModes(params); err != nil {
		return q, err
	}
	if q.Limit, err = parseInt(params, "limit"); err != nil {
		return q, err
	}
	if q.Page, err = parseInt(params, "page"); err != nil {
		return q, err
	}
	if q.Direct, err = parseBool(params, "direct"); err != nil {
		return q, err
	}
	if q.Sleeper, err = parseBool(params, "sleeper"); err != nil {
		return q, err
	}
	if q.Couchette, err = parseBool(params, "couchette"); err != nil {
		return q, err
	}
	if q.Bike, err = parseBool(params, "bike"); err != nil {
		return q, err
	}

	if raw := params.Get("accessibility"); raw != "" {
		level, err := transport.ParseAccessibilityLevel(raw)
		if err != nil {
			return q, transport.NewParameterError("accessibility", err.Error())
		}
		q.Accessibility = level
	}

	return q, nil
}

func ParseStationboardQuery(params url.Values) (transport.StationboardQuery, error) {
	q := transport.StationboardQuery{
		Station:  params.Get("station"),
		ID:       params.Get("id"),
		Datetime: params.Get("datetime"),
	}

	var err error
	if q.Limit, err = parseInt(params, "limit"); err != nil {
		return q, err
	}
	if q.Transportations, err = parseModes(params); err != nil {
		return q, err
	}

	return q, nil
}

func parseModes(params url.Values) ([]transport.TransportMode, error) {
	var raw []string
	raw = append(raw, params["transportations"]...)
	raw = append(raw, params["transportations[]"]...)

	var modes []transport.TransportMode
	for _, value := range raw {
		mode, err := transport.ParseTransportMode(value)
		if err != nil {
			return nil, transport.NewParameterError("transportations", err.Error())
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

func parseInt(params url.Values, key string) (*int, error) {
	raw := params.Get(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, transport.NewParameterError(key, "must be an integer")
	}
	return &value, nil
}

func parseBool(params url.Values, key string) (*bool, error) {
	raw := params.Get(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, transport.NewParameterError(key, "must be 0 or 1")
	}
	return &value, nil
}

func parseFloat(key, raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, transport.NewParameterError(key, "must be a number")
	}
	return value, nil
}
