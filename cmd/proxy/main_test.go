package main

import (
	"context"
	"net/http"
	"reflect"
	"sync"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mu sync.Mutex // Protect the start hooks in tests

func TestMainStartsLambda(t *testing.T) {
	t.Setenv("ENV", "production")

	mu.Lock()
	defer mu.Unlock()

	originalStart := lambdaStart
	defer func() { lambdaStart = originalStart }()

	var handler interface{}
	lambdaStart = func(h interface{}) {
		handler = h
	}

	main()

	require.NotNil(t, handler, "lambda start was not called")

	// Verify the handler has the Lambda proxy signature
	handlerType := reflect.TypeOf(handler)
	require.Equal(t, reflect.Func, handlerType.Kind())
	contextInterface := reflect.TypeOf((*context.Context)(nil)).Elem()
	errorInterface := reflect.TypeOf((*error)(nil)).Elem()
	assert.Equal(t, 2, handlerType.NumIn())
	assert.Equal(t, 2, handlerType.NumOut())
	assert.True(t, handlerType.In(0).Implements(contextInterface))
	assert.Equal(t, reflect.TypeOf(events.APIGatewayProxyRequest{}), handlerType.In(1))
	assert.Equal(t, reflect.TypeOf(events.APIGatewayProxyResponse{}), handlerType.Out(0))
	assert.True(t, handlerType.Out(1).Implements(errorInterface))
}

func TestMainServesLocally(t *testing.T) {
	t.Setenv("ENV", "local")
	t.Setenv("PORT", "9191")

	mu.Lock()
	defer mu.Unlock()

	originalListen := listenAndServe
	defer func() { listenAndServe = originalListen }()

	var addr string
	var routes http.Handler
	listenAndServe = func(a string, h http.Handler) error {
		addr = a
		routes = h
		return nil
	}

	main()

	assert.Equal(t, ":9191", addr)
	assert.NotNil(t, routes)
}

func TestIsLocal(t *testing.T) {
	assert.True(t, isLocal("local"))
	assert.True(t, isLocal("development"))
	assert.False(t, isLocal("production"))
	assert.False(t, isLocal(""))
}
