package testutils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest прогоняет запрос через роутер без сети и возвращает записанный ответ.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{headers: make(map[string]string)}
	for _, opt := range opts {
		opt(&options)
	}

	request, err := http.NewRequestWithContext(context.Background(), args.Method, args.URL, args.Body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", args.Method, args.URL, err)
	}
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

func WithJSON() func(*RequestOptions) {
	return WithHeader("Content-Type", "application/json")
}

// WithBearer добавляет токен в заголовок Authorization. Пустой токен ничего не меняет.
func WithBearer(token string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		if token == "" {
			return
		}
		fn.headers["Authorization"] = "Bearer " + token
	}
}
