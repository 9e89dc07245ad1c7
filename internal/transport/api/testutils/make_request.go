package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
	body    io.Reader
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest прогоняет запрос через роутер и возвращает записанный ответ. Опция WithJSON заменяет
// args.Body.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{
		headers: make(map[string]string),
		body:    args.Body,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if jr, ok := options.body.(*jsonReader); ok && jr.err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", jr.err)
	}

	request := httptest.NewRequest(args.Method, args.URL, options.body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)
	return recorder.Result(), nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.headers[name] = value
	}
}

// WithBearer добавляет заголовок Authorization. Пустой токен игнорируется.
func WithBearer(token string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		if token != "" {
			o.headers["Authorization"] = "Bearer " + token
		}
	}
}

type jsonReader struct {
	*bytes.Reader
	err error
}

// WithJSON сериализует v в тело запроса. Срез байт передается как есть, nil оставляет тело пустым.
func WithJSON(v any) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.headers["Content-Type"] = "application/json"
		switch b := v.(type) {
		case nil:
			o.body = nil
		case []byte:
			o.body = bytes.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			o.body = &jsonReader{Reader: bytes.NewReader(raw), err: err}
		}
	}
}
