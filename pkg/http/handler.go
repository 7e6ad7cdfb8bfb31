package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) (err error)

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) (err error)
}

// ResponseWriter collects the response to write after the handler returns.
// A handler reporting a client-visible failure sets an error status code and
// a message body, then returns the cause for boundary logging.
type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

type messageBody struct {
	Message string `json:"message"`
}

func ErrorMessage(msg string) any {
	return messageBody{Message: msg}
}

type responseWriter struct {
	impl http.ResponseWriter

	httpCode int
	body     any
	hasBody  bool
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	httpCode := w.httpCode
	if err != nil && httpCode < http.StatusBadRequest {
		switch {
		case errors.Is(err, ErrParsingError):
			httpCode = http.StatusBadRequest
			w.SetJSONBody(ErrorMessage("Failed to parse request"))
		default:
			httpCode = http.StatusInternalServerError
			w.SetJSONBody(ErrorMessage("Internal server error"))
		}
	}

	var bodyEncoded []byte
	if w.hasBody {
		var marshalErr error
		bodyEncoded, marshalErr = json.Marshal(w.body)
		if marshalErr != nil {
			err = fmt.Errorf("encode response body: %w", marshalErr)
			httpCode = http.StatusInternalServerError
			bodyEncoded = nil
		}
	}

	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	if bodyEncoded != nil {
		w.impl.Header().Set("Content-Type", "application/json")
	}
	w.impl.WriteHeader(httpCode)
	if bodyEncoded != nil {
		_, _ = w.impl.Write(bodyEncoded)
	}
}

func (w *responseWriter) WritePanic(ctx context.Context, panic Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &panic

	w.impl.WriteHeader(http.StatusInternalServerError)
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}

func writeHandlerResult(ctx context.Context, w http.ResponseWriter, httpCode int, err error) {
	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	w.WriteHeader(httpCode)
}

func writeHandlerJSONResult(ctx context.Context, w http.ResponseWriter, httpCode int, err error, message string) {
	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_ = json.NewEncoder(w).Encode(messageBody{Message: message})
}
