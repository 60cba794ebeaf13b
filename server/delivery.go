package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	otel "github.com/acearchive/files/server/otel"
	"github.com/acearchive/files/types"
	"go.uber.org/zap"
)

// AllowedMethods are the only methods the file endpoints answer
var AllowedMethods = []string{http.MethodGet, http.MethodHead}

// Response is a delivery result ready to be written
type Response struct {
	Status int
	Header http.Header
	Body   io.ReadCloser
}

// Write sends the response and closes the body
func (r *Response) Write(w http.ResponseWriter) error {
	h := w.Header()
	for key, values := range r.Header {
		h[key] = values
	}
	w.WriteHeader(r.Status)

	if r.Body == nil {
		return nil
	}
	defer func() {
		_ = r.Body.Close()
	}()

	if _, err := io.Copy(w, r.Body); err != nil {
		return fmt.Errorf("failed to stream object body: %w", err)
	}
	return nil
}

// Close releases the body without sending it
func (r *Response) Close() error {
	if r.Body == nil {
		return nil
	}
	return r.Body.Close()
}

// DeliveryEngine reads objects through a store chain and turns the result
// into an HTTP response
type DeliveryEngine struct {
	headers      *ResponseHeaders
	otel         otel.OpenTelemetry
	logger       *zap.Logger
	debugHeaders bool
}

// NewDeliveryEngine creates a delivery engine. telemetry may be nil.
func NewDeliveryEngine(headers *ResponseHeaders, telemetry otel.OpenTelemetry, logger *zap.Logger, debugHeaders bool) *DeliveryEngine {
	return &DeliveryEngine{
		headers:      headers,
		otel:         telemetry,
		logger:       logger,
		debugHeaders: debugHeaders,
	}
}

// Deliver serves the object stored under key. GET reads are ranged and
// conditional; HEAD reads metadata only. A store is skipped only when it
// reports the object missing; any other failure is returned at once.
func (e *DeliveryEngine) Deliver(ctx context.Context, chain StoreChain, key string, file types.ArtifactFileMetadata, req *http.Request) (*Response, error) {
	if len(chain) == 0 {
		return nil, fmt.Errorf("no object stores configured")
	}

	if e.debugHeaders {
		e.logger.Debug(headersDebugRepr("request headers", req.Header))
	}

	var (
		response *Response
		err      error
	)
	switch req.Method {
	case http.MethodGet:
		response, err = e.get(ctx, chain, key, file, req)
	case http.MethodHead:
		response, err = e.head(ctx, chain, key, file, req)
	default:
		return nil, NewMethodNotAllowedError(req.Method, AllowedMethods)
	}
	if err != nil {
		return nil, err
	}

	if e.debugHeaders {
		e.logger.Debug(headersDebugRepr("response headers", response.Header))
	}
	return response, nil
}

func (e *DeliveryEngine) get(ctx context.Context, chain StoreChain, key string, file types.ArtifactFileMetadata, req *http.Request) (*Response, error) {
	rangeRequest, err := ParseRangeRequest(req.Header.Get(HeaderRange))
	if err != nil {
		return nil, NewRangeNotSatisfiableError(err.Error())
	}

	if rangeRequest.IsPartial() {
		e.logger.Debug("range request", zap.String("kind", rangeRequest.Kind.String()), zap.String("range", rangeRequest.String()))
	}

	opts := GetOptions{
		Range:      rangeRequest,
		Conditions: ConditionsFromHeaders(NormalizeConditionalHeaders(req.Header)),
	}

	result, err := e.readChain(ctx, chain, "get", key, func(store ObjectStore) (ReadResult, error) {
		return store.Get(ctx, key, opts)
	})
	if err != nil {
		var rangeErr *RangeNotSatisfiableError
		if errors.As(err, &rangeErr) {
			responseErr := NewRangeNotSatisfiableError(rangeErr.Error())
			responseErr.Headers = map[string]string{HeaderContentRange: rangeErr.ContentRange()}
			return nil, responseErr
		}
		if errors.Is(err, ErrRangeNotSatisfiable) {
			return nil, NewRangeNotSatisfiableError(err.Error())
		}
		return nil, err
	}
	if result.Status == ReadNotFound {
		return nil, NewNotFoundError(requestURL(req))
	}

	object := result.Object

	if result.Status == ReadNotModified || !object.HasBody() {
		if object.HasBody() {
			_ = object.Body.Close()
		}
		return &Response{Status: http.StatusNotModified, Header: e.validatorHeaders(object.Info)}, nil
	}

	header, err := e.objectHeaders(object, file)
	if err != nil {
		_ = object.Body.Close()
		return nil, err
	}

	status := http.StatusOK
	if object.Range != nil {
		status = http.StatusPartialContent
	}

	return &Response{Status: status, Header: header, Body: object.Body}, nil
}

func (e *DeliveryEngine) head(ctx context.Context, chain StoreChain, key string, file types.ArtifactFileMetadata, req *http.Request) (*Response, error) {
	result, err := e.readChain(ctx, chain, "head", key, func(store ObjectStore) (ReadResult, error) {
		return store.Head(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	if result.Status == ReadNotFound {
		return nil, NewNotFoundError(requestURL(req))
	}

	object := result.Object
	if object.HasBody() {
		_ = object.Body.Close()
		object = &Object{Info: object.Info}
	}

	header, err := e.objectHeaders(object, file)
	if err != nil {
		return nil, err
	}

	return &Response{Status: http.StatusOK, Header: header}, nil
}

// readChain tries each store in order and moves on only when a store
// reports the object missing
func (e *DeliveryEngine) readChain(ctx context.Context, chain StoreChain, operation, key string, read func(ObjectStore) (ReadResult, error)) (ReadResult, error) {
	for i, store := range chain {
		result, err := read(store)
		if err != nil {
			e.recordStoreRead(ctx, store.Name(), operation, "error")
			e.logger.Error("object store read failed",
				zap.String("store", store.Name()),
				zap.String("operation", operation),
				zap.String("key", key),
				zap.Error(err))
			return ReadResult{}, fmt.Errorf("%s %s from %s: %w", operation, key, store.Name(), err)
		}

		e.recordStoreRead(ctx, store.Name(), operation, result.Status.String())

		if result.Status != ReadNotFound {
			e.logger.Debug("object store read",
				zap.String("store", store.Name()),
				zap.String("operation", operation),
				zap.String("key", key),
				zap.String("status", result.Status.String()))
			return result, nil
		}

		if i+1 < len(chain) {
			next := chain[i+1]
			e.logger.Info("object missing from store, falling back",
				zap.String("store", store.Name()),
				zap.String("fallback", next.Name()),
				zap.String("key", key))
			if e.otel != nil {
				e.otel.RecordStoreFallback(ctx, store.Name(), next.Name())
			}
		}
	}

	e.logger.Info("object missing from every store", zap.String("key", key))
	return ReadResult{Status: ReadNotFound}, nil
}

func (e *DeliveryEngine) recordStoreRead(ctx context.Context, store, operation, outcome string) {
	if e.otel != nil {
		e.otel.RecordStoreRead(ctx, store, operation, outcome)
	}
}

// validatorHeaders are sent with 304 responses
func (e *DeliveryEngine) validatorHeaders(info ObjectInfo) http.Header {
	h := e.headers.Clone()
	if info.ETag != "" {
		h.Set(HeaderETag, QuoteETag(info.ETag))
	}
	if !info.LastModified.IsZero() {
		h.Set(HeaderLastModified, LastModifiedValue(info.LastModified))
	}
	return h
}

// objectHeaders builds the full header set for a found object
func (e *DeliveryEngine) objectHeaders(object *Object, file types.ArtifactFileMetadata) (http.Header, error) {
	info := object.Info
	h := e.validatorHeaders(info)

	contentType := info.ContentType
	if contentType == "" {
		contentType = file.MediaType
	}
	if contentType == "" {
		contentType = DefaultContentType
	}
	h.Set(HeaderContentType, contentType)

	if info.ContentDisposition != "" {
		h.Set(HeaderContentDisposition, info.ContentDisposition)
	}
	if info.ContentEncoding != "" {
		h.Set(HeaderContentEncoding, info.ContentEncoding)
	}
	if info.ContentLanguage != "" {
		h.Set(HeaderContentLanguage, info.ContentLanguage)
	}

	if file.Multihash != "" {
		digest, err := file.Multihash.ReprDigest()
		if err != nil {
			return nil, fmt.Errorf("file %s has unusable multihash: %w", file.CanonicalFilename, err)
		}
		h.Set(HeaderReprDigest, digest)
	}

	if object.Range != nil {
		h.Set(HeaderContentLength, strconv.FormatUint(object.Range.Length(), 10))
		h.Set(HeaderContentRange, object.Range.ContentRange())
	} else {
		h.Set(HeaderContentLength, strconv.FormatUint(info.Size, 10))
	}

	return h, nil
}

// requestURL reconstructs the absolute URL of the request for error messages
func requestURL(req *http.Request) string {
	if req.URL.IsAbs() {
		return req.URL.String()
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if forwarded := req.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	if req.Host == "" {
		return req.URL.RequestURI()
	}
	return scheme + "://" + req.Host + req.URL.RequestURI()
}
