// Package paginate provides an HTTP middleware that parses, validates, and
// stores page requests taken from query parameters, plus helpers that slice
// a list according to that page and write it as JSON.
//
// By default a request is read from "?page=<n>&size=<n>". Missing parameters
// fall back to page 1 and a page size of 10; page sizes larger than 100 are
// rejected.
//
// Example usage:
//
//	package main
//
//	import (
//		"log"
//		"net/http"
//
//		"github.com/paccolamano/lazyutil/handlers/paginate"
//	)
//
//	type User struct {
//		ID   int    `json:"id"`
//		Name string `json:"name"`
//	}
//
//	func main() {
//		mux := http.NewServeMux()
//
//		// Set global defaults for all pagination handlers
//		paginate.SetDefaultPageSize(20)
//		paginate.SetDefaultMaxPageSize(200)
//
//		users := []User{{ID: 1, Name: "foo"}, {ID: 2, Name: "bar"}}
//
//		// Create a pagination handler with custom options
//		pages := paginate.New(
//			paginate.WithSizeParam("per_page"),
//			paginate.WithMaxPageSize(50),
//		)
//
//		mux.Handle("/api/users", pages(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//			paginate.WriteJSON(w, r, users)
//		})))
//
//		log.Fatal(http.ListenAndServe(":8080", mux))
//	}
package paginate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/paccolamano/lazyutil/utility"
)

var (
	// ErrInvalidPage is wrapped by the errors returned for a page parameter
	// that is not an integer greater than zero.
	ErrInvalidPage = errors.New("invalid page")

	// ErrInvalidPageSize is wrapped by the errors returned for a size parameter
	// that is not an integer between 1 and the maximum page size.
	ErrInvalidPageSize = errors.New("invalid page size")
)

// Page represents a 1-indexed page request.
type Page struct {
	// Number is the 1-indexed page number.
	Number int `json:"page"`

	// Size is the number of items per page.
	Size int `json:"size"`
}

// Offset returns how many items precede the page. It saturates at
// math.MaxInt instead of overflowing.
func (p Page) Offset() int {
	if p.Number < 1 || p.Size < 1 {
		return 0
	}

	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}

	return (p.Number - 1) * p.Size
}

// Result is a page of items together with the pagination metadata.
//
// Example:
//
//	{ "items": [4, 5, 6], "page": 2, "size": 3, "total": 10, "pages": 4 }
type Result[T any] struct {
	// Items holds the elements of the requested page. It is never nil.
	Items []T `json:"items"`

	// Page is the requested page number.
	Page int `json:"page"`

	// Size is the requested page size.
	Size int `json:"size"`

	// Total is the number of elements across all pages.
	Total int `json:"total"`

	// Pages is the number of pages needed to hold Total elements.
	Pages int `json:"pages"`
}

// Logger is a minimal structured-logger interface used by New.
// It mirrors slog.Logger.LogAttrs.
type Logger interface {
	// LogAttrs logs a message at a given level with structured attributes.
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// ErrorHandler defines the signature of a function responsible
// for handling rejected page requests.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// contextKey is a custom type used to avoid collisions when
// storing values in request contexts.
type contextKey string

// pageKey is the context key under which parsed Page objects are stored.
const pageKey = contextKey("page")

var (
	// defaultPageParam holds the default query parameter name of the page number.
	defaultPageParam = "page"

	// defaultSizeParam holds the default query parameter name of the page size.
	defaultSizeParam = "size"

	// defaultPageSize is used when the size parameter is missing.
	defaultPageSize = 10

	// defaultMaxPageSize is the largest page size accepted.
	defaultMaxPageSize = 100

	// defaultErrorHandler writes a plain text response with HTTP 400 status code.
	defaultErrorHandler ErrorHandler = func(w http.ResponseWriter, r *http.Request, _ error) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
		_, err := w.Write([]byte(http.StatusText(http.StatusBadRequest)))
		if err != nil {
			slog.Default().ErrorContext(r.Context(), "failed to send response", slog.String("err", err.Error()))
		}
	}
)

// SetDefaultPageParam sets the default query parameter name of the page number.
func SetDefaultPageParam(param string) {
	defaultPageParam = param
}

// SetDefaultSizeParam sets the default query parameter name of the page size.
func SetDefaultSizeParam(param string) {
	defaultSizeParam = param
}

// SetDefaultPageSize sets the global page size used when none is requested.
// Values lower than 1 are ignored.
func SetDefaultPageSize(size int) {
	if size > 0 {
		defaultPageSize = size
	}
}

// SetDefaultMaxPageSize sets the global maximum page size. Values lower
// than 1 are ignored.
func SetDefaultMaxPageSize(size int) {
	if size > 0 {
		defaultMaxPageSize = size
	}
}

// SetDefaultErrorHandler replaces the default global error handler.
func SetDefaultErrorHandler(handler ErrorHandler) {
	defaultErrorHandler = handler
}

// DefaultPage returns the page used when a request carries no page parameters.
func DefaultPage() Page {
	return Page{Number: 1, Size: defaultPageSize}
}

// config stores the configuration for a pagination handler.
type config struct {
	pageParam    string
	sizeParam    string
	pageSize     int
	maxPageSize  int
	errorHandler ErrorHandler
	logger       Logger
}

// Option is a functional option type used to configure a pagination handler.
type Option func(*config)

// WithPageParam sets the query parameter name of the page number.
func WithPageParam(param string) Option {
	return func(c *config) {
		c.pageParam = param
	}
}

// WithSizeParam sets the query parameter name of the page size.
func WithSizeParam(param string) Option {
	return func(c *config) {
		c.sizeParam = param
	}
}

// WithPageSize sets the page size used when none is requested.
// Values lower than 1 are ignored.
func WithPageSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithMaxPageSize sets the largest page size accepted.
// Values lower than 1 are ignored.
func WithMaxPageSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.maxPageSize = size
		}
	}
}

// WithErrorHandler overrides the error handler used by the pagination handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		c.errorHandler = handler
	}
}

// WithLogger sets a structured Logger used to report rejected requests.
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// New creates a middleware that parses and validates the page parameters
// and injects the resulting Page into the request context.
// It can be customized via Option functions, falling back to
// global defaults when not provided.
//
// Rejected requests are passed to the error handler with an error
// wrapping ErrInvalidPage or ErrInvalidPageSize.
func New(opts ...Option) func(http.Handler) http.Handler {
	c := &config{
		pageParam:    defaultPageParam,
		sizeParam:    defaultSizeParam,
		pageSize:     defaultPageSize,
		maxPageSize:  defaultMaxPageSize,
		errorHandler: defaultErrorHandler,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			page, err := parsePage(r, c)
			if err != nil {
				c.logger.LogAttrs(r.Context(), slog.LevelDebug, "rejected page request",
					slog.String("query", r.URL.RawQuery),
					slog.String("error", err.Error()))
				c.errorHandler(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), pageKey, page)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parsePage(r *http.Request, c *config) (*Page, error) {
	q := r.URL.Query()
	page := &Page{Number: 1, Size: c.pageSize}

	if s := q.Get(c.pageParam); utility.IsNotBlank(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q query parameter must be an integer", ErrInvalidPage, c.pageParam)
		}
		if n < 1 {
			return nil, fmt.Errorf("%w: %q query parameter must be >= 1", ErrInvalidPage, c.pageParam)
		}
		page.Number = n
	}

	if s := q.Get(c.sizeParam); utility.IsNotBlank(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q query parameter must be an integer", ErrInvalidPageSize, c.sizeParam)
		}
		if n < 1 || n > c.maxPageSize {
			return nil, fmt.Errorf("%w: %q query parameter must be between 1 and %d",
				ErrInvalidPageSize, c.sizeParam, c.maxPageSize)
		}
		page.Size = n
	}

	if page.Number-1 > math.MaxInt/page.Size {
		return nil, fmt.Errorf("%w: %q query parameter too large for a page size of %d",
			ErrInvalidPage, c.pageParam, page.Size)
	}

	return page, nil
}

// GetPage retrieves the Page stored in the request context by New.
// If no page is stored, it returns nil.
func GetPage(r *http.Request) *Page {
	v := r.Context().Value(pageKey)
	if v == nil {
		return nil
	}

	p, ok := v.(*Page)
	if !ok {
		return nil
	}

	return p
}

// LogAttrs returns the page stored in ctx by New as "page" and "size"
// attributes, or nil if ctx carries no page. Its signature matches
// ctxlog.AttrExtractor.
func LogAttrs(ctx context.Context) []slog.Attr {
	p, ok := ctx.Value(pageKey).(*Page)
	if !ok || p == nil {
		return nil
	}

	return []slog.Attr{slog.Int("page", p.Number), slog.Int("size", p.Size)}
}

// Apply returns the items of page p together with the pagination metadata.
func Apply[T any](p Page, items []T) Result[T] {
	return Result[T]{
		Items: utility.Paginate(items, p.Number, p.Size),
		Page:  p.Number,
		Size:  p.Size,
		Total: len(items),
		Pages: utility.PageCount(len(items), p.Size),
	}
}

// WriteJSON writes the page of items requested by r as a JSON encoded Result.
// When r carries no Page, DefaultPage is used.
func WriteJSON[T any](w http.ResponseWriter, r *http.Request, items []T) {
	p := DefaultPage()
	if stored := GetPage(r); stored != nil {
		p = *stored
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Apply(p, items)); err != nil {
		slog.Default().ErrorContext(r.Context(), "failed to send response", slog.String("err", err.Error()))
	}
}
