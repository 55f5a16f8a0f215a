// Package response builds the JSON envelopes written by the HTTP handlers.
package response

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	deliverycontext "tnp/internal/delivery/context"
	domainerrors "tnp/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Meta is caller-supplied metadata attached to a success envelope.
type Meta map[string]any

// Envelope is a status code paired with the body to serialise.
type Envelope struct {
	StatusCode int
	Body       any
}

// SuccessBody is the body of a single-resource response.
type SuccessBody struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

// Links are the 1-indexed page links of a paginated response.
// Prev and Next are null at the boundaries.
type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// PageMeta describes the returned slice of a paginated listing.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	From        int64 `json:"from"`
	LastPage    int64 `json:"last_page"`
	PerPage     int   `json:"per_page"`
	To          int64 `json:"to"`
	Total       int64 `json:"total"`
}

// PaginatedBody is the body of a paginated listing.
type PaginatedBody[T any] struct {
	Data  []T      `json:"data"`
	Links Links    `json:"links"`
	Meta  PageMeta `json:"meta"`
}

// ErrorInfo is the client-facing part of a failure.
type ErrorInfo struct {
	Type    domainerrors.Category    `json:"type"`
	Message string                   `json:"message"`
	Fields  domainerrors.FieldErrors `json:"fields,omitempty"`
}

// ErrorMeta correlates an error response with the server logs.
type ErrorMeta struct {
	RequestID string `json:"request_id"`
}

// ErrorBody is the body written by the error renderer.
type ErrorBody struct {
	Error ErrorInfo `json:"error"`
	Meta  ErrorMeta `json:"meta"`
}

// Success wraps data with caller metadata. A zero status code means 200.
func Success(data any, meta Meta, statusCode int) Envelope {
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	if meta == nil {
		meta = Meta{}
	}

	return Envelope{
		StatusCode: statusCode,
		Body:       SuccessBody{Data: data, Meta: meta},
	}
}

// pageOffset is (page-1)*limit. A product that would overflow int64 lies past
// the end of any listing, so it is reported as total.
func pageOffset(page, limit int, total int64) int64 {
	if page <= 1 || limit <= 0 {
		return int64(page-1) * int64(limit)
	}
	if int64(page-1) > (math.MaxInt64-1)/int64(limit) {
		return total
	}

	return int64(page-1) * int64(limit)
}

// Paginated builds a listing envelope. page and limit are trusted: callers must
// pass positive values, otherwise the page math is meaningless.
func Paginated[T any](data []T, total int64, page, limit int, baseURL string) Envelope {
	var lastPage int64
	if limit > 0 {
		lastPage = int64(math.Ceil(float64(total) / float64(limit)))
	}

	from := pageOffset(page, limit, total) + 1
	to := min(from+int64(len(data))-1, total)

	links := Links{
		First: pageURL(baseURL, 1, limit),
		Last:  pageURL(baseURL, max(lastPage, 1), limit),
	}
	if page > 1 {
		prev := pageURL(baseURL, int64(page-1), limit)
		links.Prev = &prev
	}
	if int64(page) < lastPage {
		next := pageURL(baseURL, int64(page+1), limit)
		links.Next = &next
	}

	if data == nil {
		data = []T{}
	}

	return Envelope{
		StatusCode: http.StatusOK,
		Body: PaginatedBody[T]{
			Data:  data,
			Links: links,
			Meta: PageMeta{
				CurrentPage: page,
				From:        from,
				LastPage:    lastPage,
				PerPage:     limit,
				To:          to,
				Total:       total,
			},
		},
	}
}

// Error builds the envelope for an application error.
func Error(appErr domainerrors.AppError, requestID string) Envelope {
	return Envelope{
		StatusCode: appErr.HTTPCode(),
		Body: ErrorBody{
			Error: ErrorInfo{
				Type:    appErr.Category(),
				Message: appErr.Message(),
				Fields:  appErr.Fields(),
			},
			Meta: ErrorMeta{RequestID: requestID},
		},
	}
}

// Write serialises env as JSON.
func Write(c echo.Context, env Envelope) error {
	return c.JSON(env.StatusCode, env.Body)
}

// JSON writes a success envelope.
func JSON(c echo.Context, statusCode int, data any, meta Meta) error {
	return Write(c, Success(data, meta, statusCode))
}

// WriteError writes the error envelope tagged with the current request id.
func WriteError(c echo.Context, appErr domainerrors.AppError) error {
	requestID := deliverycontext.GetRequestIDFromContext(c.Request().Context())

	return Write(c, Error(appErr, requestID))
}

// pageURL sets page and limit on baseURL, keeping any other query parameters after them.
func pageURL(baseURL string, page int64, limit int) string {
	path, rawQuery, _ := strings.Cut(baseURL, "?")
	query := fmt.Sprintf("page=%d&limit=%d", page, limit)

	if rawQuery == "" {
		return path + "?" + query
	}

	rest, err := url.ParseQuery(rawQuery)
	if err != nil {
		return path + "?" + query
	}
	rest.Del("page")
	rest.Del("limit")
	if encoded := rest.Encode(); encoded != "" {
		query += "&" + encoded
	}

	return path + "?" + query
}
