package response

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "tnp/internal/delivery/context"
	domainerrors "tnp/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	return items
}

func TestSuccess(t *testing.T) {
	env := Success(map[string]string{"id": "1"}, nil, 0)
	assert.Equal(t, http.StatusOK, env.StatusCode)

	body, ok := env.Body.(SuccessBody)
	require.True(t, ok)
	assert.Equal(t, Meta{}, body.Meta)

	env = Success("created", Meta{"message": "ok"}, http.StatusCreated)
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, Meta{"message": "ok"}, env.Body.(SuccessBody).Meta)
}

func TestPaginated(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		total   int64
		page    int
		limit   int
		baseURL string
		meta    PageMeta
		links   Links
	}{
		{
			name:    "middle page",
			size:    20,
			total:   95,
			page:    2,
			limit:   20,
			baseURL: "/x",
			meta:    PageMeta{CurrentPage: 2, From: 21, LastPage: 5, PerPage: 20, To: 40, Total: 95},
			links: Links{
				First: "/x?page=1&limit=20",
				Last:  "/x?page=5&limit=20",
				Prev:  strPtr("/x?page=1&limit=20"),
				Next:  strPtr("/x?page=3&limit=20"),
			},
		},
		{
			name:    "last page",
			size:    15,
			total:   95,
			page:    5,
			limit:   20,
			baseURL: "/x",
			meta:    PageMeta{CurrentPage: 5, From: 81, LastPage: 5, PerPage: 20, To: 95, Total: 95},
			links: Links{
				First: "/x?page=1&limit=20",
				Last:  "/x?page=5&limit=20",
				Prev:  strPtr("/x?page=4&limit=20"),
			},
		},
		{
			name:    "first page",
			size:    10,
			total:   30,
			page:    1,
			limit:   10,
			baseURL: "/api/v1/students",
			meta:    PageMeta{CurrentPage: 1, From: 1, LastPage: 3, PerPage: 10, To: 10, Total: 30},
			links: Links{
				First: "/api/v1/students?page=1&limit=10",
				Last:  "/api/v1/students?page=3&limit=10",
				Next:  strPtr("/api/v1/students?page=2&limit=10"),
			},
		},
		{
			name:    "empty listing",
			size:    0,
			total:   0,
			page:    1,
			limit:   20,
			baseURL: "/x",
			meta:    PageMeta{CurrentPage: 1, From: 1, LastPage: 0, PerPage: 20, To: 0, Total: 0},
			links: Links{
				First: "/x?page=1&limit=20",
				Last:  "/x?page=1&limit=20",
			},
		},
		{
			name:    "existing query parameters are kept",
			size:    5,
			total:   10,
			page:    1,
			limit:   5,
			baseURL: "/x?branch=CSE&page=9",
			meta:    PageMeta{CurrentPage: 1, From: 1, LastPage: 2, PerPage: 5, To: 5, Total: 10},
			links: Links{
				First: "/x?page=1&limit=5&branch=CSE",
				Last:  "/x?page=2&limit=5&branch=CSE",
				Next:  strPtr("/x?page=2&limit=5&branch=CSE"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Paginated(makeItems(tt.size), tt.total, tt.page, tt.limit, tt.baseURL)
			assert.Equal(t, http.StatusOK, env.StatusCode)

			body, ok := env.Body.(PaginatedBody[int])
			require.True(t, ok)
			assert.Equal(t, tt.meta, body.Meta)
			assert.Equal(t, tt.links, body.Links)
			assert.Len(t, body.Data, tt.size)
		})
	}
}

func TestPaginated_NonPositiveLimit(t *testing.T) {
	env := Paginated[int](nil, 10, 1, 0, "/x")

	body := env.Body.(PaginatedBody[int])
	assert.Zero(t, body.Meta.LastPage)
	assert.NotNil(t, body.Data)
	assert.Nil(t, body.Links.Next)
}

func TestPaginated_NullLinksSerialised(t *testing.T) {
	env := Paginated(makeItems(15), 95, 5, 20, "/x")

	raw, err := json.Marshal(env.Body)
	require.NoError(t, err)

	var decoded struct {
		Data  []int          `json:"data"`
		Links map[string]any `json:"links"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Len(t, decoded.Data, 15)
	require.Contains(t, decoded.Links, "next")
	assert.Nil(t, decoded.Links["next"])
	assert.Equal(t, "/x?page=4&limit=20", decoded.Links["prev"])
}

func TestPaginated_HugePageDoesNotOverflow(t *testing.T) {
	env := Paginated[int](nil, 95, math.MaxInt, 20, "/x")

	body := env.Body.(PaginatedBody[int])
	assert.EqualValues(t, 96, body.Meta.From)
	assert.EqualValues(t, 95, body.Meta.To)
	assert.Nil(t, body.Links.Next)
}

func TestWriteError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(deliverycontext.WithRequestID(req.Context(), "req-1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	appErr := domainerrors.CustomField("", "email", "Invalid email")
	require.NoError(t, WriteError(c, appErr))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domainerrors.CategoryValidation, body.Error.Type)
	assert.Equal(t, "Input validation failed", body.Error.Message)
	assert.Equal(t, domainerrors.FieldErrors{"email": {"Invalid email"}}, body.Error.Fields)
	assert.Equal(t, "req-1", body.Meta.RequestID)
}
