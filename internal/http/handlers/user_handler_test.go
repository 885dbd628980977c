package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skullmod/go-daily-words/internal/domain"
	"github.com/skullmod/go-daily-words/internal/services"
)

//
// Fakes
//

type fakeRegSvc struct {
	user *domain.User
	err  error

	gotFirst, gotLast, gotPlace string
	gotBirth                    time.Time
}

func (f *fakeRegSvc) Register(_ context.Context, first, last string, birth time.Time, place string) (*domain.User, error) {
	f.gotFirst, f.gotLast, f.gotPlace, f.gotBirth = first, last, place, birth
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeWordsSvc struct {
	row   *domain.DailyWord
	err   error
	items []domain.DailyWord
	total int64
	hErr  error

	gotPage, gotSize int
}

func (f *fakeWordsSvc) Today(context.Context, string) (*domain.DailyWord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.row, nil
}

func (f *fakeWordsSvc) History(_ context.Context, _ string, page, pageSize int) ([]domain.DailyWord, int64, error) {
	f.gotPage, f.gotSize = page, pageSize
	if f.hErr != nil {
		return nil, 0, f.hErr
	}
	return f.items, f.total, nil
}

type fakeIssuer struct {
	token string
	err   error
}

func (f fakeIssuer) Issue(string) (string, error) { return f.token, f.err }

func newRegisterRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", h.Register)
	return r
}

func postRegister(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

//
// Tests
//

func TestRegister_Success(t *testing.T) {
	reg := &fakeRegSvc{user: &domain.User{ID: "u-1"}}
	h := New(reg, &fakeWordsSvc{}, fakeIssuer{token: "tok-123"})
	r := newRegisterRouter(h)

	w := postRegister(r, `{"first_name":"Ayşe","last_name":"Yılmaz","birth_date":"1990-03-21T10:00","birth_place":"Niğde"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var resp RegisterResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Token != "tok-123" || resp.UserID != "u-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	want := time.Date(1990, 3, 21, 10, 0, 0, 0, time.UTC)
	if !reg.gotBirth.Equal(want) {
		t.Fatalf("birth passed to service = %v, want %v", reg.gotBirth, want)
	}
	if reg.gotFirst != "Ayşe" || reg.gotLast != "Yılmaz" || reg.gotPlace != "Niğde" {
		t.Fatalf("unexpected service args: %q %q %q", reg.gotFirst, reg.gotLast, reg.gotPlace)
	}
}

func TestRegister_BadJSONAndMissingFields(t *testing.T) {
	h := New(&fakeRegSvc{user: &domain.User{ID: "u"}}, &fakeWordsSvc{}, fakeIssuer{token: "t"})
	r := newRegisterRouter(h)

	for name, body := range map[string]string{
		"garbage":       `{not json`,
		"missing_field": `{"first_name":"Ayşe"}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := postRegister(r, body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), ErrCodeBadRequest) {
				t.Fatalf("expected %q in body: %s", ErrCodeBadRequest, w.Body.String())
			}
		})
	}
}

func TestRegister_BadBirthDate(t *testing.T) {
	h := New(&fakeRegSvc{user: &domain.User{ID: "u"}}, &fakeWordsSvc{}, fakeIssuer{token: "t"})
	r := newRegisterRouter(h)

	w := postRegister(r, `{"first_name":"A","last_name":"B","birth_date":"21/03/1990","birth_place":"Niğde"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "birth_date") {
		t.Fatalf("expected date hint in body: %s", w.Body.String())
	}
}

func TestRegister_ServiceValidationErrors(t *testing.T) {
	for name, svcErr := range map[string]error{
		"empty_name":    services.ErrEmptyName,
		"empty_place":   services.ErrEmptyBirthPlace,
		"invalid_birth": services.ErrInvalidBirthDate,
	} {
		t.Run(name, func(t *testing.T) {
			h := New(&fakeRegSvc{err: svcErr}, &fakeWordsSvc{}, fakeIssuer{token: "t"})
			r := newRegisterRouter(h)

			w := postRegister(r, `{"first_name":"A","last_name":"B","birth_date":"1990-03-21","birth_place":"X"}`)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestRegister_ServiceInternalError(t *testing.T) {
	h := New(&fakeRegSvc{err: errors.New("db down")}, &fakeWordsSvc{}, fakeIssuer{token: "t"})
	r := newRegisterRouter(h)

	w := postRegister(r, `{"first_name":"A","last_name":"B","birth_date":"1990-03-21","birth_place":"X"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), ErrCodeRegisterFailed) {
		t.Fatalf("expected %q in body: %s", ErrCodeRegisterFailed, w.Body.String())
	}
}

func TestRegister_TokenIssueError(t *testing.T) {
	h := New(&fakeRegSvc{user: &domain.User{ID: "u"}}, &fakeWordsSvc{}, fakeIssuer{err: errors.New("boom")})
	r := newRegisterRouter(h)

	w := postRegister(r, `{"first_name":"A","last_name":"B","birth_date":"1990-03-21","birth_place":"X"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func Test_parseBirthDate_Layouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"1990-03-21", time.Date(1990, 3, 21, 0, 0, 0, 0, time.UTC)},
		{"1990-03-21T10:00", time.Date(1990, 3, 21, 10, 0, 0, 0, time.UTC)},
		{"1990-03-21T10:00:30", time.Date(1990, 3, 21, 10, 0, 30, 0, time.UTC)},
		{"1990-03-21T10:00:00Z", time.Date(1990, 3, 21, 10, 0, 0, 0, time.UTC)},
		{" 1990-03-21 ", time.Date(1990, 3, 21, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := parseBirthDate(tc.in)
		if err != nil {
			t.Fatalf("parseBirthDate(%q): %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("parseBirthDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := parseBirthDate("yesterday"); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}

func Test_userID_Sources(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// From context (set by auth middleware).
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("userID", "ctx-user")
	if got := userID(c); got != "ctx-user" {
		t.Fatalf("userID from context = %q", got)
	}

	// Header fallback.
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-User-ID", " hdr-user ")
	if got := userID(c); got != "hdr-user" {
		t.Fatalf("userID from header = %q", got)
	}

	// Nothing set.
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if got := userID(c); got != "" {
		t.Fatalf("userID empty case = %q", got)
	}
}
