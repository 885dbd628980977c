// User HTTP handlers.
//
// This file exposes the registration endpoint:
//   - POST /register (create profile, freeze pool, issue token)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skullmod/go-daily-words/internal/domain"
	"github.com/skullmod/go-daily-words/internal/services"
)

//
// Service contracts (context-aware)
//

// RegistrationService defines the registration operation consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type RegistrationService interface {
	// Register validates the profile, builds the cornerstone pool once, and
	// persists the new user.
	Register(ctx context.Context, firstName, lastName string, birthDate time.Time, birthPlace string) (*domain.User, error)
}

// DailyWordService defines the daily word operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type DailyWordService interface {
	// Today returns (composing and caching if needed) the row for the
	// current UTC date.
	Today(ctx context.Context, userID string) (*domain.DailyWord, error)
	// History returns a page of previously served rows and the total count.
	History(ctx context.Context, userID string, page, pageSize int) ([]domain.DailyWord, int64, error)
}

// TokenIssuer mints the bearer token returned at registration.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for registration and daily words.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	regSvc   RegistrationService
	wordsSvc DailyWordService
	tokens   TokenIssuer
}

// New constructs and returns a Handlers instance bound to the given services.
func New(regSvc RegistrationService, wordsSvc DailyWordService, tokens TokenIssuer) *Handlers {
	return &Handlers{regSvc: regSvc, wordsSvc: wordsSvc, tokens: tokens}
}

// userID extracts the authenticated user id from Gin context (set by the
// bearer auth middleware). If absent, it falls back to "X-User-ID" header
// (tests use it). It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return ""
}

//
// DTOs
//

// RegisterRequest is the JSON payload for creating a profile.
type RegisterRequest struct {
	// FirstName is the given name (used by numerology and the pool).
	FirstName string `json:"first_name" binding:"required" example:"Ayşe"`
	// LastName is the family name.
	LastName string `json:"last_name" binding:"required" example:"Yılmaz"`
	// BirthDate accepts "2006-01-02", with optional time of day, or RFC3339.
	BirthDate string `json:"birth_date" binding:"required" example:"1990-03-21T10:00"`
	// BirthPlace is a free-form place string, e.g. "Niğde, Türkiye".
	BirthPlace string `json:"birth_place" binding:"required" example:"Niğde, Türkiye"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Success bool   `json:"success" example:"true"`
	Token   string `json:"token"`
	UserID  string `json:"user_id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// birthDateLayouts are tried in order when parsing RegisterRequest.BirthDate.
var birthDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseBirthDate parses s against the accepted layouts; times without an
// explicit zone are taken as UTC.
func parseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range birthDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

//
// Handlers
//

// Register godoc
// @ID          register
// @Summary     Register a profile
// @Description Creates a user profile, computes the cornerstone pool once, and returns a bearer token.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     201  {object}  handlers.RegisterResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	birth, err := parseBirthDate(req.BirthDate)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "birth_date must be an ISO date or datetime")
		return
	}

	u, err := h.regSvc.Register(c.Request.Context(), req.FirstName, req.LastName, birth, req.BirthPlace)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyName),
			errors.Is(err, services.ErrEmptyBirthPlace),
			errors.Is(err, services.ErrInvalidBirthDate):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeRegisterFailed, err.Error())
		}
		return
	}

	token, err := h.tokens.Issue(u.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeRegisterFailed, "token issue failed")
		return
	}

	ok(c, http.StatusCreated, RegisterResponse{Success: true, Token: token, UserID: u.ID})
}
