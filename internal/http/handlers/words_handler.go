// Daily word HTTP handlers.
//
// This file exposes the authenticated daily word endpoints:
//   - GET /daily-words          (today's pair and motto, cached per day)
//   - GET /daily-words/history  (served history, paginated, ETag support)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skullmod/go-daily-words/internal/domain"
	"github.com/skullmod/go-daily-words/internal/repo"
	"github.com/skullmod/go-daily-words/internal/services"
	"github.com/skullmod/go-daily-words/internal/utils"
)

// msgNoPool is shown when a profile has no cornerstone pool to draw from.
const msgNoPool = "Kullanıcının köşe taşı havuzu bulunamadı. Lütfen profilinizi kontrol edin."

//
// DTOs
//

// DailyWordsPayload is the served triple for one date.
type DailyWordsPayload struct {
	Word1 string `json:"word1" example:"Cesaret"`
	Word2 string `json:"word2" example:"Akış"`
	Motto string `json:"motto"`
	Date  string `json:"date" example:"2025-06-01"`
}

// DailyWordsResponse wraps the daily payload in the success envelope.
type DailyWordsResponse struct {
	Success bool               `json:"success"`
	Data    *DailyWordsPayload `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// HistoryResponse wraps a page of served rows and pagination information.
type HistoryResponse struct {
	Success    bool               `json:"success"`
	Items      []domain.DailyWord `json:"items"`
	Pagination Pagination         `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

//
// Handlers
//

// DailyWords godoc
// @ID          dailyWords
// @Summary     Get today's word pair and motto
// @Description Returns (and caches) the deterministic daily pair for the authenticated user. The first request of a day computes it; later requests serve the stored row.
// @Tags        DailyWords
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.DailyWordsResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /daily-words [get]
func (h *Handlers) DailyWords(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	row, err := h.wordsSvc.Today(c.Request.Context(), uid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		case errors.Is(err, services.ErrNoPool):
			// Soft failure: the profile exists but has nothing to draw from.
			ok(c, http.StatusOK, DailyWordsResponse{Success: false, Error: msgNoPool})
		default:
			fail(c, http.StatusInternalServerError, ErrCodeWordsFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, DailyWordsResponse{
		Success: true,
		Data: &DailyWordsPayload{
			Word1: row.Word1,
			Word2: row.Word2,
			Motto: row.Motto,
			Date:  row.Date,
		},
	})
}

// History godoc
// @ID          dailyWordsHistory
// @Summary     List served daily words (paginated)
// @Description Returns a page of the user's served history, most recent date first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        DailyWords
// @Produce     json
// @Security    BearerAuth
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.HistoryResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "User not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /daily-words/history [get]
func (h *Handlers) History(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort). Cached rows are append-only, so count
	// plus latest insert time fully identifies the result set.
	var db *gorm.DB
	if svc, ok := h.wordsSvc.(*services.DailyWordService); ok {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.DailyWordsStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"daily:%s:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	// Fetch page.
	items, total, err := h.wordsSvc.History(ctx, uid, page, pageSize)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	resp := HistoryResponse{
		Success: true,
		Items:   items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	}
	ok(c, http.StatusOK, resp)
}
