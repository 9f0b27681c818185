package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/deniz/uniscope/internal/app/models/dto"
	"github.com/deniz/uniscope/internal/middleware"
	"github.com/deniz/uniscope/internal/pkg/apperrors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestHandleAPIErrorMapsSentinels(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{
			name:       "invalid input",
			err:        apperrors.NewInvalidInputError("minRank must not exceed maxRank"),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "validation failed sentinel",
			err:        apperrors.ErrValidationFailed,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "university not found",
			err:        apperrors.ErrUniversityNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeResourceNotFound,
		},
		{
			name:       "duplicate university",
			err:        apperrors.ErrUniversityAlreadyExists,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeResourceAlreadyExists,
		},
		{
			name:       "unknown error",
			err:        os.ErrDeadlineExceeded,
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternalServer,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			middleware.HandleAPIError(ctx, tc.err)

			rq.Equal(tc.wantStatus, recorder.Code)

			var resp dto.ErrorResponse
			rq.NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
			rq.False(resp.Success)
			rq.NotNil(resp.Error)
			rq.Equal(tc.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorKeepsCustomMessage(t *testing.T) {
	rq := require.New(t)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("university with ID 42 not found"))

	rq.Equal(http.StatusNotFound, recorder.Code)

	var resp dto.ErrorResponse
	rq.NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	rq.Equal("university with ID 42 not found", resp.Error.Message)
}

type weightPayload struct {
	Name   string `json:"name" binding:"required"`
	Weight int    `json:"weight" binding:"omitempty,min=1,max=5"`
}

func newValidationRouter() *gin.Engine {
	router := gin.New()
	router.POST("/weights", middleware.ValidateRequest(weightPayload{}), func(c *gin.Context) {
		body, ok := c.Get(middleware.ValidatedBodyKey)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing validated body"})
			return
		}
		payload := body.(*weightPayload)
		c.JSON(http.StatusOK, gin.H{"name": payload.Name})
	})
	return router
}

func TestValidateRequestAcceptsValidBody(t *testing.T) {
	rq := require.New(t)
	router := newValidationRouter()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/weights", bytes.NewBufferString(`{"name":"academic","weight":3}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	rq.Equal(http.StatusOK, recorder.Code)
	rq.Contains(recorder.Body.String(), "academic")
}

func TestValidateRequestRejectsMalformedJSON(t *testing.T) {
	rq := require.New(t)
	router := newValidationRouter()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/weights", bytes.NewBufferString(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	rq.Equal(http.StatusBadRequest, recorder.Code)

	var resp dto.ErrorResponse
	rq.NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	rq.Equal(dto.ErrorCodeValidationFailed, resp.Error.Code)
}

func TestValidateRequestRejectsMissingRequiredField(t *testing.T) {
	rq := require.New(t)
	router := newValidationRouter()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/weights", bytes.NewBufferString(`{"weight":2}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)

	rq.Equal(http.StatusBadRequest, recorder.Code)
}

func TestRequestIDMintsWhenMissing(t *testing.T) {
	rq := require.New(t)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(recorder, req)

	headerID := recorder.Header().Get(middleware.RequestIDHeader)
	rq.NotEmpty(headerID)
	_, err := uuid.Parse(headerID)
	rq.NoError(err)
	rq.Equal(headerID, recorder.Body.String())
}

func TestRequestIDKeepsUpstreamValue(t *testing.T) {
	rq := require.New(t)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "upstream-id-123")
	router.ServeHTTP(recorder, req)

	rq.Equal("upstream-id-123", recorder.Header().Get(middleware.RequestIDHeader))
}

func TestMetricsAndLoggerPassThrough(t *testing.T) {
	rq := require.New(t)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Metrics())
	router.GET("/api/v1/universities/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/universities/7", nil)
	router.ServeHTTP(recorder, req)

	rq.Equal(http.StatusOK, recorder.Code)
	rq.Contains(recorder.Body.String(), "7")
}
