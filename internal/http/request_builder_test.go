package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/food-details-service/internal/domain/dto"
	"github.com/guttosm/food-details-service/internal/gateway"
	"github.com/guttosm/food-details-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/test", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	middleware.RequestID()(c)
	return c, w
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFoodID int64
		wantErr    bool
	}{
		{name: "valid request", body: `{"food_id": 5}`, wantFoodID: 5},
		{name: "invalid json", body: `{"food_id": five}`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
		{name: "fails binding rules", body: `{"food_id": 0}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, tt.body)

			req, err := BuildRequestAndValidate[dto.OpenScreenRequest](c)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFoodID, req.FoodID)
		})
	}
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name       string
		send       func(*ResponseBuilder)
		wantStatus int
	}{
		{name: "ok", send: func(b *ResponseBuilder) { b.SuccessOK(gin.H{"a": 1}) }, wantStatus: http.StatusOK},
		{name: "created", send: func(b *ResponseBuilder) { b.SuccessCreated(gin.H{"a": 1}) }, wantStatus: http.StatusCreated},
		{name: "custom status", send: func(b *ResponseBuilder) { b.Success(http.StatusNotFound, gin.H{"a": 1}) }, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, "")

			tt.send(NewResponseBuilder(c))

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp dto.SuccessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.RequestID)
			assert.NotZero(t, resp.Timestamp)
			assert.Equal(t, map[string]interface{}{"a": float64(1)}, resp.Data)
		})
	}
}

func TestResponseBuilder_NoContent(t *testing.T) {
	c, w := newTestContext(http.MethodDelete, "")

	NewResponseBuilder(c).NoContent()
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestResponseBuilder_Error(t *testing.T) {
	c, w := newTestContext(http.MethodPost, "")
	c.Request.Header.Set("Accept-Language", "en")
	cause := errors.New("boom")

	NewResponseBuilder(c).Error(http.StatusConflict, "error.screen_not_ready", cause)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	assert.Equal(t, cause, c.Errors.Last().Err)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeConflict, resp.Error)
	assert.Equal(t, "The food has not been loaded yet", resp.Message)
	assert.NotEmpty(t, resp.RequestID)
}

func TestResponseBuilder_Fail(t *testing.T) {
	c, w := newTestContext(http.MethodPost, "")

	NewResponseBuilder(c).Fail(&gateway.Error{Op: gateway.OpCreateOrder, Kind: gateway.KindServer, StatusCode: 500})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeBadGateway, resp.Error)
	assert.Equal(t, "O servidor respondeu com um erro", resp.Message)
}
