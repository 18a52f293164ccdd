package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Limit(1, 2, time.Minute))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVisitorsCleanup(t *testing.T) {
	v := newVisitors(1, 1, time.Minute)
	now := time.Now()

	v.get("a", now.Add(-2*time.Minute))
	v.get("b", now)
	v.cleanup(now)

	assert.NotContains(t, v.items, "a")
	assert.Contains(t, v.items, "b")
}

func TestVisitorsSweepOnRequest(t *testing.T) {
	v := newVisitors(1, 1, time.Minute)
	start := time.Now()

	v.get("a", start)
	v.get("b", start.Add(30*time.Second))
	assert.Contains(t, v.items, "a")

	v.get("b", start.Add(2*time.Minute))
	assert.NotContains(t, v.items, "a")
	assert.Contains(t, v.items, "b")
}

func TestVisitorsZeroTTL(t *testing.T) {
	v := newVisitors(1, 1, 0)
	now := time.Now()

	v.get("a", now.Add(-time.Hour))
	v.get("b", now)
	v.cleanup(now)

	assert.Contains(t, v.items, "a")
	assert.Contains(t, v.items, "b")
}

func TestLimit_ZeroTTL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Limit(10, 10, 0))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
