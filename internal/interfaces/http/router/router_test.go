package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func TestRouter_Setup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	catalog := NewDomainGroup("catalog", "/catalog")
	catalog.GET("/products", okHandler)
	catalog.POST("/products", okHandler)

	carts := NewDomainGroup("carts", "/carts")
	carts.POST("", okHandler)
	carts.DELETE("/:id/items/:item_id", okHandler)

	r.Register(catalog).Register(carts)
	r.Setup()

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/v1/catalog/products", http.StatusOK},
		{http.MethodPost, "/api/v1/catalog/products", http.StatusOK},
		{http.MethodPost, "/api/v1/carts", http.StatusOK},
		{http.MethodDelete, "/api/v1/carts/abc/items/def", http.StatusOK},
		{http.MethodGet, "/api/v1/unregistered", http.StatusNotFound},
		{http.MethodGet, "/api/v2/catalog/products", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, tt.status, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestDomainGroup_Subgroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	catalog := NewDomainGroup("catalog", "/catalog")
	reviews := catalog.Group("reviews", "/products/:id/reviews")
	reviews.GET("", okHandler)

	r.Register(catalog)
	r.Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/p1/reviews", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDomainGroup_Middleware(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("orders", "/orders")
	group.Use(func(c *gin.Context) {
		c.Header("X-Scoped", "yes")
		c.Next()
	})
	group.GET("", okHandler)
	r.Register(group)
	r.Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, "yes", w.Header().Get("X-Scoped"))
}
