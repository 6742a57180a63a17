package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestScopeChain(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		url    string
		header string
		want   string
		found  bool
	}{
		{name: "tenant query wins", url: "/?tenant=acme&tenant_code=beta", header: "gamma", want: "acme", found: true},
		{name: "tenant_code query", url: "/?tenant_code=beta", header: "gamma", want: "beta", found: true},
		{name: "header fallback", url: "/", header: "gamma", want: "gamma", found: true},
		{name: "blank values skipped", url: "/?tenant=%20%20", header: " gamma ", want: "gamma", found: true},
		{name: "nothing", url: "/", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.header != "" {
				c.Request.Header.Set(TenantHeader, tt.header)
			}
			got, ok := defaultScope.TenantCode(c)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
