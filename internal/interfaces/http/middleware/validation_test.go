package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupValidatorRUTTag(t *testing.T) {
	SetupValidator()
	gin.SetMode(gin.TestMode)

	type payload struct {
		RUT string `json:"rut" binding:"omitempty,rut"`
	}

	engine := gin.New()
	engine.POST("/clientes", func(c *gin.Context) {
		var req payload
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusOK)
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		return w
	}

	t.Run("accepts valid RUT with dots", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, post(`{"rut":"12.345.678-5"}`).Code)
	})

	t.Run("accepts valid RUT with K check digit", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, post(`{"rut":"20347878-K"}`).Code)
	})

	t.Run("accepts empty RUT", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, post(`{"rut":""}`).Code)
	})

	t.Run("rejects wrong check digit", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, post(`{"rut":"12345678-9"}`).Code)
	})
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(BodyLimit(16))
	engine.POST("/subir", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allows small body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/subir", strings.NewReader("pequeno"))
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/subir", strings.NewReader(strings.Repeat("x", 64)))
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
