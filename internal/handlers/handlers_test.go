package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"modelboard_backend/internal/handlers"
	"modelboard_backend/internal/middleware"
	"modelboard_backend/internal/validator"
)

// newTestRouter builds a gin engine with the production middleware chain
// minus logging, so handler tests exercise the same CORS/405 behavior the
// server has.
func newTestRouter(register func(api *gin.RouterGroup, base *handlers.BaseHandler)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware())
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(middleware.MethodNotAllowedHandler())

	base := handlers.NewBaseHandler(validator.New())
	api := engine.Group("/api/v1")
	register(api, base)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func doRaw(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body %q: %v", recorder.Body.String(), err)
	}
	return body
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }
