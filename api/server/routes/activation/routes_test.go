package activation

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	cmd "github.com/overcast302/activationd/internal/commands/activation"
)

const testArtifact = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>ActivationRecord</key>
	<string>patched</string>
</dict>
</plist>
`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	root := t.TempDir()
	dir := filepath.Join(root, "iPad2,1", "13G37")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, cmd.ArtifactName), []byte(testArtifact), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "README"), []byte("asset tree"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := gin.New()
	AddRoutes(&r.RouterGroup, root)
	return r
}

func doPayload(r *gin.Engine, method, userAgent string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/payload", nil)
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPayloadDelivery(t *testing.T) {
	r := newTestRouter(t)

	w := doPayload(r, http.MethodGet, "InternetSettings/1.0 model/iPad2,1 build/13G37 Darwin/15.6.0")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	headers := map[string]string{
		"Content-Type":        "application/xml",
		"Content-Disposition": `attachment; filename="patched.plist"`,
		"Content-Length":      strconv.Itoa(len(testArtifact)),
		"Cache-Control":       "must-revalidate",
		"Pragma":              "public",
	}
	for k, want := range headers {
		if got := w.Header().Get(k); got != want {
			t.Errorf("%s = %q, want %q", k, got, want)
		}
	}
	if w.Body.String() != testArtifact {
		t.Errorf("body does not match artifact bytes (%d vs %d bytes)", w.Body.Len(), len(testArtifact))
	}
}

func TestPayloadMethodAgnostic(t *testing.T) {
	r := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut} {
		w := doPayload(r, method, "model/iPad2,1 build/13G37")
		if w.Code != http.StatusOK {
			t.Errorf("%s status = %d, want %d", method, w.Code, http.StatusOK)
		}
	}
}

func TestPayloadIdempotent(t *testing.T) {
	r := newTestRouter(t)

	ua := "model/iPad2,1 build/13G37"
	first := doPayload(r, http.MethodGet, ua)
	second := doPayload(r, http.MethodGet, ua)

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("statuses = %d, %d, want both %d", first.Code, second.Code, http.StatusOK)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("repeated requests returned different bodies")
	}
}

func TestPayloadDenied(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name      string
		userAgent string
	}{
		{"no identification markers", "Mozilla/5.0 (iPad; CPU OS 9_3_5)"},
		{"empty user agent", ""},
		{"missing build", "model/iPad2,1"},
		{"missing model", "build/13G37"},
		{"traversal attempt", "model/../etc build/13G37"},
		{"valid tokens without artifact", "model/iPhone4,1 build/13G36"},
		{"model names a stray file at the root", "model/README build/13G37"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doPayload(r, http.MethodGet, tt.userAgent)
			if w.Code != http.StatusForbidden {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
			}
			if w.Body.String() != "Forbidden" {
				t.Errorf("body = %q, want %q", w.Body.String(), "Forbidden")
			}
		})
	}
}
