package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveWithTraceID runs a request carrying incoming (if set) through
// withTraceID and logs one line from the request-scoped logger.
func serveWithTraceID(h *Handler, incoming string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name         string
		incoming     string
		wantIncoming bool
	}{
		{name: "incoming trace id is reused", incoming: "my-custom-trace-id", wantIncoming: true},
		{name: "incoming uuid is reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantIncoming: true},
		{name: "missing trace id is generated"},
		{name: "oversized trace id is replaced", incoming: strings.Repeat("a", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.NewLoggerTo(&buf, "test")}

			rr := serveWithTraceID(h, tt.incoming)

			assert.Equal(t, http.StatusTeapot, rr.Code)

			traceID := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, traceID)
			if tt.wantIncoming {
				assert.Equal(t, tt.incoming, traceID)
			} else {
				id, err := uuid.Parse(traceID)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), id.Version())
			}

			assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
		})
	}
}

func TestWithTraceID_ConcurrentRequestsGetUniqueIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	const n = 50
	ids := make([]string, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = serveWithTraceID(h, "").Header().Get(traceIDHeader)
		}()
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	originalCtx := req.Context()

	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
}
