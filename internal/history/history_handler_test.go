package history_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"kgb-anri/internal/history"
	historyerrors "kgb-anri/internal/history/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeHistoryService struct {
	createFn   func(ctx context.Context, req history.CreateKGBRecordRequest) (history.KGBRecordResponse, error)
	getAllFn   func(ctx context.Context, filter history.KGBRecordFilterRequest) ([]history.KGBRecordResponse, error)
	getByNIPFn func(ctx context.Context, nip string) ([]history.KGBRecordResponse, error)
}

func (f *fakeHistoryService) Create(ctx context.Context, req history.CreateKGBRecordRequest) (history.KGBRecordResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeHistoryService) GetAll(ctx context.Context, filter history.KGBRecordFilterRequest) ([]history.KGBRecordResponse, error) {
	return f.getAllFn(ctx, filter)
}
func (f *fakeHistoryService) GetByNIP(ctx context.Context, nip string) ([]history.KGBRecordResponse, error) {
	return f.getByNIPFn(ctx, nip)
}

func TestHistoryHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("paginates full result", func(t *testing.T) {
		records := make([]history.KGBRecordResponse, 0, 12)
		for i := 0; i < 12; i++ {
			records = append(records, history.KGBRecordResponse{
				ID:           uuid.New().String(),
				EmployeeNIP:  fmt.Sprintf("19850315201012%04d", i),
				LetterNumber: fmt.Sprintf("B/KGB/%04d/ANRI/2026", i+1),
			})
		}

		svc := &fakeHistoryService{
			getAllFn: func(ctx context.Context, filter history.KGBRecordFilterRequest) ([]history.KGBRecordResponse, error) {
				return records, nil
			},
		}

		h := history.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/history?page=2&page_size=10", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var got []history.KGBRecordResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 2)
		assert.Equal(t, records[10].ID, got[0].ID)
	})

	t.Run("passes search filter to service", func(t *testing.T) {
		var gotFilter history.KGBRecordFilterRequest
		svc := &fakeHistoryService{
			getAllFn: func(ctx context.Context, filter history.KGBRecordFilterRequest) ([]history.KGBRecordResponse, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		h := history.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/history?search=Budi", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Budi", gotFilter.Search)
	})
}

func TestHistoryHandler_GetMine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("uses nip from token", func(t *testing.T) {
		svc := &fakeHistoryService{
			getByNIPFn: func(ctx context.Context, nip string) ([]history.KGBRecordResponse, error) {
				assert.Equal(t, "198503152010121001", nip)
				return []history.KGBRecordResponse{
					{ID: uuid.New().String(), EmployeeNIP: nip},
				}, nil
			},
		}

		h := history.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/history/me", nil)
		c.Set("nip", "198503152010121001")

		h.GetMine(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("rejects token without nip", func(t *testing.T) {
		svc := &fakeHistoryService{
			getByNIPFn: func(ctx context.Context, nip string) ([]history.KGBRecordResponse, error) {
				t.Fatal("service must not be called without nip claim")
				return nil, nil
			},
		}

		h := history.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/history/me", nil)

		h.GetMine(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})
}

func TestHistoryHandler_GetByNIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("maps service error", func(t *testing.T) {
		svc := &fakeHistoryService{
			getByNIPFn: func(ctx context.Context, nip string) ([]history.KGBRecordResponse, error) {
				return nil, historyerrors.ErrRecordNotFound
			},
		}

		h := history.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/history/employee/197001011990031001", nil)
		c.Params = gin.Params{{Key: "nip", Value: "197001011990031001"}}

		h.GetByNIP(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}
