package proposal_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kgb-anri/internal/proposal"
	proposalerrors "kgb-anri/internal/proposal/errors"

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

type fakeProposalService struct {
	createFn    func(ctx context.Context, actorID string, req proposal.CreateProposalRequest) (proposal.ProposalResponse, error)
	getAllFn    func(ctx context.Context, filter proposal.ProposalFilterRequest) ([]proposal.ProposalResponse, error)
	getByIDFn   func(ctx context.Context, id string) (proposal.ProposalResponse, error)
	statsFn     func(ctx context.Context) (proposal.ProposalStatsResponse, error)
	approveFn   func(ctx context.Context, actorID, id, note string) (proposal.ProposalResponse, error)
	rejectFn    func(ctx context.Context, actorID, id, note string) (proposal.ProposalResponse, error)
	attachFn    func(ctx context.Context, id string, req proposal.AttachDecisionFileRequest) (proposal.ProposalResponse, error)
	getFileFn   func(ctx context.Context, id string) (string, []byte, error)
	issueFn     func(ctx context.Context, actorID, id string, req proposal.IssueDecisionLetterRequest) (proposal.DecisionLetterResponse, error)
	renderPDFFn func(ctx context.Context, id string) (string, []byte, error)
}

func (f *fakeProposalService) Create(ctx context.Context, actorID string, req proposal.CreateProposalRequest) (proposal.ProposalResponse, error) {
	return f.createFn(ctx, actorID, req)
}
func (f *fakeProposalService) GetAll(ctx context.Context, filter proposal.ProposalFilterRequest) ([]proposal.ProposalResponse, error) {
	return f.getAllFn(ctx, filter)
}
func (f *fakeProposalService) GetByID(ctx context.Context, id string) (proposal.ProposalResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeProposalService) Stats(ctx context.Context) (proposal.ProposalStatsResponse, error) {
	return f.statsFn(ctx)
}
func (f *fakeProposalService) Approve(ctx context.Context, actorID, id, note string) (proposal.ProposalResponse, error) {
	return f.approveFn(ctx, actorID, id, note)
}
func (f *fakeProposalService) Reject(ctx context.Context, actorID, id, note string) (proposal.ProposalResponse, error) {
	return f.rejectFn(ctx, actorID, id, note)
}
func (f *fakeProposalService) AttachDecisionFile(ctx context.Context, id string, req proposal.AttachDecisionFileRequest) (proposal.ProposalResponse, error) {
	return f.attachFn(ctx, id, req)
}
func (f *fakeProposalService) GetDecisionFile(ctx context.Context, id string) (string, []byte, error) {
	return f.getFileFn(ctx, id)
}
func (f *fakeProposalService) IssueDecisionLetter(ctx context.Context, actorID, id string, req proposal.IssueDecisionLetterRequest) (proposal.DecisionLetterResponse, error) {
	return f.issueFn(ctx, actorID, id, req)
}
func (f *fakeProposalService) RenderDecisionLetterPDF(ctx context.Context, id string) (string, []byte, error) {
	return f.renderPDFFn(ctx, id)
}

func TestProposalHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		actorID := uuid.New().String()

		svc := &fakeProposalService{
			createFn: func(ctx context.Context, aid string, req proposal.CreateProposalRequest) (proposal.ProposalResponse, error) {
				assert.Equal(t, actorID, aid)
				assert.Equal(t, "198503152010121001", req.EmployeeNIP)
				return proposal.ProposalResponse{
					ID:            uuid.New().String(),
					EmployeeNIP:   req.EmployeeNIP,
					EmployeeName:  req.EmployeeName,
					Golongan:      req.Golongan,
					NewBaseSalary: req.NewBaseSalary,
					Status:        proposal.StatusPending,
					CreatedBy:     aid,
				}, nil
			},
		}

		h := proposal.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_nip":"198503152010121001","employee_name":"Budi Santoso","golongan":"III/b","new_base_salary":4500000}`
		c.Request = httptest.NewRequest(http.MethodPost, "/proposals", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", actorID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got proposal.ProposalResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, proposal.StatusPending, got.Status)
	})

	t.Run("validation error missing fields", func(t *testing.T) {
		svc := &fakeProposalService{
			createFn: func(ctx context.Context, aid string, req proposal.CreateProposalRequest) (proposal.ProposalResponse, error) {
				t.Fatal("service must not be called on invalid payload")
				return proposal.ProposalResponse{}, nil
			},
		}

		h := proposal.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/proposals", strings.NewReader(`{"employee_nip":""}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}

func TestProposalHandler_Reject(t *testing.T) {
	t.Run("missing note maps to invalid input", func(t *testing.T) {
		svc := &fakeProposalService{
			rejectFn: func(ctx context.Context, actorID, id, note string) (proposal.ProposalResponse, error) {
				return proposal.ProposalResponse{}, proposalerrors.ErrReviewNoteRequired
			},
		}

		h := proposal.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/proposals/x/reject", strings.NewReader(`{"note":""}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		h.Reject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestProposalHandler_Approve(t *testing.T) {
	t.Run("empty body is allowed", func(t *testing.T) {
		id := uuid.New().String()
		actorID := uuid.New().String()

		svc := &fakeProposalService{
			approveFn: func(ctx context.Context, aid, gotID, note string) (proposal.ProposalResponse, error) {
				assert.Equal(t, actorID, aid)
				assert.Equal(t, id, gotID)
				assert.Empty(t, note)
				return proposal.ProposalResponse{ID: gotID, Status: proposal.StatusApproved}, nil
			},
		}

		h := proposal.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/proposals/x/approve", nil)
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set("user_id", actorID)

		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &fakeProposalService{
			approveFn: func(ctx context.Context, aid, id, note string) (proposal.ProposalResponse, error) {
				return proposal.ProposalResponse{}, proposalerrors.ErrProposalNotFound
			},
		}

		h := proposal.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/proposals/x/approve", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		h.Approve(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestProposalHandler_GetAll(t *testing.T) {
	t.Run("paginates full result", func(t *testing.T) {
		var all []proposal.ProposalResponse
		for i := 0; i < 15; i++ {
			all = append(all, proposal.ProposalResponse{ID: uuid.New().String(), Status: proposal.StatusPending})
		}

		svc := &fakeProposalService{
			getAllFn: func(ctx context.Context, filter proposal.ProposalFilterRequest) ([]proposal.ProposalResponse, error) {
				assert.Equal(t, "budi", filter.Search)
				return all, nil
			},
		}

		h := proposal.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/proposals?search=budi&page=2&page_size=10", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got []proposal.ProposalResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 5)
	})
}

func TestProposalHandler_GetStats(t *testing.T) {
	svc := &fakeProposalService{
		statsFn: func(ctx context.Context) (proposal.ProposalStatsResponse, error) {
			return proposal.ProposalStatsResponse{Total: 6, Pending: 3, Approved: 2, Rejected: 1}, nil
		},
	}

	h := proposal.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/proposals/stats", nil)

	h.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	var got proposal.ProposalStatsResponse
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(6), got.Total)
}

func TestProposalHandler_DownloadDecisionLetter(t *testing.T) {
	svc := &fakeProposalService{
		renderPDFFn: func(ctx context.Context, id string) (string, []byte, error) {
			return "SK_KGB_198503152010121001.pdf", []byte("%PDF-1.4 dummy"), nil
		},
	}

	h := proposal.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/proposals/x/decision-letter/download", nil)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

	h.DownloadDecisionLetter(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "SK_KGB_198503152010121001.pdf")
	assert.Equal(t, "%PDF-1.4 dummy", w.Body.String())
}
