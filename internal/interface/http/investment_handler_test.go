package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limitedhq/limited-api/internal/application"
	"github.com/limitedhq/limited-api/internal/domain/entity"
)

type stubInvestmentService struct {
	createFn func(ctx context.Context, userID, fundID string, amount int64) (*entity.Investment, error)
	listFn   func(ctx context.Context, userID string) ([]entity.InvestmentWithFund, error)
}

func (s *stubInvestmentService) Create(ctx context.Context, userID, fundID string, amount int64) (*entity.Investment, error) {
	return s.createFn(ctx, userID, fundID, amount)
}

func (s *stubInvestmentService) ListForUser(ctx context.Context, userID string) ([]entity.InvestmentWithFund, error) {
	return s.listFn(ctx, userID)
}

func newInvestmentRouter(svc InvestmentService, u *entity.User) *gin.Engine {
	r := gin.New()
	h := NewInvestmentHandler(svc, testLogger())
	r.POST("/investments", asUser(u), h.Create)
	r.GET("/investments", asUser(u), h.List)
	return r
}

func TestInvestmentHandlerCreate(t *testing.T) {
	lp := &entity.User{ID: "u1", UserType: entity.UserTypeLimitedPartner}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/investments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("records the caller's investment", func(t *testing.T) {
		svc := &stubInvestmentService{
			createFn: func(_ context.Context, userID, fundID string, amount int64) (*entity.Investment, error) {
				assert.Equal(t, "u1", userID)
				assert.Equal(t, "f1", fundID)
				assert.Equal(t, int64(150000), amount)
				return &entity.Investment{ID: "i1", UserID: userID, FundID: fundID, Amount: amount, Status: "Pending"}, nil
			},
		}
		w := post(newInvestmentRouter(svc, lp), `{"fund_id":"f1","amount":150000}`)

		require.Equal(t, http.StatusOK, w.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "i1", got["id"])
		assert.Equal(t, "Pending", got["status"])
	})

	t.Run("amount below the fund minimum", func(t *testing.T) {
		svc := &stubInvestmentService{
			createFn: func(context.Context, string, string, int64) (*entity.Investment, error) {
				return nil, &application.MinimumInvestmentError{Minimum: 150000}
			},
		}
		w := post(newInvestmentRouter(svc, lp), `{"fund_id":"f1","amount":500}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "minimum investment for this fund is $150000", got["detail"])
	})

	t.Run("unknown fund", func(t *testing.T) {
		svc := &stubInvestmentService{
			createFn: func(context.Context, string, string, int64) (*entity.Investment, error) {
				return nil, application.ErrFundNotFound
			},
		}
		w := post(newInvestmentRouter(svc, lp), `{"fund_id":"missing","amount":150000}`)

		require.Equal(t, http.StatusNotFound, w.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "fund not found", got["detail"])
	})

	t.Run("non-positive amount is rejected before the service", func(t *testing.T) {
		svc := &stubInvestmentService{
			createFn: func(context.Context, string, string, int64) (*entity.Investment, error) {
				t.Fatal("service should not be called")
				return nil, nil
			},
		}
		w := post(newInvestmentRouter(svc, lp), `{"fund_id":"f1","amount":0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestInvestmentHandlerList(t *testing.T) {
	lp := &entity.User{ID: "u1", UserType: entity.UserTypeLimitedPartner}
	svc := &stubInvestmentService{
		listFn: func(_ context.Context, userID string) ([]entity.InvestmentWithFund, error) {
			assert.Equal(t, "u1", userID)
			return []entity.InvestmentWithFund{
				{
					Investment: entity.Investment{ID: "i1", UserID: "u1", FundID: "f1", Amount: 150000, Status: "Pending"},
					FundName:   "137 Ventures Fund V",
					FundSymbol: "137",
					Carry:      "20%",
				},
			}, nil
		},
	}
	r := newInvestmentRouter(svc, lp)

	req := httptest.NewRequest(http.MethodGet, "/investments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "i1", got[0]["id"])
	assert.Equal(t, "137 Ventures Fund V", got[0]["fund_name"])
	assert.Equal(t, "137", got[0]["fund_symbol"])
}
