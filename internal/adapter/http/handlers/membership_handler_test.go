package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ngo_portal/internal/adapter/http/handlers/mocks"
	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPlanHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/membership/plans", h.ListPlans)

		uc.EXPECT().ListPlans(gomock.Any()).Return([]entities.MembershipPlan{
			{ID: "monthly", Name: "Monthly", Type: entities.PlanTypeMonthly, Price: 50000, Currency: "INR", Active: true},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/membership/plans", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["price_display"] != "500.00" || body[0]["recurring"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/membership/plans/:id", h.GetPlan)

		uc.EXPECT().GetPlan(gomock.Any(), "gold").Return(entities.MembershipPlan{}, usecase.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/membership/plans/gold", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("upsert defaults to active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.PUT("/v1/admin/plans/:id", h.UpsertPlan)

		uc.EXPECT().UpsertPlan(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, p entities.MembershipPlan) (entities.MembershipPlan, error) {
				if p.ID != "lifetime" || !p.Active || p.Type != entities.PlanTypeLifetime {
					t.Fatalf("unexpected plan: %+v", p)
				}
				return p, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/plans/lifetime", bytes.NewBufferString(`{"name":"Lifetime","type":"lifetime","price":1000000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("upsert invalid plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.PUT("/v1/admin/plans/:id", h.UpsertPlan)

		uc.EXPECT().UpsertPlan(gomock.Any(), gomock.Any()).Return(entities.MembershipPlan{}, usecase.ErrInvalidPlan)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/plans/monthly", bytes.NewBufferString(`{"name":"Monthly","type":"monthly","price":50000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSubscriptionHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := gin.New()
		r.POST("/v1/subscriptions/:id/cancel", h.CancelSubscription)

		now := time.Now().UTC()
		uc.EXPECT().Cancel(gomock.Any(), "sub-1").Return(entities.Subscription{
			ID:          "sub-1",
			Status:      entities.SubscriptionStatusCancelled,
			CancelledAt: &now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/sub-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "cancelled" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("cancel not active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := gin.New()
		r.POST("/v1/subscriptions/:id/cancel", h.CancelSubscription)

		uc.EXPECT().Cancel(gomock.Any(), "sub-1").Return(entities.Subscription{}, usecase.ErrSubscriptionNotActive)

		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions/sub-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := gin.New()
		r.GET("/v1/subscriptions/:id", h.GetSubscription)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Subscription{}, usecase.ErrSubscriptionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/subscriptions/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list by member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := gin.New()
		r.GET("/v1/members/:member_id/subscriptions", h.ListMemberSubscriptions)

		uc.EXPECT().ListByMember(gomock.Any(), "mem-1").Return([]entities.Subscription{{ID: "sub-1", MemberID: "mem-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/members/mem-1/subscriptions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapSubscriptionError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidSubscriptionID, http.StatusBadRequest},
		{usecase.ErrInvalidMemberID, http.StatusBadRequest},
		{usecase.ErrSubscriptionNotFound, http.StatusNotFound},
		{usecase.ErrSubscriptionNotActive, http.StatusConflict},
		{usecase.ErrSubscriptionWithoutLink, http.StatusConflict},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapSubscriptionError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
