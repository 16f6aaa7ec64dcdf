package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dormidine/internal/core/model"
	"dormidine/internal/core/repository"
	"dormidine/internal/core/service"
)

type stubGateway struct {
	secret string
	err    error
}

func (g *stubGateway) CreateIntent(amount int64, currency string) (string, error) {
	return g.secret, g.err
}

func newPaymentHandler(t *testing.T, gateway *stubGateway) (*PaymentHandler, repository.UserRepository) {
	t.Helper()
	paymentRepo := repository.NewInMemoryPaymentRepository()
	userRepo := repository.NewInMemoryUserRepository()
	svc := service.NewSubscriptionService(paymentRepo, userRepo, gateway)
	return NewPaymentHandler(svc), userRepo
}

func TestCreateIntentEndpoint(t *testing.T) {
	h, _ := newPaymentHandler(t, &stubGateway{secret: "pi_secret_abc"})

	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(`{"packageName":"Gold"}`))
	rec := httptest.NewRecorder()
	h.CreateIntent(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["clientSecret"] != "pi_secret_abc" {
		t.Errorf("clientSecret = %q, want %q", resp["clientSecret"], "pi_secret_abc")
	}
}

func TestCreateIntentEndpointErrors(t *testing.T) {
	tests := []struct {
		name       string
		gateway    *stubGateway
		body       string
		wantStatus int
	}{
		{
			name:       "unknown package",
			gateway:    &stubGateway{},
			body:       `{"packageName":"diamond"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "gateway failure",
			gateway:    &stubGateway{err: errors.New("provider down")},
			body:       `{"packageName":"silver"}`,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newPaymentHandler(t, tt.gateway)
			req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.CreateIntent(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRecordAndAlreadyPaidEndpoints(t *testing.T) {
	h, userRepo := newPaymentHandler(t, &stubGateway{})
	if err := userRepo.Create(model.NewUser("a@x.com", "Aye")); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	alreadyPaid := func() bool {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/payments/already-paid?email=a@x.com&packageName=Gold", nil)
		rec := httptest.NewRecorder()
		h.AlreadyPaid(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("already-paid status = %d", rec.Code)
		}
		var resp map[string]bool
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return resp["alreadyPaid"]
	}

	if alreadyPaid() {
		t.Error("alreadyPaid = true before any payment")
	}

	body := `{"email":"a@x.com","amount":1999,"method":"card","status":"Success","transactionId":"tx1","packageName":"Gold"}`
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Record(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("record status = %d, body = %s", rec.Code, rec.Body.String())
	}

	if !alreadyPaid() {
		t.Error("alreadyPaid = false after Success payment")
	}

	// Recording alone must not have touched the tier.
	user, _ := userRepo.FindByEmail("a@x.com")
	if user.Package != model.PackageFree {
		t.Errorf("tier = %q after record, want %q", user.Package, model.PackageFree)
	}
}

func TestUpgradeEndpoint(t *testing.T) {
	h, userRepo := newPaymentHandler(t, &stubGateway{})
	if err := userRepo.Create(model.NewUser("a@x.com", "Aye")); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/users/upgrade", strings.NewReader(`{"email":"a@x.com","packageName":"Gold"}`))
	rec := httptest.NewRecorder()
	h.Upgrade(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	user, _ := userRepo.FindByEmail("a@x.com")
	if user.Package != model.PackageGold {
		t.Errorf("tier = %q, want %q", user.Package, model.PackageGold)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/users/upgrade", strings.NewReader(`{"email":"missing@x.com","packageName":"Gold"}`))
	rec = httptest.NewRecorder()
	h.Upgrade(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown user status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
