package service

import (
	"errors"
	"fmt"
	"testing"

	"dormidine/internal/core/model"
	"dormidine/internal/core/repository"
)

type fakeGateway struct {
	lastAmount int64
	err        error
}

func (g *fakeGateway) CreateIntent(amount int64, currency string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.lastAmount = amount
	return fmt.Sprintf("pi_secret_%d", amount), nil
}

func newSubscriptionFixture(t *testing.T, gateway *fakeGateway) (SubscriptionService, repository.UserRepository) {
	t.Helper()
	paymentRepo := repository.NewInMemoryPaymentRepository()
	userRepo := repository.NewInMemoryUserRepository()
	return NewSubscriptionService(paymentRepo, userRepo, gateway), userRepo
}

func TestQuotePackage(t *testing.T) {
	svc, _ := newSubscriptionFixture(t, &fakeGateway{})

	tests := []struct {
		name        string
		packageName string
		want        int64
		wantErr     error
	}{
		{name: "silver", packageName: "silver", want: 999},
		{name: "gold mixed case", packageName: "Gold", want: 1999},
		{name: "platinum upper case", packageName: "PLATINUM", want: 2999},
		{name: "unknown package", packageName: "diamond", wantErr: ErrInvalidInput},
		{name: "free is not purchasable", packageName: "free", wantErr: ErrInvalidInput},
		{name: "empty", packageName: "", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.QuotePackage(tt.packageName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("QuotePackage(%q): %v", tt.packageName, err)
			}
			if got != tt.want {
				t.Errorf("QuotePackage(%q) = %d, want %d", tt.packageName, got, tt.want)
			}
		})
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	gateway := &fakeGateway{}
	svc, _ := newSubscriptionFixture(t, gateway)

	secret, err := svc.CreatePaymentIntent("Gold")
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if secret == "" {
		t.Error("client secret is empty")
	}
	if gateway.lastAmount != 1999 {
		t.Errorf("gateway amount = %d, want 1999", gateway.lastAmount)
	}

	if _, err := svc.CreatePaymentIntent("diamond"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown package error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestCreatePaymentIntentGatewayFailure(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("provider down")}
	svc, _ := newSubscriptionFixture(t, gateway)

	if _, err := svc.CreatePaymentIntent("silver"); !errors.Is(err, ErrGateway) {
		t.Errorf("error = %v, want %v", err, ErrGateway)
	}
}

func TestHasPaidForLifecycle(t *testing.T) {
	svc, _ := newSubscriptionFixture(t, &fakeGateway{})

	paid, err := svc.HasPaidFor("a@x.com", "gold")
	if err != nil {
		t.Fatalf("paid check: %v", err)
	}
	if paid {
		t.Error("paid before any payment recorded")
	}

	// A failed payment grants nothing.
	if _, err := svc.RecordPayment("a@x.com", 1999, "card", "Failed", "tx1", "Gold"); err != nil {
		t.Fatalf("record failed payment: %v", err)
	}
	if paid, _ = svc.HasPaidFor("a@x.com", "gold"); paid {
		t.Error("paid after only a Failed payment")
	}

	// Success flips the check, regardless of the earlier failure.
	if _, err := svc.RecordPayment("a@x.com", 1999, "card", "Success", "tx2", "Gold"); err != nil {
		t.Fatalf("record success payment: %v", err)
	}
	if paid, _ = svc.HasPaidFor("a@x.com", "gold"); !paid {
		t.Error("not paid after a Success payment")
	}

	// Other tiers are unaffected.
	if paid, _ = svc.HasPaidFor("a@x.com", "platinum"); paid {
		t.Error("paid for platinum without a platinum payment")
	}
}

func TestRecordPaymentDoesNotChangeTier(t *testing.T) {
	svc, userRepo := newSubscriptionFixture(t, &fakeGateway{})
	if err := userRepo.Create(model.NewUser("a@x.com", "Aye")); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if _, err := svc.RecordPayment("a@x.com", 1999, "card", "Success", "tx1", "Gold"); err != nil {
		t.Fatalf("record payment: %v", err)
	}

	user, _ := userRepo.FindByEmail("a@x.com")
	if user.Package != model.PackageFree {
		t.Errorf("tier = %q after recording payment, want %q", user.Package, model.PackageFree)
	}

	// Entitlement is granted only by the separate upgrade step.
	if err := svc.UpgradePackage("a@x.com", "Gold"); err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	user, _ = userRepo.FindByEmail("a@x.com")
	if user.Package != model.PackageGold {
		t.Errorf("tier = %q after upgrade, want %q", user.Package, model.PackageGold)
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	svc, _ := newSubscriptionFixture(t, &fakeGateway{})

	tests := []struct {
		name   string
		email  string
		amount int64
		method string
		status string
	}{
		{name: "missing email", email: "", amount: 999, method: "card", status: "Success"},
		{name: "zero amount", email: "a@x.com", amount: 0, method: "card", status: "Success"},
		{name: "missing method", email: "a@x.com", amount: 999, method: "", status: "Success"},
		{name: "missing status", email: "a@x.com", amount: 999, method: "card", status: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordPayment(tt.email, tt.amount, tt.method, tt.status, "tx", "silver")
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want %v", err, ErrInvalidInput)
			}
		})
	}
}

func TestUpgradePackage(t *testing.T) {
	svc, userRepo := newSubscriptionFixture(t, &fakeGateway{})
	if err := userRepo.Create(model.NewUser("a@x.com", "Aye")); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if err := svc.UpgradePackage("missing@x.com", "gold"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user error = %v, want %v", err, ErrNotFound)
	}
	if err := svc.UpgradePackage("a@x.com", "diamond"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown package error = %v, want %v", err, ErrInvalidInput)
	}

	if err := svc.UpgradePackage("a@x.com", "Silver"); err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	user, _ := userRepo.FindByEmail("a@x.com")
	if user.Package != model.PackageSilver {
		t.Errorf("tier = %q, want %q", user.Package, model.PackageSilver)
	}

	// Upgrading to the tier already held is a no-op success.
	if err := svc.UpgradePackage("a@x.com", "silver"); err != nil {
		t.Errorf("repeat upgrade error = %v, want nil", err)
	}
}
