package service

import (
	"fmt"
	"strings"

	"dormidine/internal/core/model"
	"dormidine/internal/core/repository"
	"dormidine/internal/payment"
)

// packagePrices is the single source of truth for subscription cost, in
// minor currency units. Server-side only.
var packagePrices = map[model.Package]int64{
	model.PackageSilver:   999,
	model.PackageGold:     1999,
	model.PackagePlatinum: 2999,
}

// SubscriptionService separates "record transaction" from "grant
// entitlement": RecordPayment never changes a tier, and UpgradePackage is
// invoked by the payment confirmation flow only after a Success payment
// has been recorded.
type SubscriptionService interface {
	QuotePackage(packageName string) (int64, error)
	CreatePaymentIntent(packageName string) (string, error)
	RecordPayment(email string, amount int64, method, status, transactionID, packageName string) (*model.Payment, error)
	HasPaidFor(email, packageName string) (bool, error)
	UpgradePackage(email, packageName string) error
	ListPayments(email string) ([]*model.Payment, error)
}

type subscriptionService struct {
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	gateway     payment.Gateway
}

func NewSubscriptionService(paymentRepo repository.PaymentRepository, userRepo repository.UserRepository, gateway payment.Gateway) SubscriptionService {
	return &subscriptionService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		gateway:     gateway,
	}
}

func (s *subscriptionService) QuotePackage(packageName string) (int64, error) {
	pkg := model.Package(strings.ToLower(packageName))
	amount, ok := packagePrices[pkg]
	if !ok {
		return 0, fmt.Errorf("%w: unknown package %q", ErrInvalidInput, packageName)
	}
	return amount, nil
}

func (s *subscriptionService) CreatePaymentIntent(packageName string) (string, error) {
	amount, err := s.QuotePackage(packageName)
	if err != nil {
		return "", err
	}
	clientSecret, err := s.gateway.CreateIntent(amount, "usd")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return clientSecret, nil
}

func (s *subscriptionService) RecordPayment(email string, amount int64, method, status, transactionID, packageName string) (*model.Payment, error) {
	if email == "" || amount <= 0 || method == "" || status == "" {
		return nil, fmt.Errorf("%w: email, amount, method and status are required", ErrInvalidInput)
	}

	p := model.NewPayment(email, amount, method, status, transactionID, strings.ToLower(packageName))
	if err := s.paymentRepo.Create(p); err != nil {
		return nil, fmt.Errorf("%w: record payment: %v", ErrStorage, err)
	}
	return p, nil
}

// HasPaidFor is the authoritative entitlement check: re-derived from the
// payment ledger on every call, never cached.
func (s *subscriptionService) HasPaidFor(email, packageName string) (bool, error) {
	if email == "" || packageName == "" {
		return false, fmt.Errorf("%w: email and package name are required", ErrInvalidInput)
	}
	paid, err := s.paymentRepo.ExistsSuccess(email, strings.ToLower(packageName))
	if err != nil {
		return false, fmt.Errorf("%w: paid check: %v", ErrStorage, err)
	}
	return paid, nil
}

func (s *subscriptionService) UpgradePackage(email, packageName string) error {
	if email == "" || packageName == "" {
		return fmt.Errorf("%w: email and package name are required", ErrInvalidInput)
	}
	pkg := model.Package(strings.ToLower(packageName))
	switch pkg {
	case model.PackageFree, model.PackageSilver, model.PackageGold, model.PackagePlatinum:
	default:
		return fmt.Errorf("%w: unknown package %q", ErrInvalidInput, packageName)
	}

	matched, err := s.userRepo.SetPackage(email, pkg)
	if err != nil {
		return fmt.Errorf("%w: set package: %v", ErrStorage, err)
	}
	if !matched {
		return fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	// Tier already at the requested value is a no-op success.
	return nil
}

func (s *subscriptionService) ListPayments(email string) ([]*model.Payment, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	payments, err := s.paymentRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: list payments: %v", ErrStorage, err)
	}
	return payments, nil
}
