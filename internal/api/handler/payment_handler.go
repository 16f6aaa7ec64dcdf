package handler

import (
	"encoding/json"
	"net/http"

	"dormidine/internal/core/service"
)

type PaymentHandler struct {
	subscriptionService service.SubscriptionService
}

func NewPaymentHandler(subscriptionService service.SubscriptionService) *PaymentHandler {
	return &PaymentHandler{
		subscriptionService: subscriptionService,
	}
}

type createIntentRequest struct {
	PackageName string `json:"packageName"`
}

type recordPaymentRequest struct {
	Email         string `json:"email"`
	Amount        int64  `json:"amount"`
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
	PackageName   string `json:"packageName"`
}

type upgradeRequest struct {
	Email       string `json:"email"`
	PackageName string `json:"packageName"`
}

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	clientSecret, err := h.subscriptionService.CreatePaymentIntent(req.PackageName)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"clientSecret": clientSecret})
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	payment, err := h.subscriptionService.RecordPayment(req.Email, req.Amount, req.Method, req.Status, req.TransactionID, req.PackageName)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"insertedId": payment.ID.Hex()})
}

func (h *PaymentHandler) AlreadyPaid(w http.ResponseWriter, r *http.Request) {
	paid, err := h.subscriptionService.HasPaidFor(
		r.URL.Query().Get("email"),
		r.URL.Query().Get("packageName"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"alreadyPaid": paid})
}

func (h *PaymentHandler) Upgrade(w http.ResponseWriter, r *http.Request) {
	var req upgradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.subscriptionService.UpgradePackage(req.Email, req.PackageName); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "upgraded"})
}

func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	payments, err := h.subscriptionService.ListPayments(r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payments)
}
