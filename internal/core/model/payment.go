package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentSuccess is the status literal the entitlement check matches on.
const PaymentSuccess = "Success"

// Payment is an append-only transaction record. Date is truncated to the
// calendar day; intra-day ordering of same-day payments is not tracked.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	Date          time.Time          `bson:"date" json:"date"`
	Amount        int64              `bson:"amount" json:"amount"`
	Method        string             `bson:"method" json:"method"`
	Status        string             `bson:"status" json:"status"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Package       string             `bson:"package" json:"package"`
}

func NewPayment(email string, amount int64, method, status, transactionID, packageName string) *Payment {
	return &Payment{
		Email:         email,
		Date:          time.Now().UTC().Truncate(24 * time.Hour),
		Amount:        amount,
		Method:        method,
		Status:        status,
		TransactionID: transactionID,
		Package:       packageName,
	}
}
