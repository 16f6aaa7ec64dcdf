package repository

import (
	"context"
	"time"

	"dormidine/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentRepository is append-only: payments are never updated or removed.
type PaymentRepository interface {
	Create(payment *model.Payment) error
	FindByEmail(email string) ([]*model.Payment, error)
	// ExistsSuccess reports whether any successful payment exists for the
	// (email, package) pair, regardless of ordering or prior failures.
	ExistsSuccess(email, packageName string) (bool, error)
}

type MongoPaymentRepository struct {
	collection *mongo.Collection
}

func NewMongoPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{
		collection: db.Collection("payments"),
	}
}

func (r *MongoPaymentRepository) Create(payment *model.Payment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid
	}
	return nil
}

func (r *MongoPaymentRepository) FindByEmail(email string) ([]*model.Payment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []*model.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *MongoPaymentRepository) ExistsSuccess(email, packageName string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{
		"email":   email,
		"package": packageName,
		"status":  model.PaymentSuccess,
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
