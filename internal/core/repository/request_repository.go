package repository

import (
	"context"
	"time"

	"dormidine/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RequestRepository interface {
	Create(req *model.MealRequest) error
	FindByID(id primitive.ObjectID) (*model.MealRequest, error)
	FindByEmail(email string) ([]*model.MealRequest, error)
	// Cancel flips a pending request to cancelled. It reports false when
	// the request is missing or already cancelled, so a second cancel can
	// never apply twice.
	Cancel(id primitive.ObjectID) (bool, error)
}

type MongoRequestRepository struct {
	collection *mongo.Collection
}

func NewMongoRequestRepository(db *mongo.Database) *MongoRequestRepository {
	return &MongoRequestRepository{
		collection: db.Collection("requested-meals"),
	}
}

func (r *MongoRequestRepository) Create(req *model.MealRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		req.ID = oid
	}
	return nil
}

func (r *MongoRequestRepository) FindByID(id primitive.ObjectID) (*model.MealRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var req model.MealRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &req, err
}

func (r *MongoRequestRepository) FindByEmail(email string) ([]*model.MealRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []*model.MealRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *MongoRequestRepository) Cancel(id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": model.RequestPending},
		bson.M{"$set": bson.M{"status": model.RequestCancelled}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}
