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

type ReviewRepository interface {
	Create(review *model.Review) error
	// FindByMealID and FindByEmail return newest-first.
	FindByMealID(mealID primitive.ObjectID) ([]*model.Review, error)
	FindByEmail(email string) ([]*model.Review, error)
	// Update overwrites comment and rating. matched distinguishes a
	// missing review from one where nothing actually changed.
	Update(id primitive.ObjectID, comment string, rating float64) (matched bool, modified bool, err error)
	Delete(id primitive.ObjectID) (bool, error)
}

type MongoReviewRepository struct {
	collection *mongo.Collection
}

func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{
		collection: db.Collection("reviews"),
	}
}

func (r *MongoReviewRepository) Create(review *model.Review) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return nil
}

func (r *MongoReviewRepository) FindByMealID(mealID primitive.ObjectID) ([]*model.Review, error) {
	return r.find(bson.M{"mealId": mealID})
}

func (r *MongoReviewRepository) FindByEmail(email string) ([]*model.Review, error) {
	return r.find(bson.M{"email": email})
}

func (r *MongoReviewRepository) find(filter bson.M) ([]*model.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []*model.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *MongoReviewRepository) Update(id primitive.ObjectID, comment string, rating float64) (bool, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"comment": comment, "rating": rating}})
	if err != nil {
		return false, false, err
	}
	return res.MatchedCount == 1, res.ModifiedCount == 1, nil
}

func (r *MongoReviewRepository) Delete(id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}
