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

// MealFilter narrows catalog listings. Zero values mean "no constraint".
type MealFilter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// MealRepository is instantiated once per meal pool: the current menu and
// the upcoming/preview pool share the contract over disjoint collections.
type MealRepository interface {
	Create(meal *model.Meal) error
	FindByID(id primitive.ObjectID) (*model.Meal, error)
	FindAll(filter MealFilter) ([]*model.Meal, error)
	Delete(id primitive.ObjectID) (bool, error)
	// Like adds email to the liker set and bumps the counter in one
	// conditional update; it reports false when email was already a liker.
	Like(id primitive.ObjectID, email string) (bool, error)
	// Unlike is the inverse conditional update; false when email was not
	// a liker.
	Unlike(id primitive.ObjectID, email string) (bool, error)
	// AddRequesterByTitle keys on title rather than id. Titles are not
	// guaranteed unique; callers treat this write as advisory.
	AddRequesterByTitle(title, email string) error
	RemoveRequester(id primitive.ObjectID, email string) (bool, error)
}

type MongoMealRepository struct {
	collection *mongo.Collection
}

func NewMongoMealRepository(db *mongo.Database, collection string) *MongoMealRepository {
	return &MongoMealRepository{
		collection: db.Collection(collection),
	}
}

func (r *MongoMealRepository) Create(meal *model.Meal) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.InsertOne(ctx, meal)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		meal.ID = oid
	}
	return nil
}

func (r *MongoMealRepository) FindByID(id primitive.ObjectID) (*model.Meal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var meal model.Meal
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&meal)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &meal, err
}

func (r *MongoMealRepository) FindAll(filter MealFilter) ([]*model.Meal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Search != "" {
		query["title"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.M{"postTime": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meals []*model.Meal
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *MongoMealRepository) Delete(id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

func (r *MongoMealRepository) Like(id primitive.ObjectID, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "likedBy": bson.M{"$ne": email}},
		bson.M{
			"$addToSet": bson.M{"likedBy": email},
			"$inc":      bson.M{"likes": 1},
		})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *MongoMealRepository) Unlike(id primitive.ObjectID, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "likedBy": email},
		bson.M{
			"$pull": bson.M{"likedBy": email},
			"$inc":  bson.M{"likes": -1},
		})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *MongoMealRepository) AddRequesterByTitle(title, email string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"title": title},
		bson.M{"$addToSet": bson.M{"isRequestedBy": email}})
	return err
}

func (r *MongoMealRepository) RemoveRequester(id primitive.ObjectID, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"isRequestedBy": email}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}
