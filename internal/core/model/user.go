package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Package is the subscription tier controlling content access.
type Package string

const (
	PackageFree     Package = "free"
	PackageSilver   Package = "silver"
	PackageGold     Package = "gold"
	PackagePlatinum Package = "platinum"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Role       Role               `bson:"role" json:"role"`
	Joined     time.Time          `bson:"joined" json:"joined"`
	Package    Package            `bson:"package" json:"package"`
	MealsAdded int                `bson:"mealsAdded,omitempty" json:"mealsAdded,omitempty"`
}

func NewUser(email, name string) *User {
	return &User{
		Email:   email,
		Name:    name,
		Role:    RoleUser,
		Joined:  time.Now(),
		Package: PackageFree,
	}
}
