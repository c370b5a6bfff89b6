package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Email     string               `bson:"email" json:"email"`
	Favorites []primitive.ObjectID `bson:"favorites,omitempty" json:"favorites,omitempty"`
	Role      string               `bson:"role" json:"role"`
}
