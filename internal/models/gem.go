package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type Gem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Address     string             `bson:"address" json:"address"`
	Category    string             `bson:"category" json:"category"`
	PhotoURL    string             `bson:"photoUrl" json:"photoUrl"`
	Upvotes     int                `bson:"upvotes" json:"upvotes"`
	Coordinates Coordinates        `bson:"coordinates" json:"coordinates"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
}
