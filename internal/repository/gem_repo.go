package repository

import (
	"context"

	"github.com/maccaabdi1/LocalLore/internal/db"
	"github.com/maccaabdi1/LocalLore/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type GemRepository struct {
	col *mongo.Collection
}

func NewGemRepository(collection string) *GemRepository {
	return &GemRepository{col: db.DB().Collection(collection)}
}

func (r *GemRepository) FindAll(ctx context.Context) ([]models.Gem, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Gem
	for cur.Next(ctx) {
		var g models.Gem
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, cur.Err()
}

func (r *GemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Gem, error) {
	var g models.Gem
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &g, err
}

func (r *GemRepository) Insert(ctx context.Context, g *models.Gem) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, g)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// Replace overwrites the whole document. Vote counters go through here,
// so concurrent voters can lose updates; a $inc would avoid that.
func (r *GemRepository) Replace(ctx context.Context, g *models.Gem) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": g.ID}, g)
	return err
}

func (r *GemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
