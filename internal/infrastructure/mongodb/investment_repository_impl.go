package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/internal/domain/repository"
)

type InvestmentRepository struct {
	c collection[entity.Investment]
}

func NewInvestmentRepository(db *mongo.Database) *InvestmentRepository {
	return &InvestmentRepository{c: newCollection[entity.Investment](db, CollInvestments)}
}

func (r *InvestmentRepository) Insert(ctx context.Context, i *entity.Investment) error {
	return r.c.Insert(ctx, i)
}

func (r *InvestmentRepository) FindByUser(ctx context.Context, userID string, limit int64) ([]entity.Investment, error) {
	return r.c.FindAll(ctx, bson.M{"user_id": userID}, limit)
}

// FindByUserWithFunds left-joins each of the user's investments to its fund
// by fund_id == funds.id and flattens the fund summary into the row.
// Investments whose fund no longer resolves keep zero-valued fund fields.
func (r *InvestmentRepository) FindByUserWithFunds(ctx context.Context, userID string) ([]entity.InvestmentWithFund, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CollFunds,
			"localField":   "fund_id",
			"foreignField": "id",
			"as":           "fund",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$fund",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"id":             1,
			"user_id":        1,
			"fund_id":        1,
			"amount":         1,
			"status":         1,
			"created_at":     1,
			"updated_at":     1,
			"fund_name":      "$fund.name",
			"fund_symbol":    "$fund.symbol",
			"min_investment": "$fund.min_investment",
			"carry":          "$fund.carry",
		}}},
	}
	cur, err := r.c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	rows := []entity.InvestmentWithFund{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

var _ repository.InvestmentRepository = (*InvestmentRepository)(nil)
