package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"gomoku_exe/internal/domain"
	errs "gomoku_exe/internal/errors"
)

const decisionsCollection = "decisions"

type DecisionArchive struct {
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewDecisionArchive(log *zap.SugaredLogger, mongo *mongo.Database) *DecisionArchive {
	return &DecisionArchive{
		log:   log,
		mongo: mongo,
	}
}

func (a *DecisionArchive) Save(ctx context.Context, d domain.Decision) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := a.mongo.Collection(decisionsCollection).InsertOne(ctx, d); err != nil {
		return fmt.Errorf("insert decision %s: %w", d.ID, err)
	}
	a.log.Debugf("decision %s archived", d.ID)
	return nil
}

func (a *DecisionArchive) Get(ctx context.Context, id string) (domain.Decision, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var d domain.Decision
	err := a.mongo.Collection(decisionsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Decision{}, fmt.Errorf("decision %s: %w", id, errs.ErrDecisionNotFound)
	}
	if err != nil {
		return domain.Decision{}, fmt.Errorf("find decision %s: %w", id, err)
	}
	return d, nil
}
