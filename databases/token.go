package databases

// go generate: mockery --name TokenStore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// TokenKey is the fixed key the session token is stored under in every backend
const TokenKey = "authToken"

const tokenName = "tokens"

// TokenStore is the durable key-value store holding the session token.
// Load returns an empty string and no error when nothing is stored.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type tokenDatabase struct {
	db DatabaseHelper
}

// NewTokenDatabase initializes a mongo backed token store with the provided db connection
func NewTokenDatabase(db DatabaseHelper) TokenStore {
	return &tokenDatabase{
		db: db,
	}
}

func (t *tokenDatabase) Load(ctx context.Context) (string, error) {
	stored := &models.StoredToken{}
	err := t.db.Collection(tokenName).FindOne(ctx, bson.M{"_id": TokenKey}).Decode(&stored)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return stored.Token, nil
}

func (t *tokenDatabase) Save(ctx context.Context, token string) error {
	doc := models.StoredToken{Key: TokenKey, Token: token, UpdatedAt: time.Now().UTC()}
	return t.db.Collection(tokenName).ReplaceOne(ctx, bson.M{"_id": TokenKey}, doc, options.Replace().SetUpsert(true))
}

func (t *tokenDatabase) Clear(ctx context.Context) error {
	return t.db.Collection(tokenName).DeleteOne(ctx, bson.M{"_id": TokenKey})
}
