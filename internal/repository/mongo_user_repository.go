package repository

import (
	"context"
	"errors"

	"files-manager/internal/common"
	"files-manager/internal/model"
	"files-manager/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

// mongoUser : формат документа совместим с уже существующей коллекцией users
type mongoUser struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

func (u mongoUser) toModel() *model.User {
	return &model.User{
		ID:           u.ID.Hex(),
		Email:        u.Email,
		PasswordHash: u.Password,
		CreatedAt:    u.ID.Timestamp(),
	}
}

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection(usersCollection)}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	doc := mongoUser{
		ID:       primitive.NewObjectID(),
		Email:    user.Email,
		Password: user.PasswordHash,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, util.LogError("[MongoUserRepo] ошибка вставки пользователя", err)
	}

	return doc.toModel(), nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, util.LogError("[MongoUserRepo] не удалось посчитать пользователей", err)
	}
	return count, nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var doc mongoUser
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[MongoUserRepo] ошибка поиска пользователя", err)
	}
	return doc.toModel(), nil
}
