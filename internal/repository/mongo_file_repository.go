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
	"go.mongodb.org/mongo-driver/mongo/options"
)

const filesCollection = "files"

// mongoFile : parentId хранится как 0 для корня или ObjectID папки
type mongoFile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	IsPublic  bool               `bson:"isPublic"`
	ParentID  interface{}        `bson:"parentId"`
	LocalPath string             `bson:"localPath,omitempty"`
}

func (f mongoFile) toModel() model.FileRecord {
	return model.FileRecord{
		ID:         f.ID.Hex(),
		OwnerID:    f.UserID.Hex(),
		Name:       f.Name,
		Kind:       model.Kind(f.Type),
		Parent:     parentFromBSON(f.ParentID),
		IsPublic:   f.IsPublic,
		ContentRef: f.LocalPath,
		CreatedAt:  f.ID.Timestamp(),
	}
}

func parentFromBSON(value interface{}) model.ParentRef {
	switch v := value.(type) {
	case primitive.ObjectID:
		return model.FolderParent(v.Hex())
	case string:
		if v != "" && v != "0" {
			return model.FolderParent(v)
		}
	}
	return model.RootParent()
}

// parentToBSON : ok=false, если id папки не ObjectID
func parentToBSON(parent model.ParentRef) (interface{}, bool) {
	folderID, isFolder := parent.FolderID()
	if !isFolder {
		return 0, true
	}
	oid, err := primitive.ObjectIDFromHex(folderID)
	if err != nil {
		return nil, false
	}
	return oid, true
}

// MongoFileRepository : каталог в MongoDB, порядок создания задаёт _id
type MongoFileRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewMongoFileRepository(db *mongo.Database) *MongoFileRepository {
	return &MongoFileRepository{db: db, collection: db.Collection(filesCollection)}
}

func (r *MongoFileRepository) Insert(ctx context.Context, record *model.FileRecord) (*model.FileRecord, error) {
	owner, err := primitive.ObjectIDFromHex(record.OwnerID)
	if err != nil {
		return nil, util.LogError("[MongoFileRepo] некорректный id владельца", err)
	}

	parent, ok := parentToBSON(record.Parent)
	if !ok {
		return nil, common.ErrNotFound
	}

	doc := mongoFile{
		ID:        primitive.NewObjectID(),
		UserID:    owner,
		Name:      record.Name,
		Type:      string(record.Kind),
		IsPublic:  record.IsPublic,
		ParentID:  parent,
		LocalPath: record.ContentRef,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, util.LogError("[MongoFileRepo] ошибка вставки записи", err)
	}

	created := doc.toModel()
	return &created, nil
}

func (r *MongoFileRepository) FindByID(ctx context.Context, id string) (*model.FileRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoFileRepository) FindOwned(ctx context.Context, id, ownerID string) (*model.FileRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "userId": owner})
}

// List : $match по владельцу и родителю, новые первыми, затем $skip/$limit
func (r *MongoFileRepository) List(ctx context.Context, ownerID string, parent model.ParentRef, offset, limit int) ([]model.FileRecord, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []model.FileRecord{}, nil
	}
	parentValue, ok := parentToBSON(parent)
	if !ok {
		return []model.FileRecord{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "userId", Value: owner}, {Key: "parentId", Value: parentValue}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		{{Key: "$skip", Value: int64(offset)}},
		{{Key: "$limit", Value: int64(limit)}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, util.LogError("[MongoFileRepo] ошибка агрегации списка файлов", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoFile
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, util.LogError("[MongoFileRepo] ошибка чтения списка файлов", err)
	}

	records := make([]model.FileRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.toModel())
	}
	return records, nil
}

func (r *MongoFileRepository) SetPublic(ctx context.Context, id, ownerID string, isPublic bool) (*model.FileRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, common.ErrNotFound
	}

	var doc mongoFile
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "userId": owner},
		bson.M{"$set": bson.M{"isPublic": isPublic}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[MongoFileRepo] ошибка обновления видимости", err)
	}

	record := doc.toModel()
	return &record, nil
}

func (r *MongoFileRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, util.LogError("[MongoFileRepo] не удалось посчитать файлы", err)
	}
	return count, nil
}

func (r *MongoFileRepository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, nil)
}

func (r *MongoFileRepository) findOne(ctx context.Context, filter bson.M) (*model.FileRecord, error) {
	var doc mongoFile
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[MongoFileRepo] ошибка поиска записи", err)
	}

	record := doc.toModel()
	return &record, nil
}
