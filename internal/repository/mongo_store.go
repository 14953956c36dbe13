package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/epeers/company-accounts/internal/entity"
)

// MongoStore is a DocumentStore backed by one MongoDB collection per
// resource type
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to uri and uses the named database
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(database)}, nil
}

// Close disconnects the client
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// Insert stores doc, failing with ErrDuplicateKey if the id is taken
func (s *MongoStore) Insert(ctx context.Context, collection string, doc entity.Entity) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// FindByID decodes the document stored under id into out
func (s *MongoStore) FindByID(ctx context.Context, collection, id string, out entity.Entity) error {
	err := s.db.Collection(collection).FindOne(ctx, byID(id)).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}
	return nil
}

// Update replaces an existing document
func (s *MongoStore) Update(ctx context.Context, collection string, doc entity.Entity) error {
	result, err := s.db.Collection(collection).ReplaceOne(ctx, byID(doc.DocumentID()), doc)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document stored under id
func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	result, err := s.db.Collection(collection).DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetLink adds or replaces one entry of the document's links map
func (s *MongoStore) SetLink(ctx context.Context, collection, id, name, link string) error {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: entity.LinksPath + "." + name, Value: link}}}}
	return s.updateOne(ctx, collection, id, update)
}

// RemoveLink deletes one entry of the document's links map
func (s *MongoStore) RemoveLink(ctx context.Context, collection, id, name string) error {
	update := bson.D{{Key: "$unset", Value: bson.D{{Key: entity.LinksPath + "." + name, Value: ""}}}}
	return s.updateOne(ctx, collection, id, update)
}

func (s *MongoStore) updateOne(ctx context.Context, collection, id string, update bson.D) error {
	result, err := s.db.Collection(collection).UpdateOne(ctx, byID(id), update)
	if err != nil {
		return fmt.Errorf("failed to update links: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
