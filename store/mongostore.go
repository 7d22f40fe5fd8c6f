package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps each slot as a single document in a "slots" collection,
// keyed by slot name. It is an optional deployment backend; the slot contract
// is the same as the file backend's, and a Mongo deployment shares state
// between processes only because Mongo itself does.
type MongoStore struct {
	col *mongo.Collection
}

type slotDoc struct {
	Name string `bson:"_id"`
	Data []byte `bson:"data"`
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{col: client.Database(dbName).Collection("slots")}
}

// ConnectMongo dials the given URI and verifies the connection.
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store: ping mongo: %w", err)
	}
	return client, nil
}

func (s *MongoStore) ReadCollection(name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc slotDoc
	err := s.col.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if err := s.WriteCollection(name, emptyList); err != nil {
			return nil, err
		}
		return emptyList, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", name, err)
	}
	return doc.Data, nil
}

func (s *MongoStore) WriteCollection(name string, data []byte) error {
	return s.writeSlot(name, data)
}

func (s *MongoStore) ReadSlot(name string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc slotDoc
	err := s.col.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: read %s: %w", name, err)
	}
	return doc.Data, true, nil
}

func (s *MongoStore) WriteSlot(name string, data []byte) error {
	return s.writeSlot(name, data)
}

func (s *MongoStore) DeleteSlot(name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return fmt.Errorf("store: delete %s: %w", name, err)
	}
	return nil
}

func (s *MongoStore) writeSlot(name string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	doc := slotDoc{Name: name, Data: data}
	if _, err := s.col.ReplaceOne(ctx, bson.M{"_id": name}, doc, opts); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	return nil
}
