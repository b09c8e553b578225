package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "bizdocs"

type MongoBlobRepo struct {
	DB *mongo.Client
}

func NewMongoBlobRepo(db *mongo.Client) *MongoBlobRepo {
	return &MongoBlobRepo{DB: db}
}

type mongoBlob struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

func (r *MongoBlobRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("blobs")
}

func (r *MongoBlobRepo) Get(key string) ([]byte, error) {
	var blob mongoBlob
	err := r.collection().FindOne(context.Background(), bson.M{"_id": key}).Decode(&blob)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return blob.Value, nil
}

func (r *MongoBlobRepo) Put(key string, value []byte) error {
	_, err := r.collection().UpdateOne(
		context.Background(),
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}},
		options.Update().SetUpsert(true),
	)
	return err
}
