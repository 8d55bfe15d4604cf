package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Ctx = context.TODO()

const NO_SINGLE_DOCUMENT = "mongo: no documents in result"

type MongoConn struct {
	client *mongo.Client
	dbName string
}

// Client Connection
func NewConnection(host, database string) *MongoConn {
	clientOptions := options.Client().ApplyURI(fmt.Sprintf("mongodb://%s", host))
	client, err := mongo.Connect(Ctx, clientOptions)
	if err != nil {
		panic(err)
	}
	return &MongoConn{
		client: client,
		dbName: database,
	}
}

func (conn *MongoConn) GetCollection(collection string) *mongo.Collection {
	return conn.client.Database(conn.dbName).Collection(collection)
}

func (conn *MongoConn) Ping() error {
	ctx, cancel := context.WithTimeout(Ctx, time.Second*5)
	defer cancel()
	return conn.client.Ping(ctx, nil)
}
