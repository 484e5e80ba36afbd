package database

import "go.mongodb.org/mongo-driver/mongo"

// NewClient wraps an existing driver client.
func NewClient(client *mongo.Client, dbName string) *Client {
	return &Client{client: client, dbName: dbName}
}
