package db

import (
	"context"
	"errors"
	"fmt"

	"libros/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ models.Library = (*MongoLibraryManager)(nil)

type MongoLibraryManager struct {
	Collection *mongo.Collection
}

type mongoBook struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"titulo"`
	Author string             `bson:"autor"`
}

func (doc mongoBook) toBook() models.Book {
	return models.Book{
		ID:     doc.ID.Hex(),
		Title:  doc.Title,
		Author: doc.Author,
	}
}

func NewMongoLibrary(collection *mongo.Collection) *MongoLibraryManager {
	return &MongoLibraryManager{collection}
}

func (library *MongoLibraryManager) FindAll(ctx context.Context) ([]models.Book, error) {
	cursor, err := library.Collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("can not find books: %w", err)
	}

	var docs []mongoBook
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("can not read books: %w", err)
	}

	books := make([]models.Book, 0, len(docs))
	for _, doc := range docs {
		books = append(books, doc.toBook())
	}

	return books, nil
}

func (library *MongoLibraryManager) FindById(ctx context.Context, id string) (models.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Book{}, models.ErrBookNotFound
	}

	var doc mongoBook
	err = library.Collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Book{}, models.ErrBookNotFound
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("can not find book %s: %w", id, err)
	}

	return doc.toBook(), nil
}

func (library *MongoLibraryManager) Insert(ctx context.Context, in models.BookInput) (models.Book, error) {
	doc := mongoBook{
		ID:     primitive.NewObjectID(),
		Title:  in.Title,
		Author: in.Author,
	}

	if _, err := library.Collection.InsertOne(ctx, doc); err != nil {
		return models.Book{}, fmt.Errorf("can not insert book: %w", err)
	}

	return doc.toBook(), nil
}

func (library *MongoLibraryManager) Update(ctx context.Context, id string, in models.BookInput) (models.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Book{}, models.ErrBookNotFound
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "titulo", Value: in.Title},
		{Key: "autor", Value: in.Author},
	}}}

	var doc mongoBook
	err = library.Collection.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: oid}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Book{}, models.ErrBookNotFound
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("can not update book %s: %w", id, err)
	}

	return doc.toBook(), nil
}

func (library *MongoLibraryManager) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrBookNotFound
	}

	result, err := library.Collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("can not delete book %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return models.ErrBookNotFound
	}

	return nil
}

func (library *MongoLibraryManager) Store(ctx context.Context) (models.StoreSummary, error) {
	numberOfBooks, err := library.Collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return models.StoreSummary{}, fmt.Errorf("can not count books: %w", err)
	}

	authors, err := library.Collection.Distinct(ctx, "autor", bson.D{})
	if err != nil {
		return models.StoreSummary{}, fmt.Errorf("can not count authors: %w", err)
	}

	return models.StoreSummary{
		NumberOfBooks:   numberOfBooks,
		NumberOfAuthors: int64(len(authors)),
	}, nil
}
