package db

import (
	"context"
	"encoding/json"
	"fmt"

	"libros/models"

	"github.com/olivere/elastic/v7"
)

const (
	maxSearchSize = 10000
	refreshPolicy = "wait_for"
)

var _ models.Library = (*ElasticLibraryManager)(nil)

type ElasticLibraryManager struct {
	IndexName     string
	ElasticClient *elastic.Client
}

// elasticBook is the document source; the id lives in the document metadata.
type elasticBook struct {
	Title  string `json:"titulo"`
	Author string `json:"autor"`
}

func NewElasticLibrary(indexName string, elasticClient *elastic.Client) *ElasticLibraryManager {
	return &ElasticLibraryManager{indexName, elasticClient}
}

func (library *ElasticLibraryManager) FindAll(ctx context.Context) ([]models.Book, error) {
	result, err := library.ElasticClient.Search().
		Index(library.IndexName).
		Query(elastic.NewMatchAllQuery()).
		Sort("_doc", true).
		Pretty(false).
		Size(maxSearchSize).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return []models.Book{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can not search books: %w", err)
	}

	if result.Hits == nil {
		return []models.Book{}, nil
	}

	books := make([]models.Book, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		book, err := decodeElasticBook(hit.Id, hit.Source)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	return books, nil
}

func (library *ElasticLibraryManager) FindById(ctx context.Context, id string) (models.Book, error) {
	doc, err := library.ElasticClient.
		Get().
		Index(library.IndexName).
		Id(id).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return models.Book{}, models.ErrBookNotFound
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("can not get book %s: %w", id, err)
	}
	if !doc.Found {
		return models.Book{}, models.ErrBookNotFound
	}

	return decodeElasticBook(doc.Id, doc.Source)
}

func (library *ElasticLibraryManager) Insert(ctx context.Context, in models.BookInput) (models.Book, error) {
	doc, err := library.ElasticClient.
		Index().
		Index(library.IndexName).
		BodyJson(elasticBook{Title: in.Title, Author: in.Author}).
		Refresh(refreshPolicy).
		Do(ctx)

	if err != nil {
		return models.Book{}, fmt.Errorf("can not index book: %w", err)
	}

	return in.WithID(doc.Id), nil
}

func (library *ElasticLibraryManager) Update(ctx context.Context, id string, in models.BookInput) (models.Book, error) {
	_, err := library.ElasticClient.
		Update().
		Index(library.IndexName).
		Id(id).
		Doc(elasticBook{Title: in.Title, Author: in.Author}).
		Refresh(refreshPolicy).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return models.Book{}, models.ErrBookNotFound
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("can not update book %s: %w", id, err)
	}

	return in.WithID(id), nil
}

func (library *ElasticLibraryManager) Delete(ctx context.Context, id string) error {
	_, err := library.ElasticClient.
		Delete().
		Index(library.IndexName).
		Id(id).
		Refresh(refreshPolicy).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return models.ErrBookNotFound
	}
	if err != nil {
		return fmt.Errorf("can not delete book %s: %w", id, err)
	}

	return nil
}

func (library *ElasticLibraryManager) Store(ctx context.Context) (models.StoreSummary, error) {
	titleAggregation := elastic.NewCardinalityAggregation().Field("_id")
	authorsAggregation := elastic.NewCardinalityAggregation().Field("autor.keyword")

	results, err := library.ElasticClient.Search().
		Index(library.IndexName).
		Aggregation("number_of_books", titleAggregation).
		Aggregation("number_of_authors", authorsAggregation).
		Size(0).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return models.StoreSummary{}, nil
	}
	if err != nil {
		return models.StoreSummary{}, fmt.Errorf("can not aggregate books: %w", err)
	}

	return models.StoreSummary{
		NumberOfBooks:   cardinality(results.Aggregations, "number_of_books"),
		NumberOfAuthors: cardinality(results.Aggregations, "number_of_authors"),
	}, nil
}

func cardinality(aggregations elastic.Aggregations, name string) int64 {
	metric, ok := aggregations.Cardinality(name)
	if !ok || metric.Value == nil {
		return 0
	}
	return int64(*metric.Value)
}

func decodeElasticBook(id string, source json.RawMessage) (models.Book, error) {
	var doc elasticBook
	if err := json.Unmarshal(source, &doc); err != nil {
		return models.Book{}, fmt.Errorf("can not decode book %s: %w", id, err)
	}

	return models.Book{ID: id, Title: doc.Title, Author: doc.Author}, nil
}
