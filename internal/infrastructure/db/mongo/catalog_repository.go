package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

const (
	pagesCollection    = "pages"
	productsCollection = "products"
)

// MongoCatalogRepository reads pages and products from the record store.
type MongoCatalogRepository struct {
	pages    *mongo.Collection
	products *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *MongoCatalogRepository {
	return &MongoCatalogRepository{
		pages:    db.Collection(pagesCollection),
		products: db.Collection(productsCollection),
	}
}

type mongoPage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Slug      string             `bson:"slug"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body,omitempty"`
	Published bool               `bson:"published"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

type mongoProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Slug        string             `bson:"slug"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	PriceCents  int64              `bson:"price_cents"`
	Currency    string             `bson:"currency"`
	Stock       int                `bson:"stock"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *MongoCatalogRepository) GetPageBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	var mp mongoPage
	if err := r.pages.FindOne(ctx, bson.M{"slug": slug}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPageNotFound
		}
		return nil, fmt.Errorf("find page: %w", err)
	}
	return pageFromMongo(mp), nil
}

func (r *MongoCatalogRepository) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var mp mongoProduct
	if err := r.products.FindOne(ctx, bson.M{"slug": slug}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &domain.Product{
		ID:          mp.ID.Hex(),
		Slug:        mp.Slug,
		Name:        mp.Name,
		Description: mp.Description,
		PriceCents:  mp.PriceCents,
		Currency:    mp.Currency,
		Stock:       mp.Stock,
		CreatedAt:   unixToTime(mp.CreatedAt),
		UpdatedAt:   unixToTime(mp.UpdatedAt),
	}, nil
}

func (r *MongoCatalogRepository) ListPages(ctx context.Context, publishedOnly bool) ([]domain.Page, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}

	cursor, err := r.pages.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoPage
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode pages: %w", err)
	}

	pages := make([]domain.Page, 0, len(docs))
	for _, mp := range docs {
		pages = append(pages, *pageFromMongo(mp))
	}
	return pages, nil
}

func pageFromMongo(mp mongoPage) *domain.Page {
	return &domain.Page{
		ID:        mp.ID.Hex(),
		Slug:      mp.Slug,
		Title:     mp.Title,
		Body:      mp.Body,
		Published: mp.Published,
		CreatedAt: unixToTime(mp.CreatedAt),
		UpdatedAt: unixToTime(mp.UpdatedAt),
	}
}
