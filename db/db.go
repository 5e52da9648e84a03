package db

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shoaib/models"
)

// Connect opens a MongoDB client and pings the primary.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// productDoc is the stored shape of a catalog record.
type productDoc struct {
	ID          string        `bson:"id"`
	Name        string        `bson:"name"`
	Description string        `bson:"description"`
	Price       bson.RawValue `bson:"price"`
	Category    string        `bson:"category"`
	Image       string        `bson:"image"`
	Specs       []string      `bson:"specs"`
	Featured    bool          `bson:"featured"`
	Stock       int           `bson:"stock"`
	Position    int           `bson:"position"`
}

// parsePrice accepts the numeric encodings a seeded collection may use.
// Strings and Decimal128 keep the exact digits.
func parsePrice(v bson.RawValue) (decimal.Decimal, error) {
	switch v.Type {
	case bson.TypeString:
		return decimal.NewFromString(v.StringValue())
	case bson.TypeDecimal128:
		return decimal.NewFromString(v.Decimal128().String())
	case bson.TypeInt32:
		return decimal.NewFromInt32(v.Int32()), nil
	case bson.TypeInt64:
		return decimal.NewFromInt(v.Int64()), nil
	case bson.TypeDouble:
		return decimal.NewFromFloat(v.Double()), nil
	}
	return decimal.Decimal{}, fmt.Errorf("unsupported bson type %s", v.Type)
}

func (d productDoc) toProduct() (models.Product, error) {
	price, err := parsePrice(d.Price)
	if err != nil {
		return models.Product{}, fmt.Errorf("product %q price: %w", d.ID, err)
	}
	return models.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       price,
		Category:    models.Category(d.Category),
		Image:       d.Image,
		Specs:       d.Specs,
		Featured:    d.Featured,
		Stock:       d.Stock,
	}, nil
}

// LoadProducts reads every catalog record ordered by position. It is called
// once at start-up; the catalog is never written back.
func LoadProducts(ctx context.Context, coll *mongo.Collection) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return toProducts(docs)
}

func toProducts(docs []productDoc) ([]models.Product, error) {
	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		p, err := d.toProduct()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
