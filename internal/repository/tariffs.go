package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ZoneRateDocument stores money as decimal strings so values round-trip exactly.
type ZoneRateDocument struct {
	Base    string `bson:"base" json:"base"`
	PerItem string `bson:"per_item" json:"per_item"`
}

// TariffDocument is one version of the shipping tariff.
// Exactly one document is active at a time; older versions are kept for history.
type TariffDocument struct {
	ID         primitive.ObjectID          `bson:"_id,omitempty" json:"id"`
	Zones      map[string]ZoneRateDocument `bson:"zones" json:"zones"`
	Fallback   ZoneRateDocument            `bson:"fallback" json:"fallback"`
	UnitWeight string                      `bson:"unit_weight" json:"unit_weight"`
	WeightRate string                      `bson:"weight_rate" json:"weight_rate"`
	MinimumFee string                      `bson:"minimum_fee" json:"minimum_fee"`
	Active     bool                        `bson:"active" json:"active"`
	Version    int                         `bson:"version" json:"version"`
	CreatedAt  time.Time                   `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time                   `bson:"updated_at" json:"updated_at"`
	CreatedBy  string                      `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// NewTariffDocument converts a tariff into its stored form.
func NewTariffDocument(t model.Tariff) TariffDocument {
	zones := make(map[string]ZoneRateDocument, len(t.Zones))
	for k, v := range t.Zones {
		zones[k] = zoneRateDocument(v)
	}
	return TariffDocument{
		Zones:      zones,
		Fallback:   zoneRateDocument(t.Fallback),
		UnitWeight: t.UnitWeight.String(),
		WeightRate: t.WeightRate.String(),
		MinimumFee: t.MinimumFee.String(),
		Version:    t.Version,
	}
}

func zoneRateDocument(r model.ZoneRate) ZoneRateDocument {
	return ZoneRateDocument{Base: r.Base.String(), PerItem: r.PerItem.String()}
}

// ToModel parses the stored decimals back into a tariff.
func (d TariffDocument) ToModel() (model.Tariff, error) {
	var err error
	parse := func(field, v string) decimal.Decimal {
		if err != nil {
			return decimal.Zero
		}
		var out decimal.Decimal
		out, err = decimal.NewFromString(v)
		if err != nil {
			err = fmt.Errorf("tariff v%d %s: %w", d.Version, field, err)
		}
		return out
	}
	rate := func(field string, r ZoneRateDocument) model.ZoneRate {
		return model.ZoneRate{Base: parse(field+".base", r.Base), PerItem: parse(field+".per_item", r.PerItem)}
	}

	t := model.Tariff{
		Zones:      make(map[string]model.ZoneRate, len(d.Zones)),
		Fallback:   rate("fallback", d.Fallback),
		UnitWeight: parse("unit_weight", d.UnitWeight),
		WeightRate: parse("weight_rate", d.WeightRate),
		MinimumFee: parse("minimum_fee", d.MinimumFee),
		Version:    d.Version,
	}
	for k, v := range d.Zones {
		t.Zones[k] = rate("zones."+k, v)
	}
	if err != nil {
		return model.Tariff{}, err
	}
	return t, nil
}

// TariffsRepository stores tariff versions.
type TariffsRepository struct {
	collection *mongo.Collection
}

// NewTariffsRepository creates a new tariffs repository.
func NewTariffsRepository(db *MongoDB) *TariffsRepository {
	return &TariffsRepository{
		collection: db.Tariffs,
	}
}

// GetActive returns the active tariff, or nil when none has been stored.
func (r *TariffsRepository) GetActive(ctx context.Context) (*TariffDocument, error) {
	var doc TariffDocument
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create stores tariff as the next version and makes it the only active one.
func (r *TariffsRepository) Create(ctx context.Context, tariff model.Tariff, createdBy string) (*TariffDocument, error) {
	version, err := r.nextVersion(ctx)
	if err != nil {
		return nil, err
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return nil, err
	}

	ts := time.Now().UTC()
	doc := NewTariffDocument(tariff)
	doc.ID = primitive.NewObjectID()
	doc.Active = true
	doc.Version = version
	doc.CreatedAt = ts
	doc.UpdatedAt = ts
	doc.CreatedBy = createdBy

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *TariffsRepository) nextVersion(ctx context.Context) (int, error) {
	var latest TariffDocument
	err := r.collection.FindOne(
		ctx,
		bson.M{},
		options.FindOne().SetSort(bson.M{"version": -1}).SetProjection(bson.M{"version": 1}),
	).Decode(&latest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return latest.Version + 1, nil
}

// List returns tariff versions, newest first.
func (r *TariffsRepository) List(ctx context.Context, limit int) ([]TariffDocument, error) {
	opts := options.Find().SetSort(bson.M{"version": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []TariffDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
