package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

const collectionInvestors = "investors"

type InvestorRepository struct {
	col *mongo.Collection
}

func NewInvestorRepository(db *mongo.Database) *InvestorRepository {
	return &InvestorRepository{col: db.Collection(collectionInvestors)}
}

// Create inserts a new investor document.
func (r *InvestorRepository) Create(ctx context.Context, inv *domain.Investor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, inv)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateInvestor
		}
		return err
	}
	return nil
}

// FindByID retrieves an investor by ID. When ownerID is non-empty, an
// additional filter by owner_id is applied so foreign records look absent.
func (r *InvestorRepository) FindByID(ctx context.Context, id, ownerID string) (*domain.Investor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}

	var inv domain.Investor
	err := r.col.FindOne(ctx, filter).Decode(&inv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvestorNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// List returns a filtered, paginated slice of investors sorted by creation
// date (newest first), plus the total count before pagination.
func (r *InvestorRepository) List(ctx context.Context, f ports.ListInvestorsFilter) ([]*domain.Investor, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.OwnerID != "" {
		filter["owner_id"] = f.OwnerID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Focus != "" {
		filter["investment_focus"] = f.Focus
	}
	if f.Stage != "" {
		filter["funding_stage_preference"] = f.Stage
	}
	if f.Search != "" {
		re := bson.Regex{Pattern: f.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"firm": re},
		}
	}
	if !f.From.IsZero() || !f.To.IsZero() {
		created := bson.M{}
		if !f.From.IsZero() {
			created["$gte"] = f.From
		}
		if !f.To.IsZero() {
			created["$lte"] = f.To
		}
		filter["created_at"] = created
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	investors := []*domain.Investor{}
	if err := cursor.All(ctx, &investors); err != nil {
		return nil, 0, err
	}
	return investors, total, nil
}

// ApplyContact atomically advances the investor's status, stamps the last
// contact date, and appends the record to the contact history.
func (r *InvestorRepository) ApplyContact(ctx context.Context, investorID string, status domain.OutreachStatus, record domain.ContactRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": investorID},
		bson.M{
			"$set": bson.M{
				"status":            status,
				"last_contact_date": record.Date,
			},
			"$push": bson.M{"contact_history": record},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrInvestorNotFound
	}
	return nil
}

// CountByStatus groups the owner's investors by pipeline status. An empty
// ownerID counts across all owners.
func (r *InvestorRepository) CountByStatus(ctx context.Context, ownerID string) (map[domain.OutreachStatus]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{}
	if ownerID != "" {
		match["owner_id"] = ownerID
	}

	cursor, err := r.col.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status domain.OutreachStatus `bson:"_id"`
		Count  int64                 `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[domain.OutreachStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// EnsureIndexes creates necessary indexes on the investors collection.
func (r *InvestorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
