package mongo

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

const (
	collectionProfiles = "profiles"
	uploadsBucket      = "profile_uploads"
)

type ProfileRepository struct {
	col    *mongo.Collection
	bucket *mongo.GridFSBucket
}

// NewUploadsBucket opens the GridFS bucket holding profile uploads. The same
// bucket backs both uploads and the file-serving endpoint.
func NewUploadsBucket(db *mongo.Database) (*mongo.GridFSBucket, error) {
	bucket := db.GridFSBucket(options.GridFSBucket().SetName(uploadsBucket))
	return bucket, nil
}

// NewProfileRepository wires the profiles collection and the GridFS bucket
// used for profile pictures.
func NewProfileRepository(db *mongo.Database, bucket *mongo.GridFSBucket) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(collectionProfiles), bucket: bucket}
}

func (r *ProfileRepository) Fetch(ctx context.Context, userID string) (*domain.ProfileData, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.ProfileData
	err := r.col.FindOne(ctx, bson.M{"_id": userID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.ProfileData) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": profile.UserID},
		profile,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Update applies a partial patch; nil patch fields leave the stored value
// untouched.
func (r *ProfileRepository) Update(ctx context.Context, userID string, patch ports.ProfilePatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if patch.StartupName != nil {
		set["startup_name"] = *patch.StartupName
	}
	if patch.Industry != nil {
		set["industry"] = patch.Industry
	}
	if patch.Stage != nil {
		set["stage"] = *patch.Stage
	}
	if patch.FundingGoal != nil {
		set["funding_goal"] = *patch.FundingGoal
	}
	if patch.StartupDescription != nil {
		set["startup_description"] = *patch.StartupDescription
	}
	if patch.Website != nil {
		set["website"] = *patch.Website
	}
	if patch.OrganizationName != nil {
		set["organization_name"] = *patch.OrganizationName
	}
	if patch.Focus != nil {
		set["focus"] = *patch.Focus
	}
	if patch.RaisingFor != nil {
		set["raising_for"] = *patch.RaisingFor
	}
	if patch.FundSizeGoal != nil {
		set["fund_size_goal"] = *patch.FundSizeGoal
	}
	if patch.EmailConnected != nil {
		set["email_connected"] = *patch.EmailConnected
	}
	if patch.EmailProvider != nil {
		set["email_provider"] = *patch.EmailProvider
	}
	if patch.ProfilePicture != nil {
		set["profile_picture"] = *patch.ProfilePicture
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// UploadFile stores the file bytes in GridFS under path and returns the URL
// the API serves it from.
func (r *ProfileRepository) UploadFile(ctx context.Context, path string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.bucket.UploadFromStream(ctx, path, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("gridfs upload: %w", err)
	}
	return fmt.Sprintf("/v1/files/%s", id.Hex()), nil
}
