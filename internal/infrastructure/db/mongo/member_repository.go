package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thaalam/admin-system/internal/core/domain"
)

const collectionMembers = "members"

// MemberRepository is the members collection plus the username lookup used by
// login. Usernames are unique at the index level.
type MemberRepository struct {
	*ResourceRepository[*domain.Member]
	col *mongo.Collection
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	base := NewResourceRepository(db, collectionMembers,
		func() *domain.Member { return &domain.Member{} },
		[]string{"name", "username", "email"},
		map[string]string{
			"role":   "role",
			"status": "status",
		})
	return &MemberRepository{ResourceRepository: base, col: db.Collection(collectionMembers)}
}

func (r *MemberRepository) FindByUsername(ctx context.Context, username string) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Member
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) Insert(ctx context.Context, rec *domain.Member) error {
	err := r.ResourceRepository.Insert(ctx, rec)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrUsernameTaken
	}
	return err
}

// EnsureIndexes adds the unique username index on top of the generic ones.
func (r *MemberRepository) EnsureIndexes(ctx context.Context) error {
	if err := r.ResourceRepository.EnsureIndexes(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
