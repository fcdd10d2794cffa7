package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/castingdesk/casting-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository persists user accounts in MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type pictureDoc struct {
	Data        []byte `bson:"data"`
	ContentType string `bson:"content_type"`
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	Email        string             `bson:"email"`
	Password     string             `bson:"password,omitempty"`
	AccountType  string             `bson:"account_type"`
	IsGoogleUser bool               `bson:"is_google_user"`
	IsVerified   bool               `bson:"is_verified"`
	Newsletter   bool               `bson:"newsletter"`
	OTP          string             `bson:"otp,omitempty"`
	OTPExpires   *time.Time         `bson:"otp_expires,omitempty"`

	UserName      string      `bson:"user_name,omitempty"`
	Gender        string      `bson:"gender,omitempty"`
	Location      string      `bson:"location,omitempty"`
	DateOfBirth   *time.Time  `bson:"date_of_birth,omitempty"`
	ContactNumber string      `bson:"contact_number,omitempty"`
	AboutMe       string      `bson:"about_me,omitempty"`
	Website       string      `bson:"website,omitempty"`
	Career        string      `bson:"career,omitempty"`
	Experience    string      `bson:"experience,omitempty"`
	ProfilePic    *pictureDoc `bson:"profile_pic,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Create inserts a new user. A duplicate email, whether caught here or by the
// unique index during a racing insert, surfaces as domain.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDomainUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}

	created := *user
	created.ID = oid.Hex()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return toDomainUser(&doc), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return toDomainUser(&doc), nil
}

// Update replaces the whole document; per-document atomicity is all the auth
// flow relies on (concurrent OTP issues race last-write-wins by design).
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomainUser(user)
	doc.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index that backs the duplicate
// registration guarantee.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func fromDomainUser(u *domain.User) *userDoc {
	doc := &userDoc{
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Password:      u.PasswordHash,
		AccountType:   string(u.AccountType),
		IsGoogleUser:  u.IsGoogleUser,
		IsVerified:    u.IsVerified,
		Newsletter:    u.Newsletter,
		OTP:           u.OTPHash,
		OTPExpires:    u.OTPExpires,
		UserName:      u.UserName,
		Gender:        u.Gender,
		Location:      u.Location,
		DateOfBirth:   u.DateOfBirth,
		ContactNumber: u.ContactNumber,
		AboutMe:       u.AboutMe,
		Website:       u.Website,
		Career:        u.Career,
		Experience:    u.Experience,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
	if u.ProfilePic != nil {
		doc.ProfilePic = &pictureDoc{Data: u.ProfilePic.Data, ContentType: u.ProfilePic.ContentType}
	}
	return doc
}

func toDomainUser(doc *userDoc) *domain.User {
	u := &domain.User{
		ID:            doc.ID.Hex(),
		FirstName:     doc.FirstName,
		LastName:      doc.LastName,
		Email:         doc.Email,
		PasswordHash:  doc.Password,
		AccountType:   domain.AccountType(doc.AccountType),
		IsGoogleUser:  doc.IsGoogleUser,
		IsVerified:    doc.IsVerified,
		Newsletter:    doc.Newsletter,
		OTPHash:       doc.OTP,
		OTPExpires:    doc.OTPExpires,
		UserName:      doc.UserName,
		Gender:        doc.Gender,
		Location:      doc.Location,
		DateOfBirth:   doc.DateOfBirth,
		ContactNumber: doc.ContactNumber,
		AboutMe:       doc.AboutMe,
		Website:       doc.Website,
		Career:        doc.Career,
		Experience:    doc.Experience,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
	if doc.ProfilePic != nil {
		u.ProfilePic = &domain.ProfilePicture{Data: doc.ProfilePic.Data, ContentType: doc.ProfilePic.ContentType}
	}
	return u
}
