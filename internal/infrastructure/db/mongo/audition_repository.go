package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/castingdesk/casting-api/internal/core/domain"
)

const auditionsCollection = "auditions"

// AuditionRepository persists audition postings in MongoDB.
type AuditionRepository struct {
	coll *mongo.Collection
}

func NewAuditionRepository(db *mongo.Database) *AuditionRepository {
	return &AuditionRepository{coll: db.Collection(auditionsCollection)}
}

type posterDoc struct {
	Data        []byte `bson:"data"`
	ContentType string `bson:"content_type"`
}

type auditionDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID string             `bson:"user_id"`

	ProjectTitle      string `bson:"project_title"`
	ProductionCompany string `bson:"production_company"`
	Category          string `bson:"category"`
	MediaType         string `bson:"media_type"`
	AuditionType      string `bson:"audition_type"`
	DirectorName      string `bson:"director_name"`

	RoleName        string   `bson:"role_name"`
	Gender          string   `bson:"gender"`
	AgeRange        string   `bson:"age_range"`
	Language        string   `bson:"language"`
	Skills          []string `bson:"skills"`
	ExperienceLevel string   `bson:"experience_level"`
	RoleDescription string   `bson:"role_description"`

	ShootLocation       string    `bson:"shoot_location"`
	AuditionLocation    string    `bson:"audition_location"`
	ShootDates          string    `bson:"shoot_dates"`
	AuditionDate        time.Time `bson:"audition_date"`
	AuditionTime        string    `bson:"audition_time"`
	ApplicationDeadline time.Time `bson:"application_deadline"`

	ContactName   string `bson:"contact_name"`
	ContactNumber string `bson:"contact_number"`
	ContactEmail  string `bson:"contact_email"`
	Compensation  string `bson:"compensation"`

	Status string     `bson:"status"`
	Poster *posterDoc `bson:"poster,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (r *AuditionRepository) Create(ctx context.Context, a *domain.Audition) (*domain.Audition, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDomainAudition(a))
	if err != nil {
		return nil, fmt.Errorf("insert audition: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert audition: unexpected id type %T", res.InsertedID)
	}

	created := *a
	created.ID = oid.Hex()
	return &created, nil
}

func (r *AuditionRepository) FindByID(ctx context.Context, id string) (*domain.Audition, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAuditionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc auditionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAuditionNotFound
		}
		return nil, fmt.Errorf("find audition: %w", err)
	}
	return toDomainAudition(&doc), nil
}

func (r *AuditionRepository) FindAll(ctx context.Context) ([]*domain.Audition, error) {
	return r.find(ctx, bson.M{})
}

func (r *AuditionRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Audition, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *AuditionRepository) find(ctx context.Context, filter bson.M) ([]*domain.Audition, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find auditions: %w", err)
	}
	defer cur.Close(ctx)

	var auditions []*domain.Audition
	for cur.Next(ctx) {
		var doc auditionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audition: %w", err)
		}
		auditions = append(auditions, toDomainAudition(&doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate auditions: %w", err)
	}
	return auditions, nil
}

func (r *AuditionRepository) Update(ctx context.Context, a *domain.Audition) error {
	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return domain.ErrAuditionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomainAudition(a)
	doc.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update audition: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAuditionNotFound
	}
	return nil
}

func (r *AuditionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAuditionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete audition: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAuditionNotFound
	}
	return nil
}

// EnsureIndexes creates the owner lookup index.
func (r *AuditionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

func fromDomainAudition(a *domain.Audition) *auditionDoc {
	doc := &auditionDoc{
		UserID:              a.UserID,
		ProjectTitle:        a.ProjectTitle,
		ProductionCompany:   a.ProductionCompany,
		Category:            a.Category,
		MediaType:           a.MediaType,
		AuditionType:        a.AuditionType,
		DirectorName:        a.DirectorName,
		RoleName:            a.RoleName,
		Gender:              a.Gender,
		AgeRange:            a.AgeRange,
		Language:            a.Language,
		Skills:              a.Skills,
		ExperienceLevel:     a.ExperienceLevel,
		RoleDescription:     a.RoleDescription,
		ShootLocation:       a.ShootLocation,
		AuditionLocation:    a.AuditionLocation,
		ShootDates:          a.ShootDates,
		AuditionDate:        a.AuditionDate,
		AuditionTime:        a.AuditionTime,
		ApplicationDeadline: a.ApplicationDeadline,
		ContactName:         a.ContactName,
		ContactNumber:       a.ContactNumber,
		ContactEmail:        a.ContactEmail,
		Compensation:        a.Compensation,
		Status:              string(a.Status),
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
	if a.Poster != nil {
		doc.Poster = &posterDoc{Data: a.Poster.Data, ContentType: a.Poster.ContentType}
	}
	return doc
}

func toDomainAudition(doc *auditionDoc) *domain.Audition {
	a := &domain.Audition{
		ID:                  doc.ID.Hex(),
		UserID:              doc.UserID,
		ProjectTitle:        doc.ProjectTitle,
		ProductionCompany:   doc.ProductionCompany,
		Category:            doc.Category,
		MediaType:           doc.MediaType,
		AuditionType:        doc.AuditionType,
		DirectorName:        doc.DirectorName,
		RoleName:            doc.RoleName,
		Gender:              doc.Gender,
		AgeRange:            doc.AgeRange,
		Language:            doc.Language,
		Skills:              doc.Skills,
		ExperienceLevel:     doc.ExperienceLevel,
		RoleDescription:     doc.RoleDescription,
		ShootLocation:       doc.ShootLocation,
		AuditionLocation:    doc.AuditionLocation,
		ShootDates:          doc.ShootDates,
		AuditionDate:        doc.AuditionDate,
		AuditionTime:        doc.AuditionTime,
		ApplicationDeadline: doc.ApplicationDeadline,
		ContactName:         doc.ContactName,
		ContactNumber:       doc.ContactNumber,
		ContactEmail:        doc.ContactEmail,
		Compensation:        doc.Compensation,
		Status:              domain.AuditionStatus(doc.Status),
		CreatedAt:           doc.CreatedAt,
		UpdatedAt:           doc.UpdatedAt,
	}
	if doc.Poster != nil {
		a.Poster = &domain.Poster{Data: doc.Poster.Data, ContentType: doc.Poster.ContentType}
	}
	return a
}
