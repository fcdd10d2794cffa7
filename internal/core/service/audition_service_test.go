package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/castingdesk/casting-api/internal/core/domain"
	"github.com/castingdesk/casting-api/internal/core/ports"
)

type stubAuditionRepo struct {
	auditions map[string]*domain.Audition
	nextID    int
}

func newStubAuditionRepo() *stubAuditionRepo {
	return &stubAuditionRepo{auditions: make(map[string]*domain.Audition)}
}

func cloneAudition(a *domain.Audition) *domain.Audition {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAuditionRepo) Create(_ context.Context, a *domain.Audition) (*domain.Audition, error) {
	r.nextID++
	copy := cloneAudition(a)
	copy.ID = "audition-" + strconv.Itoa(r.nextID)
	r.auditions[copy.ID] = cloneAudition(copy)
	return cloneAudition(copy), nil
}

func (r *stubAuditionRepo) FindByID(_ context.Context, id string) (*domain.Audition, error) {
	if a, ok := r.auditions[id]; ok {
		return cloneAudition(a), nil
	}
	return nil, domain.ErrAuditionNotFound
}

func (r *stubAuditionRepo) FindAll(_ context.Context) ([]*domain.Audition, error) {
	out := make([]*domain.Audition, 0, len(r.auditions))
	for _, a := range r.auditions {
		out = append(out, cloneAudition(a))
	}
	return out, nil
}

func (r *stubAuditionRepo) FindByUserID(_ context.Context, userID string) ([]*domain.Audition, error) {
	var out []*domain.Audition
	for _, a := range r.auditions {
		if a.UserID == userID {
			out = append(out, cloneAudition(a))
		}
	}
	return out, nil
}

func (r *stubAuditionRepo) Update(_ context.Context, a *domain.Audition) error {
	if _, ok := r.auditions[a.ID]; !ok {
		return domain.ErrAuditionNotFound
	}
	r.auditions[a.ID] = cloneAudition(a)
	return nil
}

func (r *stubAuditionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.auditions[id]; !ok {
		return domain.ErrAuditionNotFound
	}
	delete(r.auditions, id)
	return nil
}

func validAuditionInput() ports.CreateAuditionInput {
	return ports.CreateAuditionInput{
		UserID:              "user-1",
		ProjectTitle:        "Midnight Run",
		ProductionCompany:   "Moonlight Films",
		Category:            "Acting",
		MediaType:           "Movie",
		AuditionType:        "Open",
		RoleName:            "Lead Detective",
		Gender:              "Any",
		AgeRange:            "30-40",
		Language:            "English",
		Skills:              []string{"Improvisation", "Stage Combat"},
		ExperienceLevel:     "Professional",
		RoleDescription:     "World-weary detective on one last case.",
		ShootLocation:       "Mexico City",
		AuditionLocation:    "Studio 4",
		AuditionDate:        time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		AuditionTime:        "10:00",
		ApplicationDeadline: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		ContactName:         "Casting Office",
		ContactNumber:       "5551234567",
		ContactEmail:        "Casting@Moonlight.com",
	}
}

func TestAuditionService_Create(t *testing.T) {
	repo := newStubAuditionRepo()
	svc := NewAuditionService(repo, zerolog.Nop())

	view, err := svc.Create(context.Background(), validAuditionInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if view.ID == "" {
		t.Fatalf("expected an assigned id")
	}
	if view.Status != string(domain.AuditionPending) {
		t.Fatalf("new postings must start pending, got %q", view.Status)
	}
	if view.ContactEmail != "casting@moonlight.com" {
		t.Fatalf("expected normalized contact email, got %q", view.ContactEmail)
	}
}

func TestAuditionService_Create_RequiresSkills(t *testing.T) {
	repo := newStubAuditionRepo()
	svc := NewAuditionService(repo, zerolog.Nop())

	in := validAuditionInput()
	in.Skills = nil
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields for empty skills, got %v", err)
	}
	if len(repo.auditions) != 0 {
		t.Fatalf("skill-less posting must not be persisted")
	}
}

func TestAuditionService_Create_MissingOwner(t *testing.T) {
	svc := NewAuditionService(newStubAuditionRepo(), zerolog.Nop())

	in := validAuditionInput()
	in.UserID = ""
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuditionService_GetByUserID(t *testing.T) {
	repo := newStubAuditionRepo()
	svc := NewAuditionService(repo, zerolog.Nop())

	if _, err := svc.GetByUserID(context.Background(), "user-1"); !errors.Is(err, domain.ErrNoAuditionsForUser) {
		t.Fatalf("expected ErrNoAuditionsForUser, got %v", err)
	}

	if _, err := svc.Create(context.Background(), validAuditionInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	views, err := svc.GetByUserID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByUserID returned error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(views))
	}
}

func TestAuditionService_Update_Partial(t *testing.T) {
	repo := newStubAuditionRepo()
	svc := NewAuditionService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validAuditionInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newDate := time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC)
	view, err := svc.Update(context.Background(), created.ID, ports.UpdateAuditionInput{
		RoleName:     "Junior Detective",
		AuditionDate: &newDate,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if view.RoleName != "Junior Detective" {
		t.Fatalf("role name not updated: %q", view.RoleName)
	}
	if !view.AuditionDate.Equal(newDate) {
		t.Fatalf("audition date not updated: %v", view.AuditionDate)
	}
	if view.ProjectTitle != "Midnight Run" {
		t.Fatalf("unrelated field changed: %q", view.ProjectTitle)
	}
}

func TestAuditionService_Update_NotFound(t *testing.T) {
	svc := NewAuditionService(newStubAuditionRepo(), zerolog.Nop())
	if _, err := svc.Update(context.Background(), "missing", ports.UpdateAuditionInput{}); !errors.Is(err, domain.ErrAuditionNotFound) {
		t.Fatalf("expected ErrAuditionNotFound, got %v", err)
	}
}

func TestAuditionService_Delete(t *testing.T) {
	repo := newStubAuditionRepo()
	svc := NewAuditionService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validAuditionInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, domain.ErrAuditionNotFound) {
		t.Fatalf("expected ErrAuditionNotFound after delete, got %v", err)
	}
}
