package handler

import (
	"reflect"
	"strings"
	"testing"
)

func validCreateAuditionRequest() createAuditionRequest {
	return createAuditionRequest{
		ProjectTitle:        "Midnight Run",
		ProductionCompany:   "Moonlight Films",
		Category:            "Acting",
		MediaType:           "Movie",
		AuditionType:        "Open",
		RoleName:            "Lead Detective",
		Gender:              "Any",
		AgeRange:            "30-40",
		Language:            "English",
		Skills:              "Improvisation, Stage Combat",
		ExperienceLevel:     "Professional",
		RoleDescription:     "World-weary detective on one last case.",
		ShootLocation:       "Mexico City",
		AuditionLocation:    "Studio 4",
		AuditionDate:        "2026-10-01",
		AuditionTime:        "10:00",
		ApplicationDeadline: "2026-09-20",
		ContactName:         "Casting Office",
		ContactNumber:       "5551234567",
		ContactEmail:        "casting@moonlight.com",
	}
}

func TestCreateAuditionRequest_Validation(t *testing.T) {
	v := NewValidator()

	req := validCreateAuditionRequest()
	if err := v.Validate(&req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	noSkills := validCreateAuditionRequest()
	noSkills.Skills = ""
	err := v.Validate(&noSkills)
	if err == nil {
		t.Fatalf("expected a posting without skills to be rejected")
	}
	if !strings.Contains(err.Error(), "skills") {
		t.Fatalf("expected the error to name skills, got %q", err.Error())
	}

	// Multi-word enum values must validate as a whole.
	voice := validCreateAuditionRequest()
	voice.Category = "Voice Acting"
	voice.MediaType = "Web Series"
	if err := v.Validate(&voice); err != nil {
		t.Fatalf("multi-word enum values rejected: %v", err)
	}

	badCategory := validCreateAuditionRequest()
	badCategory.Category = "Dance"
	if v.Validate(&badCategory) == nil {
		t.Fatalf("expected an unknown category to be rejected")
	}
}

func TestSplitSkills(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{" , , ", []string{}},
		{"Improvisation", []string{"Improvisation"}},
		{"Improvisation, Stage Combat ,Singing", []string{"Improvisation", "Stage Combat", "Singing"}},
	}

	for _, tc := range tests {
		got := splitSkills(tc.raw)
		if len(got) != len(tc.want) {
			t.Fatalf("splitSkills(%q) = %v, want %v", tc.raw, got, tc.want)
		}
		if len(tc.want) > 0 && !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("splitSkills(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
