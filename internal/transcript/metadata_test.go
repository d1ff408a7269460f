package transcript

import (
	"strings"
	"testing"
	"time"
)

func TestTitleFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"underscores", "weekly_team_meeting.vtt", "Weekly Team Meeting"},
		{"dashes", "sprint-planning-notes.vtt", "Sprint Planning Notes"},
		{"camel case", "azureArcDemo.vtt", "Azure Arc Demo"},
		{"mixed separators", "q3_review-sessionNotes.vtt", "Q3 Review Session Notes"},
		{"single word", "standup.vtt", "Standup"},
		{"single letter words", "a_b_test.vtt", "A B Test"},
		{"full path", "/data/in/team_sync.vtt", "Team Sync"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleFromPath(tt.path); got != tt.want {
				t.Errorf("TitleFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestKeywordsFromPath(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		extra string
		want  string
	}{
		{
			name: "base set always present",
			path: "notes.vtt",
			want: "meeting, transcript, discussion",
		},
		{
			name: "vocabulary match from filename",
			path: "sprint-retrospective.vtt",
			want: "retrospective, meeting, transcript, discussion",
		},
		{
			name: "vocabulary match from path segment",
			path: "interviews/interview_jane.vtt",
			want: "interview, meeting, transcript, discussion",
		},
		{
			name:  "user keywords prepended and deduplicated",
			path:  "standup.vtt",
			extra: "infra, standup",
			want:  "infra, standup, meeting, transcript, discussion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeywordsFromPath(tt.path, tt.extra); got != tt.want {
				t.Errorf("KeywordsFromPath(%q, %q) = %q, want %q", tt.path, tt.extra, got, tt.want)
			}
		})
	}
}

func TestDocumentID(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		path     string
		explicit string
		want     string
	}{
		{"explicit wins", "meeting.vtt", "custom-id", "custom-id"},
		{"synthesized", "team_sync.vtt", "", "transcript-team_sync-20260825"},
		{"sanitized", "team sync (final).vtt", "", "transcript-team-sync-final--20260825"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DocumentID(tt.path, tt.explicit, now); got != tt.want {
				t.Errorf("DocumentID(%q, %q) = %q, want %q", tt.path, tt.explicit, got, tt.want)
			}
		})
	}
}

func TestBuildMetadata(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	res := Result{Speakers: map[string]bool{"P2": true, "P1": true}}

	meta := BuildMetadata("weekly_meeting.vtt", MetadataOptions{}, res, now)

	if meta.Title != "Weekly Meeting" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Date != "2026-08-25" {
		t.Errorf("Date = %q", meta.Date)
	}
	if meta.Type != "meeting" {
		t.Errorf("Type = %q", meta.Type)
	}
	if meta.SourceFile != "weekly_meeting.vtt" {
		t.Errorf("SourceFile = %q", meta.SourceFile)
	}
	if meta.Participants != "P1, P2" {
		t.Errorf("Participants = %q, want sorted P1, P2", meta.Participants)
	}
	if !strings.HasPrefix(meta.DocumentID, "transcript-weekly_meeting-") {
		t.Errorf("DocumentID = %q", meta.DocumentID)
	}
}

func TestBuildMetadataOverrides(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	res := Result{Speakers: map[string]bool{}}

	meta := BuildMetadata("raw.vtt", MetadataOptions{
		Title:      "Quarterly Review",
		Type:       "review",
		DocumentID: "rev-42",
		DocumentLinks: map[string]string{
			"agenda": "https://example.com/agenda",
		},
	}, res, now)

	if meta.Title != "Quarterly Review" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Type != "review" {
		t.Errorf("Type = %q", meta.Type)
	}
	if meta.DocumentID != "rev-42" {
		t.Errorf("DocumentID = %q", meta.DocumentID)
	}
	if meta.DocumentLinks["agenda"] == "" {
		t.Error("DocumentLinks not carried through")
	}
}
