package sync

import (
	"testing"
	"time"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
)

func TestDeriveKey_FoldsCaseAndWhitespace(t *testing.T) {
	a := DeriveKey("https://example.org/a53", "Amendment 53")
	b := DeriveKey("  HTTPS://EXAMPLE.ORG/A53 ", " amendment 53 ")
	if a != b {
		t.Fatalf("cosmetic variants produced different keys: %s vs %s", a, b)
	}
	c := DeriveKey("https://example.org/a54", "Amendment 53")
	if a == c {
		t.Fatal("different urls produced the same key")
	}
}

func TestFingerprintAction_IgnoresSurrogateFields(t *testing.T) {
	when := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	base := entities.Action{
		ActionID:    "safmc-1",
		Title:       "Amendment 53",
		FMP:         "Snapper Grouper",
		Status:      entities.ActionStatusPublicComment,
		Progress:    40,
		LastUpdated: &when,
		SourceURL:   "https://example.org/a53",
	}

	other := base
	other.CreatedAt = time.Now()
	other.UpdatedAt = time.Now()
	if FingerprintAction(&base) != FingerprintAction(&other) {
		t.Fatal("timestamps changed the fingerprint")
	}

	changed := base
	changed.Progress = 60
	if FingerprintAction(&base) == FingerprintAction(&changed) {
		t.Fatal("content change did not change the fingerprint")
	}
}

func TestFingerprintMeeting_SensitiveToAgenda(t *testing.T) {
	m := entities.Meeting{
		MeetingID: "safmc-m1",
		Title:     "June Council Meeting",
		Council:   "SAFMC",
	}
	before := FingerprintMeeting(&m)

	agenda := "Day 1: Snapper Grouper Committee"
	m.AgendaContent = &agenda
	if before == FingerprintMeeting(&m) {
		t.Fatal("agenda content change did not change the fingerprint")
	}
}
