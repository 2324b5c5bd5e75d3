package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tcmshop_backend/internal/leads/domain"

	"github.com/google/uuid"
)

func testLead(name, email string) domain.Lead {
	return domain.Lead{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		QueryType:   domain.QueryTypeConsultation,
		Message:     "I'd like to discuss insomnia, and \"cold\" hands",
		SubmittedAt: time.Date(2025, 6, 1, 14, 30, 5, 0, time.Local),
	}
}

func TestCSVRepository_HeaderWrittenExactlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads", "client_queries.csv")
	repo := NewCSV(path)
	ctx := context.Background()

	if err := repo.Append(ctx, testLead("Mei Lin", "mei@example.com")); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := repo.Append(ctx, testLead("Tan Wei", "tan@example.com")); err != nil {
		t.Fatalf("second append: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	content := string(raw)

	if !strings.HasPrefix(content, "timestamp,name,email,query_type,message") {
		t.Fatalf("expected header as first line, got %q", content)
	}
	if strings.Count(content, "timestamp,name,email,query_type,message") != 1 {
		t.Fatalf("header written more than once:\n%s", content)
	}
}

func TestCSVRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client_queries.csv")
	repo := NewCSV(path)
	ctx := context.Background()

	lead := testLead("Mei Lin", "mei@example.com")
	if err := repo.Append(ctx, lead); err != nil {
		t.Fatalf("append: %v", err)
	}

	leads, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(leads))
	}

	got := leads[0]
	if got.Name != lead.Name || got.Email != lead.Email {
		t.Fatalf("expected %s <%s>, got %s <%s>", lead.Name, lead.Email, got.Name, got.Email)
	}
	if got.QueryType != domain.QueryTypeConsultation {
		t.Fatalf("expected query type %q, got %q", domain.QueryTypeConsultation, got.QueryType)
	}
	// Commas and quotes in the message must survive CSV encoding.
	if got.Message != lead.Message {
		t.Fatalf("expected message %q, got %q", lead.Message, got.Message)
	}
	if !got.SubmittedAt.Equal(lead.SubmittedAt) {
		t.Fatalf("expected timestamp %v, got %v", lead.SubmittedAt, got.SubmittedAt)
	}
}

func TestCSVRepository_AppendOrderPreserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client_queries.csv")
	repo := NewCSV(path)
	ctx := context.Background()

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		if err := repo.Append(ctx, testLead(name, name+"@example.com")); err != nil {
			t.Fatalf("append %s: %v", name, err)
		}
	}

	leads, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(leads) != len(names) {
		t.Fatalf("expected %d leads, got %d", len(names), len(leads))
	}
	for i, name := range names {
		if leads[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, leads[i].Name)
		}
	}
}

func TestCSVRepository_MissingFileIsEmptyStore(t *testing.T) {
	repo := NewCSV(filepath.Join(t.TempDir(), "never_written.csv"))

	leads, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(leads) != 0 {
		t.Fatalf("expected empty store, got %d leads", len(leads))
	}
}
