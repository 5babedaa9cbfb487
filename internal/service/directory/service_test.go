package directory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ignite/moodletter/internal/domain"
	"github.com/ignite/moodletter/internal/service/directory"
)

// memRepo is an in-memory directory repository for unit testing.
type memRepo struct {
	mu         sync.Mutex
	recipients []domain.Recipient
	groups     []domain.RecipientGroup
}

func newMemRepo() *memRepo {
	return &memRepo{recipients: []domain.Recipient{}, groups: []domain.RecipientGroup{}}
}

func (m *memRepo) Recipients(_ context.Context) ([]domain.Recipient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Recipient, len(m.recipients))
	copy(out, m.recipients)
	return out, nil
}

func (m *memRepo) ReplaceRecipients(_ context.Context, list []domain.Recipient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recipients = append([]domain.Recipient(nil), list...)
	return nil
}

func (m *memRepo) Groups(_ context.Context) ([]domain.RecipientGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.RecipientGroup, len(m.groups))
	for i, g := range m.groups {
		g.Recipients = append([]string(nil), g.Recipients...)
		out[i] = g
	}
	return out, nil
}

func (m *memRepo) ReplaceGroups(_ context.Context, list []domain.RecipientGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups = append([]domain.RecipientGroup(nil), list...)
	return nil
}

func isValidation(err error) bool {
	var ve *domain.ValidationError
	return errors.As(err, &ve)
}

func TestAddRecipient(t *testing.T) {
	svc := directory.NewService(newMemRepo())
	ctx := context.Background()

	r, err := svc.AddRecipient(ctx, "Jane", "jane@x.com")
	if err != nil {
		t.Fatalf("AddRecipient: %v", err)
	}
	if r.ID == "" {
		t.Fatal("expected generated id")
	}

	list, err := svc.Recipients(ctx)
	if err != nil {
		t.Fatalf("Recipients: %v", err)
	}
	if len(list) != 1 || list[0].Email != "jane@x.com" {
		t.Fatalf("unexpected recipients: %+v", list)
	}
}

func TestAddRecipientValidation(t *testing.T) {
	svc := directory.NewService(newMemRepo())
	ctx := context.Background()

	cases := []struct {
		name, email string
	}{
		{"", "jane@x.com"},
		{"Jane", ""},
		{"Jane", "not-an-email"},
		{"Jane", "jane@nodot"},
		{"Jane", "jane @x.com"},
	}
	for _, tc := range cases {
		if _, err := svc.AddRecipient(ctx, tc.name, tc.email); !isValidation(err) {
			t.Errorf("AddRecipient(%q, %q): expected validation error, got %v", tc.name, tc.email, err)
		}
	}

	if list, _ := svc.Recipients(ctx); len(list) != 0 {
		t.Fatalf("directory mutated by failed adds: %+v", list)
	}
}

func TestDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := directory.NewService(newMemRepo())
	ctx := context.Background()

	if _, err := svc.AddRecipient(ctx, "Jane", "jane@x.com"); err != nil {
		t.Fatalf("AddRecipient: %v", err)
	}
	if _, err := svc.AddRecipient(ctx, "Other Jane", "Jane@X.com"); !isValidation(err) {
		t.Fatalf("expected validation error for case-variant duplicate, got %v", err)
	}

	list, _ := svc.Recipients(ctx)
	if len(list) != 1 {
		t.Fatalf("directory changed by rejected duplicate: %+v", list)
	}
}

func TestUpdateRecipient(t *testing.T) {
	svc := directory.NewService(newMemRepo())
	ctx := context.Background()

	r, _ := svc.AddRecipient(ctx, "Jane", "jane@x.com")
	other, _ := svc.AddRecipient(ctx, "Ali", "ali@x.com")

	// Updating to your own email (case variant) is allowed.
	if _, err := svc.UpdateRecipient(ctx, r.ID, "Jane D", "JANE@x.com"); err != nil {
		t.Fatalf("UpdateRecipient keeping own email: %v", err)
	}

	// Colliding with another recipient's email is not.
	if _, err := svc.UpdateRecipient(ctx, r.ID, "Jane D", other.Email); !isValidation(err) {
		t.Fatalf("expected validation error for duplicate email, got %v", err)
	}

	if _, err := svc.UpdateRecipient(ctx, "missing", "X", "x@x.com"); !errors.Is(err, directory.ErrRecipientNotFound) {
		t.Fatalf("expected ErrRecipientNotFound, got %v", err)
	}
}

func TestRemoveRecipientCascades(t *testing.T) {
	svc := directory.NewService(newMemRepo())
	ctx := context.Background()

	a, _ := svc.AddRecipient(ctx, "A", "a@x.com")
	b, _ := svc.AddRecipient(ctx, "B", "b@x.com")
	c, _ := svc.AddRecipient(ctx, "C", "c@x.com")

	g1, _ := svc.CreateGroup(ctx, "One", []string{a.ID, b.ID})
	g2, _ := svc.CreateGroup(ctx, "Two", []string{a.ID, c.ID})

	if err := svc.RemoveRecipient(ctx, a.ID); err != nil {
		t.Fatalf("RemoveRecipient: %v", err)
	}

	groups, _ := svc.Groups(ctx)
	for _, g := range groups {
		for _, id := range g.Recipients {
			if id == a.ID {
				t.Fatalf("group %s still references removed recipient", g.Name)
			}
		}
	}
	// Other members untouched.
	want := map[string][]string{g1.ID: {b.ID}, g2.ID: {c.ID}}
	for _, g := range groups {
		exp := want[g.ID]
		if len(g.Recipients) != len(exp) || g.Recipients[0] != exp[0] {
			t.Fatalf("group %s membership = %v, want %v", g.Name, g.Recipients, exp)
		}
	}
}

func TestGroupValidation(t *testing.T) {
	svc := directory.NewService(newMemRepo())
	ctx := context.Background()

	a, _ := svc.AddRecipient(ctx, "A", "a@x.com")

	if _, err := svc.CreateGroup(ctx, "", []string{a.ID}); !isValidation(err) {
		t.Errorf("empty name: expected validation error, got %v", err)
	}
	if _, err := svc.CreateGroup(ctx, "Team", nil); !isValidation(err) {
		t.Errorf("empty members: expected validation error, got %v", err)
	}
	if _, err := svc.CreateGroup(ctx, "Team", []string{"ghost"}); !isValidation(err) {
		t.Errorf("unknown member: expected validation error, got %v", err)
	}

	if _, err := svc.CreateGroup(ctx, "Team", []string{a.ID}); err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	if _, err := svc.CreateGroup(ctx, "tEAM", []string{a.ID}); !isValidation(err) {
		t.Errorf("case-variant name: expected validation error, got %v", err)
	}
}

func TestRemoveGroupLeavesRecipients(t *testing.T) {
	svc := directory.NewService(newMemRepo())
	ctx := context.Background()

	a, _ := svc.AddRecipient(ctx, "A", "a@x.com")
	g, _ := svc.CreateGroup(ctx, "Team", []string{a.ID})

	if err := svc.RemoveGroup(ctx, g.ID); err != nil {
		t.Fatalf("RemoveGroup: %v", err)
	}
	if err := svc.RemoveGroup(ctx, g.ID); !errors.Is(err, directory.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}

	list, _ := svc.Recipients(ctx)
	if len(list) != 1 {
		t.Fatalf("removing a group must not touch recipients: %+v", list)
	}
}
