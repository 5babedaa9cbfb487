package directory

import (
	"context"
	"log"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/ignite/moodletter/internal/domain"
)

// emailPattern is the local@domain.tld shape we accept. Deliverability
// beyond the syntactic check is out of scope since nothing is actually sent.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)

// Service implements address book business logic. The mutex serializes
// read-modify-write cycles so two mutations cannot silently drop each
// other's writes.
type Service struct {
	mu   sync.Mutex
	repo Repository
}

// NewService creates a directory service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Recipients returns all recipients.
func (s *Service) Recipients(ctx context.Context) ([]domain.Recipient, error) {
	return s.repo.Recipients(ctx)
}

// Groups returns all recipient groups.
func (s *Service) Groups(ctx context.Context) ([]domain.RecipientGroup, error) {
	return s.repo.Groups(ctx)
}

// AddRecipient validates and persists a new recipient.
func (s *Service) AddRecipient(ctx context.Context, name, email string) (*domain.Recipient, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateContact(name, email); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipients, err := s.repo.Recipients(ctx)
	if err != nil {
		return nil, err
	}
	if emailTaken(recipients, email, "") {
		return nil, domain.Validationf("a recipient with email %s already exists", email)
	}

	r := domain.Recipient{ID: uuid.New().String(), Name: name, Email: email}
	recipients = append(recipients, r)
	if err := s.repo.ReplaceRecipients(ctx, recipients); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRecipient validates and applies new contact details for an existing
// recipient. Campaigns already sent keep their snapshot of the old details.
func (s *Service) UpdateRecipient(ctx context.Context, id, name, email string) (*domain.Recipient, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateContact(name, email); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipients, err := s.repo.Recipients(ctx)
	if err != nil {
		return nil, err
	}
	if emailTaken(recipients, email, id) {
		return nil, domain.Validationf("a recipient with email %s already exists", email)
	}

	for i := range recipients {
		if recipients[i].ID == id {
			recipients[i].Name = name
			recipients[i].Email = email
			if err := s.repo.ReplaceRecipients(ctx, recipients); err != nil {
				return nil, err
			}
			r := recipients[i]
			return &r, nil
		}
	}
	return nil, ErrRecipientNotFound
}

// RemoveRecipient deletes a recipient and removes its id from every group's
// membership set. Both collections are rewritten.
func (s *Service) RemoveRecipient(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipients, err := s.repo.Recipients(ctx)
	if err != nil {
		return err
	}

	kept := recipients[:0]
	found := false
	for _, r := range recipients {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrRecipientNotFound
	}
	if err := s.repo.ReplaceRecipients(ctx, kept); err != nil {
		return err
	}

	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range groups {
		members := groups[i].Recipients[:0]
		for _, mid := range groups[i].Recipients {
			if mid == id {
				changed = true
				continue
			}
			members = append(members, mid)
		}
		groups[i].Recipients = members
	}
	if changed {
		if err := s.repo.ReplaceGroups(ctx, groups); err != nil {
			return err
		}
	}

	log.Printf("[directory.Service] removed recipient %s (cascaded=%v)", id, changed)
	return nil
}

// CreateGroup validates and persists a new group.
func (s *Service) CreateGroup(ctx context.Context, name string, memberIDs []string) (*domain.RecipientGroup, error) {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validateGroup(ctx, groups, name, memberIDs, ""); err != nil {
		return nil, err
	}

	g := domain.RecipientGroup{ID: uuid.New().String(), Name: name, Recipients: dedupeIDs(memberIDs)}
	groups = append(groups, g)
	if err := s.repo.ReplaceGroups(ctx, groups); err != nil {
		return nil, err
	}
	return &g, nil
}

// UpdateGroup validates and applies a new name and membership set for an
// existing group.
func (s *Service) UpdateGroup(ctx context.Context, id, name string, memberIDs []string) (*domain.RecipientGroup, error) {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validateGroup(ctx, groups, name, memberIDs, id); err != nil {
		return nil, err
	}

	for i := range groups {
		if groups[i].ID == id {
			groups[i].Name = name
			groups[i].Recipients = dedupeIDs(memberIDs)
			if err := s.repo.ReplaceGroups(ctx, groups); err != nil {
				return nil, err
			}
			g := groups[i]
			return &g, nil
		}
	}
	return nil, ErrGroupNotFound
}

// RemoveGroup deletes a group. Recipients themselves are untouched.
func (s *Service) RemoveGroup(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return err
	}
	kept := groups[:0]
	found := false
	for _, g := range groups {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return ErrGroupNotFound
	}
	return s.repo.ReplaceGroups(ctx, kept)
}

// validateGroup checks name presence, case-insensitive name uniqueness,
// non-empty membership, and that every member id resolves to a recipient.
func (s *Service) validateGroup(ctx context.Context, groups []domain.RecipientGroup, name string, memberIDs []string, selfID string) error {
	if name == "" {
		return domain.Validationf("group name is required")
	}
	for _, g := range groups {
		if g.ID != selfID && strings.EqualFold(g.Name, name) {
			return domain.Validationf("a group named %s already exists", name)
		}
	}
	if len(memberIDs) == 0 {
		return domain.Validationf("a group needs at least one recipient")
	}

	recipients, err := s.repo.Recipients(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(recipients))
	for _, r := range recipients {
		known[r.ID] = true
	}
	for _, id := range memberIDs {
		if !known[id] {
			return domain.Validationf("unknown recipient id %s", id)
		}
	}
	return nil
}

func validateContact(name, email string) error {
	if name == "" {
		return domain.Validationf("name is required")
	}
	if !emailPattern.MatchString(email) {
		return domain.Validationf("invalid email address: %s", email)
	}
	return nil
}

func emailTaken(recipients []domain.Recipient, email, selfID string) bool {
	for _, r := range recipients {
		if r.ID != selfID && strings.EqualFold(r.Email, email) {
			return true
		}
	}
	return false
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
