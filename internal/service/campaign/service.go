package campaign

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ignite/moodletter/internal/domain"
)

// Content limits enforced at send time.
const (
	MaxSubjectLen = 100
	MaxBodyLen    = 1000
	MaxCTALen     = 50
)

// DefaultCTAText is used when the call-to-action text is left blank.
const DefaultCTAText = "Learn More"

// TargetAll is the selector that resolves to the entire address book.
const TargetAll = "all"

// SendInput holds the fields for sending a new campaign.
type SendInput struct {
	Mood    domain.Mood `json:"mood"`
	Subject string      `json:"subject"`
	Body    string      `json:"body"`
	CTAText string      `json:"ctaText"`
	// Target is "all", a group id, or a single recipient id.
	Target string `json:"target"`
}

// Service implements campaign business logic. The mutex serializes
// read-modify-write cycles over the campaign collection so a send and a
// tracking event cannot drop each other's writes.
type Service struct {
	mu        sync.Mutex
	repo      Repository
	directory DirectorySource
	clock     func() time.Time
}

// NewService creates a campaign service backed by the given repository and
// address book.
func NewService(repo Repository, dir DirectorySource) *Service {
	return &Service{repo: repo, directory: dir, clock: time.Now}
}

// SetClock overrides the timestamp source. Intended for tests.
func (s *Service) SetClock(clock func() time.Time) {
	s.clock = clock
}

// List returns all campaigns, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Campaign, error) {
	list, err := s.repo.Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	// Stored oldest-first; history views want the latest on top.
	out := make([]domain.Campaign, len(list))
	for i, c := range list {
		out[len(list)-1-i] = c
	}
	return out, nil
}

// Get returns a single campaign by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	list, err := s.repo.Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

// Send validates the input, resolves the target selector against the address
// book at call time, snapshots the resolved recipients with one unique
// tracking link each, and appends the campaign to the persisted list.
func (s *Service) Send(ctx context.Context, input SendInput) (*domain.Campaign, error) {
	subject := strings.TrimSpace(input.Subject)
	body := strings.TrimSpace(input.Body)
	ctaText := strings.TrimSpace(input.CTAText)

	// Limits are in characters, not bytes; subjects and bodies routinely
	// carry emoji and accented text.
	switch {
	case subject == "":
		return nil, domain.Validationf("subject is required")
	case utf8.RuneCountInString(subject) > MaxSubjectLen:
		return nil, domain.Validationf("subject must be at most %d characters", MaxSubjectLen)
	case body == "":
		return nil, domain.Validationf("body is required")
	case utf8.RuneCountInString(body) > MaxBodyLen:
		return nil, domain.Validationf("body must be at most %d characters", MaxBodyLen)
	case utf8.RuneCountInString(ctaText) > MaxCTALen:
		return nil, domain.Validationf("call-to-action text must be at most %d characters", MaxCTALen)
	}
	if ctaText == "" {
		ctaText = DefaultCTAText
	}

	targets, groupName, err := s.resolveTarget(ctx, input.Target)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, domain.Validationf("no recipients found for the selected target")
	}

	id := uuid.New().String()
	snapshot := make([]domain.CampaignRecipient, len(targets))
	for i, r := range targets {
		snapshot[i] = domain.CampaignRecipient{
			ID:    r.ID,
			Name:  r.Name,
			Email: r.Email,
			Link:  fmt.Sprintf("/view/%s/%s", id, r.ID),
		}
	}

	c := domain.Campaign{
		ID:         id,
		Mood:       input.Mood.Normalize(),
		Subject:    subject,
		Body:       body,
		CTAText:    ctaText,
		Date:       s.clock().UTC(),
		GroupName:  groupName,
		Recipients: snapshot,
		Opens:      []string{},
		Clicks:     []string{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.repo.Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	list = append(list, c)
	if err := s.repo.ReplaceAll(ctx, list); err != nil {
		return nil, err
	}

	log.Printf("[campaign.Service] sent campaign %s to %d recipients (%s)", c.ID, len(snapshot), groupName)
	return &c, nil
}

// MarkOpen records that the recipient viewed the campaign. Repeat calls are
// no-ops. Returns the updated campaign.
func (s *Service) MarkOpen(ctx context.Context, campaignID, recipientID string) (*domain.Campaign, error) {
	return s.mark(ctx, campaignID, recipientID, false)
}

// MarkClick records that the recipient used the call-to-action. The open is
// recorded first if it is somehow missing, so clicks stay a subset of opens.
// Repeat calls are no-ops. Returns the updated campaign.
func (s *Service) MarkClick(ctx context.Context, campaignID, recipientID string) (*domain.Campaign, error) {
	return s.mark(ctx, campaignID, recipientID, true)
}

func (s *Service) mark(ctx context.Context, campaignID, recipientID string, click bool) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.repo.Campaigns(ctx)
	if err != nil {
		return nil, err
	}

	var c *domain.Campaign
	for i := range list {
		if list[i].ID == campaignID {
			c = &list[i]
			break
		}
	}
	if c == nil || c.Recipient(recipientID) == nil {
		return nil, ErrNotFound
	}

	changed := false
	if !c.HasOpened(recipientID) {
		c.Opens = append(c.Opens, recipientID)
		changed = true
	}
	if click && !c.HasClicked(recipientID) {
		c.Clicks = append(c.Clicks, recipientID)
		changed = true
	}

	if changed {
		if err := s.repo.ReplaceAll(ctx, list); err != nil {
			return nil, err
		}
	}

	cp := *c
	return &cp, nil
}

// resolveTarget materializes the selector into a concrete recipient list and
// the group name recorded on the campaign.
func (s *Service) resolveTarget(ctx context.Context, target string) ([]domain.Recipient, string, error) {
	recipients, err := s.directory.Recipients(ctx)
	if err != nil {
		return nil, "", err
	}

	if target == "" || target == TargetAll {
		return recipients, domain.AllRecipientsGroupName, nil
	}

	groups, err := s.directory.Groups(ctx)
	if err != nil {
		return nil, "", err
	}
	for _, g := range groups {
		if g.ID == target {
			var members []domain.Recipient
			for _, r := range recipients {
				if g.Contains(r.ID) {
					members = append(members, r)
				}
			}
			return members, g.Name, nil
		}
	}

	for _, r := range recipients {
		if r.ID == target {
			return []domain.Recipient{r}, r.Name, nil
		}
	}

	return nil, "", domain.Validationf("unknown target %q", target)
}
