package tracking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ignite/moodletter/internal/domain"
	"github.com/ignite/moodletter/internal/render"
	"github.com/ignite/moodletter/internal/repository/kv"
	"github.com/ignite/moodletter/internal/service/campaign"
	"github.com/ignite/moodletter/internal/service/directory"
	"github.com/ignite/moodletter/internal/storage"
	"github.com/ignite/moodletter/internal/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFixture wires the full stack on a temp-dir local gateway and sends one
// campaign to two recipients. Returns the tracking server, the campaign
// service (to inspect state), and the campaign.
func newFixture(t *testing.T) (*httptest.Server, *campaign.Service, *domain.Campaign) {
	gw, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { gw.Close() })

	dirSvc := directory.NewService(kv.NewDirectoryRepository(gw))
	campSvc := campaign.NewService(kv.NewCampaignRepository(gw), dirSvc)

	ctx := context.Background()
	_, err = dirSvc.AddRecipient(ctx, "Jane", "jane@x.com")
	require.NoError(t, err)
	_, err = dirSvc.AddRecipient(ctx, "Ali", "ali@x.com")
	require.NoError(t, err)

	c, err := campSvc.Send(ctx, campaign.SendInput{
		Mood: domain.MoodCelebration, Subject: "Hello", Body: "Hi {{ name }}!", Target: "all",
	})
	require.NoError(t, err)

	renderer, err := render.New()
	require.NoError(t, err)

	srv := httptest.NewServer(tracking.NewHandler(campSvc, renderer).Routes())
	t.Cleanup(srv.Close)
	return srv, campSvc, c
}

func TestViewMarksOpenOnce(t *testing.T) {
	srv, svc, c := newFixture(t)
	rid := c.Recipients[0].ID

	for i := 0; i < 2; i++ {
		resp, err := http.Get(srv.URL + c.Recipients[0].Link)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	got, err := svc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{rid}, got.Opens)
	assert.Empty(t, got.Clicks)
}

func TestClickIsIdempotentAndImpliesOpen(t *testing.T) {
	srv, svc, c := newFixture(t)
	rid := c.Recipients[1].ID
	clickURL := srv.URL + c.Recipients[1].Link + "/click"

	for i := 0; i < 2; i++ {
		resp, err := http.Post(clickURL, "application/x-www-form-urlencoded", nil)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	got, err := svc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{rid}, got.Opens)
	assert.Equal(t, []string{rid}, got.Clicks)
}

func TestPixelMarksOpen(t *testing.T) {
	srv, svc, c := newFixture(t)
	rid := c.Recipients[0].ID

	resp, err := http.Get(srv.URL + "/track/open/" + c.ID + "/" + rid)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/gif", resp.Header.Get("Content-Type"))

	got, _ := svc.Get(context.Background(), c.ID)
	assert.Equal(t, []string{rid}, got.Opens)
}

func TestPixelServedEvenForBadLink(t *testing.T) {
	srv, _, _ := newFixture(t)

	resp, err := http.Get(srv.URL + "/track/open/nope/nobody")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/gif", resp.Header.Get("Content-Type"))
}

func TestUnknownLinkIsTerminal(t *testing.T) {
	srv, svc, c := newFixture(t)

	// Unknown campaign id.
	resp, err := http.Get(srv.URL + "/view/deleted-campaign/" + c.Recipients[0].ID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Known campaign, unknown recipient.
	resp, err = http.Get(srv.URL + "/view/" + c.ID + "/stranger")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// No mutation happened.
	got, err := svc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Opens)
	assert.Empty(t, got.Clicks)
}
