package session_test

import (
	"sync"
	"testing"

	"turibot/internal/model/convo"
	"turibot/internal/service/session"
)

func TestGetDefaultsToGeneral(t *testing.T) {
	store := session.NewStore()

	got := store.Get(42)
	if got.Category != convo.CategoryGeneral {
		t.Fatalf("expected general category for unseen user, got %s", got.Category)
	}
	if store.Count() != 1 {
		t.Fatalf("expected session created on first touch, count=%d", store.Count())
	}
}

func TestSelectLastWriteWins(t *testing.T) {
	store := session.NewStore()

	store.Select(42, "gastronomia")
	got := store.Select(42, "actividades")
	if got != convo.CategoryActivities {
		t.Fatalf("unexpected category returned: %s", got)
	}
	if sess := store.Get(42); sess.Category != convo.CategoryActivities {
		t.Fatalf("unexpected stored category: %s", sess.Category)
	}
}

func TestSelectCreatesSession(t *testing.T) {
	store := session.NewStore()

	if got := store.Select(7, "destinos"); got != convo.CategoryDestinations {
		t.Fatalf("unexpected category: %s", got)
	}
	if store.Count() != 1 {
		t.Fatalf("expected one session, got %d", store.Count())
	}
}

func TestStoreConcurrentUsers(t *testing.T) {
	store := session.NewStore()

	var wg sync.WaitGroup
	for _, userID := range []int64{1, 2, 3, 4} {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				store.Select(id, "gastronomia")
				store.Get(id)
			}
			store.Select(id, "actividades")
		}(userID)
	}
	wg.Wait()

	if store.Count() != 4 {
		t.Fatalf("expected 4 sessions, got %d", store.Count())
	}
	for _, userID := range []int64{1, 2, 3, 4} {
		if sess := store.Get(userID); sess.Category != convo.CategoryActivities {
			t.Fatalf("user %d has category %s", userID, sess.Category)
		}
	}
}
