package follower_test

import (
	"testing"

	"github.com/gassama94/drf-api/internal/events"
	"github.com/gassama94/drf-api/internal/follower"
	"github.com/gassama94/drf-api/internal/shared/apperr"
	"github.com/gassama94/drf-api/internal/shared/db"
	"github.com/gassama94/drf-api/internal/shared/db/dbtest"
	"github.com/gassama94/drf-api/internal/user"
)

func seedUsers(t *testing.T, store *db.Store, names ...string) []uint {
	t.Helper()
	ids := make([]uint, len(names))
	for i, name := range names {
		u := &user.User{Username: name, PassHash: "x"}
		if err := store.DB.Create(u).Error; err != nil {
			t.Fatalf("seed user %s: %v", name, err)
		}
		ids[i] = u.ID
	}
	return ids
}

func newService(store *db.Store) follower.Service {
	return follower.NewService(follower.NewRepository(store), events.Noop{})
}

func TestFollowAndDuplicate(t *testing.T) {
	store := dbtest.Open(t)
	svc := newService(store)
	ids := seedUsers(t, store, "adam", "brian")

	v, err := svc.Create(ids[0], follower.CreateReq{Followed: ids[1]})
	if err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if v.Owner != "adam" || v.FollowedName != "brian" {
		t.Fatalf("unexpected view: %+v", v)
	}

	_, err = svc.Create(ids[0], follower.CreateReq{Followed: ids[1]})
	if err == nil {
		t.Fatal("duplicate follow succeeded")
	}
	if err.Error() != "possible duplicate" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestSelfFollowRejected(t *testing.T) {
	store := dbtest.Open(t)
	svc := newService(store)
	ids := seedUsers(t, store, "adam")

	_, err := svc.Create(ids[0], follower.CreateReq{Followed: ids[0]})
	if err == nil {
		t.Fatal("self-follow succeeded")
	}
	kind, _ := apperr.KindOf(err)
	if kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUnfollowOwnerOnly(t *testing.T) {
	store := dbtest.Open(t)
	svc := newService(store)
	ids := seedUsers(t, store, "adam", "brian")

	v, err := svc.Create(ids[0], follower.CreateReq{Followed: ids[1]})
	if err != nil {
		t.Fatalf("follow: %v", err)
	}

	if err := svc.Delete(v.ID, ids[1]); err == nil {
		t.Fatal("non-owner unfollow succeeded")
	}
	if err := svc.Delete(v.ID, ids[0]); err != nil {
		t.Fatalf("owner unfollow failed: %v", err)
	}
	if _, err := svc.Get(v.ID); err == nil {
		t.Fatal("follow record still readable after unfollow")
	}
}

func TestReFollowAfterUnfollow(t *testing.T) {
	store := dbtest.Open(t)
	svc := newService(store)
	ids := seedUsers(t, store, "adam", "brian")

	v, err := svc.Create(ids[0], follower.CreateReq{Followed: ids[1]})
	if err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := svc.Delete(v.ID, ids[0]); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if _, err := svc.Create(ids[0], follower.CreateReq{Followed: ids[1]}); err != nil {
		t.Fatalf("re-follow after unfollow failed: %v", err)
	}
}
