package profile_test

import (
	"testing"

	"github.com/gassama94/drf-api/internal/follower"
	"github.com/gassama94/drf-api/internal/media"
	"github.com/gassama94/drf-api/internal/post"
	"github.com/gassama94/drf-api/internal/profile"
	"github.com/gassama94/drf-api/internal/shared/apperr"
	"github.com/gassama94/drf-api/internal/shared/db"
	"github.com/gassama94/drf-api/internal/shared/db/dbtest"
	"github.com/gassama94/drf-api/internal/user"
)

func newService(t *testing.T, store *db.Store) profile.Service {
	t.Helper()
	return profile.NewService(profile.NewRepository(store), media.NewDirStorage(t.TempDir()))
}

func provisionUser(t *testing.T, store *db.Store, svc profile.Service, name string) uint {
	t.Helper()
	u := &user.User{Username: name, PassHash: "x"}
	if err := store.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := svc.ProvisionFor(store.DB, u.ID); err != nil {
		t.Fatalf("provision profile: %v", err)
	}
	return u.ID
}

func TestProvisionExactlyOnce(t *testing.T) {
	store := dbtest.Open(t)
	svc := newService(t, store)
	uid := provisionUser(t, store, svc, "adam")

	if err := svc.ProvisionFor(store.DB, uid); err == nil {
		t.Fatal("second profile for the same user succeeded")
	}
	var count int64
	store.DB.Model(&profile.Profile{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one profile, got %d", count)
	}
}

func TestDerivedCounts(t *testing.T) {
	store := dbtest.Open(t)
	svc := newService(t, store)
	adam := provisionUser(t, store, svc, "adam")
	brian := provisionUser(t, store, svc, "brian")

	for i := 0; i < 3; i++ {
		if err := store.DB.Create(&post.Post{OwnerID: adam, Title: "t"}).Error; err != nil {
			t.Fatalf("seed post: %v", err)
		}
	}
	// brian follows adam: adam gains a follower, brian gains a following.
	if err := store.DB.Create(&follower.Follower{OwnerID: brian, FollowedID: adam}).Error; err != nil {
		t.Fatalf("seed follow: %v", err)
	}

	views, err := svc.List(profile.ListOpts{Limit: 50})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(views))
	}
	byOwner := map[string]profile.View{}
	for _, v := range views {
		byOwner[v.Owner] = v
	}
	a := byOwner["adam"]
	if a.PostsCount != 3 || a.FollowersCount != 1 || a.FollowingCount != 0 {
		t.Errorf("adam counts = posts:%d followers:%d following:%d", a.PostsCount, a.FollowersCount, a.FollowingCount)
	}
	b := byOwner["brian"]
	if b.PostsCount != 0 || b.FollowersCount != 0 || b.FollowingCount != 1 {
		t.Errorf("brian counts = posts:%d followers:%d following:%d", b.PostsCount, b.FollowersCount, b.FollowingCount)
	}
}

func TestFollowingIDForRequester(t *testing.T) {
	store := dbtest.Open(t)
	svc := newService(t, store)
	adam := provisionUser(t, store, svc, "adam")
	brian := provisionUser(t, store, svc, "brian")

	fl := &follower.Follower{OwnerID: brian, FollowedID: adam}
	if err := store.DB.Create(fl).Error; err != nil {
		t.Fatalf("seed follow: %v", err)
	}

	var adamProfile profile.Profile
	if err := store.DB.First(&adamProfile, "owner_id = ?", adam).Error; err != nil {
		t.Fatalf("load profile: %v", err)
	}

	v, err := svc.Get(adamProfile.ID, brian)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v.FollowingID == nil || *v.FollowingID != fl.ID {
		t.Fatalf("expected following_id %d, got %v", fl.ID, v.FollowingID)
	}

	v, err = svc.Get(adamProfile.ID, 0)
	if err != nil {
		t.Fatalf("get anonymous: %v", err)
	}
	if v.FollowingID != nil {
		t.Fatalf("anonymous requester got following_id %v", *v.FollowingID)
	}
}

func TestUpdateOwnerOnly(t *testing.T) {
	store := dbtest.Open(t)
	svc := newService(t, store)
	adam := provisionUser(t, store, svc, "adam")
	brian := provisionUser(t, store, svc, "brian")

	var adamProfile profile.Profile
	if err := store.DB.First(&adamProfile, "owner_id = ?", adam).Error; err != nil {
		t.Fatalf("load profile: %v", err)
	}

	_, err := svc.Update(adamProfile.ID, brian, profile.UpdateReq{Name: "hijack"}, nil, "", "")
	if err == nil {
		t.Fatal("non-owner update succeeded")
	}
	kind, _ := apperr.KindOf(err)
	if kind != apperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}

	v, err := svc.Update(adamProfile.ID, adam, profile.UpdateReq{Name: "Adam", Content: "hi"}, nil, "", "")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if v.Name != "Adam" || v.Content != "hi" {
		t.Fatalf("update not reflected: %+v", v)
	}
}
