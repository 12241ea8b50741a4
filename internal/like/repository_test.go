package like_test

import (
	"sync"
	"testing"

	"github.com/gassama94/drf-api/internal/like"
	"github.com/gassama94/drf-api/internal/post"
	"github.com/gassama94/drf-api/internal/shared/apperr"
	"github.com/gassama94/drf-api/internal/shared/db"
	"github.com/gassama94/drf-api/internal/shared/db/dbtest"
	"github.com/gassama94/drf-api/internal/user"
)

func seedUserAndPost(t *testing.T, store *db.Store) (uint, uint) {
	t.Helper()
	u := &user.User{Username: "adam", PassHash: "x"}
	if err := store.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	p := &post.Post{OwnerID: u.ID, Title: "a title"}
	if err := store.DB.Create(p).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return u.ID, p.ID
}

func TestDuplicateLikeRejected(t *testing.T) {
	store := dbtest.Open(t)
	repo := like.NewRepository(store)
	uid, pid := seedUserAndPost(t, store)

	if err := repo.Create(&like.Like{OwnerID: uid, PostID: pid}); err != nil {
		t.Fatalf("first like failed: %v", err)
	}
	err := repo.Create(&like.Like{OwnerID: uid, PostID: pid})
	if err == nil {
		t.Fatal("second like for the same (owner, post) pair succeeded")
	}
	kind, ok := apperr.KindOf(err)
	if !ok || kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "possible duplicate" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	var count int64
	store.DB.Model(&like.Like{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one like row, got %d", count)
	}
}

func TestConcurrentDuplicateLikes(t *testing.T) {
	store := dbtest.Open(t)
	repo := like.NewRepository(store)
	uid, pid := seedUserAndPost(t, store)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(&like.Like{OwnerID: uid, PostID: pid})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one winning insert, got %d", successes)
	}
	var count int64
	store.DB.Model(&like.Like{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one like row, got %d", count)
	}
}

func TestLikeMissingPost(t *testing.T) {
	store := dbtest.Open(t)
	repo := like.NewRepository(store)
	uid, _ := seedUserAndPost(t, store)

	err := repo.Create(&like.Like{OwnerID: uid, PostID: 999})
	if err == nil {
		t.Fatal("like against a missing post succeeded")
	}
	kind, _ := apperr.KindOf(err)
	if kind != apperr.KindNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestLikesGoneAfterPostDelete(t *testing.T) {
	store := dbtest.Open(t)
	repo := like.NewRepository(store)
	uid, pid := seedUserAndPost(t, store)

	if err := repo.Create(&like.Like{OwnerID: uid, PostID: pid}); err != nil {
		t.Fatalf("like: %v", err)
	}
	if err := store.DB.Delete(&post.Post{}, pid).Error; err != nil {
		t.Fatalf("delete post: %v", err)
	}
	var count int64
	store.DB.Model(&like.Like{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected likes to cascade away, got %d rows", count)
	}
}
