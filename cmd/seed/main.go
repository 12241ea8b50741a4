// Seeds a running instance with demo users, posts, comments, likes and
// follows through the public HTTP API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var baseURL = "http://localhost:8080"

type account struct {
	ID    uint
	Name  string
	Token string
}

func main() {
	if v := os.Getenv("SEED_BASE_URL"); v != "" {
		baseURL = v
	}
	gofakeit.Seed(time.Now().UnixNano())

	var accounts []account
	for i := 0; i < 8; i++ {
		a := register()
		accounts = append(accounts, a)
		log.Printf("registered %s (id=%d)", a.Name, a.ID)
	}

	var postIDs []uint
	for _, a := range accounts {
		for i := 0; i < 3; i++ {
			postIDs = append(postIDs, createPost(a))
		}
	}

	for _, a := range accounts {
		for i := 0; i < 5; i++ {
			likePost(a, postIDs[gofakeit.Number(0, len(postIDs)-1)])
			commentPost(a, postIDs[gofakeit.Number(0, len(postIDs)-1)])
		}
		follow(a, accounts[gofakeit.Number(0, len(accounts)-1)])
	}
	log.Printf("seeded %d users, %d posts", len(accounts), len(postIDs))
}

func post(path, token string, body, out any) error {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s: status %d", path, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func register() account {
	username := gofakeit.Username()
	var out struct {
		ID          uint   `json:"id"`
		Username    string `json:"username"`
		AccessToken string `json:"access_token"`
	}
	err := post("/users/register", "", map[string]string{
		"username": username,
		"email":    gofakeit.Email(),
		"password": "password123",
	}, &out)
	if err != nil {
		log.Fatalf("register: %v", err)
	}
	return account{ID: out.ID, Name: out.Username, Token: out.AccessToken}
}

func createPost(a account) uint {
	var out struct {
		ID uint `json:"id"`
	}
	err := post("/posts", a.Token, map[string]string{
		"title":    gofakeit.Sentence(4),
		"content":  gofakeit.Paragraph(1, 3, 10, " "),
		"category": gofakeit.RandomString([]string{"world", "technology", "travel", "culture"}),
	}, &out)
	if err != nil {
		log.Fatalf("create post: %v", err)
	}
	return out.ID
}

func likePost(a account, postID uint) {
	// Duplicate likes come back 400; that is expected noise while seeding.
	_ = post("/likes", a.Token, map[string]uint{"post": postID}, nil)
}

func commentPost(a account, postID uint) {
	err := post("/comments", a.Token, map[string]any{
		"post": postID, "content": gofakeit.Sentence(8),
	}, nil)
	if err != nil {
		log.Printf("comment: %v", err)
	}
}

func follow(a, target account) {
	if a.ID == target.ID {
		return
	}
	_ = post("/followers", a.Token, map[string]uint{"followed": target.ID}, nil)
}
