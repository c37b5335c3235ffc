package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"
)

const baseURL = "http://localhost:8080/api/v1"

type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Segment string `json:"segment"`
}

type Objective struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Title    string `json:"title"`
}

type Plan struct {
	ID            string `json:"id"`
	ClientID      string `json:"client_id"`
	Title         string `json:"title"`
	MonthOfRecord string `json:"month_of_record"`
}

type Post struct {
	ID            string `json:"id"`
	PlanID        string `json:"plan_id"`
	Title         string `json:"title"`
	Format        string `json:"format"`
	ScheduledDate string `json:"scheduled_date"`
	Status        string `json:"status"`
}

type GenerateRequest struct {
	PlanejamentoID  string `json:"planejamentoId"`
	QuantidadePosts int    `json:"quantidadePosts"`
}

type GenerateResponse struct {
	Success    bool   `json:"success"`
	Posts      []Post `json:"posts"`
	Quantidade int    `json:"quantidade"`
}

type RescheduleRequest struct {
	PostID  string `json:"postId"`
	NewDate string `json:"newDate"`
	UserID  string `json:"userId"`
}

type RescheduleResponse struct {
	Success   bool  `json:"success"`
	Post      *Post `json:"post"`
	Conflicts *struct {
		Count int `json:"count"`
	} `json:"conflicts"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func postJSON(t *testing.T, url string, in, out interface{}) *http.Response {
	t.Helper()

	body, _ := json.Marshal(in)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("Failed to decode response from %s: %v (%s)", url, err, string(raw))
		}
	}
	return resp
}

// Helper to create a client with two objectives and a plan for next month
func createTestPlan(t *testing.T) (Client, Plan) {
	t.Helper()

	var c Client
	resp := postJSON(t, baseURL+"/clients", map[string]string{
		"name":    "Padaria do Bairro",
		"segment": "food",
	}, &c)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201 creating client, got %d", resp.StatusCode)
	}

	for _, title := range []string{"Aumentar vendas", "Fortalecer marca"} {
		var o Objective
		resp := postJSON(t, fmt.Sprintf("%s/clients/%s/objectives", baseURL, c.ID), map[string]string{
			"title": title,
		}, &o)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("Expected status 201 creating objective, got %d", resp.StatusCode)
		}
	}

	month := time.Now().AddDate(0, 1, 0).Format("2006-01")
	var p Plan
	resp = postJSON(t, baseURL+"/plans", map[string]string{
		"client_id":       c.ID,
		"title":           "Plano editorial",
		"month_of_record": month,
	}, &p)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201 creating plan, got %d", resp.StatusCode)
	}

	return c, p
}

func deleteTestClient(t *testing.T, id string) {
	t.Helper()

	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/clients/%s", baseURL, id), nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Logf("Warning: Failed to delete client %s: %v", id, err)
		return
	}
	defer resp.Body.Close()
}

// TestScheduleGenerate tests POST /posts/generate
func TestScheduleGenerate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	t.Run("generate exact quantity", func(t *testing.T) {
		c, p := createTestPlan(t)
		defer deleteTestClient(t, c.ID)

		var out GenerateResponse
		resp := postJSON(t, baseURL+"/posts/generate", GenerateRequest{
			PlanejamentoID:  p.ID,
			QuantidadePosts: 8,
		}, &out)

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", resp.StatusCode)
		}
		if out.Quantidade != 8 {
			t.Errorf("Expected quantidade 8, got %d", out.Quantidade)
		}
		if len(out.Posts) != 8 {
			t.Errorf("Expected 8 posts, got %d", len(out.Posts))
		}
		for _, post := range out.Posts {
			if post.Status != "draft" {
				t.Errorf("Expected status 'draft', got '%s'", post.Status)
			}
		}

		t.Logf("Generated %d posts for plan %s", out.Quantidade, p.ID)
	})

	t.Run("generate with zero quantity fails", func(t *testing.T) {
		c, p := createTestPlan(t)
		defer deleteTestClient(t, c.ID)

		var out ErrorResponse
		resp := postJSON(t, baseURL+"/posts/generate", GenerateRequest{
			PlanejamentoID:  p.ID,
			QuantidadePosts: 0,
		}, &out)

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", resp.StatusCode)
		}
		if out.Code != "VALIDATION_ERROR" {
			t.Errorf("Expected code VALIDATION_ERROR, got '%s'", out.Code)
		}
	})

	t.Run("generate for unknown plan returns 404", func(t *testing.T) {
		var out ErrorResponse
		resp := postJSON(t, baseURL+"/posts/generate", GenerateRequest{
			PlanejamentoID:  "8b9f2a1e-0000-0000-0000-000000000000",
			QuantidadePosts: 5,
		}, &out)

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", resp.StatusCode)
		}
		if out.Code != "NOT_FOUND" {
			t.Errorf("Expected code NOT_FOUND, got '%s'", out.Code)
		}
	})
}

// TestReschedule tests POST /posts/reschedule
func TestReschedule(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	t.Run("reschedule to a future date", func(t *testing.T) {
		c, p := createTestPlan(t)
		defer deleteTestClient(t, c.ID)

		var gen GenerateResponse
		postJSON(t, baseURL+"/posts/generate", GenerateRequest{
			PlanejamentoID:  p.ID,
			QuantidadePosts: 3,
		}, &gen)
		if len(gen.Posts) != 3 {
			t.Fatalf("Expected 3 generated posts, got %d", len(gen.Posts))
		}

		newDate := time.Now().AddDate(0, 2, 0).Format("2006-01-02")
		var out RescheduleResponse
		resp := postJSON(t, baseURL+"/posts/reschedule", RescheduleRequest{
			PostID:  gen.Posts[0].ID,
			NewDate: newDate,
			UserID:  "e2e",
		}, &out)

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", resp.StatusCode)
		}
		if !out.Success {
			t.Error("Expected success true")
		}

		t.Logf("Rescheduled post %s to %s", gen.Posts[0].ID, newDate)
	})

	t.Run("reschedule to a past date fails with INVALID_DATE", func(t *testing.T) {
		c, p := createTestPlan(t)
		defer deleteTestClient(t, c.ID)

		var gen GenerateResponse
		postJSON(t, baseURL+"/posts/generate", GenerateRequest{
			PlanejamentoID:  p.ID,
			QuantidadePosts: 1,
		}, &gen)
		if len(gen.Posts) != 1 {
			t.Fatalf("Expected 1 generated post, got %d", len(gen.Posts))
		}

		var out ErrorResponse
		resp := postJSON(t, baseURL+"/posts/reschedule", RescheduleRequest{
			PostID:  gen.Posts[0].ID,
			NewDate: time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
			UserID:  "e2e",
		}, &out)

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", resp.StatusCode)
		}
		if out.Code != "INVALID_DATE" {
			t.Errorf("Expected code INVALID_DATE, got '%s'", out.Code)
		}
	})

	t.Run("reschedule without postId fails", func(t *testing.T) {
		var out ErrorResponse
		resp := postJSON(t, baseURL+"/posts/reschedule", RescheduleRequest{
			NewDate: time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		}, &out)

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", resp.StatusCode)
		}
		if out.Code != "VALIDATION_ERROR" {
			t.Errorf("Expected code VALIDATION_ERROR, got '%s'", out.Code)
		}
	})
}

// TestPostList tests GET /posts
func TestPostList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	t.Run("list posts by plan", func(t *testing.T) {
		c, p := createTestPlan(t)
		defer deleteTestClient(t, c.ID)

		var gen GenerateResponse
		postJSON(t, baseURL+"/posts/generate", GenerateRequest{
			PlanejamentoID:  p.ID,
			QuantidadePosts: 4,
		}, &gen)

		resp, err := http.Get(fmt.Sprintf("%s/posts?plan_id=%s", baseURL, p.ID))
		if err != nil {
			t.Fatalf("Failed to list posts: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", resp.StatusCode)
		}

		var listResp struct {
			Posts []Post `json:"posts"`
			Total int64  `json:"total"`
		}
		json.NewDecoder(resp.Body).Decode(&listResp)

		if listResp.Total != 4 {
			t.Errorf("Expected total 4, got %d", listResp.Total)
		}

		t.Logf("Listed %d posts for plan %s", len(listResp.Posts), p.ID)
	})

	t.Run("get non-existent post returns 404", func(t *testing.T) {
		resp, err := http.Get(fmt.Sprintf("%s/posts/%s", baseURL, "8b9f2a1e-0000-0000-0000-000000000001"))
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", resp.StatusCode)
		}
	})
}

// TestClientDelete tests DELETE /clients/{id}
func TestClientDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	t.Run("deleting a client cascades plans and posts", func(t *testing.T) {
		c, p := createTestPlan(t)

		var gen GenerateResponse
		postJSON(t, baseURL+"/posts/generate", GenerateRequest{
			PlanejamentoID:  p.ID,
			QuantidadePosts: 3,
		}, &gen)
		if len(gen.Posts) != 3 {
			t.Fatalf("Expected 3 generated posts, got %d", len(gen.Posts))
		}

		req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/clients/%s", baseURL, c.ID), nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Failed to delete client: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("Expected status 204 deleting client with posts, got %d", resp.StatusCode)
		}

		for _, url := range []string{
			fmt.Sprintf("%s/plans/%s", baseURL, p.ID),
			fmt.Sprintf("%s/posts/%s", baseURL, gen.Posts[0].ID),
		} {
			resp, err := http.Get(url)
			if err != nil {
				t.Fatalf("Failed to make request: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusNotFound {
				t.Errorf("Expected 404 for %s after client delete, got %d", url, resp.StatusCode)
			}
		}
	})
}
