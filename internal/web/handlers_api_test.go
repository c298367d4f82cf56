package web

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/JonMunkholm/storefront/internal/core"
	db "github.com/JonMunkholm/storefront/internal/database"
)

// seedCatalog registers a restaurant with two items through the forms.
func seedCatalog(t *testing.T, s *Server) {
	t.Helper()
	cookies := register(t, s, "restaurant")
	raw := `[{"name":"Ramen","price":"980","category":"Noodles"},{"name":"Gyoza","price":"¥450"}]`
	rec := s.do(t, testRequest{method: http.MethodPost, target: "/form/restaurant", form: menuForm(raw), cookies: cookies})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("seed catalog status = %d", rec.Code)
	}
}

func TestListingPage(t *testing.T) {
	s, _ := newTestServer(t)
	seedCatalog(t, s)

	rec := s.do(t, testRequest{method: http.MethodGet, target: "/data"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Cafe A", "Ramen", "¥980", "Gyoza", "¥450", "Category: Noodles", "Restaurant"} {
		if !strings.Contains(body, want) {
			t.Errorf("listing missing %q", want)
		}
	}
	// Newest first: Gyoza was inserted after Ramen.
	if strings.Index(body, "Gyoza") > strings.Index(body, "Ramen") {
		t.Error("items should be listed newest first")
	}
}

func TestListingDegradesOnReadFailure(t *testing.T) {
	s, repo := newTestServer(t)
	seedCatalog(t, s)
	repo.FailOn("ListStores", nil)

	rec := s.do(t, testRequest{method: http.MethodGet, target: "/data"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "could not be loaded") {
		t.Error("missing warning banner")
	}
	if !strings.Contains(body, "No shops registered yet.") {
		t.Error("failed section should render empty")
	}
	if !strings.Contains(body, "Ramen") {
		t.Error("the catalog section still loads")
	}
}

func TestAPIIndustries(t *testing.T) {
	s, _ := newTestServer(t)

	rec := s.do(t, testRequest{method: http.MethodGet, target: "/api/industries"})

	got := decodeBody[[]IndustryResponse](t, rec)
	tags := make([]string, len(got))
	for i, ind := range got {
		tags[i] = ind.Tag
	}
	if strings.Join(tags, ",") != "restaurant,retail,service,beauty,healthcare,other" {
		t.Errorf("tags = %v", tags)
	}
	if strings.Join(got[0].Fields, ",") != "name,price,description,category,allergyInfo,imageUrl" {
		t.Errorf("restaurant fields = %v", got[0].Fields)
	}
}

func TestAPIReads(t *testing.T) {
	s, _ := newTestServer(t)
	seedCatalog(t, s)

	tests := []struct {
		name     string
		target   string
		want     int
		wantCode string
	}{
		{"stores", "/api/stores", http.StatusOK, ""},
		{"store", "/api/stores/1", http.StatusOK, ""},
		{"store bad id", "/api/stores/abc", http.StatusBadRequest, "VAL007"},
		{"store missing", "/api/stores/999", http.StatusNotFound, "NF001"},
		{"catalog", "/api/catalog", http.StatusOK, ""},
		{"catalog by store", "/api/catalog?store=1&industry=Restaurant", http.StatusOK, ""},
		{"catalog bad store", "/api/catalog?store=x", http.StatusBadRequest, "VAL007"},
		{"catalog item missing", "/api/catalog/999", http.StatusNotFound, "NF001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, testRequest{method: http.MethodGet, target: tt.target})
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
			if rec.Header().Get("Content-Type") != "application/json" {
				t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
			}
			if tt.wantCode != "" {
				if got := decodeBody[ErrorResponse](t, rec); got.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
				}
			}
		})
	}

	items := decodeBody[[]db.CatalogItem](t, s.do(t, testRequest{method: http.MethodGet, target: "/api/catalog?store=1"}))
	if len(items) != 2 || items[0].Name != "Gyoza" {
		t.Errorf("catalog = %+v", items)
	}
}

func TestAPICatalogMutations(t *testing.T) {
	s, repo := newTestServer(t)
	seedCatalog(t, s)
	id := repo.Items()[0].ID
	target := "/api/catalog/" + strconv.FormatInt(id, 10)
	auth := map[string]string{"X-API-Key": testAPIKey}

	t.Run("requires key", func(t *testing.T) {
		rec := s.do(t, testRequest{method: http.MethodPut, target: target, body: `{"price":1}`})
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		rec = s.do(t, testRequest{method: http.MethodDelete, target: target, headers: map[string]string{"X-API-Key": "wrong"}})
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		rec := s.do(t, testRequest{method: http.MethodPut, target: target, body: `{"price":1500,"isAvailable":false}`, headers: auth})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		item := decodeBody[db.CatalogItem](t, rec)
		if item.Price != 1500 || item.IsAvailable {
			t.Errorf("item = %+v", item)
		}

		list := decodeBody[[]db.CatalogItem](t, s.do(t, testRequest{method: http.MethodGet, target: "/api/catalog"}))
		for _, it := range list {
			if it.ID == id {
				t.Error("unavailable item must not be listed")
			}
		}
	})

	t.Run("invalid update", func(t *testing.T) {
		tests := []struct {
			body string
			want int
		}{
			{`{"price":-1}`, http.StatusUnprocessableEntity},
			{`{"name":""}`, http.StatusUnprocessableEntity},
			{`{"bogus":true}`, http.StatusBadRequest},
			{`not json`, http.StatusBadRequest},
		}
		for _, tt := range tests {
			rec := s.do(t, testRequest{method: http.MethodPut, target: target, body: tt.body, headers: auth})
			if rec.Code != tt.want {
				t.Errorf("PUT %s = %d, want %d", tt.body, rec.Code, tt.want)
			}
		}
		fields := decodeBody[ErrorResponse](t, s.do(t, testRequest{method: http.MethodPut, target: target, body: `{"price":-1}`, headers: auth})).Fields
		if len(fields) != 1 || fields[0].Field != "price" {
			t.Errorf("fields = %+v", fields)
		}
	})

	t.Run("delete", func(t *testing.T) {
		rec := s.do(t, testRequest{method: http.MethodDelete, target: target, headers: auth})
		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d", rec.Code)
		}
		rec = s.do(t, testRequest{method: http.MethodDelete, target: target, headers: auth})
		if rec.Code != http.StatusNotFound {
			t.Errorf("second delete = %d, want 404", rec.Code)
		}
		rec = s.do(t, testRequest{method: http.MethodGet, target: target})
		if rec.Code != http.StatusNotFound {
			t.Errorf("get after delete = %d, want 404", rec.Code)
		}
	})

	t.Run("audit log", func(t *testing.T) {
		rec := s.do(t, testRequest{method: http.MethodGet, target: "/api/audit-log?limit=2", headers: auth})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		got := decodeBody[AuditLogResponse](t, rec)
		if got.Count != 2 || got.Limit != 2 {
			t.Fatalf("count = %d limit = %d", got.Count, got.Limit)
		}
		if got.Entries[0].Action != core.ActionCatalogDelete {
			t.Errorf("newest action = %q, want %q", got.Entries[0].Action, core.ActionCatalogDelete)
		}
		if got.Entries[0].IPAddress != "203.0.113.10" {
			t.Errorf("ip = %q", got.Entries[0].IPAddress)
		}

		rec = s.do(t, testRequest{method: http.MethodGet, target: "/api/audit-log"})
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("audit log without key = %d, want 401", rec.Code)
		}
	})
}
