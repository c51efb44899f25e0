package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yasith-1/zentask-admin/pkg/models"
)

func TestListDatabaseSettings(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]models.DatabaseSetting{
			{ID: 1, DatabaseName: "myapp_db", Username: "admin", Host: "localhost", Port: 5432},
			{ID: 2, DatabaseName: "reports", Username: "report", Host: "10.0.0.2", Port: 3306},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	settings, err := client.ListDatabaseSettings(context.Background())
	if err != nil {
		t.Fatalf("ListDatabaseSettings failed: %v", err)
	}
	if gotPath != "/get-all" {
		t.Errorf("Expected path /get-all, got %s", gotPath)
	}
	if len(settings) != 2 {
		t.Fatalf("Expected 2 settings, got %d", len(settings))
	}
	if settings[0].Port != 5432 {
		t.Errorf("Expected port 5432, got %d", settings[0].Port)
	}
}

func TestCategoryPathSuffixes(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	tests := []struct {
		cat  models.Category
		want string
	}{
		{models.CategoryDatabase, "/get-all"},
		{models.CategoryEmail, "/get-all-email"},
		{models.CategorySMS, "/get-all-sms"},
	}
	for _, tt := range tests {
		if _, err := client.List(context.Background(), tt.cat); err != nil {
			t.Fatalf("List(%s) failed: %v", tt.cat, err)
		}
		if gotPath != tt.want {
			t.Errorf("List(%s): expected path %s, got %s", tt.cat, tt.want, gotPath)
		}
	}
}

func TestCreateReturnsServerMessage(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"message": "Database settings saved successfully"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	payload := map[string]any{
		"databaseName": "myapp_db",
		"username":     "admin",
		"host":         "localhost",
		"port":         5432,
		"password":     "secret",
	}
	msg, err := client.Create(context.Background(), models.CategoryDatabase, payload)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/add" {
		t.Errorf("Expected POST /add, got %s %s", gotMethod, gotPath)
	}
	if msg != "Database settings saved successfully" {
		t.Errorf("Expected server message, got %q", msg)
	}
	if port, ok := gotBody["port"].(float64); !ok || port != 5432 {
		t.Errorf("Expected numeric port in body, got %v", gotBody["port"])
	}
}

func TestUpdatePutsIDInBody(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"message": "updated"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Update(context.Background(), models.CategoryEmail, 7, map[string]any{"smtpHost": "smtp.gmail.com"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/update-email" {
		t.Errorf("Expected PUT /update-email, got %s %s", gotMethod, gotPath)
	}
	if id, ok := gotBody["id"].(float64); !ok || id != 7 {
		t.Errorf("Expected id 7 in body, got %v", gotBody["id"])
	}
}

func TestRemoveUsesDeleteWithID(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.Remove(context.Background(), models.CategorySMS, 3); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/remove-sms/3" {
		t.Errorf("Expected DELETE /remove-sms/3, got %s %s", gotMethod, gotPath)
	}
}

func TestGetOneConvertsToRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get/7" {
			t.Errorf("Expected /get/7, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.DatabaseSetting{
			ID: 7, DatabaseName: "myapp_db", Username: "admin", Host: "localhost", Port: 5432, Password: "secret",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	record, err := client.GetOne(context.Background(), models.CategoryDatabase, 7)
	if err != nil {
		t.Fatalf("GetOne failed: %v", err)
	}
	if record.ID != 7 {
		t.Errorf("Expected id 7, got %d", record.ID)
	}
	if record.Values[models.FieldPort] != "5432" {
		t.Errorf("Expected port value %q, got %q", "5432", record.Values[models.FieldPort])
	}
	if _, ok := record.Values[models.FieldPassword]; ok {
		t.Error("Password must not appear in the generic record")
	}
}

func TestServerErrorSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Database name already exists"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Create(context.Background(), models.CategoryDatabase, map[string]any{})
	if err == nil {
		t.Fatal("Expected an error for a 409 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError in chain, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", apiErr.StatusCode)
	}
	if got := ServerMessage(err); got != "Database name already exists" {
		t.Errorf("Expected server message extracted, got %q", got)
	}
}

func TestServerErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListDatabaseSettings(context.Background())
	if err == nil {
		t.Fatal("Expected an error for a 502 response")
	}
	if got := ServerMessage(err); got != "" {
		t.Errorf("No structured payload: ServerMessage should be empty, got %q", got)
	}
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.ListDatabaseSettings(context.Background())
	if err == nil {
		t.Fatal("Expected a transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("Connection failures should not be APIErrors")
	}
}
