package documents_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"lexwatch-backend/internal/bootstrap"
	"lexwatch-backend/internal/shared/config"
)

const sampleLaw = `Law 4/2026 of 12 February on the digital registry of administrative
procedures. Article 1. This law establishes the conditions under which public
bodies must publish procedural records in the shared digital registry,
including deadlines, responsible units and accessibility requirements.`

func buildTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func uploadFile(t *testing.T, router *gin.Engine, name, folder, content string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if folder != "" {
		if err := writer.WriteField("folder", folder); err != nil {
			t.Fatalf("write folder field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestDocumentsUploadListGet(t *testing.T) {
	router := buildTestApp(t)

	resp := uploadFile(t, router, "law_4_2026.txt", "2026-02", sampleLaw)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		DocumentID string `json:"documentId"`
		FileName   string `json:"fileName"`
		Folder     string `json:"folder"`
		TextLength int    `json:"textLength"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.DocumentID == "" {
		t.Fatalf("expected documentId, got empty")
	}
	if created.Folder != "2026-02" {
		t.Errorf("expected folder 2026-02, got %s", created.Folder)
	}
	if created.TextLength < 100 {
		t.Errorf("expected extracted text length >= 100, got %d", created.TextLength)
	}

	// List the publication period.
	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/documents?folder=2026-02", nil)
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var listed []struct {
		DocumentID string `json:"documentId"`
		FileName   string `json:"fileName"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].DocumentID != created.DocumentID {
		t.Fatalf("expected uploaded document in list, got %+v", listed)
	}

	// Fetch by ID.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+created.DocumentID, nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}

	// Folders include the period.
	reqFolders := httptest.NewRequest(http.MethodGet, "/api/v1/documents/folders", nil)
	respFolders := httptest.NewRecorder()
	router.ServeHTTP(respFolders, reqFolders)
	if respFolders.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respFolders.Code)
	}
	if !strings.Contains(respFolders.Body.String(), "2026-02") {
		t.Fatalf("expected folders to include 2026-02, got %s", respFolders.Body.String())
	}
}

func TestDocumentsUploadRejectsShortText(t *testing.T) {
	router := buildTestApp(t)

	resp := uploadFile(t, router, "cover.txt", "", "Cover page only.")
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestDocumentsUploadRejectsBadFolder(t *testing.T) {
	router := buildTestApp(t)

	resp := uploadFile(t, router, "law.txt", "febrero-2026", sampleLaw)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestDocumentsGetUnknownReturns404(t *testing.T) {
	router := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
