package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"postdesk/internal/config"
	"postdesk/pkg/translator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "../../pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEs, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

// fakeBackOffice serves just enough of the REST API to drive the CLI
// commands over real HTTP: one design task and no bound post.
type fakeBackOffice struct {
	mu           sync.Mutex
	taskStatus   string
	uploadedName string
	server       *httptest.Server
}

func newFakeBackOffice(t *testing.T) *fakeBackOffice {
	t.Helper()
	f := &fakeBackOffice{taskStatus: "in_progress"}

	taskJSON := func() gin.H {
		return gin.H{
			"id":              uint64(1),
			"title":           "Arte navidad",
			"task_type":       "design",
			"status":          f.taskStatus,
			"priority":        "high",
			"due_date":        "2025-12-05",
			"assignee_id":     uint64(42),
			"customer_id":     uint64(7),
			"content_unit_id": uint64(901),
			"post_number":     3,
		}
	}

	router := gin.New()
	router.GET("/api/tasks", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		c.JSON(http.StatusOK, []gin.H{taskJSON()})
	})
	router.PUT("/api/tasks/:id/status", func(c *gin.Context) {
		var body struct {
			Status string `json:"status"`
		}
		require.NoError(t, c.ShouldBindJSON(&body))
		f.mu.Lock()
		f.taskStatus = body.Status
		f.mu.Unlock()
		c.Status(http.StatusNoContent)
	})
	router.POST("/api/tasks/:id/deliverables", func(c *gin.Context) {
		file, err := c.FormFile("file")
		require.NoError(t, err)
		f.mu.Lock()
		f.uploadedName = file.Filename
		f.mu.Unlock()
		c.JSON(http.StatusCreated, gin.H{"id": "f1", "name": file.Filename, "url": "/files/f1"})
	})
	router.GET("/api/customers/:id/posts", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{})
	})
	router.GET("/api/customers/:id/posts/:sequence/tasks", func(c *gin.Context) {
		sequence, _ := strconv.Atoi(c.Param("sequence"))
		f.mu.Lock()
		defer f.mu.Unlock()
		if sequence == 3 {
			c.JSON(http.StatusOK, []gin.H{taskJSON()})
			return
		}
		c.JSON(http.StatusOK, []gin.H{})
	})

	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeBackOffice) status() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.taskStatus
}

func (f *fakeBackOffice) uploaded() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploadedName
}

func testConfig(t *testing.T, apiURL string) *config.Config {
	t.Helper()
	return &config.Config{
		APIBaseURL:        apiURL,
		APITimeout:        5 * time.Second,
		PollInterval:      time.Minute,
		SessionDBPath:     filepath.Join(t.TempDir(), "session.db"),
		Language:          "en",
		TranslationFolder: "../../pkg/translator/translation",
	}
}

// runCLI builds a fresh command tree per call, so consecutive calls
// share nothing but the session database and the upstream, exactly like
// separate invocations of the binary.
func runCLI(cfg *config.Config, args ...string) (string, error) {
	root := newRootCmd(cfg)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func loginCLI(t *testing.T, cfg *config.Config) {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	out, err := runCLI(cfg, "login", "--token", token, "--actor", "42", "--email", "ana@example.com")
	require.NoError(t, err)
	require.Contains(t, out, "session saved")
}

func TestCLI_UploadCountsSurviveAcrossInvocations(t *testing.T) {
	upstream := newFakeBackOffice(t)
	cfg := testConfig(t, upstream.server.URL)
	loginCLI(t, cfg)

	deliverable := filepath.Join(t.TempDir(), "entregables", "arte final.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(deliverable), 0o700))
	require.NoError(t, os.WriteFile(deliverable, []byte("png-bytes"), 0o600))

	// Without an upload in this session the design guard blocks review.
	_, err := runCLI(cfg, "review", "1")
	require.Error(t, err)
	require.Equal(t, "in_progress", upstream.status())

	out, err := runCLI(cfg, "upload", "1", deliverable)
	require.NoError(t, err)
	require.Contains(t, out, "uploaded arte final.png")
	// Only the base name crosses the wire, never the local path.
	require.Equal(t, "arte final.png", upstream.uploaded())

	// A later invocation still remembers the upload.
	out, err = runCLI(cfg, "review", "1")
	require.NoError(t, err)
	require.Contains(t, out, "task 1 is now review")
	require.Equal(t, "review", upstream.status())
}

func TestCLI_LoginResetsUploadCounts(t *testing.T) {
	upstream := newFakeBackOffice(t)
	cfg := testConfig(t, upstream.server.URL)
	loginCLI(t, cfg)

	deliverable := filepath.Join(t.TempDir(), "arte.png")
	require.NoError(t, os.WriteFile(deliverable, []byte("png-bytes"), 0o600))
	_, err := runCLI(cfg, "upload", "1", deliverable)
	require.NoError(t, err)

	// Logging in again starts a fresh session, so the earlier upload no
	// longer satisfies the guard.
	loginCLI(t, cfg)
	_, err = runCLI(cfg, "review", "1")
	require.Error(t, err)
	require.Equal(t, "in_progress", upstream.status())
}
