package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"postdesk/internal/adapter/api"
	"postdesk/internal/core/domain"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newClient(t *testing.T, router *gin.Engine) *api.Client {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return api.NewClient(server.URL, 2*time.Second, domain.Session{Token: "tok-123", ActorID: 42})
}

func TestClient_TasksForActor_MapsWireFields(t *testing.T) {
	router := gin.New()
	router.GET("/api/tasks", func(c *gin.Context) {
		require.Equal(t, "Bearer tok-123", c.GetHeader("Authorization"))
		require.Equal(t, "42", c.Query("assignee"))
		c.JSON(http.StatusOK, []gin.H{
			{
				"id": 1, "title": "Diseño post 3", "task_type": "design",
				"status": "pending", "priority": "high", "due_date": "2025-12-05",
				"assignee_id": 42, "customer_id": 7, "content_unit_id": 20, "post_number": 3,
				"deliverable_file": gin.H{"id": "f1", "name": "arte.png", "url": "/files/f1"},
			},
			{
				"id": 2, "title": "Video post 3", "task_type": "video",
				"status": "in_progress", "priority": "low",
				"assignee_id": 42, "customer_id": 7, "content_unit_id": 20, "post_number": 3,
			},
		})
	})
	client := newClient(t, router)

	tasks, err := client.TasksForActor(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, domain.TaskTypeDesign, tasks[0].Type)
	require.Equal(t, domain.TaskStatusTodo, tasks[0].Status, "pending maps to todo")
	require.Equal(t, domain.TaskPriorityHigh, tasks[0].Priority)
	require.Equal(t, "2025-12-05", tasks[0].DueDate.Format("2006-01-02"))
	require.Equal(t, 3, tasks[0].ContentUnitSequence)
	require.NotNil(t, tasks[0].Deliverable)
	require.Equal(t, "f1", tasks[0].Deliverable.ID)
	require.Equal(t, domain.TaskTypeOther, tasks[1].Type, "unknown disciplines collapse to other")
	require.Nil(t, tasks[1].DueDate)
}

func TestClient_TasksForActor_UnknownStatusFails(t *testing.T) {
	router := gin.New()
	router.GET("/api/tasks", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"id": 1, "title": "x", "task_type": "copy", "status": "archived"},
		})
	})
	client := newClient(t, router)

	_, err := client.TasksForActor(context.Background(), 42)

	require.ErrorIs(t, err, domain.ErrUnknownTaskStatus)
}

func TestClient_SetTaskStatus_SendsRequestID(t *testing.T) {
	var requestID string
	router := gin.New()
	router.PUT("/api/tasks/:id/status", func(c *gin.Context) {
		requestID = c.GetHeader("X-Request-ID")
		var body map[string]string
		require.NoError(t, c.ShouldBindJSON(&body))
		require.Equal(t, "review", body["status"])
		c.JSON(http.StatusOK, gin.H{"id": 1, "status": "review"})
	})
	client := newClient(t, router)

	err := client.SetTaskStatus(context.Background(), 1, domain.TaskStatusReview)

	require.NoError(t, err)
	require.NotEmpty(t, requestID)
}

func TestClient_SetTaskStatus_SurfacesUpstreamMessage(t *testing.T) {
	router := gin.New()
	router.PUT("/api/tasks/:id/status", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": gin.H{"code": 422, "message": "a task cannot skip review"},
		})
	})
	client := newClient(t, router)

	err := client.SetTaskStatus(context.Background(), 1, domain.TaskStatusCompleted)

	require.Error(t, err)
	require.Equal(t, "a task cannot skip review", err.Error())

	var upstream *api.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, 422, upstream.Code)
}

func TestClient_Unauthorized_MapsToNotAuthenticated(t *testing.T) {
	router := gin.New()
	router.GET("/api/tasks", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": 401, "message": "token expired"}})
	})
	client := newClient(t, router)

	_, err := client.TasksForActor(context.Background(), 42)

	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestClient_NotFoundWithoutBody_MapsToNotFound(t *testing.T) {
	router := gin.New()
	client := newClient(t, router)

	err := client.SetTaskStatus(context.Background(), 99, domain.TaskStatusReview)

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestClient_UnitsForPeriod(t *testing.T) {
	router := gin.New()
	router.GET("/api/customers/:id/posts", func(c *gin.Context) {
		require.Equal(t, "7", c.Param("id"))
		require.Equal(t, "2025-12", c.Query("period"))
		c.JSON(http.StatusOK, []gin.H{
			{
				"id": 20, "customer_id": 7, "post_number": 3,
				"scheduled_date": "2025-12-01T10:00:00.000Z", "platform": "instagram",
				"copy_in": "gancho", "copy_out": "Hola", "idea_tema": "promo",
				"arte_files": []gin.H{{"id": "f1", "name": "c1.png"}, {"id": "f2", "name": "c2.png"}},
			},
		})
	})
	client := newClient(t, router)

	units, err := client.UnitsForPeriod(context.Background(), 7, "2025-12")

	require.NoError(t, err)
	require.Len(t, units, 1)
	require.Equal(t, 3, units[0].Sequence)
	// The raw wire value is passed through; the binder normalizes.
	require.Equal(t, "2025-12-01T10:00:00.000Z", units[0].ScheduledDate)
	require.Len(t, units[0].ArteFiles, 2)
}

func TestClient_SaveUnitMetadata_SendsFormBody(t *testing.T) {
	var received map[string]any
	router := gin.New()
	router.PUT("/api/customers/:id/posts/:period/:sequence", func(c *gin.Context) {
		require.Equal(t, "2025-12", c.Param("period"))
		require.Equal(t, "3", c.Param("sequence"))
		require.NoError(t, c.ShouldBindJSON(&received))
		c.JSON(http.StatusOK, gin.H{"updated": true})
	})
	client := newClient(t, router)

	err := client.SaveUnitMetadata(context.Background(), 7, "2025-12", 3, domain.MetadataForm{
		ScheduledDate: "2025-12-01",
		ScheduledTime: "10:00",
		Platform:      "instagram",
		CopyOut:       "Hola",
	})

	require.NoError(t, err)
	require.Equal(t, "2025-12-01", received["scheduled_date"])
	require.Equal(t, "10:00", received["scheduled_time"])
	require.Equal(t, "instagram", received["platform"])
	require.Equal(t, "Hola", received["copy_out"])
}

func TestClient_UploadDeliverable(t *testing.T) {
	router := gin.New()
	router.POST("/api/tasks/:id/deliverables", func(c *gin.Context) {
		file, err := c.FormFile("file")
		require.NoError(t, err)
		require.Equal(t, "arte.png", file.Filename)
		c.JSON(http.StatusCreated, gin.H{"id": "f77", "name": "arte.png", "url": "/files/f77"})
	})
	client := newClient(t, router)

	ref, err := client.UploadDeliverable(context.Background(), 1, "arte.png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	require.Equal(t, "f77", ref.ID)
	require.Equal(t, "/files/f77", ref.URL)
}
