package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/taskportal/backend/internal/constants"
	"github.com/taskportal/backend/internal/database"
	"github.com/taskportal/backend/internal/models"
	"github.com/taskportal/backend/internal/repository"
	"github.com/taskportal/backend/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db          *gorm.DB
	taskService *services.TaskService
	handler     *TaskHandler
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Qualification{},
		&models.Task{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	userRepo := repository.NewUserRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	suite.taskService = services.NewTaskService(taskRepo, userRepo, false)
	suite.handler = NewTaskHandler(suite.taskService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *TaskHandlerTestSuite) createTestUser(email string, role models.Role) *models.User {
	user := &models.User{
		FullName:     "Test User",
		Email:        email,
		PasswordHash: "hashedpassword",
		Role:         role,
		Status:       "active",
	}
	suite.db.Create(user)
	return user
}

func (suite *TaskHandlerTestSuite) createTestTask(title string, assignedTo uint64) *models.Task {
	task := &models.Task{
		Title:       title,
		Description: "Test Description",
		Priority:    models.TaskPriorityMedium,
		Status:      models.TaskStatusPending,
		AssignedTo:  assignedTo,
	}
	suite.db.Create(task)
	return task
}

// Helper function to create an authenticated context
func (suite *TaskHandlerTestSuite) createAuthContext(method, url string, body []byte, principal models.Principal) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, principal.ID)
	c.Set(constants.ContextKeyRole, principal.Role)

	return c, w
}

func (suite *TaskHandlerTestSuite) TestCreateTask_AsAdmin() {
	admin := suite.createTestUser("admin@x.com", models.RoleAdmin)
	assignee := suite.createTestUser("worker@x.com", models.RoleEmployee)

	body, _ := json.Marshal(map[string]string{
		"title":    "Prepare report",
		"priority": "High",
		"email":    "worker@x.com",
		"due_date": "2026-09-15",
	})

	c, w := suite.createAuthContext(http.MethodPost, "/api/tasks", body, models.Principal{ID: admin.ID, Role: models.RoleAdmin})
	suite.handler.CreateTask(c)

	suite.Equal(http.StatusCreated, w.Code)

	var task models.Task
	suite.Require().NoError(suite.db.First(&task).Error)
	suite.Equal("Prepare report", task.Title)
	suite.Equal(assignee.ID, task.AssignedTo)
	suite.Equal(models.TaskPriorityHigh, task.Priority)
	suite.Equal(models.TaskStatusPending, task.Status)
	suite.Require().NotNil(task.DueDate)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Forbidden() {
	employee := suite.createTestUser("worker@x.com", models.RoleEmployee)

	body, _ := json.Marshal(map[string]string{
		"title": "Prepare report",
		"email": "worker@x.com",
	})

	c, w := suite.createAuthContext(http.MethodPost, "/api/tasks", body, models.Principal{ID: employee.ID, Role: models.RoleEmployee})
	suite.handler.CreateTask(c)

	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_AssigneeNotFound() {
	admin := suite.createTestUser("admin@x.com", models.RoleAdmin)

	body, _ := json.Marshal(map[string]string{
		"title": "Prepare report",
		"email": "ghost@x.com",
	})

	c, w := suite.createAuthContext(http.MethodPost, "/api/tasks", body, models.Principal{ID: admin.ID, Role: models.RoleAdmin})
	suite.handler.CreateTask(c)

	suite.Equal(http.StatusNotFound, w.Code)

	// No task row may be created on a failed assignee lookup.
	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_MissingTitle() {
	admin := suite.createTestUser("admin@x.com", models.RoleAdmin)
	suite.createTestUser("worker@x.com", models.RoleEmployee)

	body, _ := json.Marshal(map[string]string{
		"email": "worker@x.com",
	})

	c, w := suite.createAuthContext(http.MethodPost, "/api/tasks", body, models.Principal{ID: admin.ID, Role: models.RoleAdmin})
	suite.handler.CreateTask(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestListTasks_AdminSeesAll() {
	admin := suite.createTestUser("admin@x.com", models.RoleAdmin)
	worker := suite.createTestUser("worker@x.com", models.RoleEmployee)
	other := suite.createTestUser("other@x.com", models.RoleEmployee)

	suite.createTestTask("Task A", worker.ID)
	suite.createTestTask("Task B", other.ID)

	c, w := suite.createAuthContext(http.MethodGet, "/api/tasks", nil, models.Principal{ID: admin.ID, Role: models.RoleAdmin})
	suite.handler.ListTasks(c)

	suite.Equal(http.StatusOK, w.Code)

	var rows []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Len(rows, 2)
}

func (suite *TaskHandlerTestSuite) TestListTasks_EmployeeFiltered() {
	worker := suite.createTestUser("worker@x.com", models.RoleEmployee)
	other := suite.createTestUser("other@x.com", models.RoleEmployee)

	mine := suite.createTestTask("Mine", worker.ID)
	suite.createTestTask("Not mine", other.ID)

	c, w := suite.createAuthContext(http.MethodGet, "/api/tasks", nil, models.Principal{ID: worker.ID, Role: models.RoleEmployee})
	suite.handler.ListTasks(c)

	suite.Equal(http.StatusOK, w.Code)

	var rows []struct {
		ID    uint64 `json:"id"`
		Title string `json:"title"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Require().Len(rows, 1)
	suite.Equal(mine.ID, rows[0].ID)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_CoalescesFields() {
	admin := suite.createTestUser("admin@x.com", models.RoleAdmin)
	worker := suite.createTestUser("worker@x.com", models.RoleEmployee)
	task := suite.createTestTask("Keep this title", worker.ID)

	body, _ := json.Marshal(map[string]string{
		"priority": "Low",
	})

	c, w := suite.createAuthContext(http.MethodPut, "/api/tasks/1", body, models.Principal{ID: admin.ID, Role: models.RoleAdmin})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.UpdateTask(c)

	suite.Equal(http.StatusOK, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	suite.Equal("Keep this title", stored.Title)
	suite.Equal(models.TaskPriorityLow, stored.Priority)
	suite.Equal(models.TaskStatusPending, stored.Status)
	suite.True(stored.UpdatedAt.After(task.UpdatedAt) || stored.UpdatedAt.Equal(task.UpdatedAt))
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_AdminOnlyFlag() {
	worker := suite.createTestUser("worker@x.com", models.RoleEmployee)
	suite.createTestTask("Task", worker.ID)

	userRepo := repository.NewUserRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	restricted := NewTaskHandler(services.NewTaskService(taskRepo, userRepo, true))

	body, _ := json.Marshal(map[string]string{"priority": "Low"})

	c, w := suite.createAuthContext(http.MethodPut, "/api/tasks/1", body, models.Principal{ID: worker.ID, Role: models.RoleEmployee})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	restricted.UpdateTask(c)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_NotFound() {
	admin := suite.createTestUser("admin@x.com", models.RoleAdmin)

	body, _ := json.Marshal(map[string]string{"priority": "Low"})

	c, w := suite.createAuthContext(http.MethodPut, "/api/tasks/99", body, models.Principal{ID: admin.ID, Role: models.RoleAdmin})
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	suite.handler.UpdateTask(c)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_AsAdmin() {
	admin := suite.createTestUser("admin@x.com", models.RoleAdmin)
	worker := suite.createTestUser("worker@x.com", models.RoleEmployee)
	task := suite.createTestTask("Task", worker.ID)

	c, w := suite.createAuthContext(http.MethodDelete, "/api/tasks/1", nil, models.Principal{ID: admin.ID, Role: models.RoleAdmin})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.DeleteTask(c)

	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_Forbidden() {
	worker := suite.createTestUser("worker@x.com", models.RoleEmployee)
	task := suite.createTestTask("Task", worker.ID)

	c, w := suite.createAuthContext(http.MethodDelete, "/api/tasks/1", nil, models.Principal{ID: worker.ID, Role: models.RoleEmployee})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	suite.handler.DeleteTask(c)

	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_NotFound() {
	admin := suite.createTestUser("admin@x.com", models.RoleAdmin)

	c, w := suite.createAuthContext(http.MethodDelete, "/api/tasks/42", nil, models.Principal{ID: admin.ID, Role: models.RoleAdmin})
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	suite.handler.DeleteTask(c)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
