//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TikhonFedorov/couple-app/internal/domain/todos"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func authedTestContext(w *httptest.ResponseRecorder, req *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(ContextUserID, "user-1")
	c.Set(ContextCoupleID, "couple-1")
	return c
}

func TestTodoHandler_List_Success(t *testing.T) {
	mockTodoService := new(MockTodoService)
	handler := NewTodoHandler(mockTodoService)

	items := []*todos.TodoWithCreator{
		{
			TodoItem:      todos.TodoItem{ID: "todo-1", Title: "Buy groceries", Completed: false},
			CreatedByName: "Anna",
		},
	}

	mockTodoService.On("List", mock.Anything, "couple-1").Return(items, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/todos", nil)
	c := authedTestContext(w, req)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created_by_name":"Anna"`)
	mockTodoService.AssertExpectations(t)
}

func TestTodoHandler_List_Empty(t *testing.T) {
	mockTodoService := new(MockTodoService)
	handler := NewTodoHandler(mockTodoService)

	mockTodoService.On("List", mock.Anything, "couple-1").Return([]*todos.TodoWithCreator{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/todos", nil)
	c := authedTestContext(w, req)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestTodoHandler_Create_Success(t *testing.T) {
	mockTodoService := new(MockTodoService)
	handler := NewTodoHandler(mockTodoService)

	item := &todos.TodoItem{ID: "todo-1", Title: "Buy groceries", Description: "milk"}

	mockTodoService.
		On("Create", mock.Anything, "couple-1", "user-1", &todos.TodoInput{Title: "Buy groceries", Description: "milk"}).
		Return(item, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/todos", bytes.NewBufferString(`{"title": "Buy groceries", "description": "milk"}`))
	req.Header.Set("Content-Type", "application/json")
	c := authedTestContext(w, req)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "todo-1")
	mockTodoService.AssertExpectations(t)
}

func TestTodoHandler_Create_MissingTitle(t *testing.T) {
	mockTodoService := new(MockTodoService)
	handler := NewTodoHandler(mockTodoService)

	mockTodoService.
		On("Create", mock.Anything, "couple-1", "user-1", mock.Anything).
		Return(nil, apperr.BadRequest("Title is required"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/todos", bytes.NewBufferString(`{"description": "milk"}`))
	req.Header.Set("Content-Type", "application/json")
	c := authedTestContext(w, req)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"Title is required"`)
}

func TestTodoHandler_Update_NotFound(t *testing.T) {
	mockTodoService := new(MockTodoService)
	handler := NewTodoHandler(mockTodoService)

	mockTodoService.
		On("Update", mock.Anything, "couple-1", "todo-9", mock.Anything).
		Return(nil, apperr.NotFound("Todo not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/todos/todo-9", bytes.NewBufferString(`{"completed": true}`))
	req.Header.Set("Content-Type", "application/json")
	c := authedTestContext(w, req)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "todo-9"}}

	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"Todo not found"`)
}

func TestTodoHandler_Update_Success(t *testing.T) {
	mockTodoService := new(MockTodoService)
	handler := NewTodoHandler(mockTodoService)

	item := &todos.TodoItem{ID: "todo-1", Title: "Buy groceries", Completed: true}

	mockTodoService.
		On("Update", mock.Anything, "couple-1", "todo-1", mock.Anything).
		Return(item, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/todos/todo-1", bytes.NewBufferString(`{"completed": true}`))
	req.Header.Set("Content-Type", "application/json")
	c := authedTestContext(w, req)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "todo-1"}}

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"completed":true`)
	mockTodoService.AssertExpectations(t)
}

func TestTodoHandler_Delete_Success(t *testing.T) {
	mockTodoService := new(MockTodoService)
	handler := NewTodoHandler(mockTodoService)

	mockTodoService.On("Delete", mock.Anything, "couple-1", "todo-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/todos/todo-1", nil)
	c := authedTestContext(w, req)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "todo-1"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Todo deleted"`)
	mockTodoService.AssertExpectations(t)
}

func TestTodoHandler_Delete_NotFound(t *testing.T) {
	mockTodoService := new(MockTodoService)
	handler := NewTodoHandler(mockTodoService)

	mockTodoService.
		On("Delete", mock.Anything, "couple-1", "todo-9").
		Return(apperr.NotFound("Todo not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/todos/todo-9", nil)
	c := authedTestContext(w, req)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "todo-9"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
