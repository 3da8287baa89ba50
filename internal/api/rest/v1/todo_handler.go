package v1

import (
	"net/http"

	"github.com/TikhonFedorov/couple-app/internal/domain/todos"
	"github.com/TikhonFedorov/couple-app/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// TodoHandler defines the interface for handling to-do operations
type TodoHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

// todoHandler struct holds the services
type todoHandler struct {
	todoService todos.TodoService
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService todos.TodoService) TodoHandler {
	return &todoHandler{todoService: todoService}
}

// List returns the caller couple's to-do items.
func (handler *todoHandler) List(ctx *gin.Context) {
	_, coupleID := callerIdentity(ctx)

	items, err := handler.todoService.List(ctx, coupleID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := []TodoListResponse{}
	for _, item := range items {
		listResponse = append(listResponse, TodoListResponse{
			TodoResponse: TodoResponse{
				ID:          item.ID,
				Title:       item.Title,
				Description: item.Description,
				Completed:   item.Completed,
			},
			CreatedByName: item.CreatedByName,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Create adds a to-do item for the caller's couple.
func (handler *todoHandler) Create(ctx *gin.Context) {
	userID, coupleID := callerIdentity(ctx)

	var req TodoCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest("Invalid request body"))
		return
	}

	item, err := handler.todoService.Create(ctx, coupleID, userID, &todos.TodoInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, TodoResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Completed:   item.Completed,
	})
}

// Update applies a partial update to one of the couple's items.
func (handler *todoHandler) Update(ctx *gin.Context) {
	_, coupleID := callerIdentity(ctx)
	todoID := ctx.Param("id")

	var req TodoUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest("Invalid request body"))
		return
	}

	item, err := handler.todoService.Update(ctx, coupleID, todoID, &todos.TodoUpdate{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, TodoResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Completed:   item.Completed,
	})
}

// Delete removes one of the couple's items.
func (handler *todoHandler) Delete(ctx *gin.Context) {
	_, coupleID := callerIdentity(ctx)
	todoID := ctx.Param("id")

	if err := handler.todoService.Delete(ctx, coupleID, todoID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Todo deleted"})
}
