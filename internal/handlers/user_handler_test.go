package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trendora-shop/storefront-backend/internal/models"
)

type stubUserRepository struct {
	users []models.User
	roles map[string]string
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, user)
	return user, nil
}

func (s *stubUserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, mongo.ErrNoDocuments
}

func (s *stubUserRepository) GetUserById(ctx context.Context, userID primitive.ObjectID) (models.User, error) {
	for _, u := range s.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return models.User{}, mongo.ErrNoDocuments
}

func (s *stubUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users, nil
}

func (s *stubUserRepository) UpdateUserRole(ctx context.Context, userID primitive.ObjectID, role string) (bool, error) {
	for _, u := range s.users {
		if u.ID == userID {
			if s.roles == nil {
				s.roles = map[string]string{}
			}
			s.roles[userID.Hex()] = role
			return true, nil
		}
	}
	return false, nil
}

func TestUserHandler_UpdateUserRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	adminID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	newRouter := func(repo *stubUserRepository, callerID string) *gin.Engine {
		h := &UserHandler{Repo: repo}
		r := gin.New()
		r.PUT("/users/:id/role", func(c *gin.Context) {
			c.Set("userId", callerID)
			h.UpdateUserRole(c)
		})
		return r
	}

	t.Run("promotes another user", func(t *testing.T) {
		repo := &stubUserRepository{users: []models.User{{ID: adminID, Role: models.RoleAdmin}, {ID: otherID, Role: models.RoleUser}}}
		r := newRouter(repo, adminID.Hex())

		body := bytes.NewBufferString(`{"role":"admin"}`)
		req := httptest.NewRequest(http.MethodPut, "/users/"+otherID.Hex()+"/role", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", repo.roles[otherID.Hex()])
	})

	t.Run("cannot change own role", func(t *testing.T) {
		repo := &stubUserRepository{users: []models.User{{ID: adminID, Role: models.RoleAdmin}}}
		r := newRouter(repo, adminID.Hex())

		body := bytes.NewBufferString(`{"role":"user"}`)
		req := httptest.NewRequest(http.MethodPut, "/users/"+adminID.Hex()+"/role", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, repo.roles)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		repo := &stubUserRepository{users: []models.User{{ID: otherID}}}
		r := newRouter(repo, adminID.Hex())

		body := bytes.NewBufferString(`{"role":"superuser"}`)
		req := httptest.NewRequest(http.MethodPut, "/users/"+otherID.Hex()+"/role", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, repo.roles)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := &stubUserRepository{}
		r := newRouter(repo, adminID.Hex())

		body := bytes.NewBufferString(`{"role":"admin"}`)
		req := httptest.NewRequest(http.MethodPut, "/users/"+primitive.NewObjectID().Hex()+"/role", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
