package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type mockAuthService struct {
	registerFn      func(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	loginFn         func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	getProfileFn    func(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	updateProfileFn func(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

func (m *mockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	return m.updateProfileFn(ctx, userID, req)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var body utils.Response
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("response is not the JSON envelope: %v", err)
	}
	return body
}

func TestRegisterHandler_Created(t *testing.T) {
	svc := &mockAuthService{
		registerFn: func(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
			return &response.AuthResponse{
				User:      response.UserResponse{ID: uuid.NewString(), Name: req.Name, Email: req.Email},
				Token:     "signed-token",
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	payload := `{"name":"Alice","email":"alice@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status %d, want 201", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if !body.Success {
		t.Error("success must be true")
	}
	if body.Data == nil {
		t.Error("created response missing data")
	}
}

func TestRegisterHandler_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

// Each service error class must land on its documented status code.
func TestRegisterHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", entity.NewValidationError(map[string]string{"Email": "Invalid email format"}), http.StatusBadRequest},
		{"duplicate email", fmt.Errorf("email taken: %w", entity.ErrConflict), http.StatusBadRequest},
		{"unexpected failure", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{
				registerFn: func(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
					return nil, tt.err
				},
			}
			h := NewAuthHandler(svc, zap.NewNop())

			payload := `{"name":"Alice","email":"alice@example.com","password":"secret123"}`
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(payload))
			rec := httptest.NewRecorder()
			h.Register(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decodeEnvelope(t, rec)
			if body.Success {
				t.Error("error response must have success=false")
			}
		})
	}
}

func TestRegisterHandler_ValidationErrorsInBody(t *testing.T) {
	svc := &mockAuthService{
		registerFn: func(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
			return nil, entity.NewValidationError(map[string]string{
				"Email":    "Invalid email format",
				"Password": "Minimum length is 6",
			})
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	body := decodeEnvelope(t, rec)
	fields, ok := body.Errors.(map[string]any)
	if !ok {
		t.Fatalf("errors field %T, want field map", body.Errors)
	}
	if fields["Email"] != "Invalid email format" || fields["Password"] != "Minimum length is 6" {
		t.Errorf("errors %v, want both field messages", fields)
	}
}

func TestLoginHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", entity.ErrInvalidCredentials, http.StatusUnauthorized},
		{"disabled account", entity.ErrAccountDisabled, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{
				loginFn: func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
					return nil, tt.err
				},
			}
			h := NewAuthHandler(svc, zap.NewNop())

			payload := `{"email":"alice@example.com","password":"wrong"}`
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(payload))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestGetProfileHandler_RequiresIdentity(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()
	h.GetProfile(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", rec.Code)
	}
}

func TestGetProfileHandler_Success(t *testing.T) {
	userID := uuid.New()
	svc := &mockAuthService{
		getProfileFn: func(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
			if id != userID {
				t.Errorf("service got user %q, want %q", id, userID)
			}
			return &response.UserResponse{ID: id.String(), Name: "Alice"}, nil
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	ctx := utils.SetUserContext(req.Context(), userID, "user")
	rec := httptest.NewRecorder()
	h.GetProfile(rec, req.WithContext(ctx))

	if rec.Code != http.StatusOK {
		t.Errorf("status %d, want 200", rec.Code)
	}
}

func TestUpdateProfileHandler_Success(t *testing.T) {
	userID := uuid.New()
	svc := &mockAuthService{
		updateProfileFn: func(ctx context.Context, id uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
			if req.Name == nil || *req.Name != "Alice Cooper" {
				t.Errorf("request name %v, want Alice Cooper", req.Name)
			}
			return &response.UserResponse{ID: id.String(), Name: *req.Name}, nil
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	payload := `{"name":"Alice Cooper"}`
	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", bytes.NewBufferString(payload))
	ctx := utils.SetUserContext(req.Context(), userID, "user")
	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, req.WithContext(ctx))

	if rec.Code != http.StatusOK {
		t.Errorf("status %d, want 200", rec.Code)
	}
}
