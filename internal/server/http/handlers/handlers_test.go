package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/pkondrashkov/accountd/internal/domain/errors"
	"github.com/pkondrashkov/accountd/internal/domain/model"
	"github.com/pkondrashkov/accountd/internal/server/http/dto"
	"github.com/pkondrashkov/accountd/internal/server/http/middleware"
	testhelpers "github.com/pkondrashkov/accountd/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asCaller(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
	}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAccountHandlerProfile(t *testing.T) {
	facade := testhelpers.AccountFacadeStub{ProfileFn: func(ctx context.Context, userID int64) (*model.User, error) {
		if userID != 1 {
			t.Fatalf("unexpected user id %d", userID)
		}
		return &model.User{ID: 1, Username: "alice"}, nil
	}}

	resp := performRequest(t, http.MethodGet, "/user", NewAccountHandler(facade).Profile, asCaller(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	const want = `{"data":{"id":1,"first_name":"","last_name":"","username":"alice","email":"","last_login":null},"message":"Ok"}`
	if got := resp.Body.String(); got != want {
		t.Fatalf("unexpected body\n got: %s\nwant: %s", got, want)
	}
}

func TestAccountHandlerProfileFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AccountFacadeStub
		status int
	}{
		{name: "caller vanished", facade: testhelpers.AccountFacadeStub{ProfileFn: func(context.Context, int64) (*model.User, error) {
			return nil, domainErrors.ErrNotFound
		}}, status: http.StatusUnauthorized},
		{name: "internal", facade: testhelpers.AccountFacadeStub{ProfileFn: func(context.Context, int64) (*model.User, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodGet, "/user", NewAccountHandler(tt.facade).Profile, asCaller(1), nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAccountHandlerCreate(t *testing.T) {
	facade := testhelpers.AccountFacadeStub{CreateFn: func(ctx context.Context, callerID int64) (*model.User, error) {
		return &model.User{ID: 2, Username: "alice", FirstName: "Alice"}, nil
	}}

	resp := performRequest(t, http.MethodPost, "/user", NewAccountHandler(facade).Create, asCaller(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 on create, got %d", resp.Code)
	}

	var envelope struct {
		Data    dto.UserPayload `json:"data"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if envelope.Message != "Ok" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
	if envelope.Data.ID != 2 || envelope.Data.FirstName != "Alice" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestAccountHandlerCreateFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "duplicate username", err: domainErrors.ErrAlreadyExists, status: http.StatusConflict},
		{name: "caller vanished", err: domainErrors.ErrNotFound, status: http.StatusUnauthorized},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.AccountFacadeStub{CreateFn: func(context.Context, int64) (*model.User, error) {
				return nil, tt.err
			}}
			resp := performRequest(t, http.MethodPost, "/user", NewAccountHandler(facade).Create, asCaller(1), nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestTokenHandlerIssue(t *testing.T) {
	facade := testhelpers.TokenFacadeStub{LoginFn: func(ctx context.Context, username, password string) (*model.User, string, error) {
		if username != "alice" || password != "password" {
			t.Fatalf("unexpected credentials %q %q", username, password)
		}
		return &model.User{ID: 1, Username: "alice", FirstName: "Alice", LastName: "Smith"}, "issued-key", nil
	}}

	body, _ := json.Marshal(dto.TokenRequest{Username: "alice", Password: "password"})
	resp := performRequest(t, http.MethodPost, "/token", NewTokenHandler(facade).Issue, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	const want = `{"data":{"token":"issued-key","username":"alice","name":"Alice Smith"},"message":"Ok"}`
	if got := resp.Body.String(); got != want {
		t.Fatalf("unexpected body\n got: %s\nwant: %s", got, want)
	}
}

func TestTokenHandlerIssuePassesCredentialsThrough(t *testing.T) {
	username := testhelpers.RandomASCIIString(7, 14)
	password := testhelpers.RandomASCIIString(16, 32)
	facade := testhelpers.TokenFacadeStub{LoginFn: func(ctx context.Context, gotUsername, gotPassword string) (*model.User, string, error) {
		if gotUsername != username || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotUsername, gotPassword)
		}
		return &model.User{ID: 1, Username: gotUsername}, "issued-key", nil
	}}

	body, _ := json.Marshal(dto.TokenRequest{Username: username, Password: password})
	resp := performRequest(t, http.MethodPost, "/token", NewTokenHandler(facade).Issue, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var envelope struct {
		Data dto.TokenPayload `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if envelope.Data.Username != username || envelope.Data.Token != "issued-key" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestTokenHandlerIssueRejections(t *testing.T) {
	const want = `{"data":{"message":"Wrong email or password"},"message":"Ok"}`

	tests := []struct {
		name   string
		facade testhelpers.TokenFacadeStub
		body   []byte
	}{
		{name: "bad json", body: []byte("not json")},
		{name: "wrong password", body: []byte(`{"username":"alice","password":"nope"}`), facade: testhelpers.TokenFacadeStub{LoginFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}}},
		{name: "missing fields", body: []byte(`{}`), facade: testhelpers.TokenFacadeStub{LoginFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrMalformedInput
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/token", NewTokenHandler(tt.facade).Issue, nil, tt.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", resp.Code)
			}
			if got := resp.Body.String(); got != want {
				t.Fatalf("all rejections must share one body\n got: %s\nwant: %s", got, want)
			}
		})
	}
}

func TestTokenHandlerIssueInternalError(t *testing.T) {
	facade := testhelpers.TokenFacadeStub{LoginFn: func(context.Context, string, string) (*model.User, string, error) {
		return nil, "", errors.New("boom")
	}}
	body := []byte(`{"username":"alice","password":"password"}`)
	resp := performRequest(t, http.MethodPost, "/token", NewTokenHandler(facade).Issue, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestStatusHandlerIndex(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/", NewStatusHandler(testhelpers.PingerStub{}).Index, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	const want = `{"data":{"service":"accountd"},"message":"Ok"}`
	if got := resp.Body.String(); got != want {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestStatusHandlerPing(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/ping", NewStatusHandler(testhelpers.PingerStub{}).Ping, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	const want = `{"data":null,"message":"Ok"}`
	if got := resp.Body.String(); got != want {
		t.Fatalf("unexpected body %s", got)
	}

	resp = performRequest(t, http.MethodGet, "/ping", NewStatusHandler(testhelpers.PingerStub{Err: errors.New("down")}).Ping, nil, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}
