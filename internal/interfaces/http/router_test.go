package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimsng/crims-api/internal/application/auth"
	"github.com/crimsng/crims-api/internal/application/dto"
	"github.com/crimsng/crims-api/internal/application/usecase"
	"github.com/crimsng/crims-api/internal/domain"
	"github.com/crimsng/crims-api/internal/domain/entity"
	apphttp "github.com/crimsng/crims-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory stores for full-router tests
// ──────────────────────────────────────────────────────────────────────────────

type memUsers struct {
	byID map[string]*entity.User
}

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *memUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUsers) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		out = append(out, u)
	}
	if offset >= len(out) {
		return nil, nil
	}
	if end := offset + limit; end < len(out) {
		out = out[offset:end]
	} else {
		out = out[offset:]
	}
	return out, nil
}

func (r *memUsers) Count(_ context.Context) (int, error) { return len(r.byID), nil }

func (r *memUsers) UpdateRole(_ context.Context, id string, role entity.Role) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *memUsers) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

type memCriminals struct {
	byID map[string]*entity.Criminal
}

func (r *memCriminals) Create(_ context.Context, c *entity.Criminal) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCriminals) List(_ context.Context) ([]*entity.Criminal, error) {
	var out []*entity.Criminal
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCriminals) GetByID(_ context.Context, id string) (*entity.Criminal, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCriminals) GetPhoto(_ context.Context, id string) (*entity.Attachment, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return c.Photo, nil
}

func (r *memCriminals) GetThumbprint(_ context.Context, id string) (*entity.Attachment, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return c.Thumbprint, nil
}

func (r *memCriminals) Update(_ context.Context, c *entity.Criminal) error {
	stored, ok := r.byID[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *c
	if cp.Photo == nil {
		cp.Photo = stored.Photo
	}
	if cp.Thumbprint == nil {
		cp.Thumbprint = stored.Thumbprint
	}
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCriminals) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type env struct {
	app      *fiber.App
	users    *memUsers
	authUC   *auth.AuthUseCase
	adminTok string
	offTok   string
}

const testAdminCode = "station-admin-code"

// newEnv wires the full router over in-memory stores with one admin and one
// officer already registered.
func newEnv(t *testing.T) *env {
	t.Helper()
	users := &memUsers{byID: map[string]*entity.User{}}
	criminals := &memCriminals{byID: map[string]*entity.Criminal{}}

	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, testAdminCode)
	criminalUC := usecase.NewCriminalUseCase(criminals, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		CriminalUC: criminalUC,
		StatsUC:    nil,
		Users:      users,
		JWTSecret:  testJWTSecret,
	})

	ctx := context.Background()
	admin, err := authUC.Register(ctx, registerReq("chief", "admin", testAdminCode))
	require.NoError(t, err)
	officer, err := authUC.Register(ctx, registerReq("patrol1", "", ""))
	require.NoError(t, err)

	return &env{
		app:      app,
		users:    users,
		authUC:   authUC,
		adminTok: "Bearer " + admin.Token,
		offTok:   "Bearer " + officer.Token,
	}
}

func registerReq(username, role, code string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:  username,
		Password:  "patrol#42",
		Role:      role,
		AdminCode: code,
	}
}

func (e *env) do(t *testing.T, method, path, token string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// criminalMultipart builds a create/update form, optionally with a photo.
func criminalMultipart(t *testing.T, fields map[string]string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if photo != nil {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="photo"; filename="mug.jpg"`)
		hdr.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(photo)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Record routes
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_OfficerCreatesCriminal(t *testing.T) {
	e := newEnv(t)
	body, ct := criminalMultipart(t, map[string]string{
		"name":            "Musa Ibrahim",
		"crimeCode":       "ROB-004",
		"officerInCharge": "Sgt. Bello",
	}, []byte("jpeg-bytes"))

	resp := e.do(t, http.MethodPost, "/api/criminals/", e.offTok, body, ct)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decodeJSON(t, resp)
	assert.Equal(t, "Musa Ibrahim", out["name"])
	assert.Equal(t, true, out["hasPhoto"])
	assert.Equal(t, "patrol1", out["createdBy"])
}

func TestRouter_CreateValidationFailureIs400(t *testing.T) {
	e := newEnv(t)
	body, ct := criminalMultipart(t, map[string]string{"name": "No Code"}, nil)

	resp := e.do(t, http.MethodPost, "/api/criminals/", e.offTok, body, ct)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_PhotoRoundTrip(t *testing.T) {
	e := newEnv(t)
	body, ct := criminalMultipart(t, map[string]string{
		"name":            "Musa Ibrahim",
		"crimeCode":       "ROB-004",
		"officerInCharge": "Sgt. Bello",
	}, []byte("jpeg-bytes"))
	created := e.do(t, http.MethodPost, "/api/criminals/", e.offTok, body, ct)
	defer created.Body.Close()
	require.Equal(t, http.StatusCreated, created.StatusCode)
	id := decodeJSON(t, created)["id"].(string)

	resp := e.do(t, http.MethodGet, "/api/criminals/photo/"+id, e.offTok, nil, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))
	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	missing := e.do(t, http.MethodGet, "/api/criminals/thumbprint/"+id, e.offTok, nil, "")
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode, "record without a thumbprint")
}

func TestRouter_DeleteIsAdminOnly(t *testing.T) {
	e := newEnv(t)
	body, ct := criminalMultipart(t, map[string]string{
		"name":            "Musa Ibrahim",
		"crimeCode":       "ROB-004",
		"officerInCharge": "Sgt. Bello",
	}, nil)
	created := e.do(t, http.MethodPost, "/api/criminals/", e.offTok, body, ct)
	defer created.Body.Close()
	id := decodeJSON(t, created)["id"].(string)

	asOfficer := e.do(t, http.MethodDelete, "/api/criminals/"+id, e.offTok, nil, "")
	defer asOfficer.Body.Close()
	assert.Equal(t, http.StatusForbidden, asOfficer.StatusCode)

	asAdmin := e.do(t, http.MethodDelete, "/api/criminals/"+id, e.adminTok, nil, "")
	defer asAdmin.Body.Close()
	assert.Equal(t, http.StatusOK, asAdmin.StatusCode)

	again := e.do(t, http.MethodDelete, "/api/criminals/"+id, e.adminTok, nil, "")
	defer again.Body.Close()
	assert.Equal(t, http.StatusNotFound, again.StatusCode, "second delete finds nothing")
}

func TestRouter_UnauthenticatedIs401(t *testing.T) {
	e := newEnv(t)

	resp := e.do(t, http.MethodGet, "/api/criminals/", "", nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// User management routes
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_UserManagementIsAdminOnly(t *testing.T) {
	e := newEnv(t)

	resp := e.do(t, http.MethodGet, "/api/auth/users", e.offTok, nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/api/auth/users", e.adminTok, nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_SelfDeleteIs400(t *testing.T) {
	e := newEnv(t)
	var adminID string
	for id, u := range e.users.byID {
		if u.Role == entity.RoleAdmin {
			adminID = id
		}
	}
	require.NotEmpty(t, adminID)

	resp := e.do(t, http.MethodDelete, "/api/auth/users/"+adminID, e.adminTok, nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SELF_DELETE")
}

func TestRouter_RegisterDuplicateUsername(t *testing.T) {
	e := newEnv(t)

	payload := strings.NewReader(`{"username":"patrol1","password":"patrol#42"}`)
	resp := e.do(t, http.MethodPost, "/api/auth/register", "", payload, fiber.MIMEApplicationJSON)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "USERNAME_TAKEN")
}

func TestRouter_RegisterAdminWithoutCodeIs403(t *testing.T) {
	e := newEnv(t)

	payload := strings.NewReader(`{"username":"wannabe","password":"patrol#42","role":"admin"}`)
	resp := e.do(t, http.MethodPost, "/api/auth/register", "", payload, fiber.MIMEApplicationJSON)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login rate limiting
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginLimiter_BlocksAfterMax(t *testing.T) {
	users := &memUsers{byID: map[string]*entity.User{}}
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, testAdminCode)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		Users:        users,
		JWTSecret:    testJWTSecret,
		LoginLimiter: apphttp.NewLoginLimiter(5, 15*time.Minute, nil),
	})

	var last *http.Response
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"username":"nobody","password":"wrong#1"}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		if i < 5 {
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "attempt %d", i+1)
			resp.Body.Close()
		}
		last = resp
	}
	defer last.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, last.StatusCode)
	body, _ := io.ReadAll(last.Body)
	assert.Contains(t, string(body), "Too many login attempts")
}
