package handler

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fadilmartias/apostila-analyzer/internal/middleware"
	"github.com/fadilmartias/apostila-analyzer/internal/model"
	"github.com/fadilmartias/apostila-analyzer/internal/usecase"
	"github.com/fadilmartias/apostila-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func (m *memUsers) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.Email] = u
	return nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[email]
	return ok, nil
}

type memReports struct {
	mu      sync.Mutex
	reports []model.ReportWithOwner
}

func (m *memReports) Create(_ context.Context, r *model.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, model.ReportWithOwner{Report: *r})
	return nil
}

func (m *memReports) FindByID(_ context.Context, id uuid.UUID) (*model.ReportWithOwner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reports {
		if m.reports[i].ID == id {
			r := m.reports[i]
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memReports) ListByUser(_ context.Context, userID uuid.UUID, offset, limit int) ([]model.ReportWithOwner, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var own []model.ReportWithOwner
	for _, r := range m.reports {
		if r.UsuarioID == userID {
			own = append(own, r)
		}
	}
	return page(own, offset, limit), int64(len(own)), nil
}

func (m *memReports) ListAll(_ context.Context, offset, limit int) ([]model.ReportWithOwner, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return page(m.reports, offset, limit), int64(len(m.reports)), nil
}

func page(rows []model.ReportWithOwner, offset, limit int) []model.ReportWithOwner {
	if offset >= len(rows) {
		return nil
	}
	end := min(offset+limit, len(rows))
	return rows[offset:end]
}

type oneEmenta struct{}

func (oneEmenta) List(context.Context) ([]model.Ementa, error) {
	return []model.Ementa{{ID: 1, NomeDisciplina: "Biologia"}}, nil
}

func (oneEmenta) FindByID(_ context.Context, id uint) (*model.Ementa, error) {
	if id == 1 {
		return &model.Ementa{ID: 1, NomeDisciplina: "Biologia"}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (oneEmenta) UpdateEmbedding(context.Context, uint, pgvector.Vector) error {
	return nil
}

func (oneEmenta) SearchByEmbedding(context.Context, pgvector.Vector, int) ([]model.Ementa, error) {
	return nil, nil
}

func newResourceServer(t *testing.T) (*fiber.App, *util.TokenManager) {
	t.Helper()
	tokens := util.NewTokenManager("secret", time.Hour)

	app := fiber.New()
	api := app.Group("/api")
	auth := middleware.Protected(tokens)
	admin := middleware.RequireRole(model.RoleAdmin)

	NewAuthHandler(usecase.NewAuthUsecase(&memUsers{users: map[string]*model.User{}}, tokens)).RegisterRoutes(api)
	NewReportHandler(usecase.NewReportUsecase(&memReports{})).RegisterRoutes(api, auth)
	NewEmentaHandler(usecase.NewEmentaUsecase(oneEmenta{}, nil, extractByName), 1024*1024).RegisterRoutes(api, auth, admin)
	return app, tokens
}

func call(t *testing.T, app *fiber.App, method, path string, body any, token string) (int, string) {
	t.Helper()
	s := &testServer{app: app}
	if body == nil {
		return s.do(t, httptest.NewRequest(method, path, nil), token)
	}
	return s.do(t, jsonRequest(t, method, path, body), token)
}

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	app, tokens := newResourceServer(t)

	code, body := call(t, app, "POST", "/api/register", map[string]string{"email": "ana@example.com"}, "")
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "obrigatório", gjson.Get(body, "details.password").String(), body)

	code, body = call(t, app, "POST", "/api/register", map[string]string{
		"name": "Ana", "email": "ana@example.com", "password": "segredo",
	}, "")
	require.Equal(t, fiber.StatusCreated, code, body)
	claims, err := tokens.Parse(gjson.Get(body, "data.token").String())
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, claims.Role)

	code, _ = call(t, app, "POST", "/api/register", map[string]string{
		"name": "Ana", "email": "ana@example.com", "password": "segredo",
	}, "")
	assert.Equal(t, fiber.StatusConflict, code)

	code, body = call(t, app, "POST", "/api/login", map[string]string{"email": "ana@example.com", "password": "errada"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "E-mail ou senha inválidos.", gjson.Get(body, "error").String())

	code, body = call(t, app, "POST", "/api/login", map[string]string{"email": "ana@example.com", "password": "segredo"}, "")
	require.Equal(t, fiber.StatusOK, code, body)
	assert.Equal(t, "ana@example.com", gjson.Get(body, "data.user.email").String())
}

func TestReportHandler_OwnerScoping(t *testing.T) {
	app, tokens := newResourceServer(t)
	owner, err := tokens.Issue(uuid.New(), model.RoleUser)
	require.NoError(t, err)
	other, err := tokens.Issue(uuid.New(), model.RoleUser)
	require.NoError(t, err)
	admin, err := tokens.Issue(uuid.New(), model.RoleAdmin)
	require.NoError(t, err)

	code, _ := call(t, app, "POST", "/api/relatorios", map[string]any{"titulo": "Sem conteúdo", "tipo": "aluno"}, owner)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, body := call(t, app, "POST", "/api/relatorios", map[string]any{
		"titulo": "Apostila 1", "tipo": "aluno", "conteudo": map[string]any{"resultado": map[string]any{"pontuacaoFinal": 80}},
	}, owner)
	require.Equal(t, fiber.StatusCreated, code, body)
	id := gjson.Get(body, "data.id").String()

	code, _ = call(t, app, "GET", "/api/relatorios/"+id, nil, owner)
	assert.Equal(t, fiber.StatusOK, code)
	code, _ = call(t, app, "GET", "/api/relatorios/"+id, nil, other)
	assert.Equal(t, fiber.StatusForbidden, code)
	code, _ = call(t, app, "GET", "/api/relatorios/"+id, nil, admin)
	assert.Equal(t, fiber.StatusOK, code)
	code, _ = call(t, app, "GET", "/api/relatorios/"+uuid.NewString(), nil, owner)
	assert.Equal(t, fiber.StatusNotFound, code)
	code, _ = call(t, app, "GET", "/api/relatorios/abc", nil, owner)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, body = call(t, app, "GET", "/api/relatorios", nil, other)
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, gjson.Get(body, "data").Array(), 0)

	code, body = call(t, app, "GET", "/api/relatorios", nil, admin)
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, gjson.Get(body, "data").Array(), 1)
}

func TestEmentaHandler(t *testing.T) {
	app, tokens := newResourceServer(t)
	user, err := tokens.Issue(uuid.New(), model.RoleUser)
	require.NoError(t, err)

	code, body := call(t, app, "GET", "/api/ementas", nil, "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Biologia", gjson.Get(body, "data.0.nome_disciplina").String())

	code, _ = call(t, app, "GET", "/api/ementas/1", nil, "")
	assert.Equal(t, fiber.StatusOK, code)
	code, _ = call(t, app, "GET", "/api/ementas/2", nil, "")
	assert.Equal(t, fiber.StatusNotFound, code)
	code, _ = call(t, app, "GET", "/api/ementas/x", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = call(t, app, "POST", "/api/ementas/1/indexar", nil, user)
	assert.Equal(t, fiber.StatusForbidden, code)

	req := uploadRequest(t, "a.txt", "células", nil)
	req.URL.Path = "/api/ementas/recomendar"
	req.RequestURI = req.URL.Path
	s := &testServer{app: app}
	code, _ = s.do(t, req, user)
	assert.Equal(t, fiber.StatusBadGateway, code)
}
