package handlers_test

import (
	"StoreBackend/config"
	"StoreBackend/models"
	"StoreBackend/routers"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// a named shared-cache memory DB so every pooled connection sees the
	// same data, while each test still gets its own database
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared",
		atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))

	return db
}

type sentMail struct {
	ToName  string
	ToEmail string
	Link    string
}

// mailRecorder stands in for the sendgrid mailer and keeps every send.
type mailRecorder struct {
	mu                sync.Mutex
	VerificationMails []sentMail
	ResetMails        []sentMail
}

func (r *mailRecorder) SendVerificationMail(toName, toEmail, link string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.VerificationMails = append(r.VerificationMails, sentMail{toName, toEmail, link})
	return nil
}

func (r *mailRecorder) SendResetMail(toName, toEmail, link string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ResetMails = append(r.ResetMails, sentMail{toName, toEmail, link})
	return nil
}

type testEnv struct {
	DB     *gorm.DB
	Mail   *mailRecorder
	Router *gin.Engine
	Cfg    config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{
			TokenSecret: "test-secret",
			APIBaseURL:  "http://api.test",
			FrontendURL: "http://front.test",
		},
	}
	db := newTestDB(t)
	recorder := &mailRecorder{}

	// nil redis client disables the rate limiter
	router := routers.SetupRouters(db, nil, recorder, cfg)

	return &testEnv{DB: db, Mail: recorder, Router: router, Cfg: cfg}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *testEnv) request(t *testing.T, method, path string, body any, bearer string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

const (
	testName     = "Alice"
	testEmail    = "alice@x.com"
	testPassword = "Abc123!@"
)

func (e *testEnv) register(t *testing.T) {
	t.Helper()
	w, _ := e.request(t, http.MethodPost, "/api/v1/register", gin.H{
		"name":     testName,
		"email":    testEmail,
		"password": testPassword,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
}

// verify clicks the latest verification link the recorder captured.
func (e *testEnv) verify(t *testing.T) {
	t.Helper()
	require.NotEmpty(t, e.Mail.VerificationMails)
	link := e.Mail.VerificationMails[len(e.Mail.VerificationMails)-1].Link

	u, err := url.Parse(link)
	require.NoError(t, err)
	w, _ := e.request(t, http.MethodGet, u.Path+"?"+u.RawQuery, nil, "")
	require.Equal(t, http.StatusFound, w.Code)
}

func (e *testEnv) login(t *testing.T, email, password string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	w, env := e.request(t, http.MethodPost, "/api/v1/login", gin.H{
		"email":    email,
		"password": password,
	}, "")
	if w.Code != http.StatusOK {
		return w, ""
	}

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return w, data.Token
}

// registerVerified registers and verifies the default test account, then
// returns a live session token for it.
func (e *testEnv) registerVerified(t *testing.T) string {
	t.Helper()
	e.register(t)
	e.verify(t)
	w, tok := e.login(t, testEmail, testPassword)
	require.Equal(t, http.StatusOK, w.Code)
	return tok
}

func orderHistoryPath(userID uint) string {
	return fmt.Sprintf("/api/v1/history/%d", userID)
}

func (e *testEnv) createAdmin(t *testing.T, email, password string) *models.User {
	t.Helper()
	return e.createUser(t, "Admin", email, password, models.RoleAdmin, true)
}

func (e *testEnv) createUser(t *testing.T, name, email, password, role string, verified bool) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if verified {
		now := time.Now()
		user.EmailVerifiedAt = &now
	}
	require.NoError(t, e.DB.Create(user).Error)
	return user
}
