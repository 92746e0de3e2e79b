package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/secwepemc-ed/curricula/core"
	"github.com/secwepemc-ed/curricula/core/curriculum"
	"github.com/secwepemc-ed/curricula/core/feedback"
	"github.com/secwepemc-ed/curricula/core/session"
	"github.com/secwepemc-ed/curricula/storage/database/inmem"
)

var (
	adminPassword = "s3cr3t!"

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errNotFound     = httpErr{Error: "not found"}
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func testConfig(t *testing.T) *core.Config {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("testConfig() failed: %v", err)
	}
	return &core.Config{
		TestMode:          true,
		AppName:           "Curricula",
		SecretKey:         "secret",
		AdminPasswordHash: string(hash),
		FeedbackEmail:     "curriculum@localhost",
		Server: core.ServerConfig{
			JWTExpirationDelta: 10 * time.Minute,
		},
	}
}

type noopLogger struct{}

func (noopLogger) Enable(bool)                    {}
func (noopLogger) Debug(string, ...interface{})   {}
func (noopLogger) Info(string, ...interface{})    {}
func (noopLogger) Warning(string, ...interface{}) {}
func (noopLogger) Error(string, ...interface{})   {}
func (noopLogger) Fatal(string, ...interface{})   {}

// fakeContentRepo serves a fixed module slice and counts reloads.
type fakeContentRepo struct {
	modules   []curriculum.ModuleRecord
	reloads   int
	reloadErr error
}

var _ curriculum.Repository = (*fakeContentRepo)(nil)

func (r *fakeContentRepo) QueryAllModules(context.Context) ([]curriculum.ModuleRecord, error) {
	return r.modules, nil
}

func (r *fakeContentRepo) GetModuleByID(_ context.Context, id string) (curriculum.ModuleRecord, error) {
	for _, mod := range r.modules {
		if mod.ID == id {
			return mod, nil
		}
	}
	return curriculum.ModuleRecord{}, curriculum.ErrModuleNotFound
}

func (r *fakeContentRepo) Reload() error {
	if r.reloadErr != nil {
		return r.reloadErr
	}
	r.reloads++
	return nil
}

type mailSpy struct {
	mu       sync.Mutex
	messages []*core.EmailMessage
}

func (s *mailSpy) SendMessages(messages ...*core.EmailMessage) {
	s.mu.Lock()
	s.messages = append(s.messages, messages...)
	s.mu.Unlock()
}

func testModule() curriculum.ModuleRecord {
	return curriculum.ModuleRecord{
		ID:    "mod-1",
		Title: "Seasonal Rounds",
		Units: []curriculum.UnitRecord{
			{
				ID:    "unit-1",
				Title: "Winter",
				Lessons: []curriculum.LessonRecord{
					{
						ID:    "lesson-1",
						Title: "Preparing for Winter",
						Fields: curriculum.Record{
							"steps":     []interface{}{"Gather wood", "Dry fish"},
							"materials": []interface{}{"Cedar bark"},
						},
					},
					{ID: "lesson-2", Title: "Winter Stories"},
				},
			},
			{
				ID:      "unit-2",
				Title:   "Spring",
				Lessons: []curriculum.LessonRecord{{ID: "lesson-3", Title: "First Roots"}},
			},
		},
	}
}

type testDeps struct {
	conf     *core.Config
	content  *fakeContentRepo
	sessions *session.Store
	fbRepo   *inmem.FeedbackRepository
	mail     *mailSpy
}

func setupServer(t *testing.T) (Server, *testDeps) {
	t.Helper()

	deps := &testDeps{
		conf:     testConfig(t),
		content:  &fakeContentRepo{modules: []curriculum.ModuleRecord{testModule()}},
		sessions: session.NewStore(),
		fbRepo:   inmem.NewFeedbackRepository(),
		mail:     new(mailSpy),
	}
	server := NewServer(ServerDeps{
		Conf:           deps.conf,
		Logger:         noopLogger{},
		DisableReqLogs: true,
		CurriculumSvc:  curriculum.NewService(deps.content),
		Sessions:       deps.sessions,
		FeedbackSvc:    feedback.NewService(deps.fbRepo, deps.mail, deps.conf),
		Content:        deps.content,
	})
	return server, deps
}

func getToken(t *testing.T, conf *core.Config) string {
	claims, err := authenticateAdmin(conf, adminPassword)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	token, err := generateToken(conf, claims)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
