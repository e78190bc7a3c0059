package jobly_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tinywasm/jobly"
	_ "modernc.org/sqlite"
)

type saveCall struct {
	Username string
	Data     jobly.ProfileData
}

// fakeAPI stands in for the Jobly REST client.
type fakeAPI struct {
	mu sync.Mutex

	saveCalls []saveCall
	saveUser  jobly.User
	saveErr   error
	// entered receives once SaveProfile is called; release unblocks it.
	entered chan struct{}
	release chan struct{}

	token       string
	users       map[string]jobly.User
	getErr      error
	loginToken  string
	loginErr    error
	lastLogin   jobly.LoginData
	signupToken string
	signupErr   error
	lastSignup  jobly.SignupData
}

func (f *fakeAPI) SaveProfile(ctx context.Context, username string, data jobly.ProfileData) (jobly.User, error) {
	f.mu.Lock()
	f.saveCalls = append(f.saveCalls, saveCall{username, data})
	entered, release := f.entered, f.release
	u, err := f.saveUser, f.saveErr
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if release != nil {
		<-release
	}
	return u, err
}

func (f *fakeAPI) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeAPI) GetCurrentUser(ctx context.Context, username string) (jobly.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return jobly.User{}, f.getErr
	}
	u, ok := f.users[username]
	if !ok {
		return jobly.User{}, jobly.ErrorList{"No user: " + username}
	}
	return u, nil
}

func (f *fakeAPI) Login(ctx context.Context, data jobly.LoginData) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLogin = data
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) Signup(ctx context.Context, data jobly.SignupData) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSignup = data
	return f.signupToken, f.signupErr
}

func (f *fakeAPI) calls() []saveCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]saveCall(nil), f.saveCalls...)
}

func (f *fakeAPI) currentToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func makeToken(t *testing.T, username string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"isAdmin":  false,
	}).SignedString([]byte("secret-dev"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

var jane = jobly.User{
	Username:  "jdoe",
	FirstName: "Jane",
	LastName:  "Doe",
	Email:     "j@x.com",
}

type TestExecutor struct {
	*sql.DB
}

func (e *TestExecutor) Exec(query string, args ...any) error {
	_, err := e.DB.Exec(query, args...)
	return err
}

func (e *TestExecutor) Query(query string, args ...any) (jobly.Rows, error) {
	return e.DB.Query(query, args...)
}

func (e *TestExecutor) QueryRow(query string, args ...any) jobly.Scanner {
	return e.DB.QueryRow(query, args...)
}

func newTestDB(t *testing.T) *TestExecutor {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		db.Close()
	})
	return &TestExecutor{db}
}
