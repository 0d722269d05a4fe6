package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/auth"
	"github.com/dmitrijs2005/gophaccounts/internal/server/config"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	refreshtokensrepo "github.com/dmitrijs2005/gophaccounts/internal/server/repositories/refreshtokens"
	usersrepo "github.com/dmitrijs2005/gophaccounts/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

type ledgerRow struct {
	UserID   string
	JTI      string
	Validity time.Duration
}

// memStore is an in-memory users table with the same unique rules as the
// real one.
type memStore struct {
	mu     sync.Mutex
	seq    int
	byID   map[string]*models.User
	ledger []ledgerRow

	// hideEmail makes GetByEmail miss, simulating a concurrent insert that
	// the advisory check could not see.
	hideEmail bool
	getErr    error
	saveErr   error
	ledgerErr error
	saves     int
}

func newMemStore() *memStore {
	return &memStore{byID: map[string]*models.User{}}
}

func cloneUser(u *models.User) *models.User {
	c := *u
	if u.ProfileJSON != nil {
		c.ProfileJSON = make(map[string]any, len(u.ProfileJSON))
		for k, v := range u.ProfileJSON {
			c.ProfileJSON[k] = v
		}
	}
	return &c
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func (s *memStore) get(id string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUser(s.byID[id])
}

type memUsers struct{ s *memStore }

func (r *memUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ex := range r.s.byID {
		if ex.Email == u.Email {
			return nil, common.ErrDuplicateEmail
		}
		if ex.UserName == u.UserName {
			return nil, common.ErrDuplicateUsername
		}
	}
	r.s.seq++
	u.ID = fmt.Sprintf("u-%d", r.s.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.s.byID[u.ID] = cloneUser(u)
	return u, nil
}

func (r *memUsers) find(match func(*models.User) bool) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.getErr != nil {
		return nil, r.s.getErr
	}
	for _, u := range r.s.byID {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if r.s.hideEmail {
		return nil, common.ErrorNotFound
	}
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *memUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.UserName == username })
}

func (r *memUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r *memUsers) Save(ctx context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.saveErr != nil {
		return r.s.saveErr
	}
	if _, ok := r.s.byID[u.ID]; !ok {
		return common.ErrorNotFound
	}
	r.s.saves++
	r.s.byID[u.ID] = cloneUser(u)
	return nil
}

type memTokens struct{ s *memStore }

func (r *memTokens) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ledgerErr != nil {
		return r.s.ledgerErr
	}
	r.s.ledger = append(r.s.ledger, ledgerRow{UserID: userID, JTI: token, Validity: validity})
	return nil
}

type fakeRepoManager struct{ s *memStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error           { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return &memUsers{s: m.s} }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return &memTokens{s: m.s} }

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "access-k",
		RefreshSecretKey:             "refresh-k",
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: time.Hour,
		TokenIssuer:                  "test",
		BcryptCost:                   bcrypt.MinCost,
		S3Bucket:                     "avatars",
		S3Region:                     "us-east-1",
		S3RootUser:                   "minioadmin",
		S3RootPassword:               "minioadmin",
		S3BaseEndpoint:               "http://127.0.0.1:9000",
		S3PublicBaseURL:              "https://cdn.example/avatars/",
	}
}

// newTestService wires a UserService over memStore and a sqlmock DB, which
// only sees BEGIN/COMMIT/ROLLBACK.
func newTestService(t *testing.T) (*UserService, *memStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := newMemStore()
	cfg := testConfig()
	svc := NewUserService(db, &fakeRepoManager{s: store}, auth.NewIssuer(cfg), cfg, logging.Nop{})
	return svc, store, mock
}
