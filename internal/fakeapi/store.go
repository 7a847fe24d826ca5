package fakeapi

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-trackspense/models"
)

type account struct {
	userName     string
	email        string
	passwordHash []byte
}

// memoryStore keeps accounts and their expenses for the lifetime of the
// process.
type memoryStore struct {
	mu       sync.RWMutex
	accounts map[string]account
	expenses map[string][]models.Expense
	nextID   int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts: make(map[string]account),
		expenses: make(map[string][]models.Expense),
	}
}

func (s *memoryStore) createUser(user models.User) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.MinCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[user.Email]; ok {
		return ErrEmailAlreadyExists
	}
	s.accounts[user.Email] = account{userName: user.UserName, email: user.Email, passwordHash: hash}
	return nil
}

// checkPassword returns ErrUserNotFound for an unknown email and the bcrypt
// mismatch error for a wrong password.
func (s *memoryStore) checkPassword(credentials models.Credentials) error {
	s.mu.RLock()
	acc, ok := s.accounts[credentials.Email]
	s.mu.RUnlock()
	if !ok {
		return ErrUserNotFound
	}
	return bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(credentials.Password))
}

func (s *memoryStore) addExpense(email string, expense models.Expense) models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	expense.ID = s.nextID
	s.expenses[email] = append(s.expenses[email], expense)
	return expense
}

func (s *memoryStore) listExpenses(email string) []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Expense, len(s.expenses[email]))
	copy(out, s.expenses[email])
	return out
}

func (s *memoryStore) hasUser(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[email]
	return ok
}
