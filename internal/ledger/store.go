package ledger

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fluxo/internal/uuid"
)

// Store is the state of one profile: its records in insertion order, its
// categories, payment methods and display name. It is owned by the caller,
// loaded and saved explicitly, and not safe for concurrent use.
type Store struct {
	Transactions   []Transaction
	Categories     Categories
	PaymentMethods PaymentMethods
	DisplayName    string

	now     func() time.Time
	groupID func() string
	lastID  int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to derive record ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithGroupIDs sets the generator of recurrence group ids.
func WithGroupIDs(next func() string) Option {
	return func(s *Store) { s.groupID = next }
}

// NewStore returns an empty store seeded with the default categories.
func NewStore(opts ...Option) *Store {
	s := &Store{
		Transactions:   []Transaction{},
		Categories:     DefaultCategories(),
		PaymentMethods: DefaultPaymentMethods(),
		now:            time.Now,
		groupID:        uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextID returns a record id derived from the current time, strictly greater
// than every id already in the store.
func (s *Store) NextID() int64 {
	if s.lastID == 0 {
		for _, t := range s.Transactions {
			s.lastID = max(s.lastID, t.ID)
		}
	}
	s.lastID = max(s.now().UnixMilli(), s.lastID+1)
	return s.lastID
}

// NewGroupID returns a fresh recurrence group id.
func (s *Store) NewGroupID() string {
	return s.groupID()
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Add expands f and appends the resulting records. On a validation error the
// store is left unchanged.
func (s *Store) Add(f EntryForm) ([]Transaction, error) {
	created, err := Expand(f, s)
	if err != nil {
		return nil, err
	}
	s.Transactions = append(s.Transactions, created...)
	return created, nil
}

// Find returns the record with the given id.
func (s *Store) Find(id int64) (Transaction, bool) {
	i := s.index(id)
	if i < 0 {
		return Transaction{}, false
	}
	return s.Transactions[i], true
}

// Series returns the records sharing groupID in store order.
func (s *Store) Series(groupID string) []Transaction {
	if groupID == "" {
		return nil
	}
	var out []Transaction
	for _, t := range s.Transactions {
		if t.RecurrenceGroupID == groupID {
			out = append(out, t)
		}
	}
	return out
}

// TogglePaid flips the paid flag of exactly one record. Other records of its
// recurrence group are not touched.
func (s *Store) TogglePaid(id int64) (Transaction, bool) {
	i := s.index(id)
	if i < 0 {
		return Transaction{}, false
	}
	s.Transactions[i].Paid = !s.Transactions[i].Paid
	return s.Transactions[i], true
}

// Edit is a change to the amount and description of a record.
type Edit struct {
	Amount        decimal.Decimal // sign is ignored
	Description   string          // blank keeps the current description
	ApplyToSeries bool
}

// Edit applies e to the record id, or to its whole recurrence group when
// e.ApplyToSeries is set and the record belongs to one. Each record gets the
// amount signed by its own flow type. It returns the number of records changed.
func (s *Store) Edit(id int64, e Edit) int {
	i := s.index(id)
	if i < 0 {
		return 0
	}
	description := strings.TrimSpace(e.Description)

	apply := func(t *Transaction) {
		t.Amount = Signed(t.FlowType, e.Amount)
		if description != "" {
			t.Description = description
		}
	}

	target := s.Transactions[i]
	if !e.ApplyToSeries || !target.InSeries() {
		apply(&s.Transactions[i])
		return 1
	}

	changed := 0
	for j := range s.Transactions {
		if s.Transactions[j].RecurrenceGroupID == target.RecurrenceGroupID {
			apply(&s.Transactions[j])
			changed++
		}
	}
	return changed
}

// Delete removes exactly one record.
func (s *Store) Delete(id int64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.Transactions = slices.Delete(s.Transactions, i, i+1)
	return true
}

// DeleteSeriesFrom removes the record id and every later occurrence of its
// recurrence group. Earlier occurrences are kept. A record outside any group
// is deleted on its own. It returns the number of records removed.
func (s *Store) DeleteSeriesFrom(id int64) int {
	target, ok := s.Find(id)
	if !ok {
		return 0
	}
	if !target.InSeries() {
		s.Delete(id)
		return 1
	}
	before := len(s.Transactions)
	s.Transactions = slices.DeleteFunc(s.Transactions, func(t Transaction) bool {
		return t.RecurrenceGroupID == target.RecurrenceGroupID && !t.Date.Before(target.Date)
	})
	return before - len(s.Transactions)
}

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.Transactions, func(t Transaction) bool { return t.ID == id })
}
