package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"soulace/models"
)

// memSlotStore is an in-memory SlotRepository with the same conditional-update
// contract as the Mongo implementation.
type memSlotStore struct {
	mu    sync.Mutex
	slots map[string]*models.Slot
}

func newMemSlotStore(slots ...models.Slot) *memSlotStore {
	s := &memSlotStore{slots: make(map[string]*models.Slot)}
	for i := range slots {
		sl := slots[i]
		s.slots[sl.ID] = &sl
	}
	return s
}

func (s *memSlotStore) CreateMany(_ context.Context, slots []models.Slot) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(slots))
	for i := range slots {
		sl := slots[i]
		if sl.ID == "" {
			sl.ID = fmt.Sprintf("slot-%d", len(s.slots)+1)
		}
		s.slots[sl.ID] = &sl
		ids = append(ids, sl.ID)
	}
	return ids, nil
}

func (s *memSlotStore) FindAvailable(_ context.Context, filter models.SlotFilter) ([]models.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Slot
	for _, sl := range s.slots {
		if filter.OnlyAvailable && sl.Status != models.SlotAvailable {
			continue
		}
		if filter.ProviderID != "" && sl.ProviderID != filter.ProviderID {
			continue
		}
		if filter.ProviderKind != "" && sl.ProviderKind != filter.ProviderKind {
			continue
		}
		if filter.Date != "" && sl.Date != filter.Date {
			continue
		}
		out = append(out, *sl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memSlotStore) GetByID(_ context.Context, slotID string) (*models.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[slotID]
	if !ok {
		return nil, nil
	}
	cp := *sl
	return &cp, nil
}

func (s *memSlotStore) TryAcquire(_ context.Context, sel models.SlotSelector, requesterID string, now time.Time) (*models.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.slots))
	for id := range s.slots {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		sl := s.slots[id]
		if sl.Status != models.SlotAvailable {
			continue
		}
		if sel.SlotID != "" {
			if sl.ID != sel.SlotID {
				continue
			}
		} else {
			if sl.Date != sel.Date || sl.Time != sel.Time {
				continue
			}
			if sel.ProviderID != "" && sl.ProviderID != sel.ProviderID {
				continue
			}
			if sel.ProviderKind != "" && sl.ProviderKind != sel.ProviderKind {
				continue
			}
		}
		sl.Status = models.SlotBooked
		sl.BookedBy = requesterID
		t := now
		sl.BookedAt = &t
		cp := *sl
		return &cp, nil
	}
	return nil, nil
}

func (s *memSlotStore) Release(_ context.Context, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[slotID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	sl.Status = models.SlotAvailable
	sl.BookedBy = ""
	sl.BookedAt = nil
	return nil
}

func (s *memSlotStore) get(id string) models.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.slots[id]
}

// memLedger is an in-memory BookingRepository.
type memLedger struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	seq      int

	failCreate error
}

func newMemLedger() *memLedger {
	return &memLedger{bookings: make(map[string]*models.Booking)}
}

func (l *memLedger) Create(_ context.Context, slot models.Slot, requesterID, sessionType, concerns string, now time.Time) (*models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failCreate != nil {
		return nil, l.failCreate
	}
	l.seq++
	bk := &models.Booking{
		ID:           fmt.Sprintf("bk-%d", l.seq),
		SlotID:       slot.ID,
		ProviderID:   slot.ProviderID,
		ProviderKind: slot.ProviderKind,
		RequesterID:  requesterID,
		Date:         slot.Date,
		Time:         slot.Time,
		SessionType:  sessionType,
		Concerns:     concerns,
		Status:       models.BookingConfirmed,
		CreatedAt:    now,
	}
	l.bookings[bk.ID] = bk
	cp := *bk
	return &cp, nil
}

func (l *memLedger) FindByRequester(_ context.Context, requesterID string) ([]models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []models.Booking
	for _, bk := range l.bookings {
		if bk.RequesterID == requesterID {
			out = append(out, *bk)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (l *memLedger) FindByID(_ context.Context, bookingID string) (*models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	bk, ok := l.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	cp := *bk
	return &cp, nil
}

func (l *memLedger) Cancel(_ context.Context, bookingID string, now time.Time) (*models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	bk, ok := l.bookings[bookingID]
	if !ok || bk.Status != models.BookingConfirmed {
		return nil, nil
	}
	bk.Status = models.BookingCancelled
	t := now
	bk.CancelledAt = &t
	cp := *bk
	return &cp, nil
}

func (l *memLedger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bookings)
}

// memProviderRepo is an in-memory ProviderRepository.
type memProviderRepo struct {
	providers map[string]models.Provider
}

func (r *memProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProviderRepo) List(_ context.Context, kind models.ProviderKind) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.providers {
		if kind == "" || p.Kind == kind {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func availableSlot(id, providerID string, kind models.ProviderKind, date, tm string) models.Slot {
	return models.Slot{
		ID:           id,
		ProviderID:   providerID,
		ProviderKind: kind,
		Date:         date,
		Time:         tm,
		Status:       models.SlotAvailable,
	}
}

func newTestEngine(slots *memSlotStore, ledger *memLedger) *DefaultBookingEngine {
	return NewDefaultBookingEngine(slots, ledger, &memProviderRepo{providers: map[string]models.Provider{
		"prov-1": {ID: "prov-1", Name: "Dr. Achebe", Kind: models.KindTherapist, Specialty: "anxiety"},
	}})
}

func TestBookBySlotID(t *testing.T) {
	slots := newMemSlotStore(availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00"))
	ledger := newMemLedger()
	engine := newTestEngine(slots, ledger)

	bk, err := engine.Book(context.Background(), models.BookingRequest{
		RequesterID: "user-1",
		SlotID:      "slot-1",
		Concerns:    "exam stress",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if bk.SlotID != "slot-1" || bk.ProviderID != "prov-1" || bk.Date != "2026-09-10" || bk.Time != "10:00" {
		t.Errorf("booking not built from acquired slot: %+v", bk)
	}
	if bk.Status != models.BookingConfirmed {
		t.Errorf("expected confirmed booking, got %q", bk.Status)
	}
	if bk.SessionType != "individual" {
		t.Errorf("expected default session type, got %q", bk.SessionType)
	}

	sl := slots.get("slot-1")
	if sl.Status != models.SlotBooked || sl.BookedBy != "user-1" || sl.BookedAt == nil {
		t.Errorf("slot not marked booked: %+v", sl)
	}
}

func TestBookBySlotIDUnavailable(t *testing.T) {
	taken := availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00")
	taken.Status = models.SlotBooked
	taken.BookedBy = "user-2"
	slots := newMemSlotStore(taken)
	ledger := newMemLedger()
	engine := newTestEngine(slots, ledger)

	_, err := engine.Book(context.Background(), models.BookingRequest{RequesterID: "user-1", SlotID: "slot-1"})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
	if ledger.count() != 0 {
		t.Errorf("failed acquisition must leave no ledger rows, found %d", ledger.count())
	}
}

func TestBookByUnknownSlotID(t *testing.T) {
	slots := newMemSlotStore(availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00"))
	ledger := newMemLedger()
	engine := newTestEngine(slots, ledger)

	_, err := engine.Book(context.Background(), models.BookingRequest{RequesterID: "user-1", SlotID: "slot-404"})
	if !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
	if ledger.count() != 0 {
		t.Errorf("no booking may be created for an unknown slot")
	}
}

func TestBookByProviderAndTime(t *testing.T) {
	slots := newMemSlotStore(
		availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00"),
		availableSlot("slot-2", "prov-2", models.KindProctor, "2026-09-10", "10:00"),
	)
	ledger := newMemLedger()
	engine := newTestEngine(slots, ledger)

	bk, err := engine.Book(context.Background(), models.BookingRequest{
		RequesterID: "user-1",
		ProviderID:  "prov-2",
		Date:        "2026-09-10",
		Time:        "10:00",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if bk.SlotID != "slot-2" || bk.ProviderID != "prov-2" {
		t.Errorf("expected prov-2's slot, got %+v", bk)
	}
	if slots.get("slot-1").Status != models.SlotAvailable {
		t.Errorf("unrelated slot must stay available")
	}
}

func TestBookAutoMatch(t *testing.T) {
	slots := newMemSlotStore(
		availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00"),
		availableSlot("slot-2", "prov-2", models.KindProctor, "2026-09-10", "10:00"),
	)
	ledger := newMemLedger()
	engine := newTestEngine(slots, ledger)

	bk, err := engine.Book(context.Background(), models.BookingRequest{
		RequesterID:  "user-1",
		ProviderKind: models.KindProctor,
		Date:         "2026-09-10",
		Time:         "10:00",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if bk.ProviderKind != models.KindProctor || bk.SlotID != "slot-2" {
		t.Errorf("auto-match picked wrong slot: %+v", bk)
	}
}

func TestBookAutoMatchNoSlots(t *testing.T) {
	slots := newMemSlotStore()
	ledger := newMemLedger()
	engine := newTestEngine(slots, ledger)

	_, err := engine.Book(context.Background(), models.BookingRequest{
		RequesterID: "user-1",
		Date:        "2026-09-10",
		Time:        "10:00",
	})
	if !errors.Is(err, ErrNoAvailableSlots) {
		t.Fatalf("expected ErrNoAvailableSlots, got %v", err)
	}
	if ledger.count() != 0 {
		t.Errorf("no booking may be created when nothing was acquired")
	}
}

func TestBookValidation(t *testing.T) {
	engine := newTestEngine(newMemSlotStore(), newMemLedger())

	cases := []struct {
		name string
		req  models.BookingRequest
	}{
		{"missing requester", models.BookingRequest{SlotID: "slot-1"}},
		{"missing date and time", models.BookingRequest{RequesterID: "user-1"}},
		{"bad date", models.BookingRequest{RequesterID: "user-1", Date: "10-09-2026", Time: "10:00"}},
		{"bad time", models.BookingRequest{RequesterID: "user-1", Date: "2026-09-10", Time: "10am"}},
		{"unknown kind", models.BookingRequest{RequesterID: "user-1", Date: "2026-09-10", Time: "10:00", ProviderKind: "dentist"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := engine.Book(context.Background(), tc.req); !errors.Is(err, ErrBadRequest) {
				t.Errorf("expected ErrBadRequest, got %v", err)
			}
		})
	}
}

func TestConcurrentBookingSingleSlot(t *testing.T) {
	slots := newMemSlotStore(availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00"))
	ledger := newMemLedger()
	engine := newTestEngine(slots, ledger)

	const contenders = 16
	var wg sync.WaitGroup
	results := make(chan error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := engine.Book(context.Background(), models.BookingRequest{
				RequesterID: fmt.Sprintf("user-%d", n),
				SlotID:      "slot-1",
			})
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var won, lost int
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotUnavailable):
			lost++
		default:
			t.Errorf("unexpected error under contention: %v", err)
		}
	}
	if won != 1 {
		t.Errorf("exactly one contender must win, got %d", won)
	}
	if lost != contenders-1 {
		t.Errorf("expected %d losers, got %d", contenders-1, lost)
	}
	if ledger.count() != 1 {
		t.Errorf("expected one ledger row, got %d", ledger.count())
	}
}

func TestLedgerFailureLeavesSlotBooked(t *testing.T) {
	slots := newMemSlotStore(availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00"))
	ledger := newMemLedger()
	ledger.failCreate = errors.New("write concern error")
	engine := newTestEngine(slots, ledger)

	_, err := engine.Book(context.Background(), models.BookingRequest{RequesterID: "user-1", SlotID: "slot-1"})
	if !errors.Is(err, ErrInconsistentState) {
		t.Fatalf("expected ErrInconsistentState, got %v", err)
	}
	// Never silently re-released; reconciliation owns this case.
	if slots.get("slot-1").Status != models.SlotBooked {
		t.Errorf("slot must remain booked after ledger failure")
	}
}

func TestCancelReleasesSlot(t *testing.T) {
	slots := newMemSlotStore(availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00"))
	ledger := newMemLedger()
	engine := newTestEngine(slots, ledger)

	bk, err := engine.Book(context.Background(), models.BookingRequest{RequesterID: "user-1", SlotID: "slot-1"})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	if err := engine.Cancel(context.Background(), bk.ID, "user-1", false); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}

	sl := slots.get("slot-1")
	if sl.Status != models.SlotAvailable || sl.BookedBy != "" || sl.BookedAt != nil {
		t.Errorf("slot not released: %+v", sl)
	}
	stored, _ := ledger.FindByID(context.Background(), bk.ID)
	if stored.Status != models.BookingCancelled || stored.CancelledAt == nil {
		t.Errorf("booking not cancelled: %+v", stored)
	}
}

func TestCancelUnauthorized(t *testing.T) {
	slots := newMemSlotStore(availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00"))
	ledger := newMemLedger()
	engine := newTestEngine(slots, ledger)

	bk, _ := engine.Book(context.Background(), models.BookingRequest{RequesterID: "user-1", SlotID: "slot-1"})

	if err := engine.Cancel(context.Background(), bk.ID, "user-2", false); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	// A rejected cancellation changes nothing.
	if slots.get("slot-1").Status != models.SlotBooked {
		t.Errorf("slot must stay booked after rejected cancel")
	}
	stored, _ := ledger.FindByID(context.Background(), bk.ID)
	if stored.Status != models.BookingConfirmed {
		t.Errorf("booking must stay confirmed after rejected cancel")
	}
}

func TestCancelPrivileged(t *testing.T) {
	slots := newMemSlotStore(availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00"))
	ledger := newMemLedger()
	engine := newTestEngine(slots, ledger)

	bk, _ := engine.Book(context.Background(), models.BookingRequest{RequesterID: "user-1", SlotID: "slot-1"})

	if err := engine.Cancel(context.Background(), bk.ID, "staff-1", true); err != nil {
		t.Fatalf("privileged cancel failed: %v", err)
	}
	if slots.get("slot-1").Status != models.SlotAvailable {
		t.Errorf("slot not released by privileged cancel")
	}
}

func TestCancelTwice(t *testing.T) {
	slots := newMemSlotStore(availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00"))
	ledger := newMemLedger()
	engine := newTestEngine(slots, ledger)

	bk, _ := engine.Book(context.Background(), models.BookingRequest{RequesterID: "user-1", SlotID: "slot-1"})
	if err := engine.Cancel(context.Background(), bk.ID, "user-1", false); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}
	if err := engine.Cancel(context.Background(), bk.ID, "user-1", false); !errors.Is(err, ErrAlreadyCancelled) {
		t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
	}
}

func TestCancelNotFound(t *testing.T) {
	engine := newTestEngine(newMemSlotStore(), newMemLedger())
	if err := engine.Cancel(context.Background(), "bk-404", "user-1", false); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestListAvailability(t *testing.T) {
	booked := availableSlot("slot-2", "prov-1", models.KindTherapist, "2026-09-10", "11:00")
	booked.Status = models.SlotBooked
	slots := newMemSlotStore(
		availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00"),
		booked,
	)
	engine := newTestEngine(slots, newMemLedger())

	out, err := engine.ListAvailability(context.Background(), "", models.KindTherapist, "2026-09-10")
	if err != nil {
		t.Fatalf("ListAvailability returned error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "slot-1" {
		t.Errorf("expected only the available slot, got %+v", out)
	}

	if _, err := engine.ListAvailability(context.Background(), "", "dentist", ""); !errors.Is(err, ErrBadRequest) {
		t.Errorf("expected ErrBadRequest for unknown kind, got %v", err)
	}
}

func TestListBookingsAnnotation(t *testing.T) {
	slots := newMemSlotStore(
		availableSlot("slot-1", "prov-1", models.KindTherapist, "2026-09-10", "10:00"),
		availableSlot("slot-2", "prov-x", models.KindTherapist, "2026-09-11", "10:00"),
	)
	ledger := newMemLedger()
	engine := newTestEngine(slots, ledger)

	if _, err := engine.Book(context.Background(), models.BookingRequest{RequesterID: "user-1", SlotID: "slot-1"}); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if _, err := engine.Book(context.Background(), models.BookingRequest{RequesterID: "user-1", SlotID: "slot-2"}); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	views, err := engine.ListBookings(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListBookings returned error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(views))
	}
	if views[0].ProviderName != "Dr. Achebe" {
		t.Errorf("known provider must be annotated, got %+v", views[0])
	}
	// Unknown provider leaves annotation blank instead of failing the listing.
	if views[1].ProviderName != "" {
		t.Errorf("unknown provider must leave annotation blank, got %+v", views[1])
	}
}
