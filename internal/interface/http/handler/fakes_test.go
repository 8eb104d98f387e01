package handler

import (
	"context"
	"sort"
	"sync"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
	"github.com/ignatzorin/creative-marketplace/internal/domain/valueobject"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

type fakeStore struct {
	mu            sync.Mutex
	subcategories map[int64]bool
	interests     map[int64][]int64
	profiles      []*entity.CreativeProfile
	bookings      map[int64]*entity.BookingParties
	contracts     map[int64]*entity.Contract
	messages      []*entity.ChatMessage
	nextID        int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		subcategories: map[int64]bool{1: true, 2: true},
		interests:     make(map[int64][]int64),
		bookings:      make(map[int64]*entity.BookingParties),
		contracts:     make(map[int64]*entity.Contract),
		nextID:        1,
	}
}

func (s *fakeStore) ReplaceForUser(ctx context.Context, userID int64, ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interests[userID] = append([]int64(nil), ids...)
	return nil
}

func (s *fakeStore) SubcategoryIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.interests[userID]...), nil
}

func (s *fakeStore) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	var result []int64
	for _, id := range ids {
		if s.subcategories[id] {
			result = append(result, id)
		}
	}
	return result, nil
}

func (s *fakeStore) FindBySubcategories(ctx context.Context, ids []int64, excludeUserID int64) ([]*entity.CreativeProfile, error) {
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var result []*entity.CreativeProfile
	for _, p := range s.profiles {
		if p.SubCategoryID != nil && wanted[*p.SubCategoryID] && p.UserID != excludeUserID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *fakeStore) FindParties(ctx context.Context, bookingID int64) (*entity.BookingParties, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings[bookingID], nil
}

func (s *fakeStore) FindByID(ctx context.Context, id int64) (*entity.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contracts[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (s *fakeStore) FindByBookingID(ctx context.Context, bookingID int64) (*entity.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.contracts {
		if c.BookingID == bookingID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) CreateOnce(ctx context.Context, contract *entity.Contract) (*entity.Contract, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.contracts {
		if c.BookingID == contract.BookingID {
			copied := *c
			return &copied, false, nil
		}
	}
	contract.ID = s.nextID
	s.nextID++
	stored := *contract
	s.contracts[contract.ID] = &stored
	return contract, true, nil
}

func (s *fakeStore) SaveSignature(ctx context.Context, contract *entity.Contract, role valueobject.SignerRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.contracts[contract.ID]
	if !ok {
		return apperror.ErrContractNotFound
	}
	switch role {
	case valueobject.SignerRoleClient:
		stored.IsClientSigned = contract.IsClientSigned
		stored.ClientSignedAt = contract.ClientSignedAt
	case valueobject.SignerRoleCreative:
		stored.IsCreativeSigned = contract.IsCreativeSigned
		stored.CreativeSignedAt = contract.CreativeSignedAt
	}
	return nil
}

// chatRepo отделён от fakeStore: у ChatRepository и ContractRepository совпадает имя FindByBookingID.
type chatRepo struct {
	store *fakeStore
}

func (r chatRepo) Create(ctx context.Context, msg *entity.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	msg.ID = r.store.nextID
	r.store.nextID++
	copied := *msg
	r.store.messages = append(r.store.messages, &copied)
	return nil
}

func (r chatRepo) FindByBookingID(ctx context.Context, bookingID int64) ([]*entity.ChatMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*entity.ChatMessage
	for _, m := range r.store.messages {
		if m.BookingID == bookingID {
			result = append(result, m)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}
