package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/repository"
)

type mockCreativeRepo struct {
	mock.Mock
}

func (m *mockCreativeRepo) List(ctx context.Context, filter repository.CreativeFilter) ([]models.CreativeProfile, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.CreativeProfile), args.Error(1)
}

func (m *mockCreativeRepo) GetByUserID(ctx context.Context, userID int64) (*models.CreativeProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreativeProfile), args.Error(1)
}

func (m *mockCreativeRepo) Create(ctx context.Context, profile *models.CreativeProfile) error {
	args := m.Called(ctx, profile)
	if args.Error(0) == nil {
		profile.ID = 10
	}
	return args.Error(0)
}

func (m *mockCreativeRepo) SetVerified(ctx context.Context, id int64, verified bool) error {
	return m.Called(ctx, id, verified).Error(0)
}

func TestCreativeService_ListVerifiedFiltersVerified(t *testing.T) {
	repo := new(mockCreativeRepo)
	svc := NewCreativeService(nil, repo)
	ctx := context.Background()

	repo.On("List", ctx, mock.MatchedBy(func(f repository.CreativeFilter) bool {
		return f.Verified != nil && *f.Verified && f.SubCategoryID == 3 && f.Search == "ali"
	})).Return([]models.CreativeProfile{{ID: 1, IsVerified: true}}, nil)

	profiles, err := svc.ListVerified(ctx, 3, "ali")

	require.NoError(t, err)
	assert.Len(t, profiles, 1)
	repo.AssertExpectations(t)
}

func TestCreativeService_CreateProfile(t *testing.T) {
	repo := new(mockCreativeRepo)
	svc := NewCreativeService(nil, repo)
	ctx := context.Background()

	repo.On("GetByUserID", ctx, int64(5)).Return(nil, apperror.ErrProfileNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*models.CreativeProfile")).Return(nil)

	profile, created, err := svc.CreateProfile(ctx, CreateProfileInput{UserID: 5, HourlyRate: 50, PortfolioURL: "https://example.com"})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(10), profile.ID)
	assert.False(t, profile.IsVerified)
	assert.Equal(t, models.Money(50), profile.HourlyRate)
}

func TestCreativeService_CreateProfileExisting(t *testing.T) {
	repo := new(mockCreativeRepo)
	svc := NewCreativeService(nil, repo)
	ctx := context.Background()
	existing := &models.CreativeProfile{ID: 3, UserID: 5}

	repo.On("GetByUserID", ctx, int64(5)).Return(existing, nil)

	profile, created, err := svc.CreateProfile(ctx, CreateProfileInput{UserID: 5})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, existing, profile)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreativeService_CreateProfileRequiresUser(t *testing.T) {
	svc := NewCreativeService(nil, new(mockCreativeRepo))

	_, _, err := svc.CreateProfile(context.Background(), CreateProfileInput{})

	assert.ErrorIs(t, err, apperror.ErrUserIDRequired)
}

func TestCreativeService_Moderate(t *testing.T) {
	repo := new(mockCreativeRepo)
	svc := NewCreativeService(nil, repo)
	ctx := context.Background()

	repo.On("SetVerified", ctx, int64(1), true).Return(nil)
	repo.On("SetVerified", ctx, int64(2), false).Return(nil)
	repo.On("SetVerified", ctx, int64(3), true).Return(apperror.ErrProfileNotFound)

	assert.NoError(t, svc.Moderate(ctx, 1, "approve"))
	assert.NoError(t, svc.Moderate(ctx, 2, "reject"))
	assert.True(t, apperror.IsNotFound(svc.Moderate(ctx, 3, "approve")))
	assert.True(t, apperror.IsValidation(svc.Moderate(ctx, 1, "ban")))
	repo.AssertExpectations(t)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestBookingService_CreateStartsPending(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewBookingService(repo)
	ctx := context.Background()
	date, err := models.ParseDate("2024-06-01")
	require.NoError(t, err)

	repo.On("Create", ctx, mock.MatchedBy(func(b *models.Booking) bool {
		return b.Status == "pending" && b.ClientID == 1 && b.CreativeID == 2 && b.BookingDate == date
	})).Return(nil)

	booking, err := svc.Create(ctx, CreateBookingInput{ClientID: 1, CreativeID: 2, BookingDate: date, Requirements: " logo "})

	require.NoError(t, err)
	assert.Equal(t, "logo", booking.Requirements)
	repo.AssertExpectations(t)
}

func TestBookingService_UpdateStatus(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewBookingService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(42)).Return(&models.Booking{ID: 42, Status: "pending", Requirements: "logo"}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

	accepted := "accepted"
	booking, err := svc.Update(ctx, 42, UpdateBookingInput{Status: &accepted})

	require.NoError(t, err)
	assert.Equal(t, "accepted", booking.Status)
	assert.Equal(t, "logo", booking.Requirements)
}

func TestBookingService_UpdateRejectsUnknownStatus(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewBookingService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(42)).Return(&models.Booking{ID: 42, Status: "pending"}, nil)

	status := "archived"
	_, err := svc.Update(ctx, 42, UpdateBookingInput{Status: &status})

	assert.True(t, apperror.IsValidation(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	args := m.Called(ctx, o)
	if args.Error(0) == nil {
		o.ID = 1
		o.TotalPrice = models.Money(float64(o.Quantity) * 12.5)
	}
	return args.Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *mockOrderRepo) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockOrderRepo) Update(ctx context.Context, o *models.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestOrderService_CreateDefaultsQuantity(t *testing.T) {
	repo := new(mockOrderRepo)
	svc := NewOrderService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(o *models.Order) bool {
		return o.Quantity == 1 && o.Status == "pending"
	})).Return(nil)

	order, err := svc.Create(ctx, CreateOrderInput{ProductID: 3, ClientID: 1})

	require.NoError(t, err)
	assert.Equal(t, models.Money(12.5), order.TotalPrice)
}

func TestOrderService_UpdateKeepsTotal(t *testing.T) {
	repo := new(mockOrderRepo)
	svc := NewOrderService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&models.Order{ID: 1, Quantity: 2, TotalPrice: 25, Status: "pending"}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Order")).Return(nil)

	shipped := "shipped"
	order, err := svc.Update(ctx, 1, UpdateOrderInput{Status: &shipped})

	require.NoError(t, err)
	assert.Equal(t, "shipped", order.Status)
	assert.Equal(t, models.Money(25), order.TotalPrice)

	bogus := "lost"
	_, err = svc.Update(ctx, 1, UpdateOrderInput{Status: &bogus})
	assert.True(t, apperror.IsValidation(err))
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductRepo) Create(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) Update(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) SetImage(ctx context.Context, id int64, path string) error {
	return m.Called(ctx, id, path).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepo) ListPackages(ctx context.Context, creativeID int64) ([]models.ServicePackage, error) {
	args := m.Called(ctx, creativeID)
	return args.Get(0).([]models.ServicePackage), args.Error(1)
}

func (m *mockProductRepo) CreatePackage(ctx context.Context, p *models.ServicePackage) error {
	return m.Called(ctx, p).Error(0)
}

type mockImageStore struct {
	mock.Mock
}

func (m *mockImageStore) Save(ctx context.Context, dir string, r io.Reader) (string, error) {
	args := m.Called(ctx, dir, r)
	return args.String(0), args.Error(1)
}

func (m *mockImageStore) Delete(ctx context.Context, relativePath string) error {
	return m.Called(ctx, relativePath).Error(0)
}

func TestProductService_UploadImageReplacesOld(t *testing.T) {
	repo := new(mockProductRepo)
	images := new(mockImageStore)
	svc := NewProductService(repo, images)
	ctx := context.Background()
	body := bytes.NewReader([]byte("img"))

	repo.On("GetByID", ctx, int64(7)).Return(&models.Product{ID: 7, ImagePath: "products/7/old.png"}, nil)
	images.On("Save", ctx, "products/7", body).Return("products/7/new.png", nil)
	repo.On("SetImage", ctx, int64(7), "products/7/new.png").Return(nil)
	images.On("Delete", ctx, "products/7/old.png").Return(nil)

	product, err := svc.UploadImage(ctx, 7, body)

	require.NoError(t, err)
	assert.Equal(t, "products/7/new.png", product.ImagePath)
	images.AssertExpectations(t)
}

func TestProductService_UploadImageCleansUpOnDBError(t *testing.T) {
	repo := new(mockProductRepo)
	images := new(mockImageStore)
	svc := NewProductService(repo, images)
	ctx := context.Background()
	body := bytes.NewReader([]byte("img"))
	dbErr := apperror.Database(errors.New("conn reset"), "failed to update product image")

	repo.On("GetByID", ctx, int64(7)).Return(&models.Product{ID: 7}, nil)
	images.On("Save", ctx, "products/7", body).Return("products/7/new.png", nil)
	repo.On("SetImage", ctx, int64(7), "products/7/new.png").Return(dbErr)
	images.On("Delete", ctx, "products/7/new.png").Return(nil)

	_, err := svc.UploadImage(ctx, 7, body)

	assert.ErrorIs(t, err, dbErr)
	images.AssertExpectations(t)
}

func TestProductService_CreateValidates(t *testing.T) {
	svc := NewProductService(new(mockProductRepo), new(mockImageStore))
	ctx := context.Background()
	name := "Poster"
	negative := -1.0

	_, err := svc.Create(ctx, ProductInput{CreativeID: 1, Name: &name})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.Create(ctx, ProductInput{CreativeID: 1, Name: &name, Price: &negative})
	assert.True(t, apperror.IsValidation(err))
}

func TestProductService_CreatePackageDefaultsDelivery(t *testing.T) {
	repo := new(mockProductRepo)
	svc := NewProductService(repo, new(mockImageStore))
	ctx := context.Background()

	repo.On("CreatePackage", ctx, mock.MatchedBy(func(p *models.ServicePackage) bool {
		return p.DeliveryDays == 1 && p.Name == "Basic"
	})).Return(nil)

	pkg, err := svc.CreatePackage(ctx, PackageInput{CreativeID: 1, Name: " Basic ", Price: 100})

	require.NoError(t, err)
	assert.Equal(t, models.Money(100), pkg.Price)
	repo.AssertExpectations(t)
}
