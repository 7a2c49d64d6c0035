package impl

import (
	"context"
	"testing"

	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	mockRepo "pedido/internal/mocks/repository"
	"pedido/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewCustomerService(CustomerServiceParams{
		CustomerRepo: customerRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return customerServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
	}
}

func TestCustomerService_RegisterCustomer_New(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	var created *entity.Customer

	fx.customerRepo.EXPECT().
		FindByPhone(ctx, "5511987654321").
		Return(nil, repository.ErrCustomerNotFound)
	fx.customerRepo.EXPECT().
		CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) { created = customer }).
		Return(nil)

	out, err := fx.service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		Phone: "(11) 98765-4321",
		Name:  "Maria",
		CEP:   "01310-100",
	})
	require.NoError(t, err)
	assert.False(t, out.Exists)
	assert.Nil(t, out.SavedData)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, "5511987654321", created.Phone)
	assert.Equal(t, "Maria", created.Name)
	assert.Equal(t, "01310-100", created.CEP)
}

func TestCustomerService_RegisterCustomer_MergesOnlyChangedNonEmptyFields(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	existing := &entity.Customer{
		ID:     uuid.New(),
		Phone:  "5511987654321",
		Name:   "Maria",
		Street: "Rua A",
		CEP:    "01310-100",
	}

	fx.customerRepo.EXPECT().
		FindByPhone(ctx, "5511987654321").
		Return(existing, nil)
	fx.customerRepo.EXPECT().
		UpdateCustomerFields(ctx, existing.ID, map[string]any{"street": "Rua B", "number": "10"}).
		Return(nil)

	out, err := fx.service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		Phone:  "11987654321",
		Name:   "Maria",
		Street: "Rua B",
		Number: "10",
		CEP:    "",
	})
	require.NoError(t, err)
	assert.True(t, out.Exists)
	assert.Equal(t, existing.ID, out.ID)
	require.NotNil(t, out.SavedData)
	assert.Equal(t, "Rua B", out.SavedData.Street)
	assert.Equal(t, "10", out.SavedData.Number)
	assert.Equal(t, "01310-100", out.SavedData.CEP, "empty input never clears a stored field")
}

func TestCustomerService_RegisterCustomer_NothingChangedSkipsUpdate(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	existing := &entity.Customer{ID: uuid.New(), Phone: "5511987654321", Name: "Maria"}

	fx.customerRepo.EXPECT().
		FindByPhone(ctx, "5511987654321").
		Return(existing, nil)

	out, err := fx.service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{Phone: "5511987654321", Name: "Maria"})
	require.NoError(t, err)
	assert.True(t, out.Exists)
	fx.customerRepo.AssertNotCalled(t, "UpdateCustomerFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerService_RegisterCustomer_SequentialCallsNeverDuplicate(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	var stored *entity.Customer

	fx.customerRepo.EXPECT().
		FindByPhone(ctx, "5511987654321").
		RunAndReturn(func(context.Context, string) (*entity.Customer, error) {
			if stored == nil {
				return nil, repository.ErrCustomerNotFound
			}
			copied := *stored

			return &copied, nil
		})
	fx.customerRepo.EXPECT().
		CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) { stored = customer }).
		Return(nil).
		Once()

	first, err := fx.service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{Phone: "11987654321", Name: "Maria"})
	require.NoError(t, err)
	second, err := fx.service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{Phone: "987654321", Name: "Maria"})
	require.NoError(t, err)

	assert.False(t, first.Exists)
	assert.True(t, second.Exists)
	assert.Equal(t, first.ID, second.ID)
}

// Two first contacts racing past the lookup: the unique phone index rejects the loser, which
// then merges into the winner's row instead of failing.
func TestCustomerService_RegisterCustomer_ConcurrentInsertLoserMergesIntoWinner(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	winner := &entity.Customer{ID: uuid.New(), Phone: "5511987654321", Name: "Maria"}

	fx.customerRepo.EXPECT().
		FindByPhone(ctx, "5511987654321").
		Return(nil, repository.ErrCustomerNotFound).
		Once()
	fx.customerRepo.EXPECT().
		CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(repository.ErrDuplicateCustomer)
	fx.customerRepo.EXPECT().
		FindByPhone(ctx, "5511987654321").
		Return(winner, nil).
		Once()
	fx.customerRepo.EXPECT().
		UpdateCustomerFields(ctx, winner.ID, map[string]any{"address": "Rua C, 5"}).
		Return(nil)

	out, err := fx.service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{Phone: "11987654321", Name: "Maria", Address: "Rua C, 5"})
	require.NoError(t, err)
	assert.True(t, out.Exists)
	assert.Equal(t, winner.ID, out.ID)
}

func TestCustomerService_RegisterCustomer_Errors(t *testing.T) {
	t.Run("empty phone", func(t *testing.T) {
		fx := createTestCustomerService(t)

		_, err := fx.service.RegisterCustomer(context.Background(), &usecase.RegisterCustomerInput{Phone: "sem telefone"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPhone)
	})

	t.Run("create fails", func(t *testing.T) {
		fx := createTestCustomerService(t)
		ctx := context.Background()

		fx.customerRepo.EXPECT().FindByPhone(ctx, "5511987654321").Return(nil, repository.ErrCustomerNotFound)
		fx.customerRepo.EXPECT().CreateCustomer(ctx, mock.Anything).Return(errors.New("disk full"))

		_, err := fx.service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{Phone: "11987654321", Name: "Maria"})
		assert.ErrorIs(t, err, domainerrors.ErrCustomerSaveFailed)
	})

	t.Run("lookup fails", func(t *testing.T) {
		fx := createTestCustomerService(t)
		ctx := context.Background()

		fx.customerRepo.EXPECT().FindByPhone(ctx, "5511987654321").Return(nil, errors.New("connection refused"))

		_, err := fx.service.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{Phone: "11987654321"})
		require.Error(t, err)
		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	})
}

func TestCustomerService_FindCustomer(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := &entity.Customer{ID: uuid.New(), Phone: "5511987654321"}

	fx.customerRepo.EXPECT().FindByPhone(ctx, "5511987654321").Return(customer, nil).Once()
	fx.customerRepo.EXPECT().FindByPhone(ctx, "5511911112222").Return(nil, repository.ErrCustomerNotFound).Once()

	got, err := fx.service.FindCustomer(ctx, "+55 (11) 98765-4321")
	require.NoError(t, err)
	assert.Equal(t, customer, got)

	_, err = fx.service.FindCustomer(ctx, "11911112222")
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotRegistered)
}
