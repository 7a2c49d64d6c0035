// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"pedido/config"
	deliverycontext "pedido/internal/delivery/context"
	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	"pedido/internal/usecase"
	"pedido/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	phones       util.PhoneFormat
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		phones:       phoneFormat(params.Config),
		logger:       params.Logger,
	}
}

func phoneFormat(cfg *config.Config) util.PhoneFormat {
	return util.PhoneFormat{CountryCode: cfg.Phone.CountryCode, AreaCode: cfg.Phone.AreaCode}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterCustomer is keyed by canonical phone: it never creates a second customer for a
// phone it can already read. Two concurrent first contacts may both miss the lookup; the
// loser hits the unique phone index and is resolved by re-reading the winner.
func (srv *customerService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.RegisterCustomerOutput, error) {
	phone := srv.phones.Normalize(input.Phone)
	if phone == "" {
		return nil, domainerrors.ErrInvalidPhone
	}

	existing, err := srv.customerRepo.FindByPhone(ctx, phone)
	switch {
	case err == nil:
		return srv.mergeExisting(ctx, existing, input)
	case !errors.Is(err, repository.ErrCustomerNotFound):
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find customer")
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New(),
		Phone:        phone,
		Name:         input.Name,
		Address:      input.Address,
		Street:       input.Street,
		Number:       input.Number,
		Complement:   input.Complement,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		State:        input.State,
		CEP:          input.CEP,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.customerRepo.CreateCustomer(ctx, customer)
	if errors.Is(err, repository.ErrDuplicateCustomer) {
		srv.log(ctx).Warn("Concurrent customer registration detected, merging into winner", slog.String("phone", phone))

		winner, findErr := srv.customerRepo.FindByPhone(ctx, phone)
		if findErr != nil {
			return nil, domainerrors.ErrCustomerSaveFailed.WrapMessage(findErr.Error())
		}

		return srv.mergeExisting(ctx, winner, input)
	}
	if err != nil {
		return nil, domainerrors.ErrCustomerSaveFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Customer registered", slog.String("customer_id", customer.ID.String()))

	return &usecase.RegisterCustomerOutput{Exists: false, ID: customer.ID}, nil
}

func (srv *customerService) mergeExisting(ctx context.Context, existing *entity.Customer, input *usecase.RegisterCustomerInput) (*usecase.RegisterCustomerOutput, error) {
	fields := changedCustomerFields(existing, input)
	if len(fields) > 0 {
		if err := srv.customerRepo.UpdateCustomerFields(ctx, existing.ID, fields); err != nil {
			return nil, domainerrors.ErrCustomerSaveFailed.WrapMessage(err.Error())
		}
		applyCustomerFields(existing, fields)

		srv.log(ctx).Info("Customer profile merged",
			slog.String("customer_id", existing.ID.String()),
			slog.Int("changed_fields", len(fields)),
		)
	}

	return &usecase.RegisterCustomerOutput{Exists: true, ID: existing.ID, SavedData: existing}, nil
}

// FindCustomer returns repository.ErrCustomerNotFound wrapped as ErrCustomerNotRegistered
func (srv *customerService) FindCustomer(ctx context.Context, phone string) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByPhone(ctx, srv.phones.Normalize(phone))
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, domainerrors.ErrCustomerNotRegistered
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find customer")
	}

	return customer, nil
}

type customerField struct {
	column string
	stored func(*entity.Customer) *string
	input  func(*usecase.RegisterCustomerInput) string
}

var customerFields = []customerField{
	{"name", func(c *entity.Customer) *string { return &c.Name }, func(i *usecase.RegisterCustomerInput) string { return i.Name }},
	{"address", func(c *entity.Customer) *string { return &c.Address }, func(i *usecase.RegisterCustomerInput) string { return i.Address }},
	{"street", func(c *entity.Customer) *string { return &c.Street }, func(i *usecase.RegisterCustomerInput) string { return i.Street }},
	{"number", func(c *entity.Customer) *string { return &c.Number }, func(i *usecase.RegisterCustomerInput) string { return i.Number }},
	{"complement", func(c *entity.Customer) *string { return &c.Complement }, func(i *usecase.RegisterCustomerInput) string { return i.Complement }},
	{"neighborhood", func(c *entity.Customer) *string { return &c.Neighborhood }, func(i *usecase.RegisterCustomerInput) string { return i.Neighborhood }},
	{"city", func(c *entity.Customer) *string { return &c.City }, func(i *usecase.RegisterCustomerInput) string { return i.City }},
	{"state", func(c *entity.Customer) *string { return &c.State }, func(i *usecase.RegisterCustomerInput) string { return i.State }},
	{"cep", func(c *entity.Customer) *string { return &c.CEP }, func(i *usecase.RegisterCustomerInput) string { return i.CEP }},
}

// changedCustomerFields returns the columns whose supplied value is non-empty and differs from stored
func changedCustomerFields(existing *entity.Customer, input *usecase.RegisterCustomerInput) map[string]any {
	fields := make(map[string]any)
	for _, f := range customerFields {
		value := f.input(input)
		if value != "" && value != *f.stored(existing) {
			fields[f.column] = value
		}
	}

	return fields
}

func applyCustomerFields(customer *entity.Customer, fields map[string]any) {
	for _, f := range customerFields {
		if value, ok := fields[f.column].(string); ok {
			*f.stored(customer) = value
		}
	}
}
