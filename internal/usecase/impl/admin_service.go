package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"pedido/config"
	deliverycontext "pedido/internal/delivery/context"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/service"
	"pedido/internal/usecase"

	"go.uber.org/fx"
)

// RoleAdmin is the only back-office role
const RoleAdmin = "admin"

type adminService struct {
	username     string
	passwordHash string
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		username:     params.Config.Admin.Username,
		passwordHash: params.Config.Admin.PasswordHash,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *adminService) Login(ctx context.Context, username, password string) (*usecase.LoginOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if srv.username == "" || srv.passwordHash == "" {
		logger.Warn("Admin login attempted but no admin account is configured")

		return nil, domainerrors.ErrInvalidCredentials
	}

	// Both checks always run.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(srv.username)) == 1
	passOK := srv.hasher.Check(password, srv.passwordHash)
	if !userOK || !passOK {
		logger.Info("Admin login rejected", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(srv.username, []string{RoleAdmin})
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	logger.Info("Admin logged in", slog.String("username", username))

	return &usecase.LoginOutput{AccessToken: token, ExpiresAt: expiresAt}, nil
}
