package app

import (
	"context"
	"net/http"
	authAPI "plinko_backend/internal/api/auth"
	gameAPI "plinko_backend/internal/api/game"
	settingsAPI "plinko_backend/internal/api/settings"
	walletAPI "plinko_backend/internal/api/wallet"
	"plinko_backend/internal/config"
	"plinko_backend/internal/config/env"
	"plinko_backend/internal/middleware"
	"plinko_backend/internal/repository"
	"plinko_backend/internal/repository/auth_repo"
	"plinko_backend/internal/repository/demo_session_repo"
	"plinko_backend/internal/repository/drop_session_repo"
	"plinko_backend/internal/repository/settings_repo"
	"plinko_backend/internal/repository/user_repo"
	"plinko_backend/internal/repository/wallet_repo"
	"plinko_backend/internal/repository/wallet_request_repo"
	"plinko_backend/internal/service"
	"plinko_backend/internal/service/auth"
	"plinko_backend/internal/service/game"
	"plinko_backend/internal/service/settings"
	"plinko_backend/internal/service/wallet"
	"plinko_backend/internal/ws"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Wallet bits
	walletRepo        repository.WalletRepository
	walletRequestRepo repository.WalletRequestRepository
	walletServ        service.WalletService
	walletHand        *walletAPI.Handler

	// Settings bits
	settingsRepo repository.SettingsRepository
	settingsServ service.SettingsService
	settingsHand *settingsAPI.Handler

	// Game bits
	gameCfg  config.GameConfig
	dropRepo repository.DropSessionRepository
	demoRepo repository.DemoSessionRepository
	gameServ service.GameService
	gameHand *gameAPI.Handler

	// WebSocket hub
	hub *ws.Hub

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) WalletRepo(ctx context.Context) repository.WalletRepository {
	if sp.walletRepo == nil {
		sp.walletRepo = wallet_repo.NewWalletRepository(sp.DBClient(ctx))
	}
	return sp.walletRepo
}

func (sp *ServiceProvider) WalletRequestRepo(ctx context.Context) repository.WalletRequestRepository {
	if sp.walletRequestRepo == nil {
		sp.walletRequestRepo = wallet_request_repo.NewWalletRequestRepository(sp.DBClient(ctx))
	}
	return sp.walletRequestRepo
}

func (sp *ServiceProvider) SettingsRepo(ctx context.Context) repository.SettingsRepository {
	if sp.settingsRepo == nil {
		sp.settingsRepo = settings_repo.NewSettingsRepository(sp.DBClient(ctx))
	}
	return sp.settingsRepo
}

func (sp *ServiceProvider) DropSessionRepo() repository.DropSessionRepository {
	if sp.dropRepo == nil {
		sp.dropRepo = drop_session_repo.NewDropSessionRepository()
	}
	return sp.dropRepo
}

func (sp *ServiceProvider) DemoSessionRepo() repository.DemoSessionRepository {
	if sp.demoRepo == nil {
		sp.demoRepo = demo_session_repo.NewDemoSessionRepository()
	}
	return sp.demoRepo
}

func (sp *ServiceProvider) Hub() *ws.Hub {
	if sp.hub == nil {
		demoRepo := sp.DemoSessionRepo()
		sp.hub = ws.NewHub(
			// Фронт ходит с другого origin, проверку не включаем
			func(r *http.Request) bool { return true },
			demoRepo.ClearSocket,
		)
	}
	return sp.hub
}

func (sp *ServiceProvider) SettingsService(ctx context.Context) service.SettingsService {
	if sp.settingsServ == nil {
		sp.settingsServ = settings.NewSettingsService(sp.SettingsRepo(ctx), sp.GameCfg(), sp.Hub())
	}
	return sp.settingsServ
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(
			sp.GameCfg(),
			sp.UserRepo(ctx),
			sp.WalletRepo(ctx),
			sp.DropSessionRepo(),
			sp.DemoSessionRepo(),
			sp.SettingsService(ctx),
			sp.TXManager(ctx),
			sp.Hub(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) WalletService(ctx context.Context) service.WalletService {
	if sp.walletServ == nil {
		sp.walletServ = wallet.NewWalletService(
			sp.UserRepo(ctx),
			sp.WalletRepo(ctx),
			sp.WalletRequestRepo(ctx),
			sp.TXManager(ctx),
			sp.Hub(),
		)
	}
	return sp.walletServ
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) SettingsHandler(ctx context.Context) *settingsAPI.Handler {
	if sp.settingsHand == nil {
		sp.settingsHand = settingsAPI.NewHandler(settingsAPI.HandlerDeps{Serv: sp.SettingsService(ctx)})
	}
	return sp.settingsHand
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{Serv: sp.WalletService(ctx)})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// WebSocket endpoint
		r.Get("/ws", sp.Hub().HandleWS)

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Post("/game", gameHandler.Play)
		r.Post("/demo-game", gameHandler.DemoPlay)
		r.Get("/remaining-balls/{userId}", gameHandler.RemainingBalls)

		// Settings endpoints
		settingsHandler := sp.SettingsHandler(ctx)
		r.Get("/settings", settingsHandler.Get)
		r.Post("/settings", settingsHandler.Update)

		// Wallet endpoints
		walletHandler := sp.WalletHandler(ctx)
		r.Get("/user-wallet", walletHandler.UserWallet)
		r.Route("/wallet", func(rr chi.Router) {
			rr.Post("/request", walletHandler.SubmitRequest)

			// Админские операции с заявками
			rr.Group(func(ra chi.Router) {
				ra.Use(middleware.Auth(sp.JWTCfg()))
				ra.Use(middleware.RequireAdmin(sp.UserRepo(ctx)))
				ra.Get("/requests", walletHandler.ListRequests)
				ra.Patch("/request/{id}/approve", walletHandler.Approve)
				ra.Patch("/request/{id}/reject", walletHandler.Reject)
			})
		})

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/api/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		sp.router = r
	}

	return sp.router
}
