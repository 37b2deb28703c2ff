package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dasolarter/finanzasapi/internal/config"
	httpserver "github.com/dasolarter/finanzasapi/internal/http"
	"github.com/dasolarter/finanzasapi/internal/http/controllers"
	"github.com/dasolarter/finanzasapi/internal/http/router"
	svc "github.com/dasolarter/finanzasapi/internal/http/services"
	jwtx "github.com/dasolarter/finanzasapi/internal/jwt"
	"github.com/dasolarter/finanzasapi/internal/observability/logger"
	"github.com/dasolarter/finanzasapi/internal/security/password"
	"github.com/dasolarter/finanzasapi/internal/store"
)

func main() {
	var (
		flagConfigPath string
		flagEnvFile    string
	)

	root := &cobra.Command{
		Use:   "finanzasapi",
		Short: "API REST de finanzas personales (usuarios, tags y finanzas)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(flagConfigPath, flagEnvFile)
		},
	}

	root.PersistentFlags().StringVar(&flagConfigPath, "config", "", "ruta a config.yaml (fallback: $CONFIG_PATH)")
	root.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "ruta a .env (si existe, se carga)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(flagConfigPath, flagEnvFile)
		},
	}
	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func runServe(configPath, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err == nil {
			fmt.Printf("dotenv: cargado %s\n", envFile)
		}
	}

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	defer func() { _ = logger.Sync() }()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout())
	defer cancel()

	st, err := store.Connect(connectCtx, cfg.Storage.Mongo.URI, cfg.Storage.Mongo.Database)
	if err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			log.Warn("error cerrando mongo", logger.Err(err))
		}
	}()
	log.Info("conectado a mongo", logger.String("database", cfg.Storage.Mongo.Database))

	issuer, err := jwtx.NewIssuer(cfg.JWT.Secret, cfg.AccessTTL())
	if err != nil {
		return err
	}

	usuarios := st.Usuarios()
	tags := st.Tags()
	finanzas := st.Finanzas()

	usuarioSvc := svc.NewUsuarioService(svc.UsuarioDeps{
		Usuarios: usuarios,
		Tags:     tags,
		Finanzas: finanzas,
		Issuer:   issuer,
		Hash:     password.Default,
	})
	tagSvc := svc.NewTagService(svc.TagDeps{
		Tags:     tags,
		Usuarios: usuarios,
		Finanzas: finanzas,
	})
	finanzaSvc := svc.NewFinanzaService(svc.FinanzaDeps{
		Finanzas: finanzas,
		Usuarios: usuarios,
		Tags:     tags,
	})

	handler := router.New(router.Deps{
		Usuarios:           controllers.NewUsuarioController(usuarioSvc),
		Tags:               controllers.NewTagController(tagSvc),
		Finanzas:           controllers.NewFinanzaController(finanzaSvc),
		Issuer:             issuer,
		Store:              st,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	})

	return httpserver.Start(ctx, cfg.Server.Addr, handler)
}
