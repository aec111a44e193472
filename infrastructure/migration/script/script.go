package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/infrastructure/database"
	"github.com/vfg2006/social-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-insights-api/infrastructure/database/sqlite"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmailEnv    = "ADMIN_EMAIL"
	adminPasswordEnv = "ADMIN_PASSWORD"
	adminName        = "Administrador"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func connect(ctx context.Context, cfg config.Database) (*database.Connection, error) {
	if cfg.Driver == database.DriverSQLite {
		return sqlite.NewConnection(ctx, cfg)
	}
	return postgres.NewConnection(ctx, cfg)
}

// seedAdmin cria o primeiro usuário do dashboard se o email ainda não existir
func seedAdmin(ctx context.Context, users repository.UserRepository, email, password string) error {
	existing, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.Active {
		logrus.WithField("email", existing.Email).Info("Usuário administrador já existe, nada a fazer")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// Administrador desativado volta ativo com a senha informada
	if existing != nil {
		existing.Active = true
		existing.PasswordHash = string(hash)
		if err := users.UpdateUser(ctx, existing); err != nil {
			return err
		}
		logrus.WithField("user_id", existing.ID).Info("Usuário administrador reativado")
		return nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return err
	}

	user, err := users.CreateUser(ctx, &domain.User{
		ID:           id,
		Name:         adminName,
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("Usuário administrador criado")
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	startTime := time.Now()
	logrus.WithField("driver", cfg.Database.Driver).Info("Conectando ao banco de dados...")

	conn, err := connect(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := database.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao aplicar schema")
	}
	logrus.WithField("statements", len(database.Schema)).Info("Schema aplicado com sucesso")

	email, password := os.Getenv(adminEmailEnv), os.Getenv(adminPasswordEnv)
	if email == "" || password == "" {
		logrus.Warnf("%s/%s não definidos, pulando criação do administrador", adminEmailEnv, adminPasswordEnv)
	} else if err := seedAdmin(ctx, repository.NewUserRepository(conn), email, password); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar usuário administrador")
	}

	logrus.Infof("Migração concluída em %v!", time.Since(startTime))
}
