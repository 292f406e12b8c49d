package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Obras-api/internal/application/auth"
	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/infrastructure/postgres"
)

type seedAdminOptions struct {
	Email    string
	Password string
	Name     string
}

func newSeedAdminCmd() *cobra.Command {
	var opts seedAdminOptions

	cmd := &cobra.Command{
		Use:   "seed-admin --email <email> --password <password>",
		Short: "Crea el primer usuario administrador (no hace nada si el email ya existe)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(opts.Email) == "" {
				return errors.New("--email es obligatorio")
			}
			if len(opts.Password) < 8 {
				return errors.New("--password debe tener al menos 8 caracteres")
			}
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			authUC := auth.NewAuthUseCase(postgres.NewUserRepository(e.pool), auth.JWTConfig{
				Secret: e.cfg.JWT.Secret, ExpMinutes: e.cfg.JWT.Expiration, Issuer: e.cfg.JWT.Issuer,
			})
			u, err := authUC.CreateUser(cmd.Context(), dto.CreateUserRequest{
				Email:    opts.Email,
				Password: opts.Password,
				Name:     opts.Name,
				Role:     entity.RoleAdmin,
			})
			if errors.Is(err, domain.ErrEmailAlreadyExists) {
				e.log.Warn().Str("email", opts.Email).Msg("el usuario ya existe, sin cambios")
				return nil
			}
			if err != nil {
				return err
			}
			e.log.Info().Str("user_id", u.ID).Str("email", u.Email).Msg("administrador creado")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "email del administrador")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password inicial (mínimo 8 caracteres)")
	cmd.Flags().StringVar(&opts.Name, "name", "Administrador", "nombre visible")
	return cmd
}
