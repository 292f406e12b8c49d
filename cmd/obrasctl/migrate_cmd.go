package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Obras-api/internal/infrastructure/postgres"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones de base de datos (goose, embebidas en el binario)",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()
			if err := postgres.Migrate(cmd.Context(), e.pool); err != nil {
				return err
			}
			e.log.Info().Msg("migraciones aplicadas")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revierte la última migración",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()
			if err := postgres.MigrateDown(cmd.Context(), e.pool); err != nil {
				return err
			}
			e.log.Info().Msg("última migración revertida")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Lista las migraciones y si están aplicadas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()
			list, err := postgres.MigrationStatus(cmd.Context(), e.pool)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VERSION\tESTADO\tARCHIVO")
			for _, m := range list {
				state := "pendiente"
				if m.Applied {
					state = "aplicada"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", m.Version, state, m.Source)
			}
			return w.Flush()
		},
	})
	return cmd
}
