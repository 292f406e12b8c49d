package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Obras-api/internal/application/dto"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain"
	"github.com/jhoicas/Obras-api/internal/infrastructure/postgres"
)

type importOptions struct {
	Latin1 bool
	DryRun bool
}

func newImportEmployeesCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import-employees <archivo.csv>",
		Short: "Importa personal desde un CSV exportado de nómina",
		Long: "Columnas reconocidas (cabecera obligatoria, en cualquier orden): employee_number, first_name,\n" +
			"last_name, email, phone, position, department, hire_date (YYYY-MM-DD).\n" +
			"Los números de empleado ya registrados se omiten.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("abrir CSV: %w", err)
			}
			defer f.Close()

			var r io.Reader = f
			if opts.Latin1 {
				r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
			}
			rows, err := parseEmployeesCSV(r)
			if err != nil {
				return err
			}
			if opts.DryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d empleados válidos (dry-run, nada se escribió)\n", len(rows))
				return nil
			}

			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			employees := usecase.NewEmployeeUseCase(postgres.NewEmployeeRepository(e.pool), nil, nil)
			var created, skipped int
			for _, row := range rows {
				_, err := employees.Create(cmd.Context(), "", row.req)
				switch {
				case errors.Is(err, domain.ErrDuplicate):
					skipped++
					e.log.Warn().Int("line", row.line).Str("employee_number", row.req.EmployeeNumber).Msg("ya existe, se omite")
				case err != nil:
					return fmt.Errorf("línea %d: %w", row.line, err)
				default:
					created++
				}
			}
			e.log.Info().Int("created", created).Int("skipped", skipped).Msg("importación terminada")
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Latin1, "latin1", false, "el archivo viene en ISO-8859-1 (exportes de Excel en Windows)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "solo valida el archivo")
	return cmd
}

type employeeRow struct {
	line int
	req  dto.CreateEmployeeRequest
}

// parseEmployeesCSV acepta coma o punto y coma como separador.
func parseEmployeesCSV(r io.Reader) ([]employeeRow, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	text := strings.TrimPrefix(string(raw), "\ufeff")

	cr := csv.NewReader(strings.NewReader(text))
	if first, _, _ := strings.Cut(text, "\n"); strings.Count(first, ";") > strings.Count(first, ",") {
		cr.Comma = ';'
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("CSV sin cabecera: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"first_name", "last_name"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("falta la columna %s", required)
		}
	}

	var out []employeeRow
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		get := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		req := dto.CreateEmployeeRequest{
			EmployeeNumber: get("employee_number"),
			FirstName:      get("first_name"),
			LastName:       get("last_name"),
			Email:          get("email"),
			Phone:          get("phone"),
			Position:       get("position"),
			Department:     get("department"),
		}
		if req.FirstName == "" && req.LastName == "" {
			continue
		}
		if req.FirstName == "" || req.LastName == "" {
			return nil, fmt.Errorf("línea %d: nombre y apellido son obligatorios", line)
		}
		if d := get("hire_date"); d != "" {
			t, err := time.Parse("2006-01-02", d)
			if err != nil {
				return nil, fmt.Errorf("línea %d: hire_date %q debe ser YYYY-MM-DD", line, d)
			}
			req.HireDate = &t
		}
		out = append(out, employeeRow{line: line, req: req})
	}
	return out, nil
}
