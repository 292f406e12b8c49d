package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestParseEmployeesCSV_PuntoYComaYLatin1(t *testing.T) {
	src := "employee_number;first_name;last_name;position;hire_date\n" +
		"E-001;José;Muñoz;Maestro de obra;2024-02-01\n" +
		";;;;\n" +
		"E-002;Ana;Peña;Oficial;\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(src)
	require.NoError(t, err)

	rows, err := parseEmployeesCSV(transform.NewReader(strings.NewReader(latin1), charmap.ISO8859_1.NewDecoder()))
	require.NoError(t, err)
	require.Len(t, rows, 2, "las filas vacías se ignoran")

	assert.Equal(t, "José", rows[0].req.FirstName)
	assert.Equal(t, "Muñoz", rows[0].req.LastName)
	require.NotNil(t, rows[0].req.HireDate)
	assert.Equal(t, "2024-02-01", rows[0].req.HireDate.Format("2006-01-02"))
	assert.Equal(t, 4, rows[1].line)
	assert.Nil(t, rows[1].req.HireDate)
}

func TestParseEmployeesCSV_ComaConBOM(t *testing.T) {
	rows, err := parseEmployeesCSV(strings.NewReader("\ufeffFirst_Name,Last_Name,Email\nLuis,Vega,luis@obra.co\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "luis@obra.co", rows[0].req.Email)
}

func TestParseEmployeesCSV_Errores(t *testing.T) {
	_, err := parseEmployeesCSV(strings.NewReader("first_name,email\nLuis,x@y.co\n"))
	assert.ErrorContains(t, err, "last_name")

	_, err = parseEmployeesCSV(strings.NewReader("first_name,last_name\nLuis,\n"))
	assert.ErrorContains(t, err, "línea 2")

	_, err = parseEmployeesCSV(strings.NewReader("first_name,last_name,hire_date\nLuis,Vega,01/02/2024\n"))
	assert.ErrorContains(t, err, "hire_date")
}
