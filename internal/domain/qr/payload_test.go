package qr

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDirectory = []employee.Employee{
	{ID: "emp-1", Name: "Ana Quispe"},
	{ID: "emp-2", Name: "Carlos Mamani"},
	{ID: "emp-3", Name: "Maria Condori"},
}

func TestEncodePayload(t *testing.T) {
	issued := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	raw, err := encodePayloadAt(employee.Employee{ID: "emp-1", Name: "Ana Quispe"}, issued)
	require.NoError(t, err)

	var p Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, PayloadKind, p.Kind)
	assert.Equal(t, "emp-1", p.EmployeeID)
	assert.Equal(t, "Ana Quispe", p.DisplayName)
	assert.Equal(t, issued.UnixMilli(), p.IssuedAtMilli)
}

func TestResolveScanStructuredPayload(t *testing.T) {
	raw, err := EncodePayload(testDirectory[1])
	require.NoError(t, err)

	emp, err := ResolveScan(raw, testDirectory)
	require.NoError(t, err)
	assert.Equal(t, "emp-2", emp.ID)
}

func TestResolveScanStructuredUnknownID(t *testing.T) {
	raw, err := EncodePayload(employee.Employee{ID: "gone", Name: "Someone Deleted"})
	require.NoError(t, err)

	_, err = ResolveScan(raw, testDirectory)
	var noMatch *NoMatchError
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, raw, noMatch.Raw)
}

func TestResolveScanFreeformExactID(t *testing.T) {
	emp, err := ResolveScan("emp-2", testDirectory)
	require.NoError(t, err)
	assert.Equal(t, "emp-2", emp.ID)
}

func TestResolveScanFreeformNameSubstring(t *testing.T) {
	emp, err := ResolveScan("CARLOS", testDirectory)
	require.NoError(t, err)
	assert.Equal(t, "emp-2", emp.ID)
}

func TestResolveScanFirstMatchWins(t *testing.T) {
	directory := []employee.Employee{
		{ID: "a", Name: "Maria Lopez"},
		{ID: "b", Name: "Maria Condori"},
	}
	emp, err := ResolveScan("maria", directory)
	require.NoError(t, err)
	assert.Equal(t, "a", emp.ID)
}

func TestResolveScanNoMatch(t *testing.T) {
	_, err := ResolveScan("nobody-here", testDirectory)
	require.Error(t, err)

	var noMatch *NoMatchError
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, "nobody-here", noMatch.Raw)
}

func TestResolveScanEmptyDirectory(t *testing.T) {
	_, err := ResolveScan("emp-1", nil)
	var noMatch *NoMatchError
	require.ErrorAs(t, err, &noMatch)
}
