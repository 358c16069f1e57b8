package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	employeeapp "github.com/bitfutura/ems/internal/application/employee"
	"github.com/bitfutura/ems/internal/infrastructure/notification"
	"github.com/bitfutura/ems/internal/infrastructure/persistence/csvfile"
)

// runScript feeds the given lines to a fresh shell backed by a CSV file in a
// temp dir and returns the rendered output plus the backing file path.
func runScript(t *testing.T, lines ...string) (string, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.csv")
	return runScriptOn(t, path, lines...), path
}

func runScriptOn(t *testing.T, path string, lines ...string) string {
	t.Helper()
	log := zap.NewNop()
	repo := csvfile.NewRepository(path, log)
	svc := employeeapp.NewService(context.Background(), repo, notification.NewStubNotifier(log), log)

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	shell := New(svc, in, &out, log)

	require.NoError(t, shell.Run(context.Background()))
	return out.String()
}

func TestShell_AddAndExit(t *testing.T) {
	out, path := runScript(t,
		"1",
		"E00000001", "John Doe", "Engineering", "50000", "john@x.com",
		"yes",
		"7",
	)

	assert.Contains(t, out, "Review Employee Details:")
	assert.Contains(t, out, "Employee added successfully.")
	assert.Contains(t, out, "Exiting the system.")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"ID,Name,Department,Salary,Contact\n"+
			"E00000001,John Doe,Engineering,50000.00,john@x.com\n",
		string(data))
}

func TestShell_AddCancelled(t *testing.T) {
	out, path := runScript(t,
		"1",
		"E00000001", "John Doe", "Engineering", "50000", "john@x.com",
		"no",
		"7",
	)

	assert.Contains(t, out, "Employee addition cancelled.")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "cancelled add must not persist anything")
}

func TestShell_AddInvalidID(t *testing.T) {
	out, _ := runScript(t,
		"1",
		"BAD", "John Doe", "Engineering", "50000", "john@x.com",
		"yes",
		"7",
	)
	assert.Contains(t, out, "Invalid employee ID format")
}

func TestShell_ViewEmployee(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.csv")
	data := "ID,Name,Department,Salary,Contact\n" +
		"E00000001,John Doe,Engineering,50000.00,john@x.com\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	t.Run("shows details after confirmation", func(t *testing.T) {
		out := runScriptOn(t, path, "2", "E00000001", "yes", "7")
		assert.Contains(t, out, "Employee Details:")
		assert.Contains(t, out, "Salary: $50000.00")
	})

	t.Run("rejects malformed ID before hitting the store", func(t *testing.T) {
		out := runScriptOn(t, path, "2", "nope", "7")
		assert.Contains(t, out, "Invalid Employee ID format.")
	})

	t.Run("reports unknown employee", func(t *testing.T) {
		out := runScriptOn(t, path, "2", "E99999999", "7")
		assert.Contains(t, out, "Employee not found")
	})
}

func TestShell_UpdateSalaryOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.csv")
	data := "ID,Name,Department,Salary,Contact\n" +
		"E00000001,John Doe,Engineering,50000.00,john@x.com\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out := runScriptOn(t, path,
		"3",
		"E00000001",
		"yes", // proceed with update
		"",    // keep name
		"",    // keep department
		"60000",
		"",    // keep email
		"yes", // save
		"7",
	)
	assert.Contains(t, out, "Employee E00000001 updated successfully.")

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "E00000001,John Doe,Engineering,60000.00,john@x.com")
}

func TestShell_DeleteEmployee(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.csv")
	data := "ID,Name,Department,Salary,Contact\n" +
		"E00000001,John Doe,Engineering,50000.00,john@x.com\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out := runScriptOn(t, path, "4", "E00000001", "yes", "7")
	assert.Contains(t, out, "Employee E00000001 deleted successfully.")

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID,Name,Department,Salary,Contact\n", string(saved))
}

func TestShell_ListEmpty(t *testing.T) {
	out, _ := runScript(t, "5", "7")
	assert.Contains(t, out, "No employees found.")
}

func TestShell_DepartmentReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.csv")
	data := "ID,Name,Department,Salary,Contact\n" +
		"E00000001,John Doe,Engineering,50000.00,john@x.com\n" +
		"E00000002,Jane Roe,engineering,30000.00,jane@x.com\n" +
		"E00000003,Sam Poe,Sales,20000.00,sam@x.com\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out := runScriptOn(t, path, "6", "ENGINEERING", "yes", "7")
	assert.Contains(t, out, "Employees in Department: Engineering")
	assert.Contains(t, out, "ID: E00000001")
	assert.Contains(t, out, "ID: E00000002")
	assert.NotContains(t, out, "ID: E00000003")
	assert.Contains(t, out, "Total Budgeted Salary for 'Engineering': $80000.00")
}

func TestShell_InvalidChoice(t *testing.T) {
	out, _ := runScript(t, "9", "7")
	assert.Contains(t, out, "Invalid choice! Please try again.")
}

func TestShell_ExitOnClosedInput(t *testing.T) {
	// No trailing menu choice: the reader runs dry mid-loop.
	out, _ := runScript(t, "5")
	assert.Contains(t, out, "No employees found.")
}
