package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterPlainOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinterWithWriters(&out, &errOut)

	p.Success("logged in as %s", "maria")
	p.Info("total: %d", 3)
	p.Warning("profile not synced")
	p.Error("request failed")

	assert.Contains(t, out.String(), "[OK] logged in as maria")
	assert.Contains(t, out.String(), "total: 3")
	assert.Contains(t, errOut.String(), "[WARN] profile not synced")
	assert.Contains(t, errOut.String(), "[ERROR] request failed")
}

func TestStatusBadgePlain(t *testing.T) {
	p := NewPrinterWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, "[ATIVO]", p.StatusBadge("ATIVO"))
}

func TestCLIError(t *testing.T) {
	err := &CLIError{Summary: "drone not found", Detail: "HTTP 404", ExitCode: ExitAPIError}
	assert.Equal(t, "drone not found", err.Error())

	var out, errOut bytes.Buffer
	p := NewPrinterWithWriters(&out, &errOut)
	p.FormatError(err)

	assert.Contains(t, errOut.String(), "drone not found")
	assert.Contains(t, errOut.String(), "Cause: HTTP 404")
}

func TestTableRendersToWriter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableWithWriter(&buf, []string{"ID", "NAME"})
	table.AddRow([]string{"1", "Falcao-1"})
	table.AddRow([]string{"2", "Falcao-2"})
	table.Render()

	got := buf.String()
	assert.Contains(t, got, "Falcao-1")
	assert.Contains(t, got, "Falcao-2")
}
