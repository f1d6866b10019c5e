package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/asir-flora/internal/dataset"
	"github.com/jengzang/asir-flora/internal/models"
	"github.com/jengzang/asir-flora/internal/repository"
)

const sampleCSV = "Soil-axis,Climate-axis,Elevation-axis,Significance,Significance count,Plant Type,Species,Photo route\n" +
	"0,1,1,0.9,10,Tree,Acacia tortilis,img/acacia.png\n" +
	"2,2,3,0.2,2,Shrub,Dodonaea viscosa,img/dodonaea.png\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asir.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", writeCSV(t, sampleCSV))
	require.NoError(t, err)
	assert.Contains(t, out, "2 records")
	assert.Contains(t, out, "[Shrub Tree]")
}

func TestValidate_MissingColumns(t *testing.T) {
	_, err := run(t, "validate", writeCSV(t, "Species,Photo route\nAloe,img/aloe.png\n"))
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)
}

func TestImportAndList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "flora.db")

	out, err := run(t, "import", "--db", db, writeCSV(t, sampleCSV))
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 records")

	out, err = run(t, "list", "--db", db, "--plant-type", "Shrub")
	require.NoError(t, err)
	assert.Contains(t, out, "Dodonaea viscosa")
	assert.NotContains(t, out, "Acacia tortilis")
}

func TestShow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "flora.db")
	_, err := run(t, "import", "--db", db, writeCSV(t, sampleCSV))
	require.NoError(t, err)

	out, err := run(t, "show", "--db", db, "2")
	require.NoError(t, err)

	var shown struct {
		Record  models.Record       `json:"record"`
		Tooltip models.TooltipState `json:"tooltip"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "Dodonaea viscosa", shown.Record.Species)
	require.NotNil(t, shown.Tooltip.Content)
	assert.Equal(t, "img/dodonaea.png", shown.Tooltip.Content.ImageURL)

	_, err = run(t, "show", "--db", db, "9")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHover(t *testing.T) {
	out, err := run(t, "hover", writeCSV(t, sampleCSV), "0", "1", "1.2")
	require.NoError(t, err)

	var st models.TooltipState
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	require.NotNil(t, st.Content)
	assert.True(t, st.Visible)
	assert.Equal(t, "Species: Acacia tortilis", st.Content.Caption)

	_, err = run(t, "hover", writeCSV(t, sampleCSV), "0", "x", "1")
	assert.Error(t, err)
}
