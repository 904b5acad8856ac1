package plan_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/nexusdl/internal/manifest"
	"github.com/vmunix/nexusdl/internal/plan"
	"github.com/vmunix/nexusdl/pkg/gamedomain"
)

func TestNormalize_DedupAndUnknownDomain(t *testing.T) {
	descs := []manifest.RawDescriptor{
		{GameName: "SkyrimSE", ModID: json.Number("100"), FileID: json.Number("1"), Name: "SkyrimSE Patch.7z"},
		{GameName: "SkyrimSE", ModID: json.Number("100"), FileID: json.Number("1"), Name: "Duplicate Name.7z"},
		{GameName: "MadeUpGame", ModID: json.Number("5"), FileID: json.Number("6"), Name: "Unknown.zip"},
	}

	entries, problems := plan.Normalize(descs, gamedomain.Default())

	require.Len(t, entries, 1)
	assert.Equal(t, "skyrimspecialedition", entries[0].Domain)
	assert.Equal(t, 100, entries[0].ModID)
	assert.Equal(t, 1, entries[0].FileID)
	assert.Equal(t, "SkyrimSE Patch.7z", entries[0].Name, "first-seen name wins")

	require.Len(t, problems, 1)
	assert.ErrorIs(t, problems[0].Err, plan.ErrUnknownDomain)
	assert.Equal(t, "Unknown.zip", problems[0].Source)
}

func TestNormalize_UnknownDomainDoesNotAbort(t *testing.T) {
	descs := []manifest.RawDescriptor{
		{GameName: "FalloutNV", ModID: json.Number("1"), FileID: json.Number("2"), Name: "NV.zip"},
		{GameName: "Fallout 4", ModID: json.Number("3"), FileID: json.Number("4"), Name: "F4.zip"},
	}

	entries, problems := plan.Normalize(descs, gamedomain.Default())

	require.Len(t, entries, 1)
	assert.Equal(t, "fallout4", entries[0].Domain)
	require.Len(t, problems, 1)
	assert.ErrorIs(t, problems[0].Err, plan.ErrUnknownDomain)
}

func TestNormalize_IdentifierCoercion(t *testing.T) {
	domains := gamedomain.Default()

	// Numeric strings coerce.
	entries, problems := plan.Normalize([]manifest.RawDescriptor{
		{GameName: "skyrim", ModID: "42", FileID: " 7 ", Name: "ok"},
	}, domains)
	require.Empty(t, problems)
	require.Len(t, entries, 1)
	assert.Equal(t, 42, entries[0].ModID)
	assert.Equal(t, 7, entries[0].FileID)

	// Zero, negative, non-numeric and fractional values are soft errors.
	bad := []manifest.RawDescriptor{
		{GameName: "skyrim", ModID: json.Number("0"), FileID: json.Number("1"), Name: "zero"},
		{GameName: "skyrim", ModID: json.Number("-3"), FileID: json.Number("1"), Name: "negative"},
		{GameName: "skyrim", ModID: "abc", FileID: json.Number("1"), Name: "alpha"},
		{GameName: "skyrim", ModID: json.Number("1"), FileID: json.Number("2.5"), Name: "fractional"},
	}
	entries, problems = plan.Normalize(bad, domains)
	assert.Empty(t, entries)
	require.Len(t, problems, 4)
	for _, p := range problems {
		assert.ErrorIs(t, p.Err, plan.ErrInvalidIdentifier, p.String())
	}
}

func TestNormalize_EmptyDomainRejected(t *testing.T) {
	entries, problems := plan.Normalize([]manifest.RawDescriptor{
		{GameName: "   ", ModID: json.Number("1"), FileID: json.Number("2"), Name: "blank game"},
	}, gamedomain.Default())

	assert.Empty(t, entries)
	require.Len(t, problems, 1)
	assert.ErrorIs(t, problems[0].Err, plan.ErrUnknownDomain)
}

func TestNormalize_DefaultName(t *testing.T) {
	entries, problems := plan.Normalize([]manifest.RawDescriptor{
		{GameName: "skyrim", ModID: json.Number("9"), FileID: json.Number("3")},
	}, gamedomain.Default())

	require.Empty(t, problems)
	require.Len(t, entries, 1)
	assert.Equal(t, "skyrim/9/3", entries[0].Name)
}
