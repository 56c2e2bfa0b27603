package wow_test

import (
	"testing"

	"github.com/hearthforge/hearth/pkg/wow"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFlavors_StableIdentifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flavor wow.Flavor
		id     string
		label  string
		folder string
	}{
		{wow.Retail, "retail", "Retail", "_retail_"},
		{wow.RetailPTR, "retail_ptr", "Retail PTR", "_ptr_"},
		{wow.RetailBeta, "retail_beta", "Retail Beta", "_beta_"},
		{wow.Classic, "classic", "Classic", "_classic_"},
		{wow.ClassicPTR, "classic_ptr", "Classic PTR", "_classic_ptr_"},
		{wow.ClassicEra, "classic_era", "Classic Era", "_classic_era_"},
	}

	require.Len(t, wow.Flavors(), len(tests))

	seenIDs := map[string]bool{}
	seenFolders := map[string]bool{}
	for _, tt := range tests {
		require.Equal(t, tt.id, tt.flavor.String())
		require.Equal(t, tt.label, tt.flavor.Label())
		require.Equal(t, tt.folder, tt.flavor.FolderName())
		require.True(t, tt.flavor.IsValid())

		require.False(t, seenIDs[tt.id], "identifier %q is not unique", tt.id)
		require.False(t, seenFolders[tt.folder], "folder token %q is not unique", tt.folder)
		seenIDs[tt.id] = true
		seenFolders[tt.folder] = true
	}
}

func TestParseFlavor(t *testing.T) {
	t.Parallel()

	for _, f := range wow.Flavors() {
		got, err := wow.ParseFlavor(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}

	got, err := wow.ParseFlavor("  Classic_Era ")
	require.NoError(t, err)
	require.Equal(t, wow.ClassicEra, got)

	_, err = wow.ParseFlavor("wrath")
	require.Error(t, err)
	require.True(t, wow.IsUnknownFlavor(err))

	var unknownErr *wow.UnknownFlavorError
	require.ErrorAs(t, err, &unknownErr)
	require.Equal(t, "wrath", unknownErr.Name)
}

func TestFlavor_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	type doc struct {
		Flavor wow.Flavor `yaml:"flavor"`
	}

	var out doc
	require.NoError(t, yaml.Unmarshal([]byte("flavor: classic_era\n"), &out))
	require.Equal(t, wow.ClassicEra, out.Flavor)

	raw, err := yaml.Marshal(doc{Flavor: wow.RetailPTR})
	require.NoError(t, err)
	require.Equal(t, "flavor: retail_ptr\n", string(raw))

	err = yaml.Unmarshal([]byte("flavor: wrath\n"), &out)
	require.Error(t, err)
	require.True(t, wow.IsUnknownFlavor(err))
}
